// Package transcode bridges whole documents and packed wire bytes.
//
// Where the packer package drives one field at a time, transcode runs
// a complete session per call: a JSON or CBOR document in, packed
// bytes out, or the reverse. The document's shape must mirror the
// schema's shape; maps drive struct and union levels by field name,
// arrays drive sequences.
//
// Unpacking into a document requires the schema to be self-describing.
// An unprefixed variable-length sequence carries its element count in
// a sibling field the bridge cannot interpret, so schemas containing
// one are rejected up front.
//
// CBOR output uses Core Deterministic Encoding (RFC 8949 4.2): the
// same packed bytes always transcode to identical CBOR bytes.
package transcode
