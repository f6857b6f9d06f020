// Package wire implements the fixed wire format shared by every packer
// session: a growable append-only pack buffer and a bounds-checked read
// view, with fixed-width little-endian primitive encodings.
//
// # Wire Format
//
// The format is fixed-width and byte-order independent of the host:
//
//	Type            Encoding
//	────────────────────────────────────────────
//	i8/u8           1 byte
//	i16/u16         2 bytes, little-endian
//	i32/u32         4 bytes, little-endian
//	i64/u64         8 bytes, little-endian
//	f64             8 bytes, IEEE-754 bits, little-endian
//	string/blob     u16 little-endian byte length + raw bytes
//
// The maximum representable string/blob length is 65535 bytes
// (MaxVarLength). A longer value is a range fault, never a silent
// truncation.
//
// # Faults
//
// Codec operations report a Fault instead of returning an error. The
// packer engine folds faults into its per-session error flags:
// FaultTruncated and FaultMismatch are stream-structure faults,
// FaultRange is a value-domain fault.
//
// # Key Types
//
//	Buffer  - append-only pack output with snapshot and ownership transfer
//	View    - borrowed read span with a monotonic, bounds-checked cursor
package wire
