// Package netpack implements a schema-driven binary packer and
// unpacker with a fixed little-endian wire format.
//
// A schema tree describes the shape of a message: scalars, structs,
// fixed and variable-length sequences, and tagged unions whose active
// case is selected by a discriminant value in the stream itself. A
// stateful engine walks the tree in lockstep with the byte stream,
// packing or unpacking one field at a time.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	netpack/             Root package re-exporting the core types
//	├── packer/          Stateful pack/unpack/repack engine
//	├── schema/          Node capability contract, builders, YAML loader
//	├── wire/            Pack buffer, bounds-checked view, LE codec
//	├── transcode/       JSON/CBOR documents <-> packed bytes
//	└── errors/          Structured error types
//
// # Quick Start
//
// Build a schema and pack a message:
//
//	root := schema.NewStruct("sample",
//	    schema.NewScalar("count", schema.KindUint16),
//	    schema.NewOpenArray("items", schema.NewScalar("item", schema.KindInt32)),
//	)
//
//	p := packer.New()
//	p.BeginPack(root)
//	p.Push()
//	p.PackUint(2)
//	p.Push()
//	p.PackInt(5)
//	p.PackInt(-7)
//	p.Pop()
//	p.Pop()
//	if err := p.EndPack(); err != nil {
//	    log.Fatal(err)
//	}
//	data := p.Take()
//
// Or go straight from a document:
//
//	root, err := schema.Load(yamlDoc)
//	packed, err := transcode.PackJSON(root, jsonDoc)
//
// Unpacking mirrors packing; the same engine also supports in-place
// repacking of existing data and raw out-of-band bytes around a
// schema-driven payload. See the packer package for the traversal
// contract and the error model.
package netpack
