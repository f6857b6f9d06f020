// Package schema defines the node tree that drives packing and unpacking.
//
// The packer engine consumes schema trees through the Node interface
// only: it asks the current node whether it has nested fields, how many
// children it has, and for child i, and delegates every scalar
// encode/decode (including range and legality checks) to the node. The
// tree itself is immutable once built and may be shared by any number
// of concurrent sessions.
//
// # Node Shapes
//
//	Scalar   fixed-width integer, float64, string, or blob leaf
//	Struct   fixed sequence of named fields
//	Array    fixed count, open (count -1, no prefix), or
//	         prefixed (count -1, u16 byte-length prefix)
//	Switch   tagged union: integer key field plus per-case field lists
//
// A variable-length node reports ChildCount() == -1. A prefixed node
// additionally reports LengthBytes() == 2, telling the engine to read
// or reserve a u16 byte-length prefix at the level boundary. An open
// array has no prefix; its element count is carried by a sibling field
// and the caller decides when to pop.
//
// # Switches
//
// A Switch node's base children are the key field followed by any
// fields common to all cases. SelectCase returns a spliced node whose
// children repeat the base fields at the same indices and then append
// the case's own fields, so traversal index counting continues across
// the case boundary without mutating the tree.
//
// # Schema Documents
//
// Load builds a tree from a YAML document:
//
//	name: avatar
//	type: struct
//	fields:
//	  - name: count
//	    type: uint16
//	  - name: items
//	    type: array
//	    of: int32
//	    prefixed: false
//
// See Load for the full document shape.
package schema
