// Package packer implements the schema-driven binary pack/unpack engine.
//
// A Packer is a stateful interpreter over an immutable schema tree
// (see the schema package). The caller mirrors the shape of the data
// with begin / push / pack-or-unpack / pop / end calls, and the engine
// keeps the byte stream and the schema walk in lockstep:
//
//	p := packer.New()
//	p.BeginPack(root)
//	p.Push()            // descend into the root struct
//	p.PackUint(2)       // count
//	p.Push()            // descend into the items array
//	p.PackInt(5)
//	p.PackInt(-7)
//	p.Pop()
//	p.Pop()
//	if err := p.EndPack(); err != nil { ... }
//	data := p.Take()
//
// # Modes
//
// A Packer is always in exactly one mode: Idle, Pack, Repack, or
// Unpack. Schema-driven operations are legal only in their matching
// mode; Raw* operations are legal only in Idle. Calling an operation
// in the wrong mode is a programming error and panics: mode misuse is
// a contract violation, not a data fault.
//
// # Error Model
//
// Data faults never panic and never abort the walk. Three monotonic
// flags accumulate per session:
//
//	pack error    structural: push/pop misuse, truncated source,
//	              wrong field count, unmatched union case
//	range error   a well-formed value outside its declared domain
//	parse error   a textual value failed to parse (ParseAndPack)
//
// End returns a structured error when any flag is set; partial results
// remain inspectable, so callers can salvage what was packed or
// unpacked before the fault and query the flags individually.
//
// # Unions
//
// When the current parent is a switch node, the engine captures the
// discriminant from the scalar call at the start of the level. Once
// the switch's base fields are exhausted, the matching case's field
// list is spliced in as the effective child list and traversal
// continues; LastSwitch reports the resolved node for introspection.
//
// # Variable-Length Sequences
//
// A node with ChildCount() == -1 has stream-determined length. If it
// is prefixed (LengthBytes() == 2), Push reserves a u16 byte-length
// slot when packing (backpatched at Pop) and reads it when unpacking
// (setting the pop marker the level must end on). An unprefixed node
// relies on the caller: a sibling field carries the count and the
// caller pops at the right element boundary.
//
// # Reuse
//
// Traversal frames come from a per-Packer arena; N nested push/pop
// cycles allocate at most max-simultaneous-depth frames. A Packer is
// not safe for concurrent use; build one per goroutine.
package packer
