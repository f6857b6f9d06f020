package schema

import (
	"github.com/fieldstream/netpack/wire"
)

// Kind is the wire shape of a schema node.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat64
	KindString
	KindBlob
	KindStruct
	KindArray
	KindSwitch
)

var kindNames = [...]string{
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat64: "float64",
	KindString:  "string",
	KindBlob:    "blob",
	KindStruct:  "struct",
	KindArray:   "array",
	KindSwitch:  "switch",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind is a leaf wire type.
func (k Kind) IsScalar() bool {
	return k <= KindBlob
}

// IsInteger reports whether the kind is a fixed-width integer type.
func (k Kind) IsInteger() bool {
	return k <= KindUint64
}

// IsSigned reports whether the kind is a signed integer type.
func (k Kind) IsSigned() bool {
	return k <= KindInt64
}

// Node is the capability contract the packer engine walks. The engine
// never inspects concrete node types; everything it needs is behind
// this interface, so schema trees can come from the builders in this
// package, from the YAML loader, or from an external provider.
type Node interface {
	// Name identifies the field for diagnostics only.
	Name() string

	// Kind is the node's wire shape, for introspection.
	Kind() Kind

	// HasNestedFields reports whether the node can be pushed into.
	HasNestedFields() bool

	// ChildCount returns the number of nested fields, or -1 when the
	// count is variable (determined by the stream, not the schema).
	ChildCount() int

	// Child returns nested field i, or nil when out of range. A
	// variable-count node returns its element for every index.
	Child(index int) Node

	// LengthBytes returns the width of the node's byte-length prefix
	// at a level boundary: 0 for none, 2 for a u16 prefix.
	LengthBytes() int

	// Switch returns the node's union capability, or nil when the
	// node is not a union discriminator.
	Switch() Switch

	// Scalar codec. Non-scalar nodes report wire.FaultMismatch. The
	// node performs the range and legality checks for its declared
	// domain; the view performs the bounds checks.

	PackInt(b *wire.Buffer, v int64) wire.Fault
	PackUint(b *wire.Buffer, v uint64) wire.Fault
	PackFloat64(b *wire.Buffer, v float64) wire.Fault
	PackString(b *wire.Buffer, s string) wire.Fault
	PackBytes(b *wire.Buffer, data []byte) wire.Fault

	UnpackInt(v *wire.View) (int64, wire.Fault)
	UnpackUint(v *wire.View) (uint64, wire.Fault)
	UnpackFloat64(v *wire.View) (float64, wire.Fault)
	UnpackString(v *wire.View) (string, wire.Fault)
	UnpackBytes(v *wire.View) ([]byte, wire.Fault)
}

// Switch is the union-resolution capability of a discriminator node.
type Switch interface {
	// SelectCase returns the spliced field list for the case matching
	// the discriminant, or nil when no case matches. Signed
	// discriminants are compared by their two's complement bits.
	SelectCase(disc uint64) Node
}

// composite provides the scalar-codec defaults for nodes that carry
// nested fields instead of a value.
type composite struct{}

func (composite) LengthBytes() int { return 0 }
func (composite) Switch() Switch   { return nil }

func (composite) PackInt(*wire.Buffer, int64) wire.Fault       { return wire.FaultMismatch }
func (composite) PackUint(*wire.Buffer, uint64) wire.Fault     { return wire.FaultMismatch }
func (composite) PackFloat64(*wire.Buffer, float64) wire.Fault { return wire.FaultMismatch }
func (composite) PackString(*wire.Buffer, string) wire.Fault   { return wire.FaultMismatch }
func (composite) PackBytes(*wire.Buffer, []byte) wire.Fault    { return wire.FaultMismatch }

func (composite) UnpackInt(*wire.View) (int64, wire.Fault)       { return 0, wire.FaultMismatch }
func (composite) UnpackUint(*wire.View) (uint64, wire.Fault)     { return 0, wire.FaultMismatch }
func (composite) UnpackFloat64(*wire.View) (float64, wire.Fault) { return 0, wire.FaultMismatch }
func (composite) UnpackString(*wire.View) (string, wire.Fault)   { return "", wire.FaultMismatch }
func (composite) UnpackBytes(*wire.View) ([]byte, wire.Fault)    { return nil, wire.FaultMismatch }
