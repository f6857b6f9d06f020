package schema

import (
	"math"

	"github.com/fieldstream/netpack/wire"
)

// Scalar is a leaf field with a fixed wire kind and an optional
// declared value range narrower than the kind's width.
type Scalar struct {
	name     string
	kind     Kind
	hasRange bool
	minI     int64
	maxI     int64
	minU     uint64
	maxU     uint64
	minF     float64
	maxF     float64
}

// NewScalar returns a scalar field of the given wire kind. The kind
// must be one of the leaf kinds; anything else is a schema-construction
// bug, not a data error.
func NewScalar(name string, kind Kind) *Scalar {
	if !kind.IsScalar() {
		panic("schema: NewScalar with non-scalar kind " + kind.String())
	}
	return &Scalar{name: name, kind: kind}
}

// WithRange narrows the integer domain to [min, max]. Values outside
// it are range faults in both directions, pack and unpack.
func (s *Scalar) WithRange(min, max int64) *Scalar {
	s.hasRange = true
	s.minI, s.maxI = min, max
	if min < 0 {
		s.minU = 0
	} else {
		s.minU = uint64(min)
	}
	if max < 0 {
		s.maxU = 0
	} else {
		s.maxU = uint64(max)
	}
	s.minF, s.maxF = float64(min), float64(max)
	return s
}

// WithFloatRange narrows the float64 domain to [min, max].
func (s *Scalar) WithFloatRange(min, max float64) *Scalar {
	s.hasRange = true
	s.minF, s.maxF = min, max
	return s
}

func (s *Scalar) Name() string          { return s.name }
func (s *Scalar) Kind() Kind            { return s.kind }
func (s *Scalar) HasNestedFields() bool { return false }
func (s *Scalar) ChildCount() int       { return 0 }
func (s *Scalar) Child(int) Node        { return nil }
func (s *Scalar) LengthBytes() int      { return 0 }
func (s *Scalar) Switch() Switch        { return nil }

// Width limits per signed kind.
var signedLimits = map[Kind][2]int64{
	KindInt8:  {math.MinInt8, math.MaxInt8},
	KindInt16: {math.MinInt16, math.MaxInt16},
	KindInt32: {math.MinInt32, math.MaxInt32},
	KindInt64: {math.MinInt64, math.MaxInt64},
}

var unsignedLimits = map[Kind]uint64{
	KindUint8:  math.MaxUint8,
	KindUint16: math.MaxUint16,
	KindUint32: math.MaxUint32,
	KindUint64: math.MaxUint64,
}

func (s *Scalar) checkInt(v int64) wire.Fault {
	lim := signedLimits[s.kind]
	if v < lim[0] || v > lim[1] {
		return wire.FaultRange
	}
	if s.hasRange && (v < s.minI || v > s.maxI) {
		return wire.FaultRange
	}
	return wire.FaultNone
}

func (s *Scalar) checkUint(v uint64) wire.Fault {
	if v > unsignedLimits[s.kind] {
		return wire.FaultRange
	}
	if s.hasRange && (v < s.minU || v > s.maxU) {
		return wire.FaultRange
	}
	return wire.FaultNone
}

func (s *Scalar) checkFloat(v float64) wire.Fault {
	if s.hasRange && (v < s.minF || v > s.maxF) {
		return wire.FaultRange
	}
	return wire.FaultNone
}

func (s *Scalar) putInt(b *wire.Buffer, v int64) {
	switch s.kind {
	case KindInt8:
		b.PutInt8(int8(v))
	case KindInt16:
		b.PutInt16(int16(v))
	case KindInt32:
		b.PutInt32(int32(v))
	case KindInt64:
		b.PutInt64(v)
	}
}

func (s *Scalar) putUint(b *wire.Buffer, v uint64) {
	switch s.kind {
	case KindUint8:
		b.PutUint8(uint8(v))
	case KindUint16:
		b.PutUint16(uint16(v))
	case KindUint32:
		b.PutUint32(uint32(v))
	case KindUint64:
		b.PutUint64(v)
	}
}

// PackInt packs a signed value. On an unsigned field the value is
// converted after a sign check; a range fault still consumes no bytes.
func (s *Scalar) PackInt(b *wire.Buffer, v int64) wire.Fault {
	switch {
	case s.kind.IsSigned():
		if f := s.checkInt(v); f != wire.FaultNone {
			return f
		}
		s.putInt(b, v)
		return wire.FaultNone
	case s.kind.IsInteger():
		if v < 0 {
			return wire.FaultRange
		}
		return s.PackUint(b, uint64(v))
	case s.kind == KindFloat64:
		return s.PackFloat64(b, float64(v))
	default:
		return wire.FaultMismatch
	}
}

// PackUint packs an unsigned value, converting for signed fields.
func (s *Scalar) PackUint(b *wire.Buffer, v uint64) wire.Fault {
	switch {
	case s.kind.IsSigned():
		if v > math.MaxInt64 {
			return wire.FaultRange
		}
		return s.PackInt(b, int64(v))
	case s.kind.IsInteger():
		if f := s.checkUint(v); f != wire.FaultNone {
			return f
		}
		s.putUint(b, v)
		return wire.FaultNone
	case s.kind == KindFloat64:
		return s.PackFloat64(b, float64(v))
	default:
		return wire.FaultMismatch
	}
}

// PackFloat64 packs a float64. Integer fields reject floats; the
// caller converts integral floats before delegating.
func (s *Scalar) PackFloat64(b *wire.Buffer, v float64) wire.Fault {
	if s.kind != KindFloat64 {
		return wire.FaultMismatch
	}
	if f := s.checkFloat(v); f != wire.FaultNone {
		return f
	}
	b.PutFloat64(v)
	return wire.FaultNone
}

// PackString packs a length-prefixed string. Blob fields accept
// strings as raw bytes.
func (s *Scalar) PackString(b *wire.Buffer, str string) wire.Fault {
	if s.kind != KindString && s.kind != KindBlob {
		return wire.FaultMismatch
	}
	return b.PutString(str)
}

// PackBytes packs a length-prefixed blob. String fields accept bytes.
func (s *Scalar) PackBytes(b *wire.Buffer, data []byte) wire.Fault {
	if s.kind != KindString && s.kind != KindBlob {
		return wire.FaultMismatch
	}
	return b.PutBytes(data)
}

func (s *Scalar) readInt(v *wire.View) (int64, wire.Fault) {
	switch s.kind {
	case KindInt8:
		x, f := v.Int8()
		return int64(x), f
	case KindInt16:
		x, f := v.Int16()
		return int64(x), f
	case KindInt32:
		x, f := v.Int32()
		return int64(x), f
	default:
		return v.Int64()
	}
}

func (s *Scalar) readUint(v *wire.View) (uint64, wire.Fault) {
	switch s.kind {
	case KindUint8:
		x, f := v.Uint8()
		return uint64(x), f
	case KindUint16:
		x, f := v.Uint16()
		return uint64(x), f
	case KindUint32:
		x, f := v.Uint32()
		return uint64(x), f
	default:
		return v.Uint64()
	}
}

// UnpackInt unpacks any integer field as a signed value. A uint64
// value above MaxInt64 is a range fault; the bytes are still consumed
// so traversal can continue.
func (s *Scalar) UnpackInt(v *wire.View) (int64, wire.Fault) {
	switch {
	case s.kind.IsSigned():
		x, f := s.readInt(v)
		if f != wire.FaultNone {
			return 0, f
		}
		if s.hasRange && (x < s.minI || x > s.maxI) {
			return x, wire.FaultRange
		}
		return x, wire.FaultNone
	case s.kind.IsInteger():
		x, f := s.readUint(v)
		if f != wire.FaultNone {
			return 0, f
		}
		if x > math.MaxInt64 {
			return 0, wire.FaultRange
		}
		if s.hasRange && (x < s.minU || x > s.maxU) {
			return int64(x), wire.FaultRange
		}
		return int64(x), wire.FaultNone
	default:
		return 0, wire.FaultMismatch
	}
}

// UnpackUint unpacks any integer field as an unsigned value. A
// negative signed value is a range fault.
func (s *Scalar) UnpackUint(v *wire.View) (uint64, wire.Fault) {
	switch {
	case s.kind.IsSigned():
		x, f := s.readInt(v)
		if f != wire.FaultNone {
			return 0, f
		}
		if x < 0 {
			return 0, wire.FaultRange
		}
		if s.hasRange && (x < s.minI || x > s.maxI) {
			return uint64(x), wire.FaultRange
		}
		return uint64(x), wire.FaultNone
	case s.kind.IsInteger():
		x, f := s.readUint(v)
		if f != wire.FaultNone {
			return 0, f
		}
		if s.hasRange && (x < s.minU || x > s.maxU) {
			return x, wire.FaultRange
		}
		return x, wire.FaultNone
	default:
		return 0, wire.FaultMismatch
	}
}

// UnpackFloat64 unpacks a float64 field.
func (s *Scalar) UnpackFloat64(v *wire.View) (float64, wire.Fault) {
	if s.kind != KindFloat64 {
		return 0, wire.FaultMismatch
	}
	x, f := v.Float64()
	if f != wire.FaultNone {
		return 0, f
	}
	if s.hasRange && (x < s.minF || x > s.maxF) {
		return x, wire.FaultRange
	}
	return x, wire.FaultNone
}

// UnpackString unpacks a string or blob field as a string.
func (s *Scalar) UnpackString(v *wire.View) (string, wire.Fault) {
	if s.kind != KindString && s.kind != KindBlob {
		return "", wire.FaultMismatch
	}
	return v.String()
}

// UnpackBytes unpacks a blob or string field as raw bytes.
func (s *Scalar) UnpackBytes(v *wire.View) ([]byte, wire.Fault) {
	if s.kind != KindString && s.kind != KindBlob {
		return nil, wire.FaultMismatch
	}
	return v.Bytes()
}
