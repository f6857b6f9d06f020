package wire

import (
	"encoding/binary"
	"math"
)

// View is a bounds-checked read cursor over a borrowed byte span. The
// cursor advances monotonically; no read ever proceeds past the
// recorded length. A failed read leaves the cursor where it was.
//
// View never mutates or frees the underlying data.
type View struct {
	data []byte
	pos  int
}

// NewView returns a view over data starting at offset 0.
func NewView(data []byte) View {
	return View{data: data}
}

// Len returns the total length of the underlying span.
func (v *View) Len() int {
	return len(v.data)
}

// Pos returns the current cursor position.
func (v *View) Pos() int {
	return v.pos
}

// Remaining returns the number of unread bytes.
func (v *View) Remaining() int {
	return len(v.data) - v.pos
}

// Skip advances the cursor n bytes without decoding them.
func (v *View) Skip(n int) Fault {
	if n < 0 || v.pos+n > len(v.data) {
		return FaultTruncated
	}
	v.pos += n
	return FaultNone
}

func (v *View) need(n int) bool {
	return v.pos+n <= len(v.data)
}

// Uint8 reads one byte.
func (v *View) Uint8() (uint8, Fault) {
	if !v.need(1) {
		return 0, FaultTruncated
	}
	b := v.data[v.pos]
	v.pos++
	return b, FaultNone
}

// Uint16 reads a little-endian u16.
func (v *View) Uint16() (uint16, Fault) {
	if !v.need(2) {
		return 0, FaultTruncated
	}
	x := binary.LittleEndian.Uint16(v.data[v.pos:])
	v.pos += 2
	return x, FaultNone
}

// Uint32 reads a little-endian u32.
func (v *View) Uint32() (uint32, Fault) {
	if !v.need(4) {
		return 0, FaultTruncated
	}
	x := binary.LittleEndian.Uint32(v.data[v.pos:])
	v.pos += 4
	return x, FaultNone
}

// Uint64 reads a little-endian u64.
func (v *View) Uint64() (uint64, Fault) {
	if !v.need(8) {
		return 0, FaultTruncated
	}
	x := binary.LittleEndian.Uint64(v.data[v.pos:])
	v.pos += 8
	return x, FaultNone
}

// Int8 reads a two's complement signed byte.
func (v *View) Int8() (int8, Fault) {
	x, f := v.Uint8()
	return int8(x), f
}

// Int16 reads a little-endian two's complement i16.
func (v *View) Int16() (int16, Fault) {
	x, f := v.Uint16()
	return int16(x), f
}

// Int32 reads a little-endian two's complement i32.
func (v *View) Int32() (int32, Fault) {
	x, f := v.Uint32()
	return int32(x), f
}

// Int64 reads a little-endian two's complement i64.
func (v *View) Int64() (int64, Fault) {
	x, f := v.Uint64()
	return int64(x), f
}

// Float64 reads an IEEE-754 f64 from little-endian bits.
func (v *View) Float64() (float64, Fault) {
	x, f := v.Uint64()
	return math.Float64frombits(x), f
}

// String reads a u16 length prefix and that many bytes as a string.
func (v *View) String() (string, Fault) {
	n, f := v.Uint16()
	if f != FaultNone {
		return "", f
	}
	if !v.need(int(n)) {
		v.pos -= 2
		return "", FaultTruncated
	}
	s := string(v.data[v.pos : v.pos+int(n)])
	v.pos += int(n)
	return s, FaultNone
}

// Bytes reads a u16 length prefix and returns a copy of that many
// bytes.
func (v *View) Bytes() ([]byte, Fault) {
	n, f := v.Uint16()
	if f != FaultNone {
		return nil, f
	}
	if !v.need(int(n)) {
		v.pos -= 2
		return nil, FaultTruncated
	}
	out := make([]byte, n)
	copy(out, v.data[v.pos:])
	v.pos += int(n)
	return out, FaultNone
}

// Raw reads exactly n bytes with no length prefix, returning a copy.
func (v *View) Raw(n int) ([]byte, Fault) {
	if n < 0 || !v.need(n) {
		return nil, FaultTruncated
	}
	out := make([]byte, n)
	copy(out, v.data[v.pos:])
	v.pos += n
	return out, FaultNone
}
