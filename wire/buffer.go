package wire

import (
	"encoding/binary"
	"math"
)

// MaxVarLength is the largest byte length representable by the u16
// length prefix used for strings, blobs, and prefixed sequences.
const MaxVarLength = 0xFFFF

// LengthPrefixBytes is the width of the length prefix.
const LengthPrefixBytes = 2

// Buffer is the append-only pack output. The write cursor is always at
// the end; amortized growth comes from the backing slice. The zero
// value is ready to use.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns a snapshot copy of the buffer contents. The buffer
// remains unchanged.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Take transfers ownership of the backing storage to the caller and
// leaves the buffer empty, ready for reuse.
func (b *Buffer) Take() []byte {
	out := b.buf
	b.buf = nil
	return out
}

// Reset discards the contents but keeps the backing storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// SetBytes replaces the contents with data, taking ownership of it.
// Used by repack sessions that overwrite an existing packed image.
func (b *Buffer) SetBytes(data []byte) {
	b.buf = data
}

// PutUint8 appends a single byte.
func (b *Buffer) PutUint8(v uint8) {
	b.buf = append(b.buf, v)
}

// PutUint16 appends a little-endian u16.
func (b *Buffer) PutUint16(v uint16) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
}

// PutUint32 appends a little-endian u32.
func (b *Buffer) PutUint32(v uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
}

// PutUint64 appends a little-endian u64.
func (b *Buffer) PutUint64(v uint64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
}

// PutInt8 appends a signed byte in two's complement.
func (b *Buffer) PutInt8(v int8) {
	b.buf = append(b.buf, byte(v))
}

// PutInt16 appends a little-endian two's complement i16.
func (b *Buffer) PutInt16(v int16) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(v))
}

// PutInt32 appends a little-endian two's complement i32.
func (b *Buffer) PutInt32(v int32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(v))
}

// PutInt64 appends a little-endian two's complement i64.
func (b *Buffer) PutInt64(v int64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, uint64(v))
}

// PutFloat64 appends an IEEE-754 f64 as little-endian bits.
func (b *Buffer) PutFloat64(v float64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
}

// PutString appends a u16 length prefix followed by the string bytes.
func (b *Buffer) PutString(s string) Fault {
	if len(s) > MaxVarLength {
		return FaultRange
	}
	b.PutUint16(uint16(len(s)))
	b.buf = append(b.buf, s...)
	return FaultNone
}

// PutBytes appends a u16 length prefix followed by the raw bytes.
func (b *Buffer) PutBytes(data []byte) Fault {
	if len(data) > MaxVarLength {
		return FaultRange
	}
	b.PutUint16(uint16(len(data)))
	b.buf = append(b.buf, data...)
	return FaultNone
}

// PutRaw appends bytes with no length prefix.
func (b *Buffer) PutRaw(data []byte) {
	b.buf = append(b.buf, data...)
}

// ReserveLength appends a zeroed u16 length slot and returns its
// offset, to be filled in later with PatchLength.
func (b *Buffer) ReserveLength() int {
	off := len(b.buf)
	b.buf = append(b.buf, 0, 0)
	return off
}

// PatchLength writes the byte count accumulated since the slot at off
// was reserved. Returns FaultRange if the span exceeds MaxVarLength.
func (b *Buffer) PatchLength(off int) Fault {
	n := len(b.buf) - off - LengthPrefixBytes
	if n < 0 || n > MaxVarLength {
		return FaultRange
	}
	binary.LittleEndian.PutUint16(b.buf[off:], uint16(n))
	return FaultNone
}

// Uint16At reads a little-endian u16 at an absolute offset. Used by
// repack traversal to walk existing length prefixes.
func (b *Buffer) Uint16At(off int) (uint16, Fault) {
	if off < 0 || off+2 > len(b.buf) {
		return 0, FaultTruncated
	}
	return binary.LittleEndian.Uint16(b.buf[off:]), FaultNone
}

// Overwrite replaces len(data) bytes in place at an absolute offset.
// The span must already exist; repack never changes the buffer length.
func (b *Buffer) Overwrite(off int, data []byte) Fault {
	if off < 0 || off+len(data) > len(b.buf) {
		return FaultTruncated
	}
	copy(b.buf[off:], data)
	return FaultNone
}
