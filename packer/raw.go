package packer

// Raw operations append to the pack buffer or consume from the unpack
// source without consulting any schema. They are legal only in Idle
// mode, for headers and framing that sit outside a schema-driven
// session. Raw unpack truncation sets the pack error flag; the flag is
// cleared by the next Begin call, so callers check HadError before
// starting a session.

// RawPackInt8 appends a signed byte.
func (p *Packer) RawPackInt8(v int8) {
	p.mustMode(ModeIdle, "RawPackInt8")
	p.buf.PutInt8(v)
}

// RawPackInt16 appends a little-endian i16.
func (p *Packer) RawPackInt16(v int16) {
	p.mustMode(ModeIdle, "RawPackInt16")
	p.buf.PutInt16(v)
}

// RawPackInt32 appends a little-endian i32.
func (p *Packer) RawPackInt32(v int32) {
	p.mustMode(ModeIdle, "RawPackInt32")
	p.buf.PutInt32(v)
}

// RawPackInt64 appends a little-endian i64.
func (p *Packer) RawPackInt64(v int64) {
	p.mustMode(ModeIdle, "RawPackInt64")
	p.buf.PutInt64(v)
}

// RawPackUint8 appends a byte.
func (p *Packer) RawPackUint8(v uint8) {
	p.mustMode(ModeIdle, "RawPackUint8")
	p.buf.PutUint8(v)
}

// RawPackUint16 appends a little-endian u16.
func (p *Packer) RawPackUint16(v uint16) {
	p.mustMode(ModeIdle, "RawPackUint16")
	p.buf.PutUint16(v)
}

// RawPackUint32 appends a little-endian u32.
func (p *Packer) RawPackUint32(v uint32) {
	p.mustMode(ModeIdle, "RawPackUint32")
	p.buf.PutUint32(v)
}

// RawPackUint64 appends a little-endian u64.
func (p *Packer) RawPackUint64(v uint64) {
	p.mustMode(ModeIdle, "RawPackUint64")
	p.buf.PutUint64(v)
}

// RawPackFloat64 appends an IEEE-754 f64 as little-endian bits.
func (p *Packer) RawPackFloat64(v float64) {
	p.mustMode(ModeIdle, "RawPackFloat64")
	p.buf.PutFloat64(v)
}

// RawPackString appends a u16 length prefix and the string bytes.
// Oversized strings set the range error flag.
func (p *Packer) RawPackString(s string) {
	p.mustMode(ModeIdle, "RawPackString")
	p.noteFault(p.buf.PutString(s), "RawPackString")
}

// RawPackBytes appends a u16 length prefix and the raw bytes.
// Oversized blobs set the range error flag.
func (p *Packer) RawPackBytes(data []byte) {
	p.mustMode(ModeIdle, "RawPackBytes")
	p.noteFault(p.buf.PutBytes(data), "RawPackBytes")
}

// RawPackData appends bytes with no length prefix.
func (p *Packer) RawPackData(data []byte) {
	p.mustMode(ModeIdle, "RawPackData")
	p.buf.PutRaw(data)
}

// RawUnpackInt8 reads a signed byte from the unpack source.
func (p *Packer) RawUnpackInt8() int8 {
	p.mustMode(ModeIdle, "RawUnpackInt8")
	x, fault := p.src.Int8()
	p.noteFault(fault, "RawUnpackInt8")
	return x
}

// RawUnpackInt16 reads a little-endian i16 from the unpack source.
func (p *Packer) RawUnpackInt16() int16 {
	p.mustMode(ModeIdle, "RawUnpackInt16")
	x, fault := p.src.Int16()
	p.noteFault(fault, "RawUnpackInt16")
	return x
}

// RawUnpackInt32 reads a little-endian i32 from the unpack source.
func (p *Packer) RawUnpackInt32() int32 {
	p.mustMode(ModeIdle, "RawUnpackInt32")
	x, fault := p.src.Int32()
	p.noteFault(fault, "RawUnpackInt32")
	return x
}

// RawUnpackInt64 reads a little-endian i64 from the unpack source.
func (p *Packer) RawUnpackInt64() int64 {
	p.mustMode(ModeIdle, "RawUnpackInt64")
	x, fault := p.src.Int64()
	p.noteFault(fault, "RawUnpackInt64")
	return x
}

// RawUnpackUint8 reads a byte from the unpack source.
func (p *Packer) RawUnpackUint8() uint8 {
	p.mustMode(ModeIdle, "RawUnpackUint8")
	x, fault := p.src.Uint8()
	p.noteFault(fault, "RawUnpackUint8")
	return x
}

// RawUnpackUint16 reads a little-endian u16 from the unpack source.
func (p *Packer) RawUnpackUint16() uint16 {
	p.mustMode(ModeIdle, "RawUnpackUint16")
	x, fault := p.src.Uint16()
	p.noteFault(fault, "RawUnpackUint16")
	return x
}

// RawUnpackUint32 reads a little-endian u32 from the unpack source.
func (p *Packer) RawUnpackUint32() uint32 {
	p.mustMode(ModeIdle, "RawUnpackUint32")
	x, fault := p.src.Uint32()
	p.noteFault(fault, "RawUnpackUint32")
	return x
}

// RawUnpackUint64 reads a little-endian u64 from the unpack source.
func (p *Packer) RawUnpackUint64() uint64 {
	p.mustMode(ModeIdle, "RawUnpackUint64")
	x, fault := p.src.Uint64()
	p.noteFault(fault, "RawUnpackUint64")
	return x
}

// RawUnpackFloat64 reads an IEEE-754 f64 from the unpack source.
func (p *Packer) RawUnpackFloat64() float64 {
	p.mustMode(ModeIdle, "RawUnpackFloat64")
	x, fault := p.src.Float64()
	p.noteFault(fault, "RawUnpackFloat64")
	return x
}

// RawUnpackString reads a u16 length prefix and that many bytes as a
// string from the unpack source.
func (p *Packer) RawUnpackString() string {
	p.mustMode(ModeIdle, "RawUnpackString")
	s, fault := p.src.String()
	p.noteFault(fault, "RawUnpackString")
	return s
}

// RawUnpackBytes reads a u16 length prefix and that many bytes from
// the unpack source.
func (p *Packer) RawUnpackBytes() []byte {
	p.mustMode(ModeIdle, "RawUnpackBytes")
	data, fault := p.src.Bytes()
	p.noteFault(fault, "RawUnpackBytes")
	return data
}

// RawUnpackData reads exactly n bytes with no length prefix from the
// unpack source.
func (p *Packer) RawUnpackData(n int) []byte {
	p.mustMode(ModeIdle, "RawUnpackData")
	data, fault := p.src.Raw(n)
	p.noteFault(fault, "RawUnpackData")
	return data
}
