package packer

import (
	"github.com/fieldstream/netpack/schema"
	"github.com/fieldstream/netpack/wire"
)

// PackInt packs a signed integer into the current field and advances.
// Pack or Repack mode.
func (p *Packer) PackInt(v int64) {
	p.pack("PackInt", uint64(v), true, func(n schema.Node, b *wire.Buffer) wire.Fault {
		return n.PackInt(b, v)
	})
}

// PackUint packs an unsigned integer into the current field and
// advances. Pack or Repack mode.
func (p *Packer) PackUint(v uint64) {
	p.pack("PackUint", v, true, func(n schema.Node, b *wire.Buffer) wire.Fault {
		return n.PackUint(b, v)
	})
}

// PackFloat64 packs a float64 into the current field and advances.
// Pack or Repack mode.
func (p *Packer) PackFloat64(v float64) {
	p.pack("PackFloat64", 0, false, func(n schema.Node, b *wire.Buffer) wire.Fault {
		return n.PackFloat64(b, v)
	})
}

// PackString packs a length-prefixed string into the current field and
// advances. Pack or Repack mode.
func (p *Packer) PackString(s string) {
	p.pack("PackString", 0, false, func(n schema.Node, b *wire.Buffer) wire.Fault {
		return n.PackString(b, s)
	})
}

// PackBytes packs a length-prefixed blob into the current field and
// advances. Pack or Repack mode.
func (p *Packer) PackBytes(data []byte) {
	p.pack("PackBytes", 0, false, func(n schema.Node, b *wire.Buffer) wire.Fault {
		return n.PackBytes(b, data)
	})
}

// pack runs one scalar encode against the current field, folding the
// result into the session flags and the pending discriminant, then
// advances past the field whether or not the value was accepted.
func (p *Packer) pack(op string, key uint64, isKey bool, enc func(schema.Node, *wire.Buffer) wire.Fault) {
	p.mustPackMode(op)
	if p.field == nil {
		p.structureFault("%s with no current field", op)
		return
	}
	var fault wire.Fault
	if p.mode == ModeRepack {
		fault = p.repackScalar(enc)
	} else {
		fault = enc(p.field, &p.buf)
	}
	if fault == wire.FaultNone {
		if isKey {
			p.captureKey(key)
		}
	} else {
		p.noteFault(fault, op)
	}
	p.advance()
}

// repackScalar stages the new encoding in the scratch buffer and
// overwrites the field's existing bytes in place. A string or blob may
// only be repacked to a value of the same encoded length, since the
// image's layout must not shift.
func (p *Packer) repackScalar(enc func(schema.Node, *wire.Buffer) wire.Fault) wire.Fault {
	p.scratch.Reset()
	if fault := enc(p.field, &p.scratch); fault != wire.FaultNone {
		return fault
	}
	staged := p.scratch.Take()
	defer p.scratch.SetBytes(staged[:0])

	if k := p.field.Kind(); k == schema.KindString || k == schema.KindBlob {
		old, fault := p.buf.Uint16At(p.repackPos)
		if fault != wire.FaultNone {
			return fault
		}
		if int(old)+wire.LengthPrefixBytes != len(staged) {
			return wire.FaultMismatch
		}
	}
	if fault := p.buf.Overwrite(p.repackPos, staged); fault != wire.FaultNone {
		return fault
	}
	p.repackPos += len(staged)
	return wire.FaultNone
}

// UnpackInt unpacks the current integer field as a signed value and
// advances. Unpack mode.
func (p *Packer) UnpackInt() int64 {
	p.mustMode(ModeUnpack, "UnpackInt")
	if p.field == nil {
		p.structureFault("UnpackInt with no current field")
		return 0
	}
	x, fault := p.field.UnpackInt(&p.src)
	if fault == wire.FaultNone {
		p.captureKey(uint64(x))
	} else {
		p.noteFault(fault, "UnpackInt")
	}
	p.advance()
	return x
}

// UnpackUint unpacks the current integer field as an unsigned value
// and advances. Unpack mode.
func (p *Packer) UnpackUint() uint64 {
	p.mustMode(ModeUnpack, "UnpackUint")
	if p.field == nil {
		p.structureFault("UnpackUint with no current field")
		return 0
	}
	x, fault := p.field.UnpackUint(&p.src)
	if fault == wire.FaultNone {
		p.captureKey(x)
	} else {
		p.noteFault(fault, "UnpackUint")
	}
	p.advance()
	return x
}

// UnpackFloat64 unpacks the current float field and advances. Unpack
// mode.
func (p *Packer) UnpackFloat64() float64 {
	p.mustMode(ModeUnpack, "UnpackFloat64")
	if p.field == nil {
		p.structureFault("UnpackFloat64 with no current field")
		return 0
	}
	x, fault := p.field.UnpackFloat64(&p.src)
	if fault != wire.FaultNone {
		p.noteFault(fault, "UnpackFloat64")
	}
	p.advance()
	return x
}

// UnpackString unpacks the current string or blob field as a string
// and advances. Unpack mode.
func (p *Packer) UnpackString() string {
	p.mustMode(ModeUnpack, "UnpackString")
	if p.field == nil {
		p.structureFault("UnpackString with no current field")
		return ""
	}
	s, fault := p.field.UnpackString(&p.src)
	if fault != wire.FaultNone {
		p.noteFault(fault, "UnpackString")
	}
	p.advance()
	return s
}

// UnpackBytes unpacks the current blob or string field as raw bytes
// and advances. Unpack mode.
func (p *Packer) UnpackBytes() []byte {
	p.mustMode(ModeUnpack, "UnpackBytes")
	if p.field == nil {
		p.structureFault("UnpackBytes with no current field")
		return nil
	}
	data, fault := p.field.UnpackBytes(&p.src)
	if fault != wire.FaultNone {
		p.noteFault(fault, "UnpackBytes")
	}
	p.advance()
	return data
}

// Skip advances past the current field without supplying or decoding a
// value. In Unpack and Repack modes the field's existing bytes are
// consumed; in Pack mode there is nothing to emit, so skipping is a
// structural error.
func (p *Packer) Skip() {
	p.mustActive("Skip")
	if p.field == nil {
		p.structureFault("Skip with no current field")
		return
	}
	switch p.mode {
	case ModePack:
		p.structureFault("skip while packing field %q", p.field.Name())
		return
	case ModeUnpack:
		switch p.field.Kind() {
		case schema.KindString, schema.KindBlob:
			if _, fault := p.field.UnpackBytes(&p.src); fault != wire.FaultNone {
				p.noteFault(fault, "Skip")
			}
		default:
			n, fault := fixedWireSize(p.field.Kind())
			if fault != wire.FaultNone {
				p.noteFault(fault, "Skip")
			} else if fault := p.src.Skip(n); fault != wire.FaultNone {
				p.noteFault(fault, "Skip")
			}
		}
	case ModeRepack:
		switch p.field.Kind() {
		case schema.KindString, schema.KindBlob:
			length, fault := p.buf.Uint16At(p.repackPos)
			if fault != wire.FaultNone {
				p.noteFault(fault, "Skip")
			} else {
				p.repackPos += wire.LengthPrefixBytes + int(length)
			}
		default:
			n, fault := fixedWireSize(p.field.Kind())
			if fault != wire.FaultNone {
				p.noteFault(fault, "Skip")
			} else {
				p.repackPos += n
			}
		}
	}
	p.advance()
}

// fixedWireSize returns the encoded byte width of a fixed-size scalar
// kind.
func fixedWireSize(k schema.Kind) (int, wire.Fault) {
	switch k {
	case schema.KindInt8, schema.KindUint8:
		return 1, wire.FaultNone
	case schema.KindInt16, schema.KindUint16:
		return 2, wire.FaultNone
	case schema.KindInt32, schema.KindUint32:
		return 4, wire.FaultNone
	case schema.KindInt64, schema.KindUint64, schema.KindFloat64:
		return 8, wire.FaultNone
	default:
		return 0, wire.FaultMismatch
	}
}
