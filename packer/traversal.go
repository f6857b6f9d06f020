package packer

import (
	"go.uber.org/zap"

	"github.com/fieldstream/netpack/schema"
	"github.com/fieldstream/netpack/wire"
)

// Push descends into the current field's nested fields. Legal only
// when the current field has nested fields; misuse sets the pack error
// flag and leaves the traversal where it was.
func (p *Packer) Push() {
	p.mustActive("Push")
	if p.field == nil {
		p.structureFault("push with no current field")
		return
	}
	if !p.field.HasNestedFields() {
		p.structureFault("push on %s field %q", p.field.Kind(), p.field.Name())
		return
	}

	f := p.stack.push()
	f.parent = p.parent
	f.fieldIndex = p.fieldIndex
	f.numNested = p.numNested
	f.pushMarker = p.pushMarker
	f.popMarker = p.popMarker

	p.parent = p.field
	p.field = nil
	p.fieldIndex = 0
	p.numNested = p.parent.ChildCount()
	p.pushMarker = noMarker
	p.popMarker = 0

	if p.numNested < 0 && p.parent.LengthBytes() > 0 {
		if !p.enterPrefixedLevel() {
			// Unreadable prefix: the level starts exhausted, so a
			// generic driver's walk terminates and Pop is the only
			// way out.
			return
		}
	}

	switch {
	case p.numNested == 0:
		// empty level, pop is next
	case p.levelEnded():
		// empty prefixed sequence
	default:
		p.field = p.parent.Child(0)
	}
}

// enterPrefixedLevel handles the byte-length prefix of a
// variable-length sequence at entry: packing reserves the slot,
// unpacking and repacking read it to learn where the level must end.
// Returns false when the prefix could not be read.
func (p *Packer) enterPrefixedLevel() bool {
	switch p.mode {
	case ModePack:
		p.pushMarker = p.buf.ReserveLength()
	case ModeUnpack:
		n, fault := p.src.Uint16()
		if fault != wire.FaultNone {
			p.noteFault(fault, "Push")
			return false
		}
		end := p.src.Pos() + int(n)
		if end > p.src.Len() {
			p.structureFault("length prefix %d runs past source end", n)
			end = p.src.Len()
		}
		p.popMarker = end
	case ModeRepack:
		n, fault := p.buf.Uint16At(p.repackPos)
		if fault != wire.FaultNone {
			p.noteFault(fault, "Push")
			return false
		}
		p.repackPos += wire.LengthPrefixBytes
		p.popMarker = p.repackPos + int(n)
	}
	return true
}

// levelEnded reports whether a variable-length level has hit its pop
// marker. Levels without a marker never end on their own.
func (p *Packer) levelEnded() bool {
	if p.popMarker == 0 {
		return false
	}
	switch p.mode {
	case ModeUnpack:
		return p.src.Pos() >= p.popMarker
	case ModeRepack:
		return p.repackPos >= p.popMarker
	default:
		return false
	}
}

// Pop ascends to the enclosing level. Popping while fields with a
// known count remain is a structural error; a variable-length level
// may be popped at any element boundary.
func (p *Packer) Pop() {
	p.mustActive("Pop")
	if p.parent == nil || p.stack.Depth() == 0 {
		p.structureFault("pop at top level")
		return
	}
	if p.field != nil && p.numNested >= 0 {
		p.structureFault("pop with %d of %d fields pending", p.numNested-p.fieldIndex, p.numNested)
	}

	switch p.mode {
	case ModePack:
		if p.pushMarker != noMarker {
			if fault := p.buf.PatchLength(p.pushMarker); fault != wire.FaultNone {
				p.noteFault(fault, "Pop")
			}
		}
	case ModeUnpack:
		if p.popMarker != 0 && p.src.Pos() != p.popMarker {
			p.structureFault("sequence ended at %d, marker at %d", p.src.Pos(), p.popMarker)
		}
	case ModeRepack:
		if p.popMarker != 0 && p.repackPos != p.popMarker {
			p.structureFault("sequence ended at %d, marker at %d", p.repackPos, p.popMarker)
		}
	}

	f := p.stack.pop()
	p.parent = f.parent
	p.fieldIndex = f.fieldIndex
	p.numNested = f.numNested
	p.pushMarker = f.pushMarker
	p.popMarker = f.popMarker

	// The popped structure was one field of the restored level.
	p.advance()
}

// advance moves to the next sibling, terminating the level when the
// child count is exhausted or a variable-length level hits its marker.
// Exhausting a switch's base fields triggers union resolution, since a
// switch's remaining fields are only knowable once its discriminant
// has been packed or unpacked.
func (p *Packer) advance() {
	if p.parent == nil {
		p.field = nil
		return
	}
	p.fieldIndex++
	switch {
	case p.numNested >= 0 && p.fieldIndex >= p.numNested:
		p.field = nil
		if sw := p.parent.Switch(); sw != nil {
			p.resolveSwitch(sw)
		}
	case p.levelEnded():
		p.field = nil
	default:
		p.field = p.parent.Child(p.fieldIndex)
		if p.field == nil {
			p.structureFault("schema has no child %d of %q", p.fieldIndex, p.parent.Name())
		}
	}
}

// resolveSwitch splices the matched case's field list in place of the
// switch's children. Index counting continues across the splice; the
// schema tree itself is never mutated.
func (p *Packer) resolveSwitch(sw schema.Switch) {
	c := sw.SelectCase(p.switchKey)
	if c == nil {
		p.structureFault("no case matches discriminant %d in %q", p.switchKey, p.parent.Name())
		return
	}
	p.lastSwitch = p.parent
	p.parent = c
	p.numNested = c.ChildCount()
	if p.fieldIndex < p.numNested {
		p.field = c.Child(p.fieldIndex)
	}
	Logger().Debug("switch resolved",
		zap.String("switch", p.lastSwitch.Name()),
		zap.Uint64("discriminant", p.switchKey),
		zap.String("case", c.Name()))
}

// captureKey records a just-coded scalar as the pending discriminant
// when the current level belongs to an unresolved switch. Signed
// values are captured by their two's complement bits.
func (p *Packer) captureKey(bits uint64) {
	if p.parent != nil && p.fieldIndex == 0 && p.parent.Switch() != nil {
		p.switchKey = bits
	}
}

func (p *Packer) mustActive(op string) {
	if p.mode == ModeIdle {
		panic("packer: " + op + " called in idle mode")
	}
}
