package packer

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/fieldstream/netpack/schema"
	"github.com/fieldstream/netpack/wire"
)

// PackValue packs an arbitrary Go value into the current field,
// recursing through maps and slices for nested levels. Scalars follow
// the same conversion rules as the typed Pack calls; a map drives a
// struct or union level by field name, a slice drives a sequence
// element by element. Values of an unsupported shape set the pack
// error flag and the field is passed over.
func (p *Packer) PackValue(v any) {
	p.mustPackMode("PackValue")
	if p.field == nil {
		p.structureFault("PackValue with no current field")
		return
	}
	if p.field.HasNestedFields() {
		p.packComposite(v)
		return
	}
	switch x := v.(type) {
	case int:
		p.PackInt(int64(x))
	case int8:
		p.PackInt(int64(x))
	case int16:
		p.PackInt(int64(x))
	case int32:
		p.PackInt(int64(x))
	case int64:
		p.PackInt(x)
	case uint:
		p.PackUint(uint64(x))
	case uint8:
		p.PackUint(uint64(x))
	case uint16:
		p.PackUint(uint64(x))
	case uint32:
		p.PackUint(uint64(x))
	case uint64:
		p.PackUint(x)
	case float32:
		p.packFloatValue(float64(x))
	case float64:
		p.packFloatValue(x)
	case json.Number:
		p.packNumber(x)
	case bool:
		if x {
			p.PackUint(1)
		} else {
			p.PackUint(0)
		}
	case string:
		p.PackString(x)
	case []byte:
		p.PackBytes(x)
	default:
		p.structureFault("cannot pack %T into %s field %q", v, p.field.Kind(), p.field.Name())
		p.advance()
	}
}

// packFloatValue lets integral floats satisfy integer fields, which is
// how numbers arrive from generic JSON decoding. A fractional value
// against an integer field is a range fault.
func (p *Packer) packFloatValue(x float64) {
	if p.field.Kind().IsInteger() {
		if x != math.Trunc(x) {
			p.noteFault(wire.FaultRange, "PackValue")
			p.advance()
			return
		}
		if x < 0 || p.field.Kind().IsSigned() {
			p.PackInt(int64(x))
		} else {
			p.PackUint(uint64(x))
		}
		return
	}
	p.PackFloat64(x)
}

// packNumber packs a JSON number token, preferring the exact integer
// reading. A token that parses as neither integer nor float is a parse
// fault.
func (p *Packer) packNumber(x json.Number) {
	if i, err := x.Int64(); err == nil {
		p.PackInt(i)
		return
	}
	if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
		p.PackUint(u)
		return
	}
	f, err := x.Float64()
	if err != nil {
		p.parseErr = true
		p.advance()
		return
	}
	p.packFloatValue(f)
}

func (p *Packer) packComposite(v any) {
	switch x := v.(type) {
	case map[string]any:
		p.Push()
		for p.field != nil && !p.packErr {
			name := p.field.Name()
			val, ok := x[name]
			if !ok {
				p.structureFault("value for %q missing key %q", p.parent.Name(), name)
				break
			}
			p.PackValue(val)
		}
		p.Pop()
	case []any:
		p.Push()
		for _, e := range x {
			if p.packErr {
				break
			}
			if p.field == nil {
				p.structureFault("too many elements for %q", p.parent.Name())
				break
			}
			p.PackValue(e)
		}
		p.Pop()
	default:
		p.structureFault("cannot pack %T into %s field %q", v, p.field.Kind(), p.field.Name())
		p.advance()
	}
}

// UnpackValue unpacks the current field into a generic Go value and
// advances: int64 for signed fields, uint64 for unsigned, float64,
// string, []byte, map[string]any for struct and union levels, []any
// for sequences. An unprefixed variable-length sequence cannot be
// unpacked generically, since only the caller knows where it ends.
func (p *Packer) UnpackValue() any {
	p.mustMode(ModeUnpack, "UnpackValue")
	if p.field == nil {
		p.structureFault("UnpackValue with no current field")
		return nil
	}
	if p.field.HasNestedFields() {
		return p.unpackComposite()
	}
	switch k := p.field.Kind(); {
	case k.IsSigned():
		return p.UnpackInt()
	case k.IsInteger():
		return p.UnpackUint()
	case k == schema.KindFloat64:
		return p.UnpackFloat64()
	case k == schema.KindString:
		return p.UnpackString()
	default:
		return p.UnpackBytes()
	}
}

func (p *Packer) unpackComposite() any {
	f := p.field
	if f.ChildCount() < 0 && f.LengthBytes() == 0 {
		p.structureFault("cannot infer length of open sequence %q", f.Name())
		p.advance()
		return nil
	}
	if f.Kind() == schema.KindArray {
		p.Push()
		out := []any{}
		for p.field != nil && !p.packErr {
			out = append(out, p.UnpackValue())
		}
		p.Pop()
		return out
	}
	p.Push()
	out := make(map[string]any)
	for p.field != nil && !p.packErr {
		name := p.field.Name()
		out[name] = p.UnpackValue()
	}
	p.Pop()
	return out
}

