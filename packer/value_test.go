package packer

import (
	"reflect"
	"testing"

	"github.com/fieldstream/netpack/schema"
)

func avatarSchema() schema.Node {
	return schema.NewStruct("avatar",
		schema.NewScalar("id", schema.KindUint32),
		schema.NewScalar("name", schema.KindString),
		schema.NewScalar("pos", schema.KindFloat64),
		schema.NewPrefixedArray("tags", schema.NewScalar("tag", schema.KindString)),
	)
}

func TestPackValueRoundTrip(t *testing.T) {
	in := map[string]any{
		"id":   uint64(7),
		"name": "alice",
		"pos":  1.5,
		"tags": []any{"a", "bb"},
	}

	p := New()
	p.BeginPack(avatarSchema())
	p.PackValue(in)
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}

	p.SetUnpackData(p.Take())
	p.BeginUnpack(avatarSchema())
	got := p.UnpackValue()
	if err := p.EndUnpack(); err != nil {
		t.Fatalf("EndUnpack: %v", err)
	}

	want := map[string]any{
		"id":   uint64(7),
		"name": "alice",
		"pos":  1.5,
		"tags": []any{"a", "bb"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPackValueMissingKey(t *testing.T) {
	p := New()
	p.BeginPack(avatarSchema())
	p.PackValue(map[string]any{"id": 1})
	if !p.PackError() {
		t.Fatal("expected pack error for missing key")
	}
	_ = p.EndPack()
}

func TestPackValueWrongShape(t *testing.T) {
	p := New()
	p.BeginPack(avatarSchema())
	p.PackValue([]any{1, 2}) // struct level needs a map
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
	_ = p.EndPack()
}

func TestPackValueIntegralFloat(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("n", schema.KindUint16),
	)

	p := New()
	p.BeginPack(root)
	p.PackValue(map[string]any{"n": float64(300)})
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}
	if got := p.Bytes(); got[0] != 0x2C || got[1] != 0x01 {
		t.Fatalf("packed % X", got)
	}
}

func TestPackValueFractionalFloatIntoInt(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("n", schema.KindUint16),
	)

	p := New()
	p.BeginPack(root)
	p.PackValue(map[string]any{"n": 3.5})
	if !p.RangeError() {
		t.Fatal("expected range error")
	}
	_ = p.EndPack()
}

func TestPackValueSwitch(t *testing.T) {
	root := commandSchema()
	in := map[string]any{
		"op":   uint64(2),
		"seq":  uint64(4),
		"text": "go",
	}

	p := New()
	p.BeginPack(root)
	p.PackValue(in)
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}

	p.SetUnpackData(p.Take())
	p.BeginUnpack(root)
	got := p.UnpackValue()
	if err := p.EndUnpack(); err != nil {
		t.Fatalf("EndUnpack: %v", err)
	}

	want := map[string]any{
		"op":   uint64(2),
		"seq":  uint64(4),
		"text": "go",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestUnpackValueOpenSequenceRejected(t *testing.T) {
	p := New()
	p.SetUnpackData([]byte{0x01, 0x00, 0x05, 0x00, 0x00, 0x00})
	p.BeginUnpack(countedSchema())
	_ = p.UnpackValue()
	if !p.PackError() {
		t.Fatal("expected pack error for open sequence")
	}
	_ = p.EndUnpack()
}

func TestUnpackValueSignedTypes(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("i", schema.KindInt16),
		schema.NewScalar("u", schema.KindUint16),
		schema.NewScalar("b", schema.KindBlob),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackInt(-2)
	p.PackUint(2)
	p.PackBytes([]byte{9})
	p.Pop()
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}

	p.SetUnpackData(p.Take())
	p.BeginUnpack(root)
	got := p.UnpackValue()
	if err := p.EndUnpack(); err != nil {
		t.Fatalf("EndUnpack: %v", err)
	}

	m := got.(map[string]any)
	if _, ok := m["i"].(int64); !ok {
		t.Fatalf("i is %T, want int64", m["i"])
	}
	if _, ok := m["u"].(uint64); !ok {
		t.Fatalf("u is %T, want uint64", m["u"])
	}
	if _, ok := m["b"].([]byte); !ok {
		t.Fatalf("b is %T, want []byte", m["b"])
	}
}
