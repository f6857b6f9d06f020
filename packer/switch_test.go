package packer

import (
	"bytes"
	"testing"

	"github.com/fieldstream/netpack/schema"
)

func commandSchema() *schema.SwitchNode {
	return schema.NewSwitch("command",
		schema.NewScalar("op", schema.KindUint8),
		schema.NewScalar("seq", schema.KindUint16),
	).
		AddCase("move", 1,
			schema.NewScalar("x", schema.KindInt32),
			schema.NewScalar("y", schema.KindInt32),
		).
		AddCase("say", 2,
			schema.NewScalar("text", schema.KindString),
		)
}

func TestPackSwitchCase(t *testing.T) {
	root := commandSchema()

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackUint(1) // op selects "move"
	p.PackUint(9) // seq, common to all cases
	p.PackInt(-3)
	p.PackInt(4)
	p.Pop()
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}

	want := []byte{
		0x01,
		0x09, 0x00,
		0xFD, 0xFF, 0xFF, 0xFF,
		0x04, 0x00, 0x00, 0x00,
	}
	if got := p.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("packed % X, want % X", got, want)
	}
	if p.LastSwitch() != schema.Node(root) {
		t.Fatal("LastSwitch not recorded")
	}
}

func TestUnpackSwitchCase(t *testing.T) {
	root := commandSchema()
	data := []byte{
		0x02,
		0x07, 0x00,
		0x02, 0x00, 'h', 'i',
	}

	p := New()
	p.SetUnpackData(data)
	p.BeginUnpack(root)
	p.Push()
	op := p.UnpackUint()
	seq := p.UnpackUint()
	text := p.UnpackString()
	p.Pop()
	if err := p.EndUnpack(); err != nil {
		t.Fatalf("EndUnpack: %v", err)
	}

	if op != 2 || seq != 7 || text != "hi" {
		t.Fatalf("got op=%d seq=%d text=%q", op, seq, text)
	}
	if p.LastSwitch() != schema.Node(root) {
		t.Fatal("LastSwitch not recorded on unpack")
	}
}

func TestSwitchUnknownDiscriminant(t *testing.T) {
	root := commandSchema()

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackUint(3) // no such case
	p.PackUint(0)
	if !p.PackError() {
		t.Fatal("expected pack error on unmatched discriminant")
	}
	if p.CurrentField() != nil {
		t.Fatal("no field should follow a failed resolution")
	}
	p.Pop()
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error")
	}
}

func TestSwitchSignedDiscriminant(t *testing.T) {
	// Negative keys are matched by their two's complement bits.
	root := schema.NewSwitch("delta",
		schema.NewScalar("sign", schema.KindInt8),
	).AddCase("down", uint64(0xFFFFFFFFFFFFFFFF), // -1
		schema.NewScalar("amount", schema.KindUint8),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackInt(-1)
	p.PackUint(5)
	p.Pop()
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}
	if got := p.Bytes(); !bytes.Equal(got, []byte{0xFF, 0x05}) {
		t.Fatalf("packed % X", got)
	}
}

func TestSwitchCaseFieldIteration(t *testing.T) {
	// A generic driver can walk a union without knowing the case up
	// front: the field names arrive as resolution exposes them.
	root := commandSchema()
	data := []byte{0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}

	p := New()
	p.SetUnpackData(data)
	p.BeginUnpack(root)
	p.Push()
	var names []string
	for p.CurrentField() != nil {
		names = append(names, p.CurrentField().Name())
		p.UnpackInt()
	}
	p.Pop()
	if err := p.EndUnpack(); err != nil {
		t.Fatalf("EndUnpack: %v", err)
	}

	want := []string{"op", "seq", "x", "y"}
	if len(names) != len(want) {
		t.Fatalf("walked %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("walked %v, want %v", names, want)
		}
	}
}
