package packer

import (
	"testing"

	"github.com/fieldstream/netpack/schema"
)

func TestPackRangeFaultConsumesNoBytes(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("small", schema.KindUint8).WithRange(0, 10),
		schema.NewScalar("after", schema.KindUint8),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackUint(11) // outside the declared range
	p.PackUint(2)
	p.Pop()
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.RangeError() || p.PackError() {
		t.Fatalf("flags: pack=%v range=%v", p.PackError(), p.RangeError())
	}
	// Only the second field was emitted.
	if got := p.Bytes(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("buffer = % X", got)
	}
}

func TestUnpackRangeFaultStillConsumes(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("small", schema.KindUint8).WithRange(0, 10),
		schema.NewScalar("after", schema.KindUint8),
	)

	p := New()
	p.SetUnpackData([]byte{0x0B, 0x02})
	p.BeginUnpack(root)
	p.Push()
	p.UnpackUint()
	after := p.UnpackUint()
	p.Pop()
	if err := p.EndUnpack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.RangeError() || p.PackError() {
		t.Fatalf("flags: pack=%v range=%v", p.PackError(), p.RangeError())
	}
	// Traversal stayed aligned past the bad value.
	if after != 2 {
		t.Fatalf("after = %d", after)
	}
}

func TestUnpackTruncatedSource(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("v", schema.KindUint32),
	)

	p := New()
	p.SetUnpackData([]byte{0x01, 0x02})
	p.BeginUnpack(root)
	p.Push()
	p.UnpackUint()
	p.Pop()
	if err := p.EndUnpack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.PackError() || p.RangeError() {
		t.Fatalf("flags: pack=%v range=%v", p.PackError(), p.RangeError())
	}
	// A failed read never moves the cursor.
	if p.UnpackPos() != 0 {
		t.Fatalf("pos = %d after truncated read", p.UnpackPos())
	}
}

func TestUnpackTruncatedStringBody(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("s", schema.KindString),
	)

	// Prefix claims 5 bytes, only 2 present.
	p := New()
	p.SetUnpackData([]byte{0x05, 0x00, 'h', 'i'})
	p.BeginUnpack(root)
	p.Push()
	p.UnpackString()
	p.Pop()
	if err := p.EndUnpack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
	if p.UnpackPos() != 0 {
		t.Fatalf("pos = %d, want rollback to 0", p.UnpackPos())
	}
}

func TestUnpackTruncatedPrefixEndsLevel(t *testing.T) {
	root := schema.NewStruct("msg",
		schema.NewPrefixedArray("body", schema.NewScalar("b", schema.KindUint8)),
	)

	// One byte where the u16 length prefix should be. The level must
	// start exhausted so a generic walk terminates.
	p := New()
	p.SetUnpackData([]byte{0x01})
	p.BeginUnpack(root)
	p.Push()
	p.Push()
	if p.CurrentField() != nil {
		t.Fatalf("field %q installed after unreadable prefix", p.CurrentField().Name())
	}
	var elems int
	for p.CurrentField() != nil {
		p.UnpackUint()
		if elems++; elems > 10 {
			t.Fatal("walk did not terminate")
		}
	}
	p.Pop()
	p.Pop()
	if err := p.EndUnpack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
}

func TestRepackTruncatedPrefixEndsLevel(t *testing.T) {
	root := schema.NewStruct("msg",
		schema.NewPrefixedArray("body", schema.NewScalar("b", schema.KindUint8)),
	)

	p := New()
	p.BeginRepack([]byte{0x01}, root)
	p.Push()
	p.Push()
	if p.CurrentField() != nil {
		t.Fatalf("field %q installed after unreadable prefix", p.CurrentField().Name())
	}
	p.Pop()
	p.Pop()
	if err := p.EndRepack(); err == nil {
		t.Fatal("expected session error")
	}
}

func TestTypeMismatchIsPackError(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("v", schema.KindUint8),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackString("nope")
	p.Pop()
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.PackError() || p.RangeError() {
		t.Fatalf("flags: pack=%v range=%v", p.PackError(), p.RangeError())
	}
}

func TestFlagsAreMonotonic(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("a", schema.KindUint8).WithRange(0, 1),
		schema.NewScalar("b", schema.KindUint8),
		schema.NewScalar("c", schema.KindUint8),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackUint(9)    // range fault
	p.PackString("") // mismatch, pack fault
	p.PackUint(1)    // fine, flags must stay set
	p.Pop()
	_ = p.EndPack()
	if !p.RangeError() || !p.PackError() {
		t.Fatalf("flags: pack=%v range=%v", p.PackError(), p.RangeError())
	}
}

func TestPrefixOverflowIsRangeError(t *testing.T) {
	root := schema.NewStruct("rec",
		schema.NewScalar("s", schema.KindBlob),
	)

	p := New()
	p.BeginPack(root)
	p.Push()
	p.PackBytes(make([]byte, 0x10000)) // one past the u16 limit
	p.Pop()
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error")
	}
	if !p.RangeError() {
		t.Fatal("expected range error")
	}
}
