package packer

import (
	"testing"

	"github.com/fieldstream/netpack/schema"
)

func pairSchema() schema.Node {
	return schema.NewStruct("pair",
		schema.NewScalar("x", schema.KindUint8),
		schema.NewScalar("y", schema.KindUint8),
	)
}

func TestPushOnScalarField(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Push()
	p.Push() // x is a scalar, not pushable
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
	// the walk is still where it was
	if got := p.CurrentField().Name(); got != "x" {
		t.Fatalf("current field = %q, want x", got)
	}
}

func TestEarlyPopOnFixedLevel(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Push()
	p.PackUint(1)
	p.Pop() // y is still pending
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error")
	}
}

func TestPopAtTopLevel(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Pop()
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
	_ = p.EndPack()
}

func TestPackPastEndOfLevel(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Push()
	p.PackUint(1)
	p.PackUint(2)
	p.PackUint(3) // level exhausted
	if !p.PackError() {
		t.Fatal("expected pack error")
	}
}

func TestEndWithUnmatchedPush(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Push()
	p.PackUint(1)
	p.PackUint(2)
	if err := p.EndPack(); err == nil {
		t.Fatal("expected session error for unmatched push")
	}
	if p.Mode() != ModeIdle {
		t.Fatalf("mode = %v after EndPack", p.Mode())
	}
}

func TestErrorFlagsResetPerSession(t *testing.T) {
	p := New()
	p.BeginPack(pairSchema())
	p.Pop()
	_ = p.EndPack()
	if !p.HadError() {
		t.Fatal("expected error in first session")
	}

	p.ClearData()
	p.BeginPack(pairSchema())
	if p.HadError() {
		t.Fatal("flags leaked into new session")
	}
	p.Push()
	p.PackUint(1)
	p.PackUint(2)
	p.Pop()
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}
}

func TestWrongModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	p := New()
	p.PackUint(1) // idle mode
}

func TestFrameAllocationsBounded(t *testing.T) {
	root := schema.NewStruct("outer",
		schema.NewStruct("inner",
			schema.NewScalar("v", schema.KindUint8),
		),
	)

	p := New()
	for i := 0; i < 100; i++ {
		p.ClearData()
		p.BeginPack(root)
		p.Push()
		p.Push()
		p.PackUint(uint64(i % 256))
		p.Pop()
		p.Pop()
		if err := p.EndPack(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
	if got := p.FrameAllocations(); got != 2 {
		t.Fatalf("frame allocations = %d, want 2", got)
	}
}

func TestCurrentParentTracksLevel(t *testing.T) {
	root := pairSchema()
	p := New()
	p.BeginPack(root)
	if p.CurrentParent() != nil {
		t.Fatal("parent set before first push")
	}
	if p.CurrentField() != root {
		t.Fatal("current field is not the root")
	}
	p.Push()
	if got := p.CurrentParent().Name(); got != "pair" {
		t.Fatalf("parent = %q", got)
	}
	if p.Depth() != 1 {
		t.Fatalf("depth = %d", p.Depth())
	}
	p.PackUint(1)
	p.PackUint(2)
	p.Pop()
	if p.Depth() != 0 {
		t.Fatalf("depth = %d after pop", p.Depth())
	}
	if err := p.EndPack(); err != nil {
		t.Fatalf("EndPack: %v", err)
	}
}
