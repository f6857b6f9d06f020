package wire

import (
	"bytes"
	"testing"
)

func TestViewPrimitives(t *testing.T) {
	data := []byte{
		0x2A,
		0x02, 0x01,
		0xF9, 0xFF, 0xFF, 0xFF,
		0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
	}
	v := NewView(data)

	u8, f := v.Uint8()
	if f != FaultNone || u8 != 0x2A {
		t.Errorf("Uint8: got %d fault %v", u8, f)
	}
	u16, f := v.Uint16()
	if f != FaultNone || u16 != 0x0102 {
		t.Errorf("Uint16: got %d fault %v", u16, f)
	}
	i32, f := v.Int32()
	if f != FaultNone || i32 != -7 {
		t.Errorf("Int32: got %d fault %v", i32, f)
	}
	u64, f := v.Uint64()
	if f != FaultNone || u64 != 0x1122334455667788 {
		t.Errorf("Uint64: got %#x fault %v", u64, f)
	}
	if v.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", v.Remaining())
	}
}

func TestViewTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(v *View) Fault
	}{
		{"uint16 short", []byte{0x01}, func(v *View) Fault { _, f := v.Uint16(); return f }},
		{"uint32 short", []byte{1, 2, 3}, func(v *View) Fault { _, f := v.Uint32(); return f }},
		{"uint64 short", []byte{1, 2, 3, 4, 5, 6, 7}, func(v *View) Fault { _, f := v.Uint64(); return f }},
		{"empty uint8", nil, func(v *View) Fault { _, f := v.Uint8(); return f }},
		{"string no prefix", []byte{0x05}, func(v *View) Fault { _, f := v.String(); return f }},
		{"string short body", []byte{0x05, 0x00, 'a', 'b'}, func(v *View) Fault { _, f := v.String(); return f }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.data)
			if f := tt.read(&v); f != FaultTruncated {
				t.Errorf("got fault %v, want %v", f, FaultTruncated)
			}
		})
	}
}

func TestViewFailedReadKeepsCursor(t *testing.T) {
	v := NewView([]byte{0x01, 0x02})
	if _, f := v.Uint32(); f != FaultTruncated {
		t.Fatalf("Uint32: got fault %v", f)
	}
	if v.Pos() != 0 {
		t.Errorf("cursor moved on failed read: pos %d", v.Pos())
	}
	// A shorter read still works afterwards.
	x, f := v.Uint16()
	if f != FaultNone || x != 0x0201 {
		t.Errorf("Uint16 after failure: got %d fault %v", x, f)
	}
}

func TestViewStringAndBytes(t *testing.T) {
	data := []byte{0x03, 0x00, 'a', 'b', 'c', 0x02, 0x00, 0xDE, 0xAD}
	v := NewView(data)
	s, f := v.String()
	if f != FaultNone || s != "abc" {
		t.Errorf("String: got %q fault %v", s, f)
	}
	blob, f := v.Bytes()
	if f != FaultNone || !bytes.Equal(blob, []byte{0xDE, 0xAD}) {
		t.Errorf("Bytes: got % x fault %v", blob, f)
	}
}

func TestViewBytesAreCopies(t *testing.T) {
	data := []byte{0x01, 0x00, 0x42}
	v := NewView(data)
	blob, f := v.Bytes()
	if f != FaultNone {
		t.Fatalf("Bytes: fault %v", f)
	}
	blob[0] = 0
	if data[2] != 0x42 {
		t.Error("Bytes returned an aliased slice")
	}
}

func TestViewSkip(t *testing.T) {
	v := NewView([]byte{1, 2, 3})
	if f := v.Skip(2); f != FaultNone {
		t.Fatalf("Skip: fault %v", f)
	}
	if v.Pos() != 2 {
		t.Errorf("Pos after Skip: got %d, want 2", v.Pos())
	}
	if f := v.Skip(2); f != FaultTruncated {
		t.Errorf("Skip past end: got fault %v, want %v", f, FaultTruncated)
	}
}
