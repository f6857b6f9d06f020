package schema

// Array is a sequence of same-typed elements. Three layouts exist:
//
//   - fixed: the schema declares the element count, no prefix
//   - prefixed: count -1, a u16 byte-length prefix at the level
//     boundary tells unpack where the sequence ends
//   - open: count -1, no prefix; the count is carried by a sibling
//     field and the caller decides when to pop
type Array struct {
	composite
	name     string
	elem     Node
	count    int
	prefixed bool
}

// NewArray returns a fixed-count array node.
func NewArray(name string, elem Node, count int) *Array {
	if count < 0 {
		panic("schema: NewArray with negative count")
	}
	return &Array{name: name, elem: elem, count: count}
}

// NewPrefixedArray returns a variable-length array with a u16
// byte-length prefix.
func NewPrefixedArray(name string, elem Node) *Array {
	return &Array{name: name, elem: elem, count: -1, prefixed: true}
}

// NewOpenArray returns a variable-length array with no prefix.
func NewOpenArray(name string, elem Node) *Array {
	return &Array{name: name, elem: elem, count: -1}
}

func (a *Array) Name() string          { return a.name }
func (a *Array) Kind() Kind            { return KindArray }
func (a *Array) HasNestedFields() bool { return true }
func (a *Array) ChildCount() int       { return a.count }

// Elem returns the element node.
func (a *Array) Elem() Node { return a.elem }

func (a *Array) Child(index int) Node {
	if index < 0 {
		return nil
	}
	if a.count >= 0 && index >= a.count {
		return nil
	}
	return a.elem
}

func (a *Array) LengthBytes() int {
	if a.prefixed {
		return 2
	}
	return 0
}
