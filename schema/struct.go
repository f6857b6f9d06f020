package schema

// Struct is a fixed sequence of named fields.
type Struct struct {
	composite
	name   string
	fields []Node
}

// NewStruct returns a struct node with the given fields in wire order.
func NewStruct(name string, fields ...Node) *Struct {
	return &Struct{name: name, fields: fields}
}

func (s *Struct) Name() string          { return s.name }
func (s *Struct) Kind() Kind            { return KindStruct }
func (s *Struct) HasNestedFields() bool { return true }
func (s *Struct) ChildCount() int       { return len(s.fields) }

func (s *Struct) Child(index int) Node {
	if index < 0 || index >= len(s.fields) {
		return nil
	}
	return s.fields[index]
}
