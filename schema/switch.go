package schema

// SwitchNode is a tagged union. Its base children are the key field
// followed by any fields common to all cases; the fields that follow
// depend on the key value packed or unpacked at the start of the
// level. SelectCase hands the engine a spliced node whose children
// repeat the base fields at the same indices, so traversal index
// counting continues across the case boundary.
type SwitchNode struct {
	composite
	name   string
	base   []Node
	cases  map[uint64]*spliced
	breaks []uint64 // insertion order, for introspection
}

// NewSwitch returns a union node with the given key field and any
// fields common to all cases. The key must be an integer scalar.
func NewSwitch(name string, key Node, common ...Node) *SwitchNode {
	if !key.Kind().IsInteger() {
		panic("schema: switch key must be an integer scalar")
	}
	base := append([]Node{key}, common...)
	return &SwitchNode{
		name:  name,
		base:  base,
		cases: make(map[uint64]*spliced),
	}
}

// AddCase registers the field list for one discriminant value. Signed
// key values are registered by their two's complement bits, matching
// how the engine captures them. Registering the same value twice is a
// schema-construction bug.
func (s *SwitchNode) AddCase(caseName string, value uint64, fields ...Node) *SwitchNode {
	if _, dup := s.cases[value]; dup {
		panic("schema: duplicate switch case for " + s.name)
	}
	children := make([]Node, 0, len(s.base)+len(fields))
	children = append(children, s.base...)
	children = append(children, fields...)
	s.cases[value] = &spliced{
		name:     s.name + "." + caseName,
		children: children,
	}
	s.breaks = append(s.breaks, value)
	return s
}

func (s *SwitchNode) Name() string          { return s.name }
func (s *SwitchNode) Kind() Kind            { return KindSwitch }
func (s *SwitchNode) HasNestedFields() bool { return true }
func (s *SwitchNode) ChildCount() int       { return len(s.base) }

func (s *SwitchNode) Child(index int) Node {
	if index < 0 || index >= len(s.base) {
		return nil
	}
	return s.base[index]
}

func (s *SwitchNode) Switch() Switch { return s }

// SelectCase returns the spliced field list for the matching case, or
// nil when no case matches.
func (s *SwitchNode) SelectCase(disc uint64) Node {
	c, ok := s.cases[disc]
	if !ok {
		return nil
	}
	return c
}

// CaseValues returns the registered discriminant values in insertion
// order. Diagnostics only.
func (s *SwitchNode) CaseValues() []uint64 {
	out := make([]uint64, len(s.breaks))
	copy(out, s.breaks)
	return out
}

// spliced is the stand-in parent installed after switch resolution.
type spliced struct {
	composite
	name     string
	children []Node
}

func (c *spliced) Name() string          { return c.name }
func (c *spliced) Kind() Kind            { return KindStruct }
func (c *spliced) HasNestedFields() bool { return true }
func (c *spliced) ChildCount() int       { return len(c.children) }

func (c *spliced) Child(index int) Node {
	if index < 0 || index >= len(c.children) {
		return nil
	}
	return c.children[index]
}
