package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fieldstream/netpack/errors"
)

// fieldSpec is the YAML shape of one field declaration.
type fieldSpec struct {
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type"`
	Fields   []fieldSpec `yaml:"fields"`   // struct
	Of       *elemSpec   `yaml:"of"`       // array element
	Count    *int        `yaml:"count"`    // fixed array count
	Prefixed *bool       `yaml:"prefixed"` // variable array prefix, default true
	Key      *fieldSpec  `yaml:"key"`      // switch key
	Common   []fieldSpec `yaml:"common"`   // switch common fields
	Cases    []caseSpec  `yaml:"cases"`    // switch cases
	Min      *int64      `yaml:"min"`      // integer range
	Max      *int64      `yaml:"max"`
	FMin     *float64    `yaml:"fmin"` // float range
	FMax     *float64    `yaml:"fmax"`
}

type caseSpec struct {
	Name   string      `yaml:"name"`
	When   int64       `yaml:"when"`
	Fields []fieldSpec `yaml:"fields"`
}

// elemSpec allows the array element to be written either as a bare
// scalar type name ("of: int32") or as a full field mapping.
type elemSpec struct {
	fieldSpec
}

func (e *elemSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.Type)
	}
	type bare fieldSpec
	return node.Decode((*bare)(&e.fieldSpec))
}

var scalarKinds = map[string]Kind{
	"int8":    KindInt8,
	"int16":   KindInt16,
	"int32":   KindInt32,
	"int64":   KindInt64,
	"uint8":   KindUint8,
	"uint16":  KindUint16,
	"uint32":  KindUint32,
	"uint64":  KindUint64,
	"float64": KindFloat64,
	"string":  KindString,
	"blob":    KindBlob,
}

// Load builds a schema tree from a YAML document. The returned tree is
// immutable and safe to share across packer sessions.
func Load(data []byte) (Node, error) {
	var spec fieldSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidSchema, err, "parse schema document")
	}
	return buildNode(&spec, nil)
}

func buildNode(spec *fieldSpec, path []string) (Node, error) {
	path = append(path, spec.Name)

	if kind, ok := scalarKinds[spec.Type]; ok {
		return buildScalar(spec, kind, path)
	}

	switch spec.Type {
	case "struct":
		return buildStruct(spec, path)
	case "array":
		return buildArray(spec, path)
	case "switch":
		return buildSwitch(spec, path)
	case "":
		return nil, errors.InvalidSchema(path, "missing type")
	default:
		return nil, errors.InvalidSchema(path, "unknown type %q", spec.Type)
	}
}

func buildScalar(spec *fieldSpec, kind Kind, path []string) (Node, error) {
	s := NewScalar(spec.Name, kind)
	switch {
	case spec.Min != nil || spec.Max != nil:
		if !kind.IsInteger() {
			return nil, errors.InvalidSchema(path, "min/max on non-integer type %q", spec.Type)
		}
		if spec.Min == nil || spec.Max == nil {
			return nil, errors.InvalidSchema(path, "min and max must both be set")
		}
		if *spec.Min > *spec.Max {
			return nil, errors.InvalidSchema(path, "min %d greater than max %d", *spec.Min, *spec.Max)
		}
		if !kind.IsSigned() && *spec.Min < 0 {
			return nil, errors.InvalidSchema(path, "negative min on unsigned type %q", spec.Type)
		}
		s.WithRange(*spec.Min, *spec.Max)
	case spec.FMin != nil || spec.FMax != nil:
		if kind != KindFloat64 {
			return nil, errors.InvalidSchema(path, "fmin/fmax on non-float type %q", spec.Type)
		}
		if spec.FMin == nil || spec.FMax == nil {
			return nil, errors.InvalidSchema(path, "fmin and fmax must both be set")
		}
		s.WithFloatRange(*spec.FMin, *spec.FMax)
	}
	return s, nil
}

func buildStruct(spec *fieldSpec, path []string) (Node, error) {
	if len(spec.Fields) == 0 {
		return nil, errors.InvalidSchema(path, "struct with no fields")
	}
	fields := make([]Node, 0, len(spec.Fields))
	for i := range spec.Fields {
		f, err := buildNode(&spec.Fields[i], path)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return NewStruct(spec.Name, fields...), nil
}

func buildArray(spec *fieldSpec, path []string) (Node, error) {
	if spec.Of == nil {
		return nil, errors.InvalidSchema(path, "array with no element type")
	}
	elemSpec := spec.Of.fieldSpec
	if elemSpec.Name == "" {
		elemSpec.Name = spec.Name + "[]"
	}
	elem, err := buildNode(&elemSpec, path)
	if err != nil {
		return nil, err
	}
	if spec.Count != nil {
		if *spec.Count < 0 {
			return nil, errors.InvalidSchema(path, "negative array count %d", *spec.Count)
		}
		if spec.Prefixed != nil && *spec.Prefixed {
			return nil, errors.InvalidSchema(path, "fixed-count array cannot be prefixed")
		}
		return NewArray(spec.Name, elem, *spec.Count), nil
	}
	if spec.Prefixed != nil && !*spec.Prefixed {
		return NewOpenArray(spec.Name, elem), nil
	}
	return NewPrefixedArray(spec.Name, elem), nil
}

func buildSwitch(spec *fieldSpec, path []string) (Node, error) {
	if spec.Key == nil {
		return nil, errors.InvalidSchema(path, "switch with no key")
	}
	if len(spec.Cases) == 0 {
		return nil, errors.InvalidSchema(path, "switch with no cases")
	}
	keyKind, ok := scalarKinds[spec.Key.Type]
	if !ok || !keyKind.IsInteger() {
		return nil, errors.InvalidSchema(path, "switch key must be an integer scalar, got %q", spec.Key.Type)
	}
	key, err := buildNode(spec.Key, path)
	if err != nil {
		return nil, err
	}
	common := make([]Node, 0, len(spec.Common))
	for i := range spec.Common {
		f, err := buildNode(&spec.Common[i], path)
		if err != nil {
			return nil, err
		}
		common = append(common, f)
	}
	sw := NewSwitch(spec.Name, key, common...)
	seen := make(map[int64]bool, len(spec.Cases))
	for i := range spec.Cases {
		c := &spec.Cases[i]
		if seen[c.When] {
			return nil, errors.InvalidSchema(path, "duplicate case for value %d", c.When)
		}
		seen[c.When] = true
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case%d", c.When)
		}
		fields := make([]Node, 0, len(c.Fields))
		casePath := append(path, name)
		for j := range c.Fields {
			f, err := buildNode(&c.Fields[j], casePath)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		sw.AddCase(name, uint64(c.When), fields...)
	}
	return sw, nil
}
