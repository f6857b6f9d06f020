package transcode

import (
	"github.com/fieldstream/netpack/errors"
	"github.com/fieldstream/netpack/packer"
	"github.com/fieldstream/netpack/schema"
)

// packDoc runs one pack session over a decoded document value.
func packDoc(root schema.Node, v any) ([]byte, error) {
	p := packer.New()
	p.BeginPack(root)
	p.PackValue(v)
	if err := p.EndPack(); err != nil {
		return nil, err
	}
	return p.Take(), nil
}

// unpackDoc runs one unpack session and returns the generic value
// tree. Trailing bytes after the root value are tolerated, matching
// the engine's contract.
func unpackDoc(root schema.Node, data []byte) (any, error) {
	if field := openSequence(root); field != "" {
		return nil, errors.Unsupported(errors.PhaseTranscode,
			"schema has unprefixed variable-length sequence "+field)
	}
	p := packer.New()
	p.SetUnpackData(data)
	p.BeginUnpack(root)
	v := p.UnpackValue()
	if err := p.EndUnpack(); err != nil {
		return nil, err
	}
	return v, nil
}

// openSequence returns the name of the first unprefixed
// variable-length node reachable through fixed children, or "" when
// none exists. Union case fields are not enumerable through the node
// interface; an open sequence hidden behind a case still fails at
// unpack time with a structure error.
func openSequence(n schema.Node) string {
	if n.ChildCount() < 0 {
		if n.LengthBytes() == 0 {
			return n.Name()
		}
		// prefixed: one representative element
		if c := n.Child(0); c != nil {
			return openSequence(c)
		}
		return ""
	}
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil {
			if name := openSequence(c); name != "" {
				return name
			}
		}
	}
	return ""
}
