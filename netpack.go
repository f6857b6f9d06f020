package netpack

import (
	"github.com/fieldstream/netpack/packer"
	"github.com/fieldstream/netpack/schema"
)

// Packer is the stateful pack/unpack engine. See the packer package.
type Packer = packer.Packer

// Mode is the engine's operating mode.
type Mode = packer.Mode

const (
	ModeIdle   = packer.ModeIdle
	ModePack   = packer.ModePack
	ModeRepack = packer.ModeRepack
	ModeUnpack = packer.ModeUnpack
)

// Node is the schema-node capability contract consumed by the engine.
type Node = schema.Node

// Switch is the union-resolution capability of a discriminator node.
type Switch = schema.Switch

// Kind is the wire shape of a schema node.
type Kind = schema.Kind

// New returns an idle Packer with empty buffers.
func New() *Packer {
	return packer.New()
}

// LoadSchema builds a schema tree from a YAML document.
func LoadSchema(data []byte) (Node, error) {
	return schema.Load(data)
}
