package packer

import (
	"github.com/fieldstream/netpack/schema"
)

// frame captures the traversal state of the enclosing level so Pop can
// restore the parent's walk exactly where Push left it.
type frame struct {
	parent     schema.Node
	fieldIndex int
	numNested  int
	pushMarker int
	popMarker  int
}

// framePool is an arena of traversal frames indexed by nesting depth.
// Push reuses the frame at the current depth or grows the arena; Pop
// just lowers the depth index, so N nested push/pop cycles allocate at
// most max-simultaneous-depth frames. The pool belongs to one Packer;
// nothing is shared across instances, so no locking is needed.
type framePool struct {
	arena  []frame
	depth  int
	allocs int
}

func (s *framePool) push() *frame {
	if s.depth == len(s.arena) {
		s.arena = append(s.arena, frame{})
		s.allocs++
	}
	f := &s.arena[s.depth]
	s.depth++
	return f
}

// pop returns the most recent frame. The caller must have checked
// Depth; popping an empty pool is a bug in the engine, not in user
// data.
func (s *framePool) pop() *frame {
	s.depth--
	return &s.arena[s.depth]
}

func (s *framePool) reset() {
	s.depth = 0
}

// Depth returns the number of live frames.
func (s *framePool) Depth() int {
	return s.depth
}

// Allocations returns how many frames have ever been allocated. The
// counter is a pool field rather than a process-wide global so
// independent engines and tests do not interfere.
func (s *framePool) Allocations() int {
	return s.allocs
}
