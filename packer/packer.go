package packer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fieldstream/netpack/errors"
	"github.com/fieldstream/netpack/schema"
	"github.com/fieldstream/netpack/wire"
)

// Mode is the engine's current operating mode. Operations are legal
// only in their matching mode; mismatched use is a programming
// contract violation and panics.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModePack
	ModeRepack
	ModeUnpack
)

var modeNames = [...]string{
	ModeIdle:   "idle",
	ModePack:   "pack",
	ModeRepack: "repack",
	ModeUnpack: "unpack",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// noMarker is the pushMarker value when the current level has no
// reserved length slot. 0 is a valid buffer offset, so the sentinel
// must be negative.
const noMarker = -1

// Packer is the stateful pack/unpack engine. It is mutable, sequential
// state for one logical session at a time; callers needing parallelism
// construct independent Packers.
type Packer struct {
	mode Mode

	buf     wire.Buffer // pack output; repack target
	scratch wire.Buffer // repack staging

	src      wire.View // unpack source
	srcSet   bool
	srcOwned bool

	repackPos int // cursor over buf during repack

	parent     schema.Node // owner of the fields being traversed
	field      schema.Node // next field to pack/unpack, nil when exhausted
	fieldIndex int
	numNested  int // child count of parent, -1 variable
	pushMarker int // reserved length-slot offset, noMarker when absent
	popMarker  int // absolute end offset of a variable level, 0 when absent

	lastSwitch schema.Node
	switchKey  uint64

	stack framePool

	packErr  bool
	rangeErr bool
	parseErr bool
}

// New returns an idle Packer with empty buffers.
func New() *Packer {
	return &Packer{pushMarker: noMarker}
}

// Mode returns the current operating mode.
func (p *Packer) Mode() Mode {
	return p.mode
}

// HadError reports whether any error flag is set in this session.
func (p *Packer) HadError() bool {
	return p.packErr || p.rangeErr || p.parseErr
}

// PackError reports a structural or truncation fault.
func (p *Packer) PackError() bool { return p.packErr }

// RangeError reports a value-domain fault.
func (p *Packer) RangeError() bool { return p.rangeErr }

// ParseError reports a textual-parse fault.
func (p *Packer) ParseError() bool { return p.parseErr }

// CurrentField returns the schema node about to be packed or unpacked,
// or nil when the current level is exhausted.
func (p *Packer) CurrentField() schema.Node {
	return p.field
}

// CurrentParent returns the schema node whose fields are being
// traversed, or nil at the very top or bottom of the walk.
func (p *Packer) CurrentParent() schema.Node {
	return p.parent
}

// LastSwitch returns the most recently resolved union node, or nil.
func (p *Packer) LastSwitch() schema.Node {
	return p.lastSwitch
}

// Depth returns the current push nesting depth.
func (p *Packer) Depth() int {
	return p.stack.Depth()
}

// FrameAllocations returns how many traversal frames this Packer has
// ever allocated. Bounded by the deepest simultaneous nesting, not by
// the number of push/pop cycles.
func (p *Packer) FrameAllocations() int {
	return p.stack.Allocations()
}

// Len returns the number of bytes in the pack buffer.
func (p *Packer) Len() int {
	return p.buf.Len()
}

// Bytes returns a snapshot copy of the pack buffer.
func (p *Packer) Bytes() []byte {
	return p.buf.Bytes()
}

// Take transfers ownership of the pack buffer's storage to the caller
// and leaves the buffer empty for reuse. Idle mode only.
func (p *Packer) Take() []byte {
	p.mustMode(ModeIdle, "Take")
	return p.buf.Take()
}

// ClearData discards the pack buffer contents. Idle mode only.
func (p *Packer) ClearData() {
	p.mustMode(ModeIdle, "ClearData")
	p.buf.Reset()
}

// UnpackPos returns the number of source bytes consumed so far.
// Callers may compare it against UnpackLen after EndUnpack to detect
// unconsumed trailing data, which is advisory, not an error.
func (p *Packer) UnpackPos() int {
	return p.src.Pos()
}

// UnpackLen returns the total length of the unpack source.
func (p *Packer) UnpackLen() int {
	return p.src.Len()
}

// SetUnpackData borrows data as the unpack source. The engine never
// mutates it; the caller keeps it alive for the duration of the
// session. Idle mode only.
func (p *Packer) SetUnpackData(data []byte) {
	p.mustMode(ModeIdle, "SetUnpackData")
	p.src = wire.NewView(data)
	p.srcSet = true
	p.srcOwned = false
}

// SetUnpackDataCopy copies data into an engine-owned source, released
// when the next source is set. Idle mode only.
func (p *Packer) SetUnpackDataCopy(data []byte) {
	p.mustMode(ModeIdle, "SetUnpackDataCopy")
	own := make([]byte, len(data))
	copy(own, data)
	p.src = wire.NewView(own)
	p.srcSet = true
	p.srcOwned = true
}

// BeginPack starts a pack session for a schema tree. The pack buffer
// is not cleared, so raw out-of-band bytes packed in Idle mode stay in
// front of the payload.
func (p *Packer) BeginPack(root schema.Node) {
	p.mustMode(ModeIdle, "BeginPack")
	if root == nil {
		panic("packer: BeginPack with nil root")
	}
	p.mode = ModePack
	p.beginSession(root)
}

// EndPack finishes a pack session. It returns a structured error when
// any flag is set, including unmatched pushes discovered here.
func (p *Packer) EndPack() error {
	p.mustMode(ModePack, "EndPack")
	p.closeLevelCheck()
	p.mode = ModeIdle
	return p.sessionError(errors.PhasePack)
}

// BeginUnpack starts an unpack session over the current unpack source,
// from its current position. SetUnpackData must have been called.
func (p *Packer) BeginUnpack(root schema.Node) {
	p.mustMode(ModeIdle, "BeginUnpack")
	if root == nil {
		panic("packer: BeginUnpack with nil root")
	}
	if !p.srcSet {
		panic("packer: BeginUnpack without unpack data")
	}
	p.mode = ModeUnpack
	p.beginSession(root)
}

// EndUnpack finishes an unpack session. Trailing unconsumed bytes are
// not an error; compare UnpackPos against UnpackLen to detect them.
func (p *Packer) EndUnpack() error {
	p.mustMode(ModeUnpack, "EndUnpack")
	p.closeLevelCheck()
	p.mode = ModeIdle
	return p.sessionError(errors.PhaseUnpack)
}

// BeginRepack starts an in-place overwrite session over an existing
// packed image, taking ownership of data. Traversal positions over the
// existing bytes; packed values replace their old encodings, which
// must occupy the same number of bytes.
func (p *Packer) BeginRepack(data []byte, root schema.Node) {
	p.mustMode(ModeIdle, "BeginRepack")
	if root == nil {
		panic("packer: BeginRepack with nil root")
	}
	p.buf.Reset()
	p.buf.SetBytes(data)
	p.repackPos = 0
	p.mode = ModeRepack
	p.beginSession(root)
}

// EndRepack finishes a repack session. The updated image is available
// via Bytes or Take.
func (p *Packer) EndRepack() error {
	p.mustMode(ModeRepack, "EndRepack")
	p.closeLevelCheck()
	p.mode = ModeIdle
	return p.sessionError(errors.PhaseRepack)
}

func (p *Packer) beginSession(root schema.Node) {
	p.packErr = false
	p.rangeErr = false
	p.parseErr = false
	p.parent = nil
	p.field = root
	p.fieldIndex = 0
	p.numNested = 0
	p.pushMarker = noMarker
	p.popMarker = 0
	p.lastSwitch = nil
	p.switchKey = 0
	p.stack.reset()
}

// closeLevelCheck flags sessions ended with unmatched pushes.
func (p *Packer) closeLevelCheck() {
	if p.stack.Depth() != 0 || p.parent != nil {
		p.structureFault("end with %d unmatched push(es)", p.stack.Depth())
		p.stack.reset()
		p.parent = nil
		p.field = nil
	}
}

func (p *Packer) sessionError(phase errors.Phase) error {
	if !p.HadError() {
		return nil
	}
	kind := errors.KindParse
	switch {
	case p.packErr:
		kind = errors.KindStructure
	case p.rangeErr:
		kind = errors.KindOutOfRange
	}
	detail := fmt.Sprintf("session failed (pack_error=%v range_error=%v parse_error=%v)",
		p.packErr, p.rangeErr, p.parseErr)
	return errors.Wrap(phase, kind, nil, detail)
}

func (p *Packer) mustMode(want Mode, op string) {
	if p.mode != want {
		panic(fmt.Sprintf("packer: %s called in %s mode, want %s", op, p.mode, want))
	}
}

func (p *Packer) mustPackMode(op string) {
	if p.mode != ModePack && p.mode != ModeRepack {
		panic(fmt.Sprintf("packer: %s called in %s mode, want pack or repack", op, p.mode))
	}
}

func (p *Packer) fieldName() string {
	switch {
	case p.field != nil:
		return p.field.Name()
	case p.parent != nil:
		return p.parent.Name()
	default:
		return ""
	}
}

// structureFault records a structural misuse without aborting; the
// engine keeps going so the caller can salvage partial results.
func (p *Packer) structureFault(format string, args ...any) {
	p.packErr = true
	Logger().Debug("pack error",
		zap.String("mode", p.mode.String()),
		zap.String("field", p.fieldName()),
		zap.String("detail", fmt.Sprintf(format, args...)))
}

// noteFault folds a codec fault into the session flags.
func (p *Packer) noteFault(f wire.Fault, op string) {
	switch f {
	case wire.FaultNone:
	case wire.FaultRange:
		p.rangeErr = true
		Logger().Debug("range error",
			zap.String("op", op),
			zap.String("field", p.fieldName()))
	default:
		p.packErr = true
		Logger().Debug("pack error",
			zap.String("op", op),
			zap.String("field", p.fieldName()),
			zap.String("fault", f.String()))
	}
}
