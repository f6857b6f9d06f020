package wire

// Fault classifies a codec failure without allocating an error value.
// The packer engine folds faults into its per-session error flags.
type Fault uint8

const (
	// FaultNone indicates success.
	FaultNone Fault = iota
	// FaultTruncated indicates a read past the end of the source span.
	FaultTruncated
	// FaultRange indicates a value outside its declared domain or width.
	FaultRange
	// FaultMismatch indicates an operation applied to a field of an
	// incompatible wire kind.
	FaultMismatch
)

var faultNames = [...]string{
	FaultNone:      "none",
	FaultTruncated: "truncated",
	FaultRange:     "range",
	FaultMismatch:  "mismatch",
}

func (f Fault) String() string {
	if int(f) < len(faultNames) {
		return faultNames[f]
	}
	return "unknown"
}

// OK reports whether the operation succeeded.
func (f Fault) OK() bool {
	return f == FaultNone
}
