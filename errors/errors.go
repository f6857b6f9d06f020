package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhasePack      Phase = "pack"      // value to wire bytes
	PhaseUnpack    Phase = "unpack"    // wire bytes to value
	PhaseRepack    Phase = "repack"    // in-place overwrite of packed bytes
	PhaseParse     Phase = "parse"     // textual value to packed form
	PhaseSchema    Phase = "schema"    // schema document loading
	PhaseTranscode Phase = "transcode" // document bridge
)

// Kind categorizes the error
type Kind string

const (
	KindStructure       Kind = "structure"        // traversal misuse, wrong field count
	KindTruncated       Kind = "truncated"        // read past end of source span
	KindOutOfRange      Kind = "out_of_range"     // value outside declared domain
	KindBadDiscriminant Kind = "bad_discriminant" // no union case for value
	KindParse           Kind = "parse"            // textual value did not parse
	KindTypeMismatch    Kind = "type_mismatch"    // value kind vs field kind
	KindUnsupported     Kind = "unsupported"      // operation not expressible
	KindInvalidSchema   Kind = "invalid_schema"   // malformed schema document
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Structure creates a traversal-structure error
func Structure(phase Phase, path []string, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindStructure,
		Path:   path,
		Detail: detail,
	}
}

// Truncated creates a short-source error
func Truncated(phase Phase, path []string, pos, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Path:   path,
		Detail: fmt.Sprintf("read past end of source (pos %d, length %d)", pos, length),
	}
}

// OutOfRange creates a value-domain error
func OutOfRange(phase Phase, path []string, value any, fieldType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("value %v outside domain of %s", value, fieldType),
		Value:  value,
	}
}

// BadDiscriminant creates an unmatched-union-case error
func BadDiscriminant(phase Phase, path []string, disc uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadDiscriminant,
		Path:   path,
		Detail: fmt.Sprintf("no case matches discriminant %d", disc),
		Value:  disc,
	}
}

// Parse creates a textual-parse error
func Parse(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindParse,
		Detail: "textual value did not parse",
		Cause:  cause,
	}
}

// TypeMismatch creates a value-kind vs field-kind error
func TypeMismatch(phase Phase, path []string, goType, fieldType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("Go type %s, field type %s", goType, fieldType),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidSchema creates a malformed schema document error
func InvalidSchema(path []string, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidSchema,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
