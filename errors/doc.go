// Package errors provides structured error types for the netpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, offending value, and cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseUnpack, path, 12, 10)
//	err := errors.OutOfRange(errors.PhasePack, path, 300, "uint8")
//	err := errors.BadDiscriminant(errors.PhaseUnpack, path, 2)
//
// The packer engine itself tracks failures as three per-session flags
// and never returns an error mid-session; these types surface at End
// and from the schema loader and transcode bridge.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
