// Package errors provides structured error types for the jvm-flow library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Two kinds carry the core failure semantics:
//
//   - KindUnsupported: the input contains a jsr/ret subroutine construct.
//     The method is unanalyzable and the failure is not recoverable.
//   - KindInconsistent: the caller-supplied method body violates the
//     structural contract, e.g. a jump references a label with no position
//     in the stream. This indicates a bug in the producer of the body.
//
// Use the convenience constructors:
//
//	err := errors.Unsupported(errors.PhaseAnalyze, "m", "jsr")
//	err := errors.Inconsistent(errors.PhaseValidate, "m", "dangling label")
//	err := errors.ParseFailed(12, "unknown mnemonic")
//
// All errors implement the standard error interface and support
// errors.Is/As; matching compares Phase and Kind.
package errors
