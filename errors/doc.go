// Package errors provides structured error types for the proto-layout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every error in this package represents a caller contract
// violation: an enum ordinal outside its declared range, or a capacity the
// ceiling primitives do not support.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseClassify, errors.KindInvalidKind).
//		FieldKind("message").
//		Detail("ordinal 42 outside declared range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidWireKind(42)
//	err := errors.CapacityOutOfRange(-1, 1<<30)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
