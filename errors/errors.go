package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // kind -> size class lookup
	PhaseCapacity Phase = "capacity" // power-of-two capacity rounding
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidKind Kind = "invalid_kind"
	KindOutOfRange  Kind = "out_of_range"
)

// Error is the structured error type for contract violations. The library's
// operations are total over their declared domains, so every Error here
// marks a caller bug rather than a recoverable runtime condition.
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	FieldKind string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.FieldKind != "" {
		b.WriteString(": field kind ")
		b.WriteString(e.FieldKind)
	}

	if e.Detail != "" {
		if e.FieldKind != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// FieldKind sets the textual field kind name
func (b *Builder) FieldKind(name string) *Builder {
	b.err.FieldKind = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidScalarKind reports a scalar kind ordinal outside the enumeration.
func InvalidScalarKind(ordinal uint8) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindInvalidKind,
		Detail: fmt.Sprintf("scalar kind ordinal %d outside declared range", ordinal),
		Value:  ordinal,
	}
}

// InvalidWireKind reports a wire field kind ordinal outside the enumeration.
func InvalidWireKind(ordinal uint8) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindInvalidKind,
		Detail: fmt.Sprintf("wire field kind ordinal %d outside declared range", ordinal),
		Value:  ordinal,
	}
}

// CapacityOutOfRange reports a capacity outside the ceiling primitives'
// supported range.
func CapacityOutOfRange(capacity, maxCapacity int) *Error {
	return &Error{
		Phase:  PhaseCapacity,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("capacity %d outside supported range [0, %d]", capacity, maxCapacity),
		Value:  capacity,
	}
}
