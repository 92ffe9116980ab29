package sizeclass

import (
	protolayout "github.com/wippyai/proto-layout"
	"github.com/wippyai/proto-layout/errors"
	"github.com/wippyai/proto-layout/field"
)

// Classifier maps field kinds to storage size classes (log2 of bytes) for
// one address width. It holds no mutable state and is safe for concurrent
// use.
type Classifier struct {
	width protolayout.AddressWidth
}

// New returns a Classifier for the given address width.
func New(width protolayout.AddressWidth) *Classifier {
	return &Classifier{width: width}
}

// Native returns a Classifier for the running process's address width.
func Native() *Classifier {
	return New(protolayout.NativeWidth())
}

// Width returns the address width the classifier was built for.
func (c *Classifier) Width() protolayout.AddressWidth {
	return c.width
}

// wide widens a narrow-addressing size class by one on 64-bit addressing.
// Only reference-bearing kinds go through here.
func (c *Classifier) wide(narrow int) int {
	if c.width == protolayout.Addr64 {
		return narrow + 1
	}
	return narrow
}

// ScalarSizeLog2 returns the log2 of the storage size in bytes for a
// scalar kind. An ordinal outside the enumeration is a contract violation
// and yields a structured error.
func (c *Classifier) ScalarSizeLog2(k field.ScalarKind) (int, error) {
	switch k {
	case field.ScalarBool:
		return 0, nil
	case field.ScalarFloat, field.ScalarInt32, field.ScalarUInt32, field.ScalarEnum:
		return 2, nil
	case field.ScalarMessage:
		return c.wide(2), nil
	case field.ScalarDouble, field.ScalarInt64, field.ScalarUInt64:
		return 3, nil
	case field.ScalarString, field.ScalarBytes:
		return c.wide(3), nil
	default:
		debugf("scalar kind ordinal %d out of range", k)
		return 0, errors.InvalidScalarKind(uint8(k))
	}
}

// WireSizeLog2 returns the log2 of the storage size in bytes for a wire
// field kind. The wire vocabulary is classified independently of the scalar
// one; the two enumerations are owned by different layers and their
// orderings differ.
func (c *Classifier) WireSizeLog2(k field.WireKind) (int, error) {
	switch k {
	case field.WireBool:
		return 0, nil
	case field.WireFloat, field.WireInt32, field.WireFixed32, field.WireUInt32,
		field.WireEnum, field.WireSFixed32, field.WireSInt32:
		return 2, nil
	case field.WireGroup, field.WireMessage:
		return c.wide(2), nil
	case field.WireDouble, field.WireInt64, field.WireUInt64, field.WireFixed64,
		field.WireSFixed64, field.WireSInt64:
		return 3, nil
	case field.WireString, field.WireBytes:
		return c.wide(3), nil
	default:
		debugf("wire field kind ordinal %d out of range", k)
		return 0, errors.InvalidWireKind(uint8(k))
	}
}

// ScalarSize returns the storage size in bytes for a scalar kind.
func (c *Classifier) ScalarSize(k field.ScalarKind) (int, error) {
	lg2, err := c.ScalarSizeLog2(k)
	if err != nil {
		return 0, err
	}
	return 1 << lg2, nil
}

// WireSize returns the storage size in bytes for a wire field kind.
func (c *Classifier) WireSize(k field.WireKind) (int, error) {
	lg2, err := c.WireSizeLog2(k)
	if err != nil {
		return 0, err
	}
	return 1 << lg2, nil
}
