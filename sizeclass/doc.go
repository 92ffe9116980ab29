// Package sizeclass computes storage size classes for protocol fields.
//
// A size class is the base-2 logarithm of a value's in-memory footprint in
// bytes: class 0 is one byte, class 3 is eight. The layout builder asks a
// Classifier for one class per field when assigning offsets; capacity
// planners use CeilingLog2 and CeilingPowerOfTwoSize to round table sizes
// up to powers of two.
//
// # Size Classes
//
//	bool                        -> 0
//	float, 32-bit ints, enum    -> 2
//	double, 64-bit ints         -> 3
//	message, group              -> 2 narrow / 3 wide
//	string, bytes               -> 3 narrow / 4 wide
//
// Reference-bearing kinds widen by exactly one class on 64-bit addressing:
// a message becomes an 8-byte pointer, a string a 16-byte view. The width
// is an explicit constructor parameter so both variants are testable in
// one binary.
//
// Every operation is a pure function over compile-time constants; the
// package never allocates and needs no synchronization.
package sizeclass
