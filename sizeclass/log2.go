package sizeclass

import "math/bits"

// MaxCeilingInput is the largest capacity the ceiling primitives accept.
// Larger values would shift the derived power of two past what a native
// signed 32-bit integer holds.
const MaxCeilingInput = 1 << 30

// CeilingLog2 returns the smallest n such that 1<<n >= x.
// For x <= 1 it returns 0. The supported range is 0 <= x <= MaxCeilingInput;
// anything outside it is a caller bug and is not checked here.
func CeilingLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len32(uint32(x - 1))
}

// ceilingLog2Portable is the loop-based reference implementation.
// Tests assert it agrees with CeilingLog2 everywhere in the supported range.
func ceilingLog2Portable(x int) int {
	if x <= 1 {
		return 0
	}
	lg2 := 0
	for 1<<lg2 < x {
		lg2++
	}
	return lg2
}

// CeilingPowerOfTwoSize returns the smallest power of two >= x.
// For x <= 1 it returns 1.
func CeilingPowerOfTwoSize(x int) int {
	return 1 << CeilingLog2(x)
}
