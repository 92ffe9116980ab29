package protolayout

import "math/bits"

// AddressWidth selects the in-memory representation used for
// reference-bearing fields: message pointers and string/bytes views.
// On 32-bit addressing a message reference is a 4-byte pointer and a
// string view is 8 bytes; on 64-bit addressing they are 8 and 16 bytes.
type AddressWidth uint8

const (
	Addr32 AddressWidth = iota
	Addr64
)

var widthNames = [...]string{
	Addr32: "32-bit",
	Addr64: "64-bit",
}

func (w AddressWidth) String() string {
	if int(w) < len(widthNames) {
		return widthNames[w]
	}
	return "unknown"
}

// PointerSizeLog2 returns the log2 of a pointer's size under w.
func (w AddressWidth) PointerSizeLog2() int {
	if w == Addr64 {
		return 3
	}
	return 2
}

// NativeWidth returns the address width of the running process.
func NativeWidth() AddressWidth {
	if bits.UintSize == 64 {
		return Addr64
	}
	return Addr32
}
