package sizemap

import "unsafe"

// TagBit is the address bit reserved for tagged memory: four below the top
// of the usable address space, capped at 42.
const TagBit = min(AddressBits-4, 42)

// TagMask selects TagBit in an address.
const TagMask uintptr = 1 << TagBit

// IsTagged reports whether addr has the tag bit clear.
func IsTagged(addr uintptr) bool {
	return addr&TagMask == 0
}

// IsTaggedPointer is IsTagged for a pointer.
func IsTaggedPointer(p unsafe.Pointer) bool {
	return IsTagged(uintptr(p))
}
