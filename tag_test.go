package sizemap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestTagMask(t *testing.T) {
	assert := assert.New(t)

	assert.LessOrEqual(TagBit, 42)
	assert.Less(TagBit, AddressBits)
	assert.Equal(uintptr(1)<<TagBit, TagMask)
	if AddressBits == 48 {
		assert.Equal(42, TagBit)
	}

	assert.True(IsTagged(0))
	assert.True(IsTagged(TagMask - 1))
	assert.False(IsTagged(TagMask))
	assert.False(IsTagged(TagMask | 0x1000))
	assert.True(IsTagged(TagMask << 1))

	var x int
	p := unsafe.Pointer(&x)
	assert.Equal(uintptr(p)&TagMask == 0, IsTaggedPointer(p))
}
