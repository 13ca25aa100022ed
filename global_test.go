package sizemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobal(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Init(WithSource(nil)))
	// only the first call counts.
	assert.NoError(Init(WithProfile(Profile(99))))

	m := Get()
	assert.True(m.Ready())
	assert.Equal(DefaultProfile, m.Config().Profile)

	cl, ok := GetSizeClass(100)
	assert.True(ok)
	assert.GreaterOrEqual(ClassToSize(cl), uint64(100))
	assert.Equal(m.ClassToPages(cl), ClassToPages(cl))
	assert.Equal(m.NumObjectsToMove(cl), NumObjectsToMove(cl))

	cl, ok = GetSizeClassAligned(100, 32)
	assert.True(ok)
	assert.Zero(ClassToSize(cl) % 32)

	_, ok = GetSizeClass(MaxSize + 1)
	assert.False(ok)

	PageHeapLock.Lock()
	PageHeapLock.Unlock()
}
