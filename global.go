package sizemap

import "sync"

// PageHeapLock serializes the page heap and the tiers that refill from it.
// It is usable at its zero value at any time. This package never takes it.
var PageHeapLock sync.Mutex

var (
	global     SizeMap
	globalOnce sync.Once
	globalErr  error
)

// Init builds the process-wide map. Only the first call has any effect;
// every call returns the result of that first one. Init returns after the
// map is complete, so anything sequenced after it may read the map without
// further synchronization.
func Init(opts ...Option) error {
	globalOnce.Do(func() {
		globalErr = global.Init(newOptions(opts...))
	})
	return globalErr
}

// Get returns the process-wide map, initializing it with DefaultOptions if
// Init has not been called.
func Get() *SizeMap {
	Init()
	return &global
}

// GetSizeClass is Get().GetSizeClass(size) without the initialization check.
// Init must have been called.
func GetSizeClass(size uint64) (uint32, bool) {
	return global.GetSizeClass(size)
}

// GetSizeClassAligned is Get().GetSizeClassAligned(size, align) without the
// initialization check. Init must have been called.
func GetSizeClassAligned(size, align uint64) (uint32, bool) {
	return global.GetSizeClassAligned(size, align)
}

// ClassToSize returns the size of class cl of the process-wide map.
func ClassToSize(cl uint32) uint64 {
	return global.ClassToSize(cl)
}

// ClassToPages returns the span pages of class cl of the process-wide map.
func ClassToPages(cl uint32) uint64 {
	return global.ClassToPages(cl)
}

// NumObjectsToMove returns the batch count of class cl of the process-wide map.
func NumObjectsToMove(cl uint32) uint32 {
	return global.NumObjectsToMove(cl)
}
