package sizemap

// Compile-time checks. A negative array length fails the build.

// MaxSize must span at least MinPages pages. With 256KiB pages, keeping
// objects of 256KiB and more on the page-level path is cheaper than raising
// MaxSize, so that model is exempt.
var (
	_ [smallMaxSize>>smallPageShift - smallMinPages]byte
	_ [defaultMaxSize>>defaultPageShift - wideMinPages]byte
	_ [largeMaxSize>>largePageShift - wideMinPages]byte
)

// mmap granularity must be a whole number of system allocations.
var (
	_ [-(smallMinMmapAlloc % smallMinSystemAlloc)]byte
	_ [-(wideMinMmapAlloc % wideMinSystemAlloc)]byte
)

// Class ids are stored in a byte and the fixed arrays must hold every model.
var (
	_ [255 - maxNumClasses]byte
	_ [maxNumClasses - defaultNumClasses]byte
	_ [maxNumClasses - largeNumClasses]byte
	_ [maxNumClasses - smallNumClasses]byte
	_ [maxClassArraySize - (smallMaxSize+127+(120<<7))>>7 - 1]byte
)
