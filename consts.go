package sizemap

// Page geometry per profile.
const (
	smallPageShift  = 12
	smallNumClasses = 46
	smallMaxSize    = 8 << 10
	smallMinPages   = 2

	defaultPageShift  = 13
	defaultNumClasses = 86
	defaultMaxSize    = 256 << 10

	largePageShift  = 15
	largeNumClasses = 78
	largeMaxSize    = 256 << 10

	hugePageShift  = 18
	hugeNumClasses = 89
	hugeMaxSize    = 256 << 10
)

// Cache budgets.
const (
	smallMinThreadCacheSize = 4 << 10
	smallMaxThreadCacheSize = 64 << 10
	smallMaxCPUCacheSize    = 20 << 10
	smallSamplingRate       = 1 << 19

	wideMaxThreadCacheSize = 4 << 20
	wideMaxCPUCacheSize    = 3 << 20
	wideStealAmount        = 1 << 16
	wideSamplingRate       = 1 << 21
	wideMinPages           = 8
)

// ptrSize is 4 on 32-bit and 8 on 64-bit targets.
const ptrSize = 4 << (^uintptr(0) >> 63)

// System allocation granularity. Everything but the small model on 64-bit
// targets maps address space in 1GiB ranges.
const (
	smallMinSystemAlloc = HugePageSize
	smallMinMmapAlloc   = 32 << 20

	wideMinSystemAlloc = HugePageSize
	wideMinMmapAlloc   = smallMinMmapAlloc + (ptrSize/8)*(1<<30-smallMinMmapAlloc)
)

// Upper bounds over all profiles, used to size the lookup arrays.
const (
	maxNumClasses     = hugeNumClasses
	maxPageShift      = hugePageShift
	maxClassArraySize = (hugeMaxSize+127+(120<<7))>>7 + 1
)

// Derived from the model selected at build time.
const (
	PageSize       = 1 << PageShift
	ClassArraySize = (MaxSize+127+(120<<7))>>7 + 1
)
