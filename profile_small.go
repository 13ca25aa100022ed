//go:build sizemap_small

package sizemap

// DefaultProfile is the model selected at build time.
const DefaultProfile = ProfileSmall

const (
	PageShift  = smallPageShift
	NumClasses = smallNumClasses
	MaxSize    = smallMaxSize
	MinPages   = smallMinPages
)

const (
	MinThreadCacheSize     = smallMinThreadCacheSize
	MaxThreadCacheSize     = smallMaxThreadCacheSize
	MaxCPUCacheSize        = smallMaxCPUCacheSize
	OverallThreadCacheSize = MaxThreadCacheSize
	StealAmount            = MinThreadCacheSize
	SamplingRate           = smallSamplingRate

	MinSystemAlloc = smallMinSystemAlloc
	MinMmapAlloc   = smallMinMmapAlloc
)
