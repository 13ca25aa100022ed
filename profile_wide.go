//go:build !sizemap_small

package sizemap

const (
	MinThreadCacheSize     = MaxSize * 2
	MaxThreadCacheSize     = wideMaxThreadCacheSize
	MaxCPUCacheSize        = wideMaxCPUCacheSize
	OverallThreadCacheSize = 8 * MaxThreadCacheSize
	StealAmount            = wideStealAmount
	SamplingRate           = wideSamplingRate

	MinSystemAlloc = wideMinSystemAlloc
	MinMmapAlloc   = wideMinMmapAlloc
)
