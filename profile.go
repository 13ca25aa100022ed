package sizemap

import (
	"strings"

	"github.com/tidwall/hashmap"
)

// Profile selects one page-size model. Larger pages mean coarser bookkeeping
// and fewer trips to the page heap, at the cost of more fragmentation.
type Profile uint8

const (
	// ProfileDefault uses 8KiB pages.
	ProfileDefault Profile = iota
	// ProfileSmall uses 4KiB pages and a small max size, for minimal footprint.
	ProfileSmall
	// ProfileLarge uses 32KiB pages.
	ProfileLarge
	// Profile256K uses 256KiB pages.
	Profile256K

	numProfiles
)

// Shared by all profiles.
const (
	Alignment      = 8
	AlignmentShift = 3

	// Bounds of the batch transfer count.
	MinObjectsToMove = 2
	MaxObjectsToMove = 128

	// Classes up to MultiPageSize always use one-page spans.
	MultiPageSize = 512
	// Min alignment of classes in (MultiPageSize, MaxSmallSize].
	MultiPageAlignment      = 64
	MultiPageAlignmentShift = 6
	// Min alignment of classes above MaxSmallSize.
	LargeAlignment = 128

	// MaxSmallSize is the boundary between the 8-byte and 128-byte regions
	// of the class index.
	MaxSmallSize = 1024

	// MaxOverages is how often a deallocation may push a free list over its
	// max length before the length is shrunk.
	MaxOverages = 3
	// MaxDynamicFreeListLength caps per-thread free lists.
	MaxDynamicFreeListLength = 8192

	HugePageSize = 2 << 20
)

// Config is the resolved constant set of one profile.
type Config struct {
	Profile   Profile
	PageShift uint
	PageSize  uint64

	// NumClasses includes the sentinel class 0.
	NumClasses int
	// MaxSize is the largest size served by size classes.
	MaxSize uint64

	MinThreadCacheSize     uint64
	MaxThreadCacheSize     uint64
	MaxCPUCacheSize        uint64
	OverallThreadCacheSize uint64
	// StealAmount is what one thread cache takes from another on scavenge.
	StealAmount  uint64
	SamplingRate uint64
	MinPages     uint64

	MinSystemAlloc uint64
	MinMmapAlloc   uint64

	// ClassArraySize is the number of buckets of the flattened class index.
	ClassArraySize int
}

var profileNames = [numProfiles]string{
	ProfileDefault: "default",
	ProfileSmall:   "small",
	ProfileLarge:   "large",
	Profile256K:    "256k",
}

func (p Profile) String() string {
	if p < numProfiles {
		return profileNames[p]
	}
	return "unknown"
}

// registry maps profile names and page-size aliases to profiles.
var registry = newRegistry()

func newRegistry() *hashmap.Map[string, Profile] {
	m := hashmap.New[string, Profile](int(numProfiles) * 2)
	for p, name := range profileNames {
		m.Set(name, Profile(p))
	}
	m.Set("8k", ProfileDefault)
	m.Set("4k", ProfileSmall)
	m.Set("32k", ProfileLarge)
	return m
}

// ParseProfile returns the profile with the given name, case-insensitively.
func ParseProfile(name string) (Profile, error) {
	p, ok := registry.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return 0, ErrUnknownProfile
	}
	return p, nil
}

// Resolve returns the constant set of p. Unknown profiles resolve to the
// zero Config.
func Resolve(p Profile) Config {
	cfg, _ := ResolveChecked(p)
	return cfg
}

// ResolveChecked is like Resolve and reports whether p is known.
func ResolveChecked(p Profile) (Config, bool) {
	var cfg Config
	switch p {
	case ProfileSmall:
		cfg = Config{
			PageShift:              smallPageShift,
			NumClasses:             smallNumClasses,
			MaxSize:                smallMaxSize,
			MinThreadCacheSize:     smallMinThreadCacheSize,
			MaxThreadCacheSize:     smallMaxThreadCacheSize,
			MaxCPUCacheSize:        smallMaxCPUCacheSize,
			OverallThreadCacheSize: smallMaxThreadCacheSize,
			StealAmount:            smallMinThreadCacheSize,
			SamplingRate:           smallSamplingRate,
			MinPages:               smallMinPages,
			MinSystemAlloc:         smallMinSystemAlloc,
			MinMmapAlloc:           smallMinMmapAlloc,
		}
		cfg.Profile = p
		cfg.PageSize = 1 << cfg.PageShift
		cfg.ClassArraySize = classArraySize(cfg.MaxSize)
		return cfg, true

	case ProfileDefault:
		cfg = Config{PageShift: defaultPageShift, NumClasses: defaultNumClasses, MaxSize: defaultMaxSize}
	case ProfileLarge:
		cfg = Config{PageShift: largePageShift, NumClasses: largeNumClasses, MaxSize: largeMaxSize}
	case Profile256K:
		cfg = Config{PageShift: hugePageShift, NumClasses: hugeNumClasses, MaxSize: hugeMaxSize}
	default:
		return Config{}, false
	}

	// the non-small models share budgets and differ only in page geometry.
	cfg.MinThreadCacheSize = cfg.MaxSize * 2
	cfg.MaxThreadCacheSize = wideMaxThreadCacheSize
	cfg.MaxCPUCacheSize = wideMaxCPUCacheSize
	cfg.OverallThreadCacheSize = 8 * wideMaxThreadCacheSize
	cfg.StealAmount = wideStealAmount
	cfg.SamplingRate = wideSamplingRate
	cfg.MinPages = wideMinPages
	cfg.MinSystemAlloc = wideMinSystemAlloc
	cfg.MinMmapAlloc = wideMinMmapAlloc

	cfg.Profile = p
	cfg.PageSize = 1 << cfg.PageShift
	cfg.ClassArraySize = classArraySize(cfg.MaxSize)
	return cfg, true
}

// classArraySize returns the bucket count needed to index sizes up to max.
func classArraySize(maxSize uint64) int {
	return int((maxSize+127+(120<<7))>>7) + 1
}
