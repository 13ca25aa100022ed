//go:build sizemap_large && !sizemap_small && !sizemap_256k

package sizemap

// DefaultProfile is the model selected at build time.
const DefaultProfile = ProfileLarge

const (
	PageShift  = largePageShift
	NumClasses = largeNumClasses
	MaxSize    = largeMaxSize
	MinPages   = wideMinPages
)
