//go:build sizemap_256k && !sizemap_small

package sizemap

// DefaultProfile is the model selected at build time.
const DefaultProfile = Profile256K

const (
	PageShift  = hugePageShift
	NumClasses = hugeNumClasses
	MaxSize    = hugeMaxSize
	MinPages   = wideMinPages
)
