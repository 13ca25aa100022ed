//go:build !sizemap_small && !sizemap_large && !sizemap_256k

package sizemap

// DefaultProfile is the model selected at build time.
const DefaultProfile = ProfileDefault

const (
	PageShift  = defaultPageShift
	NumClasses = defaultNumClasses
	MaxSize    = defaultMaxSize
	MinPages   = wideMinPages
)
