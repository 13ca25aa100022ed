//go:build !sizemap_debug

package sizemap

// debug enables precondition checks on the lookup path.
const debug = false
