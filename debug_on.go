//go:build sizemap_debug

package sizemap

const debug = true
