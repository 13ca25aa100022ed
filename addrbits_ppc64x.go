//go:build (ppc64 || ppc64le) && linux

package sizemap

// Linux 4.12 and later default to a 128TB user address space on ppc64 and
// allow up to 512TB on request.
const AddressBits = 49
