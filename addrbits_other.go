//go:build !amd64 && !(arm64 && linux) && !((ppc64 || ppc64le) && linux)

package sizemap

// AddressBits is the usable virtual address width.
const AddressBits = 8 * ptrSize
