//go:build amd64 || (arm64 && linux)

package sizemap

// Current x86-64 parts translate only the low 48 bits of a virtual address.
// Linux on arm64 likewise gives user and kernel 48-bit spaces.
const AddressBits = 48
