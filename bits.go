package sizemap

import "golang.org/x/exp/constraints"

// divRoundUp returns ceil(n / a).
func divRoundUp[T constraints.Unsigned](n, a T) T {
	return (n + a - 1) / a
}

// alignUp rounds n up to a multiple of a, which must be a power of two.
func alignUp[T constraints.Unsigned](n, a T) T {
	return (n + a - 1) &^ (a - 1)
}

func isPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}
