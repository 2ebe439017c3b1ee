package math

import "strconv"

// MaxExact is the largest n whose factorial fits in an int32 without wrapping.
const MaxExact = 12

// Calculate returns the decimal representation of n! computed with an int32
// accumulator. Overflow wraps around silently, so results for n > MaxExact are
// the two's-complement residue, not the true factorial. Non-positive n yields "1".
func Calculate(n int32) string {
	var factorial int32 = 1
	// zero is absorbing (reached at n = 34), which also keeps i from overflowing
	// when n is math.MaxInt32
	for i := int32(1); i <= n && factorial != 0; i++ {
		factorial *= i
	}

	return strconv.FormatInt(int64(factorial), 10)
}

// Wrapped reports whether Calculate(n) differs from the true factorial of n.
func Wrapped(n int32) bool {
	return n > MaxExact
}
