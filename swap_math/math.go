package swap_math

import (
	"math/bits"

	"github.com/krazyTry/swap-math/u128"
)

const (
	// Max operand for which MulDiv stays in 64-bit arithmetic.
	MaxNarrow uint64 = 1 << 32
	// MaxNarrowBig and MaxNarrowSmall bound the a and b operands of
	// MulDivImbalanced respectively.
	MaxNarrowBig   uint64 = 1 << 48
	MaxNarrowSmall uint64 = 1 << 16
)

// MulDiv returns floor(a*b/c). The product is computed in 64 bits when both
// operands are at most MaxNarrow and in 128 bits otherwise. ok is false when
// c is zero or the quotient does not fit in a uint64.
func MulDiv(a, b, c uint64) (uint64, bool) {
	if a > MaxNarrow || b > MaxNarrow {
		return mulDiv128(a, b, c)
	}
	return mulDiv64(a, b, c)
}

// MulDivImbalanced is MulDiv for a large amount a and a small rate b.
func MulDivImbalanced(a, b, c uint64) (uint64, bool) {
	if a > MaxNarrowBig || b > MaxNarrowSmall {
		return mulDiv128(a, b, c)
	}
	return mulDiv64(a, b, c)
}

func mulDiv64(a, b, c uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		// only reachable at the threshold itself, e.g. 2^32 * 2^32
		return mulDiv128(a, b, c)
	}
	if c == 0 {
		return 0, false
	}
	return lo / c, true
}

func mulDiv128(a, b, c uint64) (uint64, bool) {
	product, ok := u128.FromUint64(a).CheckedMul(u128.FromUint64(b))
	if !ok {
		return 0, false
	}
	quotient, ok := product.CheckedDiv(u128.FromUint64(c))
	if !ok {
		return 0, false
	}
	return quotient.Uint64()
}
