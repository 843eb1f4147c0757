package decimal_math

import (
	"github.com/shopspring/decimal"

	"github.com/krazyTry/swap-math/u128"
)

const (
	// PriceDecimals is the scale of price-feed answers.
	PriceDecimals = 9
	// MaxDecimals bounds the scale of a Decimal. String pads one digit per
	// decimal place, so the cap also bounds its output length.
	MaxDecimals = 255
)

// Decimal is a scaled integer shown as value / 10^decimals. It is for
// display only and has no arithmetic.
type Decimal struct {
	value    u128.Uint128
	decimals uint32
}

// NewDecimal wraps value at the given scale. decimals above MaxDecimals are
// clamped to MaxDecimals.
func NewDecimal(value u128.Uint128, decimals uint32) Decimal {
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	return Decimal{value: value, decimals: decimals}
}

// NewPrice wraps a raw price-feed answer.
func NewPrice(answer u128.Uint128) Decimal {
	return NewDecimal(answer, PriceDecimals)
}

func (d Decimal) Value() u128.Uint128 { return d.value }

func (d Decimal) Decimals() uint32 { return d.decimals }

// Decimal returns the exact shopspring value.
func (d Decimal) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(d.value.BigInt(), -d.exp())
}

// String renders exactly Decimals() fractional digits, padding with zeros:
// 123 at 5 decimals is "0.00123". With zero decimals it is the bare integer,
// "5" rather than "5.".
func (d Decimal) String() string {
	return d.Decimal().StringFixed(d.exp())
}

func (d Decimal) exp() int32 {
	return int32(d.decimals)
}
