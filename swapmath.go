package swapmath

import (
	"github.com/krazyTry/swap-math/decimal_math"
	"github.com/krazyTry/swap-math/swap_math"
)

type (
	Fees          = swap_math.Fees
	FeeCalculator = swap_math.FeeCalculator
)

// MulDiv computes floor(a*b/c), reporting false instead of overflowing.
//
// Example:
//
// fee, ok := MulDiv(amount, 25, 10_000)
var MulDiv = swap_math.MulDiv

// MulDivImbalanced is MulDiv for an amount times a small rate.
var MulDivImbalanced = swap_math.MulDivImbalanced

// ParseFeesJSON loads a fee schedule from JSON.
//
// Example:
//
// fees, _ := ParseFeesJSON(raw)
//
// split, err := swap_math.SplitTradeFee(fees, amountOut)
var ParseFeesJSON = swap_math.ParseFeesJSON

// NewDecimal wraps a scaled integer for display.
var NewDecimal = decimal_math.NewDecimal
