package swap_math

import "math"

// FeeCalculator derives fee amounts from token amounts. Every method returns
// ok=false when the result cannot be represented; callers must then abort the
// operation rather than fall back to a default fee.
type FeeCalculator interface {
	// AdminTradeFee returns the admin share of a trade fee.
	AdminTradeFee(feeAmount uint64) (uint64, bool)
	// AdminWithdrawFee returns the admin share of a withdraw fee.
	AdminWithdrawFee(feeAmount uint64) (uint64, bool)
	// TradeFee returns the fee charged on a trade of tradeAmount.
	TradeFee(tradeAmount uint64) (uint64, bool)
	// WithdrawFee returns the fee charged on a withdrawal of withdrawAmount.
	WithdrawFee(withdrawAmount uint64) (uint64, bool)
	// NormalizedTradeFee returns the trade fee on amount scaled for a pool of
	// nCoins assets, used for imbalanced deposits and withdrawals.
	NormalizedTradeFee(nCoins uint8, amount uint64) (uint64, bool)
}

var _ FeeCalculator = Fees{}

func (f Fees) AdminTradeFee(feeAmount uint64) (uint64, bool) {
	return MulDivImbalanced(feeAmount, f.AdminTradeFeeNumerator, f.AdminTradeFeeDenominator)
}

func (f Fees) AdminWithdrawFee(feeAmount uint64) (uint64, bool) {
	return MulDivImbalanced(feeAmount, f.AdminWithdrawFeeNumerator, f.AdminWithdrawFeeDenominator)
}

func (f Fees) TradeFee(tradeAmount uint64) (uint64, bool) {
	return MulDivImbalanced(tradeAmount, f.TradeFeeNumerator, f.TradeFeeDenominator)
}

func (f Fees) WithdrawFee(withdrawAmount uint64) (uint64, bool) {
	return MulDivImbalanced(withdrawAmount, f.WithdrawFeeNumerator, f.WithdrawFeeDenominator)
}

// NormalizedTradeFee applies fee * n / (4 * (n - 1)) to the trade rate, the
// Curve stableswap convention, then charges it on amount.
//
// nCoins of 0 or 1 has no defined fee, and (nCoins-1)*4 must fit the 8-bit
// coin count, so pools above 64 coins are rejected too.
func (f Fees) NormalizedTradeFee(nCoins uint8, amount uint64) (uint64, bool) {
	divisor, ok := normalizedDivisor(nCoins)
	if !ok {
		return 0, false
	}
	adjustedNumerator, ok := MulDiv(f.TradeFeeNumerator, uint64(nCoins), uint64(divisor))
	if !ok {
		return 0, false
	}
	return MulDiv(amount, adjustedNumerator, f.TradeFeeDenominator)
}

func normalizedDivisor(nCoins uint8) (uint8, bool) {
	if nCoins == 0 {
		return 0, false
	}
	d := uint32(nCoins-1) * 4
	if d > math.MaxUint8 {
		return 0, false
	}
	return uint8(d), true
}
