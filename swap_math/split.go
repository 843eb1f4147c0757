package swap_math

import (
	"errors"
	"fmt"
)

// ErrNotRepresentable is returned when a fee computation overflows, divides
// by zero or would leave a negative amount.
var ErrNotRepresentable = errors.New("swap_math: result not representable")

// TradeFeeSplit is the breakdown of a trade fee taken from an output amount.
type TradeFeeSplit struct {
	TradeFee       uint64
	AdminFee       uint64
	AmountAfterFee uint64
}

// WithdrawFeeSplit is the breakdown of a withdraw fee taken from a
// withdrawn amount.
type WithdrawFeeSplit struct {
	WithdrawFee    uint64
	AdminFee       uint64
	AmountAfterFee uint64
}

// SplitTradeFee charges the trade fee on amount and carves the admin share
// out of that fee.
func SplitTradeFee(fc FeeCalculator, amount uint64) (TradeFeeSplit, error) {
	fee, ok := fc.TradeFee(amount)
	if !ok {
		return TradeFeeSplit{}, fmt.Errorf("trade fee: %w", ErrNotRepresentable)
	}
	adminFee, ok := fc.AdminTradeFee(fee)
	if !ok {
		return TradeFeeSplit{}, fmt.Errorf("admin trade fee: %w", ErrNotRepresentable)
	}
	if fee > amount {
		return TradeFeeSplit{}, fmt.Errorf("trade fee %d exceeds amount %d: %w", fee, amount, ErrNotRepresentable)
	}
	return TradeFeeSplit{TradeFee: fee, AdminFee: adminFee, AmountAfterFee: amount - fee}, nil
}

// SplitWithdrawFee is SplitTradeFee for the withdraw and admin-withdraw
// rates.
func SplitWithdrawFee(fc FeeCalculator, amount uint64) (WithdrawFeeSplit, error) {
	fee, ok := fc.WithdrawFee(amount)
	if !ok {
		return WithdrawFeeSplit{}, fmt.Errorf("withdraw fee: %w", ErrNotRepresentable)
	}
	adminFee, ok := fc.AdminWithdrawFee(fee)
	if !ok {
		return WithdrawFeeSplit{}, fmt.Errorf("admin withdraw fee: %w", ErrNotRepresentable)
	}
	if fee > amount {
		return WithdrawFeeSplit{}, fmt.Errorf("withdraw fee %d exceeds amount %d: %w", fee, amount, ErrNotRepresentable)
	}
	return WithdrawFeeSplit{WithdrawFee: fee, AdminFee: adminFee, AmountAfterFee: amount - fee}, nil
}
