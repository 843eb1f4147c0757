package swap_math

import "fmt"

// Fees holds the four fee rates of a swap pool as numerator/denominator
// pairs. A zero denominator makes the matching fee absent. Rates above one
// are allowed.
//
// Field order is the on-chain layout order used by DecodeFees.
type Fees struct {
	AdminTradeFeeNumerator      uint64 `json:"admin_trade_fee_numerator" yaml:"admin_trade_fee_numerator"`
	AdminTradeFeeDenominator    uint64 `json:"admin_trade_fee_denominator" yaml:"admin_trade_fee_denominator"`
	AdminWithdrawFeeNumerator   uint64 `json:"admin_withdraw_fee_numerator" yaml:"admin_withdraw_fee_numerator"`
	AdminWithdrawFeeDenominator uint64 `json:"admin_withdraw_fee_denominator" yaml:"admin_withdraw_fee_denominator"`
	TradeFeeNumerator           uint64 `json:"trade_fee_numerator" yaml:"trade_fee_numerator"`
	TradeFeeDenominator         uint64 `json:"trade_fee_denominator" yaml:"trade_fee_denominator"`
	WithdrawFeeNumerator        uint64 `json:"withdraw_fee_numerator" yaml:"withdraw_fee_numerator"`
	WithdrawFeeDenominator      uint64 `json:"withdraw_fee_denominator" yaml:"withdraw_fee_denominator"`
}

func (f Fees) String() string {
	return fmt.Sprintf("trade=%d/%d admin_trade=%d/%d withdraw=%d/%d admin_withdraw=%d/%d",
		f.TradeFeeNumerator, f.TradeFeeDenominator,
		f.AdminTradeFeeNumerator, f.AdminTradeFeeDenominator,
		f.WithdrawFeeNumerator, f.WithdrawFeeDenominator,
		f.AdminWithdrawFeeNumerator, f.AdminWithdrawFeeDenominator,
	)
}
