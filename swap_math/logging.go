package swap_math

import "log/slog"

// LoggingCalculator forwards to another FeeCalculator and logs every absent
// result at debug level. Results pass through unchanged.
type LoggingCalculator struct {
	next   FeeCalculator
	logger *slog.Logger
}

var _ FeeCalculator = (*LoggingCalculator)(nil)

type Option func(*LoggingCalculator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *LoggingCalculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewLoggingCalculator(next FeeCalculator, opts ...Option) *LoggingCalculator {
	c := &LoggingCalculator{
		next:   next,
		logger: slog.Default(),
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

func (c *LoggingCalculator) AdminTradeFee(feeAmount uint64) (uint64, bool) {
	v, ok := c.next.AdminTradeFee(feeAmount)
	c.logAbsent(ok, "admin_trade_fee", slog.Uint64("amount", feeAmount))
	return v, ok
}

func (c *LoggingCalculator) AdminWithdrawFee(feeAmount uint64) (uint64, bool) {
	v, ok := c.next.AdminWithdrawFee(feeAmount)
	c.logAbsent(ok, "admin_withdraw_fee", slog.Uint64("amount", feeAmount))
	return v, ok
}

func (c *LoggingCalculator) TradeFee(tradeAmount uint64) (uint64, bool) {
	v, ok := c.next.TradeFee(tradeAmount)
	c.logAbsent(ok, "trade_fee", slog.Uint64("amount", tradeAmount))
	return v, ok
}

func (c *LoggingCalculator) WithdrawFee(withdrawAmount uint64) (uint64, bool) {
	v, ok := c.next.WithdrawFee(withdrawAmount)
	c.logAbsent(ok, "withdraw_fee", slog.Uint64("amount", withdrawAmount))
	return v, ok
}

func (c *LoggingCalculator) NormalizedTradeFee(nCoins uint8, amount uint64) (uint64, bool) {
	v, ok := c.next.NormalizedTradeFee(nCoins, amount)
	c.logAbsent(ok, "normalized_trade_fee", slog.Int("n_coins", int(nCoins)), slog.Uint64("amount", amount))
	return v, ok
}

func (c *LoggingCalculator) logAbsent(ok bool, op string, attrs ...slog.Attr) {
	if ok {
		return
	}
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("op", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	c.logger.Debug("swap_math: fee not representable", args...)
}
