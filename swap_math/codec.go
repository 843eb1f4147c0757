package swap_math

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	binary "github.com/gagliardetto/binary"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// FeesLen is the encoded size of Fees: eight little-endian u64 values.
const FeesLen = 8 * 8

var feeKeys = []string{
	"admin_trade_fee_numerator",
	"admin_trade_fee_denominator",
	"admin_withdraw_fee_numerator",
	"admin_withdraw_fee_denominator",
	"trade_fee_numerator",
	"trade_fee_denominator",
	"withdraw_fee_numerator",
	"withdraw_fee_denominator",
}

// DecodeFees reads a fee block in account layout. Bytes past FeesLen are
// ignored.
func DecodeFees(data []byte) (Fees, error) {
	if len(data) < FeesLen {
		return Fees{}, fmt.Errorf("fees: need %d bytes, got %d", FeesLen, len(data))
	}
	var out Fees
	if err := binary.NewBorshDecoder(data[:FeesLen]).Decode(&out); err != nil {
		return Fees{}, fmt.Errorf("fees: decode: %w", err)
	}
	return out, nil
}

// Marshal encodes f in the layout DecodeFees reads.
func (f Fees) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBorshEncoder(buf).Encode(f); err != nil {
		return nil, fmt.Errorf("fees: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseFeesJSON reads a fee schedule from a JSON object keyed by the
// snake_case field names. Values may be plain digit numbers or decimal
// strings; every key is required.
func ParseFeesJSON(data []byte) (Fees, error) {
	if !gjson.ValidBytes(data) {
		return Fees{}, errors.New("fees: invalid json")
	}
	results := gjson.GetManyBytes(data, feeKeys...)
	values := make([]uint64, len(feeKeys))
	for i, r := range results {
		if !r.Exists() {
			return Fees{}, fmt.Errorf("fees: missing %s", feeKeys[i])
		}
		if r.Type != gjson.Number && r.Type != gjson.String {
			return Fees{}, fmt.Errorf("fees: %s: expected number, got %s", feeKeys[i], r.Type)
		}
		raw := r.String()
		if r.Type == gjson.Number {
			// String() reformats 1.0 and 1e3 as integers
			raw = r.Raw
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Fees{}, fmt.Errorf("fees: %s: %w", feeKeys[i], err)
		}
		values[i] = v
	}
	return Fees{
		AdminTradeFeeNumerator:      values[0],
		AdminTradeFeeDenominator:    values[1],
		AdminWithdrawFeeNumerator:   values[2],
		AdminWithdrawFeeDenominator: values[3],
		TradeFeeNumerator:           values[4],
		TradeFeeDenominator:         values[5],
		WithdrawFeeNumerator:        values[6],
		WithdrawFeeDenominator:      values[7],
	}, nil
}

// ParseFeesYAML reads a fee schedule from a YAML mapping. Unknown keys are
// rejected; missing keys stay zero.
func ParseFeesYAML(data []byte) (Fees, error) {
	var out Fees
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return Fees{}, fmt.Errorf("fees: parse yaml: %w", err)
	}
	return out, nil
}
