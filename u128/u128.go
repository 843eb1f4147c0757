package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

// Uint128 is an unsigned 128-bit integer stored as two little-endian limbs.
// It shares its layout with binary.Uint128 so on-chain values convert freely.
type Uint128 binary.Uint128

var (
	ErrNegative = errors.New("value cannot be negative")
	ErrOverflow = errors.New("value overflows Uint128")
)

// Max is 2^128 - 1.
var Max = Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}

func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func FromBinary(v binary.Uint128) Uint128 {
	return Uint128{Lo: v.Lo, Hi: v.Hi}
}

// Binary returns the value as a little-endian binary.Uint128.
func (u Uint128) Binary() binary.Uint128 {
	out := binary.NewUint128LittleEndian()
	out.Lo, out.Hi = u.Lo, u.Hi
	return *out
}

// FromBig converts v, failing when it is negative or wider than 128 bits.
func FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 {
		return Uint128{}, ErrNegative
	}
	if v.BitLen() > 128 {
		return Uint128{}, ErrOverflow
	}
	return Uint128{
		Lo: new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64(),
		Hi: new(big.Int).Rsh(v, 64).Uint64(),
	}, nil
}

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	v, err := FromBig(i)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// FromString parses a base-10 string.
func FromString(num string) (Uint128, error) {
	var u Uint128
	if _, err := fmt.Sscan(num, &u); err != nil {
		return Uint128{}, fmt.Errorf("parse %q: %w", num, err)
	}
	return u, nil
}

// MustFromString is FromString for constants; it panics on bad input.
func MustFromString(num string) Uint128 {
	u, err := FromString(num)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Uint128) BigInt() *big.Int {
	return u.uint256().ToBig()
}

func (u Uint128) String() string {
	return u.uint256().Dec()
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	return u.uint256().Cmp(v.uint256())
}

// Uint64 narrows u, reporting false when the high limb is set.
func (u Uint128) Uint64() (uint64, bool) {
	if u.Hi != 0 {
		return 0, false
	}
	return u.Lo, true
}

// CheckedMul returns u*v, or false if the product needs more than 128 bits.
func (u Uint128) CheckedMul(v Uint128) (Uint128, bool) {
	z, overflow := new(uint256.Int).MulOverflow(u.uint256(), v.uint256())
	if overflow {
		return Uint128{}, false
	}
	return fromUint256(z)
}

// CheckedDiv returns floor(u/v), or false when v is zero.
func (u Uint128) CheckedDiv(v Uint128) (Uint128, bool) {
	if v.IsZero() {
		return Uint128{}, false
	}
	return fromUint256(new(uint256.Int).Div(u.uint256(), v.uint256()))
}

func (u Uint128) uint256() *uint256.Int {
	return &uint256.Int{u.Lo, u.Hi, 0, 0}
}

func fromUint256(z *uint256.Int) (Uint128, bool) {
	if z[2] != 0 || z[3] != 0 {
		return Uint128{}, false
	}
	return Uint128{Lo: z[0], Hi: z[1]}, true
}
