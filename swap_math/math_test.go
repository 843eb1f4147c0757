package swap_math

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigMulDiv(a, b, c uint64) (uint64, bool) {
	if c == 0 {
		return 0, false
	}
	p := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	q := p.Quo(p, new(big.Int).SetUint64(c))
	if !q.IsUint64() {
		return 0, false
	}
	return q.Uint64(), true
}

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint64
		want    uint64
		ok      bool
	}{
		{"small exact", 6, 7, 2, 21, true},
		{"floors", 10, 10, 3, 33, true},
		{"zero operand", 0, 1 << 40, 7, 0, true},
		{"divide by zero narrow", 6, 7, 0, 0, false},
		{"divide by zero wide", 1 << 40, 7, 0, 0, false},
		{"quotient too wide", 1 << 40, 1 << 40, 1, 0, false},
		{"wide exact", 1 << 40, 1 << 40, 1 << 20, 1 << 60, true},
		{"threshold product", 1 << 32, 1 << 32, 2, 1 << 63, true},
		{"threshold product too wide", 1 << 32, 1 << 32, 1, 0, false},
		{"max over max", math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, true},
		{"max times one", math.MaxUint64, 1, 1, math.MaxUint64, true},
		{"just past threshold", 1<<32 + 1, 3, 3, 1<<32 + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulDiv(tt.a, tt.b, tt.c)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMulDivImbalanced(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint64
		want    uint64
		ok      bool
	}{
		{"fee shape", 1_000_000, 25, 10_000, 2_500, true},
		{"large amount narrow", 1 << 47, 3, 4, 3 << 45, true},
		{"amount past threshold", 1<<48 + 1, 1 << 10, 1 << 10, 1<<48 + 1, true},
		{"rate past threshold", 1_000, 1<<16 + 1, 1, 1_000 * (1<<16 + 1), true},
		{"threshold product", 1 << 48, 1 << 16, 4, 1 << 62, true},
		{"divide by zero", 1_000, 1, 0, 0, false},
		{"quotient too wide", math.MaxUint64, 2, 1, 0, false},
		{"max amount full rate", math.MaxUint64, 10_000, 10_000, math.MaxUint64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulDivImbalanced(tt.a, tt.b, tt.c)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMulDivZeroDivisor(t *testing.T) {
	for _, a := range []uint64{0, 1, 1 << 32, 1 << 48, math.MaxUint64} {
		for _, b := range []uint64{0, 1, 1 << 16, 1 << 33, math.MaxUint64} {
			_, ok := MulDiv(a, b, 0)
			assert.False(t, ok, "MulDiv(%d, %d, 0)", a, b)
			_, ok = MulDivImbalanced(a, b, 0)
			assert.False(t, ok, "MulDivImbalanced(%d, %d, 0)", a, b)
		}
	}
}

func FuzzMulDiv(f *testing.F) {
	f.Add(uint64(6), uint64(7), uint64(2))
	f.Add(uint64(1<<40), uint64(1<<40), uint64(1))
	f.Add(uint64(1<<32), uint64(1<<32), uint64(2))
	f.Add(uint64(math.MaxUint64), uint64(math.MaxUint64), uint64(math.MaxUint64))
	f.Add(uint64(1), uint64(1), uint64(0))

	f.Fuzz(func(t *testing.T, a, b, c uint64) {
		want, wantOK := bigMulDiv(a, b, c)
		got, ok := MulDiv(a, b, c)
		if ok != wantOK || got != want {
			t.Fatalf("MulDiv(%d, %d, %d) = %d, %v; want %d, %v", a, b, c, got, ok, want, wantOK)
		}
	})
}

func FuzzMulDivImbalanced(f *testing.F) {
	f.Add(uint64(1_000_000), uint64(25), uint64(10_000))
	f.Add(uint64(1<<48), uint64(1<<16), uint64(1))
	f.Add(uint64(math.MaxUint64), uint64(3), uint64(2))

	f.Fuzz(func(t *testing.T, a, b, c uint64) {
		want, wantOK := bigMulDiv(a, b, c)
		got, ok := MulDivImbalanced(a, b, c)
		if ok != wantOK || got != want {
			t.Fatalf("MulDivImbalanced(%d, %d, %d) = %d, %v; want %d, %v", a, b, c, got, ok, want, wantOK)
		}
	})
}

func BenchmarkMulDivNarrow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = MulDiv(1_000_000, 25, 10_000)
	}
}

func BenchmarkMulDivWide(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = MulDiv(1<<50, 1<<40, 1<<30)
	}
}
