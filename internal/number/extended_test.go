package number

import (
	"math"
	"math/big"
	"testing"
)

func TestExtendedFromUint64(t *testing.T) {
	for _, i := range []uint64{0, 1, 1 << 53, 1<<53 + 1, 9999999999999999999, 1<<63 + 1} {
		x := extendedFromUint64(i)
		got, _ := new(big.Float).SetPrec(200).Add(big.NewFloat(x.hi).SetPrec(200), big.NewFloat(x.lo)).Uint64()
		if got != i {
			t.Errorf("extendedFromUint64(%d) = %v + %v", i, x.hi, x.lo)
		}
	}
}

func TestExtendedScale10(t *testing.T) {
	tests := []struct {
		i     uint64
		exp10 int64
		want  float64
	}{
		{1, 0, 1},
		{1, 22, 1e22},
		{1, 23, 1e23},
		{1, -23, 1e-23},
		{17976931348623157, 292, math.MaxFloat64},
		{22250738585072014, -310, 2.2250738585072014e-294},
		{9007199254740993, 0, 9007199254740992},
	}
	for _, tt := range tests {
		got := extendedFromUint64(tt.i).scale10(tt.exp10).float64()
		if got != tt.want {
			t.Errorf("%de%d: expected %v, got %v", tt.i, tt.exp10, tt.want, got)
		}
	}
}
