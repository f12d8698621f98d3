package refcheck

import (
	"math"
	"testing"
)

func TestReference(t *testing.T) {
	tests := []struct {
		lit  string
		want Result
	}{
		{"0", Result{Valid: true, IsInt: true}},
		{"-0", Result{Valid: true, IsInt: true}},
		{"-42", Result{Valid: true, IsInt: true, Int: -42}},
		{"9223372036854775807", Result{Valid: true, IsInt: true, Int: math.MaxInt64}},
		{"-9223372036854775808", Result{Valid: true, IsInt: true, Int: math.MinInt64}},
		{"9223372036854775808", Result{}},
		{"1.5", Result{Valid: true, Float: 1.5}},
		{"1e400", Result{}},
		{"1e-400", Result{Valid: true}},
		{"01", Result{}},
		{"+1", Result{}},
		{"1.", Result{}},
		{"true", Result{}},
		{"1 ", Result{}},
		{"", Result{}},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			if got := Reference(tt.lit); got != tt.want {
				t.Errorf("Reference(%q) = %+v, want %+v", tt.lit, got, tt.want)
			}
		})
	}

	if r := Reference("-0.0"); !r.Valid || r.IsInt || !math.Signbit(r.Float) {
		t.Errorf("Reference(-0.0) = %+v, want negative zero", r)
	}
}

func TestULP(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want uint64
	}{
		{"equal", 1.5, 1.5, 0},
		{"zeros", 0, math.Copysign(0, -1), 0},
		{"next up", 1, math.Nextafter(1, 2), 1},
		{"next down", 1, math.Nextafter(1, 0), 1},
		{"across zero", math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 2},
		{"subnormal to zero", 0, math.SmallestNonzeroFloat64, 1},
		{"binade", 2, math.Nextafter(math.Nextafter(2, 0), 0), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ULP(tt.a, tt.b); got != tt.want {
				t.Errorf("ULP(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := ULP(tt.b, tt.a); got != tt.want {
				t.Errorf("ULP is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}
