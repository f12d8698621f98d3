package simdjson

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		isInt   bool
		integer int64
		float   float64
	}{
		{"0", true, 0, 0},
		{"-0", true, 0, 0},
		{"123", true, 123, 123},
		{"-9223372036854775808", true, math.MinInt64, -9223372036854775808},
		{"1.5", false, 0, 1.5},
		{"-0.0", false, 0, math.Copysign(0, -1)},
		{"1e2", false, 0, 100},
		{"5e-324", false, 0, math.SmallestNonzeroFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseNumber([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseNumber failed: %v", err)
			}
			if n.IsInt() != tt.isInt {
				t.Fatalf("Expected IsInt=%v for %s", tt.isInt, n)
			}
			if v, ok := n.Int64(); ok && v != tt.integer {
				t.Errorf("Expected %d, got %d", tt.integer, v)
			}
			if f := n.Float64(); math.Float64bits(f) != math.Float64bits(tt.float) {
				t.Errorf("Expected %v, got %v", tt.float, f)
			}
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"", 0},
		{"-", 0},
		{"01", 0},
		{"1 ", 1},
		{" 1", 0},
		{"1,2", 1},
		{"1e400", 0},
		{"1.", 0},
		{"12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseNumber([]byte(tt.input))
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("Expected ErrInvalidNumber, got %v", err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) || syntaxErr.Offset != tt.offset {
				t.Errorf("Expected offset %d, got %v", tt.offset, err)
			}
		})
	}
}

func TestNumber_String(t *testing.T) {
	for _, lit := range []string{"42", "-7", "0.1", "1e+21", "-2.5e-07"} {
		n, err := ParseNumber([]byte(lit))
		if err != nil {
			t.Fatalf("ParseNumber(%q) failed: %v", lit, err)
		}
		if n.String() != lit {
			t.Errorf("Expected %q, got %q", lit, n.String())
		}
	}
}
