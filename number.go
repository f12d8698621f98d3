package simdjson

import (
	"strconv"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/scanner"
)

// Number is a parsed JSON number: an int64 for literals without a fraction
// or exponent, a float64 otherwise.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// IsInt reports whether the literal was an integer.
func (n Number) IsInt() bool { return !n.isFloat }

// Int64 returns the integer value; ok is false for floats.
func (n Number) Int64() (v int64, ok bool) { return n.i, !n.isFloat }

// Float64 returns the value as a float64, converting integers.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

func (n *Number) AppendInt64(v int64) {
	*n = Number{i: v}
}

func (n *Number) AppendFloat64(v float64) {
	*n = Number{isFloat: true, f: v}
}

// ParseNumber parses a single JSON number literal. Surrounding whitespace
// is not allowed.
func ParseNumber(lit []byte) (Number, error) {
	var term scanner.Terminators
	for i, c := range lit {
		if term.IsStructuralOrWhitespace(c) {
			return Number{}, &SyntaxError{Offset: i, Err: ErrInvalidNumber}
		}
	}
	var n Number
	buf := scanner.Pad(lit)
	if err := number.Parse(buf, 0, len(lit) > 0 && lit[0] == '-', scanner.Terminators{}, &n); err != nil {
		return Number{}, &SyntaxError{Offset: 0, Err: err}
	}
	return n, nil
}
