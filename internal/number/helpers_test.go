package number

import (
	"math"
	"strings"
)

// terminators accepts the JSON structural characters and whitespace.
type terminators struct{}

func (terminators) IsStructuralOrWhitespace(c byte) bool {
	return strings.IndexByte(",:[]{} \t\n\r", c) >= 0
}

type value struct {
	isFloat bool
	i       int64
	f       float64
}

type recordingSink struct {
	values []value
}

func (s *recordingSink) AppendInt64(v int64)     { s.values = append(s.values, value{i: v}) }
func (s *recordingSink) AppendFloat64(v float64) { s.values = append(s.values, value{isFloat: true, f: v}) }

// padded returns lit followed by a space and Padding zero bytes.
func padded(lit string) []byte {
	buf := make([]byte, 0, len(lit)+1+Padding)
	buf = append(buf, lit...)
	buf = append(buf, ' ')
	return append(buf, make([]byte, Padding)...)
}

// parseLiteral runs Parse the way the document parser does: a leading '-'
// is recognized by the caller.
func parseLiteral(lit string) (value, *recordingSink, error) {
	buf := padded(lit)
	sink := &recordingSink{}
	err := Parse(buf, 0, len(lit) > 0 && lit[0] == '-', terminators{}, sink)
	if len(sink.values) == 0 {
		return value{}, sink, err
	}
	return sink.values[0], sink, err
}

// ulpDistance counts representable doubles between a and b.
func ulpDistance(a, b float64) uint64 {
	if a == b {
		return 0
	}
	ordered := func(f float64) int64 {
		u := int64(math.Float64bits(f))
		if u < 0 {
			return math.MinInt64 - u
		}
		return u
	}
	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}
