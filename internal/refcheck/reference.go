// Package refcheck compares the number parser against a reference
// conversion built on encoding/json and strconv.
package refcheck

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Result is one conversion outcome. The zero value is a rejection.
type Result struct {
	Valid bool    `msgpack:"valid" json:"valid"`
	IsInt bool    `msgpack:"is_int" json:"is_int"`
	Int   int64   `msgpack:"int,omitempty" json:"int,omitempty"`
	Float float64 `msgpack:"float,omitempty" json:"float,omitempty"`
}

func (r Result) String() string {
	switch {
	case !r.Valid:
		return "invalid"
	case r.IsInt:
		return strconv.FormatInt(r.Int, 10)
	default:
		return strconv.FormatFloat(r.Float, 'g', -1, 64)
	}
}

// Reference converts lit the slow, correctly rounded way. Integers that do
// not fit in an int64 and floats that overflow a finite double are
// rejected; underflow yields zero.
func Reference(lit string) Result {
	if lit == "" || (lit[0] != '-' && !isDigit(lit[0])) {
		return Result{}
	}
	for i := 0; i < len(lit); i++ {
		if !isDigit(lit[i]) && strings.IndexByte("+-.eE", lit[i]) < 0 {
			return Result{}
		}
	}
	if !json.Valid([]byte(lit)) {
		return Result{}
	}
	if !strings.ContainsAny(lit, ".eE") {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Result{}
		}
		return Result{Valid: true, IsInt: true, Int: v}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Result{}
	}
	return Result{Valid: true, Float: f}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ULP returns how many representable doubles lie between a and b. The two
// zeros are equal.
func ULP(a, b float64) uint64 {
	oa, ob := ordered(a), ordered(b)
	if oa < ob {
		oa, ob = ob, oa
	}
	return uint64(oa) - uint64(ob)
}

// ordered maps a double's bits onto a monotonic signed line.
func ordered(f float64) int64 {
	b := int64(math.Float64bits(f))
	if b < 0 {
		b = math.MinInt64 - b
	}
	return b
}
