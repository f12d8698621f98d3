package number

import "math"

// extended is an unevaluated sum hi+lo of two float64 with |lo| <= ulp(hi)/2,
// giving about 106 bits of significand. It backs the float fallback, which
// needs more precision than one float64 while summing digit contributions.
type extended struct {
	hi, lo float64
}

func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

func quickTwoSum(a, b float64) extended {
	s := a + b
	return extended{hi: s, lo: b - (s - a)}
}

// mul returns x*b.
func (x extended) mul(b float64) extended {
	p := x.hi * b
	e := math.FMA(x.hi, b, -p)
	return quickTwoSum(p, e+x.lo*b)
}

// div returns x/b.
func (x extended) div(b float64) extended {
	q1 := x.hi / b
	p := q1 * b
	pe := math.FMA(q1, b, -p)
	s, e := twoSum(x.hi, -p)
	e = e - pe + x.lo
	q2 := (s + e) / b
	return quickTwoSum(q1, q2)
}

func (x extended) add(y extended) extended {
	s, e := twoSum(x.hi, y.hi)
	e += x.lo + y.lo
	return quickTwoSum(s, e)
}

// addDigit returns 10x + d.
func (x extended) addDigit(d byte) extended {
	return x.mul(10).add(extended{hi: float64(d)})
}

func (x extended) float64() float64 {
	return x.hi + x.lo
}

// extendedFromUint64 represents i exactly for i below 2^64 - 2^11.
func extendedFromUint64(i uint64) extended {
	hi := float64(i)
	return extended{hi: hi, lo: float64(int64(i - uint64(hi)))}
}

// scale10 returns x * 10^exp10, stepping by 10^22, the largest power of ten
// exact in float64, so the only error is the extended rounding of each step.
func (x extended) scale10(exp10 int64) extended {
	for ; exp10 > maxExactPowerOfTen; exp10 -= maxExactPowerOfTen {
		x = x.mul(powerOfTen[maxExactPowerOfTen])
	}
	for ; exp10 < -maxExactPowerOfTen; exp10 += maxExactPowerOfTen {
		x = x.div(powerOfTen[maxExactPowerOfTen])
	}
	if exp10 < 0 {
		return x.div(powerOfTen[-exp10])
	}
	return x.mul(powerOfTen[exp10])
}
