package number

import "math"

// scaleSubnormal computes x * 10^exp10 for exp10 below -MaxPowerOfTen,
// where powerOfTen has no entry. Scaling by 1e-308 first keeps the
// intermediate normal; the result may round to a subnormal or to zero.
func scaleSubnormal(x float64, exp10 int64) float64 {
	n := exp10 + MaxPowerOfTen
	if n < -400 {
		n = -400 // math.Pow10 is already 0 here
	}
	return x * 1e-308 * math.Pow10(int(n))
}
