package refcheck

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
)

// GenerateOptions selects the literal families Generate produces. Count
// is the number of literals per enabled random family.
type GenerateOptions struct {
	Seed     int64
	Count    int
	Integers bool
	Shortest bool
	Full     bool
	Halfway  bool
	Long     bool
	Edge     bool
}

// EdgeLiterals are fixed literals around every threshold of the parser.
var EdgeLiterals = []string{
	"0", "-0", "0.0", "-0.0", "0e0", "-0e-0", "1", "-1",
	"01", "-01", "00", "1.", ".5", "-", "-.5", "+1", "1e", "1e+", "1e-", "12a", "1.5x", "0x10", "1_000",
	"9007199254740992", "9007199254740993", "9007199254740993.0",
	"999999999999999999", "1000000000000000000",
	"9223372036854775807", "-9223372036854775808",
	"9223372036854775808", "-9223372036854775809",
	"123456789012345678901234567890",
	"1e22", "1e23", "1e308", "1e309", "1e400", "-1e400",
	"1e-307", "1e-308", "1e-309", "1e-323", "1e-324", "1e-400", "-1e-400",
	"2.2250738585072014e-308", "2.2250738585072011e-308", "2.225073858507201136057409796709131975934819546351645648e-308",
	"4.9406564584124654e-324", "2.4703282292062327e-324", "2.4703282292062328e-324",
	"1.7976931348623157e308", "1.7976931348623158e308", "1.7976931348623159e308",
	"3.14159265358979323846", "3.141592653589793238462643383279502884197169399375105820974944",
	"0.1", "0.2", "0.3", "0.30000000000000004",
	"0.000000000000000000001234567890123456789", "0.00000000000000000000000000000000000001e10",
	"12345678901234567890.12345678901234567890e-10",
	"1.0E5", "1E+5", "1e-0", "123456.789e-3",
	"89255.0e-22", "8.98846567431158e307", "4503599627370496.5", "4503599627370497.5",
}

// Generate returns a deterministic corpus for opts.Seed.
func Generate(opts GenerateOptions) []string {
	rng := rand.New(rand.NewSource(opts.Seed))
	var out []string
	if opts.Edge {
		out = append(out, EdgeLiterals...)
	}
	for i := 0; i < opts.Count; i++ {
		if opts.Integers {
			out = append(out, randomInteger(rng))
		}
		if opts.Shortest {
			out = append(out, strconv.FormatFloat(randomFloat(rng), 'g', -1, 64))
		}
		if opts.Full {
			out = append(out, strconv.FormatFloat(randomFloat(rng), 'e', 16, 64))
		}
		if opts.Halfway {
			out = append(out, halfway(rng))
		}
		if opts.Long {
			out = append(out, longDigits(rng))
		}
	}
	return out
}

func randomInteger(rng *rand.Rand) string {
	v := int64(rng.Uint64())
	// Spread magnitudes so short literals are as common as long ones.
	if shift := rng.Intn(64); shift > 0 {
		v >>= shift
	}
	return strconv.FormatInt(v, 10)
}

// randomFloat draws uniformly over bit patterns, so every exponent,
// subnormals included, is equally likely.
func randomFloat(rng *rand.Rand) float64 {
	for {
		f := math.Float64frombits(rng.Uint64())
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}
}

// halfway writes the exact midpoint between a random positive double and
// its successor, as integer digits and a decimal exponent.
func halfway(rng *rand.Rand) string {
	// Binary exponents within ±200 keep the literal under about 160 digits.
	frac, exp := math.Frexp(math.Ldexp(1+rng.Float64(), rng.Intn(401)-200))
	mant := uint64(math.Ldexp(frac, 53))
	exp -= 53 // value = mant * 2^exp

	mid := new(big.Int).SetUint64(2*mant + 1)
	exp-- // (2*mant+1) * 2^exp
	if exp >= 0 {
		return mid.Lsh(mid, uint(exp)).String()
	}
	k := -exp
	mid.Mul(mid, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
	return mid.String() + "e-" + strconv.Itoa(k)
}

// longDigits writes a literal with 20 to 60 significant digits, sometimes
// behind a run of leading zeros.
func longDigits(rng *rand.Rand) string {
	n := 20 + rng.Intn(41)
	buf := make([]byte, 0, n+40)
	if rng.Intn(4) == 0 {
		buf = append(buf, '-')
	}
	point := rng.Intn(n)
	if rng.Intn(3) == 0 {
		buf = append(buf, '0', '.')
		for z := rng.Intn(25); z > 0; z-- {
			buf = append(buf, '0')
		}
		point = -1
	}
	buf = append(buf, byte('1'+rng.Intn(9)))
	for i := 1; i < n; i++ {
		if i == point {
			buf = append(buf, '.')
		}
		buf = append(buf, byte('0'+rng.Intn(10)))
	}
	if rng.Intn(2) == 0 {
		buf = append(buf, 'e')
		buf = strconv.AppendInt(buf, int64(rng.Intn(61)-30), 10)
	}
	return string(buf)
}
