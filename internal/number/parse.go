package number

import "math"

// Parse converts the number literal starting at buf[offset] and appends it
// to sink. When foundMinus is set, buf[offset] is the '-' the caller already
// recognized and the digits start at offset+1.
//
// The literal must be followed by a byte cls accepts as structural or
// whitespace. On failure nothing is appended and ErrInvalidNumber is
// returned.
func Parse(buf []byte, offset int, foundMinus bool, cls Classifier, sink Sink) error {
	if skipNumberParsing {
		sink.AppendInt64(0)
		return nil
	}

	p := offset
	negative := false
	if foundMinus {
		p++
		negative = true
		if !isDigit(byteAt(buf, p)) {
			return invalidNumber(buf, offset)
		}
	}
	startDigits := p

	var i uint64 // unsigned so wrapping is defined; certified below
	c := byteAt(buf, p)
	if c == '0' {
		p++
		if invalidAfterLeadingZero(byteAt(buf, p)) {
			return invalidNumber(buf, offset)
		}
	} else {
		if !isDigit(c) {
			return invalidNumber(buf, offset)
		}
		i = uint64(c - '0')
		p++
		for c = byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
			i = 10*i + uint64(c-'0')
			p++
		}
	}
	digitCount := p - startDigits

	isFloat := false
	var fracDigits int64
	if byteAt(buf, p) == '.' {
		isFloat = true
		p++
		firstAfterPeriod := p
		c = byteAt(buf, p)
		if !isDigit(c) {
			return invalidNumber(buf, offset)
		}
		i = i*10 + uint64(c-'0')
		p++
		if p+8 <= len(buf) && isMadeOfEightDigits(buf[p:]) {
			i = i*100000000 + uint64(accelerator.ParseEightDigits(buf[p:]))
			p += 8
		}
		for c = byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
			i = i*10 + uint64(c-'0')
			p++
		}
		fracDigits = int64(p - firstAfterPeriod)
	}

	var expNumber int64
	if c = byteAt(buf, p); c == 'e' || c == 'E' {
		isFloat = true
		var ok bool
		if p, expNumber, ok = parseExponent(buf, p+1); !ok {
			return invalidNumber(buf, offset)
		}
	}

	if !cls.IsStructuralOrWhitespace(byteAt(buf, p)) {
		return invalidNumber(buf, offset)
	}

	if !isFloat {
		if digitCount >= IntFallbackDigits {
			return parseLargeInteger(buf, offset, foundMinus, cls, sink)
		}
		v := int64(i)
		if negative {
			v = int64(0 - i)
		}
		return emitInteger(sink, v, buf, offset)
	}

	totalDigits := int64(digitCount) + fracDigits
	if totalDigits > MaxFastDigits {
		totalDigits -= insignificantZeros(buf, startDigits, digitCount)
		if totalDigits > MaxFastDigits {
			return parseFloat(buf, offset, foundMinus, cls, sink)
		}
	}
	totalExponent := expNumber - fracDigits
	if totalExponent > MaxPowerOfTen || totalExponent < -MaxPowerOfTen {
		return parseFloat(buf, offset, foundMinus, cls, sink)
	}
	d, ok := scale(i, totalExponent, negative)
	if !ok {
		return invalidNumber(buf, offset)
	}
	return emitFloat(sink, d, buf, offset)
}

// parseExponent parses an optional sign and the exponent digits at buf[p]
// and returns the position after them.
func parseExponent(buf []byte, p int) (int, int64, bool) {
	neg := false
	switch byteAt(buf, p) {
	case '-':
		neg = true
		p++
	case '+':
		p++
	}
	c := byteAt(buf, p)
	if !isDigit(c) {
		return p, 0, false
	}
	exp := int64(c - '0')
	p++
	for c = byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
		if exp > ExponentGuard {
			return p, 0, false
		}
		exp = 10*exp + int64(c-'0')
		p++
	}
	if neg {
		exp = -exp
	}
	return p, exp, true
}

// insignificantZeros counts the digits of "0.000..." that carry no
// precision: the lone integer zero and the zeros right after the point.
func insignificantZeros(buf []byte, startDigits, digitCount int) int64 {
	if digitCount != 1 || buf[startDigits] != '0' {
		return 0
	}
	n := int64(1)
	if byteAt(buf, startDigits+1) == '.' {
		for p := startDigits + 2; byteAt(buf, p) == '0'; p++ {
			n++
		}
	}
	return n
}

// scale computes ±i * 10^exp10 for |exp10| <= MaxPowerOfTen. ok is false
// when the result is not finite.
func scale(i uint64, exp10 int64, neg bool) (float64, bool) {
	// Both operands exact: one IEEE operation, one rounding.
	if i <= maxExactMantissa && exp10 >= -maxExactPowerOfTen && exp10 <= maxExactPowerOfTen {
		d := float64(i)
		if exp10 < 0 {
			d /= powerOfTen[-exp10]
		} else {
			d *= powerOfTen[exp10]
		}
		return signed(d, neg), true
	}
	if d, ok := eiselLemire(i, exp10, neg); ok {
		return d, true
	}
	// Undecided or subnormal: scale in extended precision, which rounds
	// once at the end.
	d := extendedFromUint64(i).scale10(exp10).float64()
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, false
	}
	return signed(d, neg), true
}

func signed(d float64, neg bool) float64 {
	if neg {
		return -d
	}
	return d
}

func emitInteger(sink Sink, v int64, buf []byte, offset int) error {
	sink.AppendInt64(v)
	if hooksEnabled {
		foundInteger(v, buf, offset)
	}
	return nil
}

func emitFloat(sink Sink, d float64, buf []byte, offset int) error {
	sink.AppendFloat64(d)
	if hooksEnabled {
		foundFloat(d, buf, offset)
	}
	return nil
}

func invalidNumber(buf []byte, offset int) error {
	if hooksEnabled {
		foundInvalidNumber(buf, offset)
	}
	return ErrInvalidNumber
}
