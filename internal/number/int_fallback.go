package number

import "math/bits"

// parseLargeInteger re-parses an integer literal of IntFallbackDigits or
// more digits with overflow checks. It is only called from Parse, after the
// literal's syntax has been checked.
func parseLargeInteger(buf []byte, offset int, foundMinus bool, cls Classifier, sink Sink) error {
	p := offset
	negative := false
	if foundMinus {
		p++
		negative = true
	}
	var i uint64
	if byteAt(buf, p) == '0' {
		p++
	} else {
		for c := byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
			hi, lo := bits.Mul64(i, 10)
			if hi != 0 {
				return invalidNumber(buf, offset)
			}
			var carry uint64
			if i, carry = bits.Add64(lo, uint64(c-'0'), 0); carry != 0 {
				return invalidNumber(buf, offset)
			}
			p++
		}
	}
	if !cls.IsStructuralOrWhitespace(byteAt(buf, p)) {
		return invalidNumber(buf, offset)
	}
	// int64 holds magnitudes up to 2^63 when negative, 2^63-1 otherwise.
	if negative {
		if i > 1<<63 {
			return invalidNumber(buf, offset)
		}
		return emitInteger(sink, int64(0-i), buf, offset)
	}
	if i >= 1<<63 {
		return invalidNumber(buf, offset)
	}
	return emitInteger(sink, int64(i), buf, offset)
}
