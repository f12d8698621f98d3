package number

import "math"

// parseFloat re-parses a float literal the fast path could not certify:
// more than MaxFastDigits significant digits, or a decimal exponent beyond
// ±MaxPowerOfTen. It is only called from Parse.
//
// The literal is read once into two accumulators. The first 19 significant
// digits feed an Eisel-Lemire attempt; if the dropped digits could change
// the rounding, the first maxWideDigits digits are scaled in extended
// precision instead.
func parseFloat(buf []byte, offset int, foundMinus bool, cls Classifier, sink Sink) error {
	p := offset
	negative := false
	if foundMinus {
		p++
		negative = true
	}

	var w wideDecimal
	var m mantissa
	if byteAt(buf, p) == '0' {
		p++
	} else {
		for c := byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
			w.integerDigit(c - '0')
			m.integerDigit(c - '0')
			p++
		}
	}

	if byteAt(buf, p) == '.' {
		p++
		if !isDigit(byteAt(buf, p)) {
			return invalidNumber(buf, offset)
		}
		for c := byteAt(buf, p); isDigit(c); c = byteAt(buf, p) {
			w.fractionDigit(c - '0')
			m.fractionDigit(c - '0')
			p++
		}
	}

	var exp int64
	if c := byteAt(buf, p); c == 'e' || c == 'E' {
		var ok bool
		if p, exp, ok = parseExponent(buf, p+1); !ok {
			return invalidNumber(buf, offset)
		}
	}
	if !cls.IsStructuralOrWhitespace(byteAt(buf, p)) {
		return invalidNumber(buf, offset)
	}

	if d, ok := m.eiselLemire(exp, negative); ok {
		return emitFloat(sink, d, buf, offset)
	}
	d, ok := w.scale(exp)
	if !ok {
		return invalidNumber(buf, offset)
	}
	return emitFloat(sink, signed(d, negative), buf, offset)
}

// maxWideDigits bounds the digits wideDecimal accumulates. It is well past
// the ~32 decimal digits an extended carries, so dropped digits can only
// move the final rounding, and the accumulator stays far below 1e308.
const maxWideDigits = 40

// wideDecimal is a literal's leading significant digits as an extended
// integer, with the decimal exponent that goes with them.
type wideDecimal struct {
	x      extended
	digits int
	exp10  int64
}

func (w *wideDecimal) integerDigit(d byte) {
	if w.digits < maxWideDigits {
		w.x = w.x.addDigit(d)
		w.digits++
		return
	}
	w.exp10++
}

func (w *wideDecimal) fractionDigit(d byte) {
	switch {
	case w.digits == 0 && d == 0:
		w.exp10--
	case w.digits < maxWideDigits:
		w.x = w.x.addDigit(d)
		w.digits++
		w.exp10--
	}
}

// scale returns the accumulated digits times 10^(w.exp10+exp). ok is false
// when the value exceeds a finite double.
func (w *wideDecimal) scale(exp int64) (float64, bool) {
	if w.digits == 0 {
		return 0, true
	}
	e := w.exp10 + exp
	// The value lies in [10^top, 10^(top+1)).
	top := int64(w.digits) - 1 + e
	var d float64
	switch {
	case top > MaxPowerOfTen:
		return 0, false
	case top < minSubnormalPowerOfTen:
		return 0, true
	case e < -MaxPowerOfTen:
		d = scaleSubnormal(w.x.scale10(e+MaxPowerOfTen).float64(), -MaxPowerOfTen)
	default:
		d = w.x.scale10(e).float64()
	}
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, false
	}
	return d, true
}

// mantissa keeps the first MaxFastDigits significant digits of a literal
// and the decimal exponent that goes with them.
type mantissa struct {
	man       uint64
	digits    int
	exp10     int64
	truncated bool
}

func (m *mantissa) integerDigit(d byte) {
	if m.digits < MaxFastDigits {
		m.man = m.man*10 + uint64(d)
		m.digits++
		return
	}
	m.exp10++
	m.truncated = m.truncated || d != 0
}

func (m *mantissa) fractionDigit(d byte) {
	switch {
	case m.man == 0 && d == 0:
		m.exp10--
	case m.digits < MaxFastDigits:
		m.man = m.man*10 + uint64(d)
		m.digits++
		m.exp10--
	default:
		m.truncated = m.truncated || d != 0
	}
}

// eiselLemire converts m * 10^exp. When digits were dropped, the result is
// only trusted if rounding man and man+1 agrees.
func (m *mantissa) eiselLemire(exp int64, neg bool) (float64, bool) {
	exp10 := m.exp10 + exp
	d, ok := eiselLemire(m.man, exp10, neg)
	if !ok || !m.truncated {
		return d, ok
	}
	d1, ok := eiselLemire(m.man+1, exp10, neg)
	if !ok || d1 != d {
		return 0, false
	}
	return d, true
}
