// Package number converts JSON number literals to int64 or float64.
//
// Parse is the only entry point. It accumulates digits into a uint64 without
// inline overflow checks and certifies the result afterwards from digit
// counts; literals it cannot certify are re-parsed by a float or a large
// integer fallback. Results are within 1 ULP of the exact decimal value and
// correctly rounded whenever the fast path's bounds hold (at most 19
// significant digits, decimal exponent within ±308).
//
// The input buffer must be padded (see Padding) and every literal must be
// followed by a structural or whitespace byte, as reported by the caller's
// Classifier. Values are written to a caller-owned Sink, exactly once per
// successful call and never on failure.
//
// Build tags:
//
//	numbertrace        enables the diagnostic hooks installed with SetHooks
//	skipnumberparsing  makes Parse append integer 0 without reading the literal
package number
