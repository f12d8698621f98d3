package number

// Padding is the number of readable bytes callers keep past the logical end
// of the input, so the eight-byte digit test near the end stays in bounds.
const Padding = 8

// Classifier reports whether a byte may terminate a number literal.
type Classifier interface {
	IsStructuralOrWhitespace(c byte) bool
}

// Sink receives parsed values. Parse calls exactly one method per
// successful literal.
type Sink interface {
	AppendInt64(v int64)
	AppendFloat64(v float64)
}
