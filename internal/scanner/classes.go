package scanner

// Character classes. A byte may belong to several.
const (
	ClassStructural uint8 = 1 << iota // {}[]:,
	ClassWhitespace                   // space, tab, newline, carriage return
	ClassQuote                        // "
	ClassBackslash                    // \
	ClassDigit                        // 0-9
	ClassSign                         // + -
	ClassAlpha                        // a-z A-Z
)

// CharClassLookup classifies every byte value; zero means none of the above.
var CharClassLookup = buildCharClassLookup()

func buildCharClassLookup() [256]uint8 {
	var t [256]uint8
	for _, c := range []byte("{}[]:,") {
		t[c] |= ClassStructural
	}
	for _, c := range []byte(" \t\n\r") {
		t[c] |= ClassWhitespace
	}
	t['"'] |= ClassQuote
	t['\\'] |= ClassBackslash
	t['+'] |= ClassSign
	t['-'] |= ClassSign
	for c := '0'; c <= '9'; c++ {
		t[c] |= ClassDigit
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= ClassAlpha
		t[c-'a'+'A'] |= ClassAlpha
	}
	return t
}

// Terminators is the classifier number parsing uses to decide where a
// literal may end.
type Terminators struct{}

// IsStructuralOrWhitespace reports whether c is one of {}[]:, or JSON
// whitespace.
func (Terminators) IsStructuralOrWhitespace(c byte) bool {
	return CharClassLookup[c]&(ClassStructural|ClassWhitespace) != 0
}

// endsScalar reports whether c ends a bare value such as a number or true.
func endsScalar(c byte) bool {
	return CharClassLookup[c]&(ClassStructural|ClassWhitespace|ClassQuote) != 0
}
