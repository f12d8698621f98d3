//go:build skipnumberparsing

package number

import "testing"

func TestSkipNumberParsing(t *testing.T) {
	for _, lit := range []string{"12", "-3.5", "1e400", "01"} {
		v, sink, err := parseLiteral(lit)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", lit, err)
		}
		if len(sink.values) != 1 || v.isFloat || v.i != 0 {
			t.Errorf("Parse(%q): expected integer 0, got %+v", lit, sink.values)
		}
	}
}
