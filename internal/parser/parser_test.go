package parser

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/scanner"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/tape"
)

// parse materializes a document the way the root package's Interface does.
func parse(input string) (interface{}, error) {
	p := New()
	defer p.Release()
	tp := tape.Get()
	defer tp.Release()

	if err := p.Parse([]byte(input), tp); err != nil {
		return nil, err
	}
	it := tp.Iter()
	return it.Interface(), nil
}

func TestParser_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"null", "null", nil},
		{"true", "true", true},
		{"false", "false", false},
		{"integer", "42", int64(42)},
		{"negative integer", "-123", int64(-123)},
		{"float", "3.14", 3.14},
		{"string", `"hello"`, "hello"},
		{"empty string", `""`, ""},
		{"simple object", `{"key":"value"}`, map[string]interface{}{"key": "value"}},
		{"simple array", `[1,2,3]`, []interface{}{int64(1), int64(2), int64(3)}},
		{"empty containers", `[{},[]]`, []interface{}{map[string]interface{}{}, []interface{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestParser_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		// Integers
		{"zero", "0", int64(0)},
		{"negative zero", "-0", int64(0)},
		{"positive", "123", int64(123)},
		{"negative", "-456", int64(-456)},
		{"large positive", "9223372036854775807", int64(9223372036854775807)},
		{"large negative", "-9223372036854775808", int64(-9223372036854775808)},

		// Floats
		{"simple float", "1.5", 1.5},
		{"negative float", "-2.5", -2.5},
		{"exponential", "1e10", 1e10},
		{"negative exponential", "-1e10", -1e10},
		{"exponential with plus", "1e+10", 1e+10},
		{"small exponential", "1e-10", 1e-10},
		{"complex float", "123.456e-7", 123.456e-7},
		{"max float", "1.7976931348623157e+308", 1.7976931348623157e+308},
		{"min normal", "2.2250738585072014e-308", 2.2250738585072014e-308},
		{"underflow to zero", "1e-400", 0.0},
		{"long mantissa", "3.14159265358979323846264338327950288", math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if result != tt.expected {
				t.Errorf("Expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestParser_NumberTerminators(t *testing.T) {
	inputs := []string{
		`[1,2]`, `{"a":1}`, `[1 ]`, "[1\n]", "[1\t,2]", `{"a":-0.5e-3}`, ` 7 `,
	}
	for _, input := range inputs {
		if _, err := parse(input); err != nil {
			t.Errorf("Parse(%q) failed: %v", input, err)
		}
	}
}

func TestParser_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"with spaces", `"hello world"`, "hello world"},
		{"escaped quote", `"say \"hello\""`, `say "hello"`},
		{"escaped backslash", `"path\\to\\file"`, `path\to\file`},
		{"escaped newline", `"line1\nline2"`, "line1\nline2"},
		{"escaped tab", `"col1\tcol2"`, "col1\tcol2"},
		{"unicode", `"hello \u0077orld"`, "hello world"},
		{"utf8", `"hello 世界"`, "hello 世界"},
		{"escaped unicode", `"hello \u4e16\u754c"`, "hello 世界"},
		{"surrogate pair", `"\ud83d\ude00"`, "😀"},
		{"lone surrogate", `"\ud83d!"`, "\uFFFD!"},
		{"structural bytes", `"[1,2]:{}"`, "[1,2]:{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParser_Complex(t *testing.T) {
	complexJSON := `{
		"readings": [
			{"sensor": "a1", "value": 21.5, "raw": 2150, "ok": true},
			{"sensor": "b2", "value": -0.000125, "raw": -1, "ok": false}
		],
		"count": 2,
		"scale": 1e-2
	}`

	result, err := parse(complexJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	obj, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object, got %T", result)
	}
	if obj["count"] != int64(2) {
		t.Errorf("Expected count=2, got %v", obj["count"])
	}
	if obj["scale"] != 0.01 {
		t.Errorf("Expected scale=0.01, got %v", obj["scale"])
	}

	readings, ok := obj["readings"].([]interface{})
	if !ok || len(readings) != 2 {
		t.Fatalf("Expected 2 readings, got %v", obj["readings"])
	}
	second := readings[1].(map[string]interface{})
	if second["value"] != -0.000125 || second["raw"] != int64(-1) || second["ok"] != false {
		t.Errorf("Unexpected second reading: %v", second)
	}
}

func TestParser_ErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		cause  error
	}{
		{"empty", "", 0, ErrEmpty},
		{"whitespace only", "   ", 0, ErrEmpty},
		{"unclosed object", "{", 1, ErrUnexpectedEnd},
		{"trailing comma", `{"key":"value",}`, 15, ErrUnexpectedToken},
		{"missing comma", `[1 2]`, 3, ErrUnexpectedToken},
		{"missing quotes", `{key:"value"}`, 1, scanner.ErrUnexpectedByte},
		{"invalid number", `{"key":12.}`, 7, number.ErrInvalidNumber},
		{"leading zero", `[1, 2, 01]`, 7, number.ErrInvalidNumber},
		{"number followed by letter", `[12a]`, 1, number.ErrInvalidNumber},
		{"number followed by quote", `[1"a"]`, 1, number.ErrInvalidNumber},
		{"number too large", `[1e400]`, 1, number.ErrInvalidNumber},
		{"integer overflow", `[9223372036854775808]`, 1, number.ErrInvalidNumber},
		{"unclosed string", `{"key":"value`, 7, scanner.ErrUnterminatedString},
		{"invalid escape", `{"key":"val\ue"}`, 7, ErrInvalidString},
		{"invalid unicode", `{"key":"\u12"}`, 7, ErrInvalidString},
		{"control character", "[\"a\x01b\"]", 1, ErrInvalidString},
		{"invalid utf8", "[\"\xff\"]", 1, ErrInvalidString},
		{"trailing data", `[1]  [2]`, 5, ErrTrailingData},
		{"mismatched close", `{"a":[1,2}`, 9, ErrUnexpectedToken},
		{"extra close", `[1]]`, 3, ErrTrailingData},
		{"bad literal", `[tru]`, 1, scanner.ErrInvalidLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.input)
			if err == nil {
				t.Fatalf("Expected error for invalid input: %s", tt.input)
			}
			if !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("Expected ErrInvalidJSON in chain, got %v", err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Expected *SyntaxError, got %T", err)
			}
			if syntaxErr.Offset != tt.offset {
				t.Errorf("Expected offset %d, got %d (%v)", tt.offset, syntaxErr.Offset, err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Expected cause %v, got %v", tt.cause, err)
			}
		})
	}
}

func TestParser_MaxDepth(t *testing.T) {
	deep := strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if _, err := parse(deep); err != nil {
		t.Fatalf("Parse at max depth failed: %v", err)
	}

	tooDeep := "[" + deep + "]"
	if _, err := parse(tooDeep); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Expected ErrTooDeep, got %v", err)
	}
}

func TestParser_Whitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"spaces", `  { "key" : 1.5 }  `, map[string]interface{}{"key": 1.5}},
		{"tabs", "\t{\t\"key\"\t:\t\"value\"\t}\t", map[string]interface{}{"key": "value"}},
		{"newlines", "{\n\"key\"\n:\n-2\n}", map[string]interface{}{"key": int64(-2)}},
		{"mixed", " \t\n{ \t\n\"key\" \t\n: \t\n\"value\" \t\n} \t\n", map[string]interface{}{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestParser_Reuse(t *testing.T) {
	p := New()
	defer p.Release()
	tp := tape.Get()
	defer tp.Release()

	for _, input := range []string{`[1,2,3]`, `{"a":"b"}`, `12.5`} {
		if err := p.Parse([]byte(input), tp); err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
	}
	it := tp.Iter()
	if v := it.Interface(); v != 12.5 {
		t.Errorf("Expected tape to hold only the last document, got %v", v)
	}
}

func BenchmarkParser_Numbers(b *testing.B) {
	input := []byte(`[1, -22, 333.5, 4.25e-10, 123456789012345678, 0.1, 2.2250738585072014e-308, -0]`)
	p := New()
	defer p.Release()
	tp := tape.Get()
	defer tp.Release()

	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Parse(input, tp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParser_Strings(b *testing.B) {
	input := []byte(`["plain", "with \"escapes\"", "unicode \u00e9\u4e16", "more plain text here"]`)
	p := New()
	defer p.Release()
	tp := tape.Get()
	defer tp.Release()

	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Parse(input, tp); err != nil {
			b.Fatal(err)
		}
	}
}
