package simdjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"strconv"
	"testing"
)

// TestCompatibilityWithStandardLibrary checks that Unmarshal into
// interface{} agrees with encoding/json up to integer representation.
func TestCompatibilityWithStandardLibrary(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		// Basic types
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"zero", "0"},
		{"positive_int", "42"},
		{"negative_int", "-123"},
		{"float", "3.14"},
		{"string", `"hello"`},
		{"empty_string", `""`},

		// Objects
		{"empty_object", "{}"},
		{"simple_object", `{"key":"value"}`},
		{"nested_object", `{"outer":{"inner":"value"}}`},

		// Arrays
		{"empty_array", "[]"},
		{"number_array", "[1,2,3]"},
		{"mixed_array", `[1,"two",true,null]`},

		// Complex structures
		{"complex", `{
			"name": "Alice",
			"age": 30,
			"active": true,
			"scores": [85.5, 92, 78.25],
			"address": {
				"street": "123 Main St",
				"zip": "02101"
			},
			"metadata": null
		}`},

		// Edge cases with whitespace
		{"whitespace", " \t\n{\n\t \"key\" \t:\n 1.5e3 \t\n} \n\t "},

		// Numbers
		{"large_int", "9223372036854775807"},
		{"scientific", "1.23e-10"},
		{"negative_scientific", "-1.23e+10"},
		{"max_float", "1.7976931348623157e308"},
		{"subnormal", "4.9406564584124654e-324"},
		{"underflow", "1e-400"},
		{"long_mantissa", "0.1000000000000000055511151231257827021181583404541015625"},

		// Invalid numbers
		{"leading_zero", "[01]"},
		{"bare_point", "[1.]"},
		{"overflow", "[1e309]"},
		{"empty_exponent", "[1e]"},
		{"plus_sign", "[+1]"},

		// Unicode
		{"unicode", `{"text":"Hello 世界 🌍"}`},

		// Escaped characters
		{"escaped", `{"quote":"He said \"Hello\"","backslash":"path\\to\\file","newline":"line1\nline2"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Parse with standard library
			var stdResult interface{}
			stdErr := json.Unmarshal([]byte(tc.json), &stdResult)

			// Parse with our implementation
			var ourResult interface{}
			ourErr := Unmarshal([]byte(tc.json), &ourResult)

			// Compare errors
			if (stdErr == nil) != (ourErr == nil) {
				t.Fatalf("Error mismatch: std=%v, ours=%v", stdErr, ourErr)
			}

			// If both succeeded, compare results
			if stdErr == nil {
				if !deepEqual(stdResult, ourResult) {
					t.Errorf("Result mismatch:\nStd:  %#v\nOurs: %#v", stdResult, ourResult)
				}
			}
		})
	}
}

// TestValidationCompatibility tests JSON validation
func TestValidationCompatibility(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		// Valid JSON
		{"valid_null", "null"},
		{"valid_bool", "true"},
		{"valid_number", "42"},
		{"valid_negative_zero", "-0.0"},
		{"valid_string", `"hello"`},
		{"valid_array", "[1,2,3]"},
		{"valid_object", `{"key":"value"}`},

		// Invalid JSON
		{"invalid_empty", ""},
		{"invalid_trailing_comma", `{"key":"value",}`},
		{"invalid_missing_quote", `{"key:value}`},
		{"invalid_unclosed_object", `{"key":"value"`},
		{"invalid_unclosed_array", `[1,2,3`},
		{"invalid_number", "12."},
		{"invalid_escape", `{"key":"val\ue"}`},
		{"invalid_unicode", `{"key":"\u12"}`},
		{"invalid_duplicate_comma", `[1,,2]`},
		{"invalid_leading_zero", `{"num":01}`},
		{"invalid_minus", `[-]`},
		{"invalid_hex", `[0x10]`},
		{"invalid_exponent", `[1e+]`},
		{"invalid_trailing_letter", `[12a]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdValid := json.Valid([]byte(tc.json))
			ourValid := Valid([]byte(tc.json))

			if stdValid != ourValid {
				t.Errorf("Validation mismatch for %q: std=%v, ours=%v", tc.json, stdValid, ourValid)
			}
		})
	}
}

// TestStructUnmarshalling tests unmarshalling into structs
func TestStructUnmarshalling(t *testing.T) {
	type Person struct {
		Name    string `json:"name"`
		Age     int    `json:"age"`
		Active  bool   `json:"active"`
		Address struct {
			Street string `json:"street"`
			City   string `json:"city"`
		} `json:"address"`
		Scores  []float64 `json:"scores"`
		Balance float32   `json:"balance"`
		Visits  uint16    `json:"visits"`
		Ignored string    `json:"-"`
	}

	jsonData := `{
		"name": "Alice",
		"age": 30,
		"active": true,
		"address": {
			"street": "123 Main St",
			"city": "Boston"
		},
		"scores": [85, 92.5, 7.8e1],
		"balance": -12.75,
		"visits": 65535,
		"Ignored": "x",
		"unknown": {"nested": [1, 2, {"deep": true}]}
	}`

	// Unmarshal with standard library
	var stdPerson Person
	stdErr := json.Unmarshal([]byte(jsonData), &stdPerson)

	// Unmarshal with our implementation
	var ourPerson Person
	ourErr := Unmarshal([]byte(jsonData), &ourPerson)

	// Compare errors and results
	if stdErr != nil || ourErr != nil {
		t.Fatalf("Unmarshal errors: std=%v, ours=%v", stdErr, ourErr)
	}

	if !reflect.DeepEqual(stdPerson, ourPerson) {
		t.Errorf("Struct unmarshal mismatch:\nStd:  %+v\nOurs: %+v", stdPerson, ourPerson)
	}
}

// TestEdgeCases tests various edge cases
func TestEdgeCases(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{"deeply_nested", createDeeplyNested(100)},
		{"large_array", createLargeArray(1000)},
		{"unicode_keys", `{"键":"值","🔑":"🎁"}`},
		{"all_escapes", `{"test":"\"\\\/\b\f\n\r\t\u0041"}`},
		{"control_chars", "{\"key\":\"value\x00\"}"},
		{"lone_surrogate", `{"test":"\uD800"}`},
		{"invalid_surrogate_pair", `{"test":"\uD800\u0041"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdResult, ourResult interface{}

			stdErr := json.Unmarshal([]byte(tc.json), &stdResult)
			ourErr := Unmarshal([]byte(tc.json), &ourResult)

			stdFailed := stdErr != nil
			ourFailed := ourErr != nil

			if stdFailed != ourFailed {
				t.Errorf("Error expectation mismatch: std failed=%v, ours failed=%v", stdFailed, ourFailed)
				t.Logf("Standard error: %v", stdErr)
				t.Logf("Our error: %v", ourErr)
			}

			if !stdFailed && !ourFailed {
				if !deepEqual(stdResult, ourResult) {
					t.Errorf("Results differ for valid input")
				}
			}
		})
	}
}

// TestNumberCompatibility compares float literals in many shapes against
// encoding/json, which rounds correctly.
func TestNumberCompatibility(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 5000
	if testing.Short() {
		n = 500
	}
	for i := 0; i < n; i++ {
		f := math.Float64frombits(rng.Uint64())
		if math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		for _, prec := range []int{-1, 5, 16, 20} {
			lit := strconv.FormatFloat(f, 'e', prec, 64)
			doc := []byte("[" + lit + "]")

			var std []float64
			if err := json.Unmarshal(doc, &std); err != nil {
				continue // rounds to infinity
			}
			var ours []float64
			if err := Unmarshal(doc, &ours); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", doc, err)
			}
			if d := ulpDistance(std[0], ours[0]); d > 1 {
				t.Fatalf("Unmarshal(%s): std=%v ours=%v (%d ulp)", doc, std[0], ours[0], d)
			}
		}
	}
}

// Property-based testing with random JSON generation
func TestRandomJSONCompatibility(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		t.Run(fmt.Sprintf("random_%d", i), func(t *testing.T) {
			// Generate random JSON
			jsonData := generateRandomValue(rng, 5, 10)

			var stdResult, ourResult interface{}

			stdErr := json.Unmarshal(jsonData, &stdResult)
			ourErr := Unmarshal(jsonData, &ourResult)

			// Errors should match
			if (stdErr == nil) != (ourErr == nil) {
				t.Errorf("Error mismatch for JSON: %s", string(jsonData))
				t.Logf("Standard error: %v", stdErr)
				t.Logf("Our error: %v", ourErr)
			}

			// Results should match if both succeeded
			if stdErr == nil && !deepEqual(stdResult, ourResult) {
				t.Errorf("Results differ for JSON: %s", string(jsonData))
				t.Logf("Standard result: %#v", stdResult)
				t.Logf("Our result: %#v", ourResult)
			}
		})
	}
}

// Helper functions

func deepEqual(a, b interface{}) bool {
	return reflect.DeepEqual(normalizeNumbers(a), normalizeNumbers(b))
}

// normalizeNumbers converts all numbers to float64 for comparison
func normalizeNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case []interface{}:
		result := make([]interface{}, len(val))
		for i, item := range val {
			result[i] = normalizeNumbers(item)
		}
		return result
	case map[string]interface{}:
		result := make(map[string]interface{})
		for k, item := range val {
			result[k] = normalizeNumbers(item)
		}
		return result
	default:
		return v
	}
}

func ulpDistance(a, b float64) uint64 {
	if a == b {
		return 0
	}
	ua, ub := int64(math.Float64bits(a)), int64(math.Float64bits(b))
	if ua < 0 {
		ua = math.MinInt64 - ua
	}
	if ub < 0 {
		ub = math.MinInt64 - ub
	}
	if ua > ub {
		return uint64(ua - ub)
	}
	return uint64(ub - ua)
}

func createDeeplyNested(depth int) string {
	var buf bytes.Buffer

	// Create nested objects
	for i := 0; i < depth; i++ {
		buf.WriteString(`{"level":`)
	}
	buf.WriteString("42")
	for i := 0; i < depth; i++ {
		buf.WriteString("}")
	}

	return buf.String()
}

func createLargeArray(size int) string {
	var buf bytes.Buffer
	buf.WriteString("[")

	for i := 0; i < size; i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(strconv.Itoa(i * 7919))
	}

	buf.WriteString("]")
	return buf.String()
}

func generateRandomValue(rng *rand.Rand, maxDepth, maxWidth int) []byte {
	if maxDepth <= 0 || rng.Intn(4) == 0 {
		// Generate leaf values
		switch rng.Intn(6) {
		case 0:
			return []byte("null")
		case 1:
			if rng.Intn(2) == 0 {
				return []byte("true")
			}
			return []byte("false")
		case 2:
			return []byte(strconv.FormatInt(rng.Int63()-rng.Int63(), 10))
		case 3:
			return []byte(strconv.FormatFloat(rng.NormFloat64()*1e6, 'g', -1, 64))
		case 4:
			return []byte(strconv.FormatFloat(rng.ExpFloat64(), 'e', rng.Intn(17), 64))
		default:
			return []byte(fmt.Sprintf(`"string_%d"`, rng.Intn(100)))
		}
	}

	var buf bytes.Buffer
	width := rng.Intn(maxWidth) + 1
	if rng.Intn(2) == 0 {
		buf.WriteString("[")
		for i := 0; i < width; i++ {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.Write(generateRandomValue(rng, maxDepth-1, maxWidth))
		}
		buf.WriteString("]")
		return buf.Bytes()
	}

	buf.WriteString("{")
	for i := 0; i < width; i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(&buf, `"key_%d":`, i)
		buf.Write(generateRandomValue(rng, maxDepth-1, maxWidth))
	}
	buf.WriteString("}")
	return buf.Bytes()
}
