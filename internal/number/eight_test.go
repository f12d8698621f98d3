package number

import (
	"strconv"
	"testing"
)

func TestIsMadeOfEightDigits(t *testing.T) {
	base := []byte("12345678")
	if !isMadeOfEightDigits(base) {
		t.Fatalf("Expected %q to be eight digits", base)
	}
	for pos := 0; pos < 8; pos++ {
		for c := 0; c < 256; c++ {
			chars := append([]byte(nil), base...)
			chars[pos] = byte(c)
			want := c >= '0' && c <= '9'
			if got := isMadeOfEightDigits(chars); got != want {
				t.Errorf("Byte %#x at %d: expected %v, got %v", c, pos, want, got)
			}
		}
	}
}

// TestEightDigitParsers checks every strategy against sequential
// accumulation over all 10^8 inputs, or a stride of them in short mode.
func TestEightDigitParsers(t *testing.T) {
	step := uint32(1)
	if testing.Short() {
		step = 9973
	}
	for _, p := range EightDigitParsers() {
		t.Run(p.Name(), func(t *testing.T) {
			var chars [8]byte
			for v := uint32(0); v < 100000000; v += step {
				putEightDigits(chars[:], v)
				if got := p.ParseEightDigits(chars[:]); got != v {
					t.Fatalf("ParseEightDigits(%q): expected %d, got %d", chars[:], v, got)
				}
			}
		})
	}
}

func TestEightDigitParsers_Agree(t *testing.T) {
	inputs := []string{"00000000", "99999999", "01234567", "76543210", "10000000", "00000001"}
	for _, in := range inputs {
		want, _ := strconv.ParseUint(in, 10, 32)
		for _, p := range EightDigitParsers() {
			if got := p.ParseEightDigits([]byte(in)); uint64(got) != want {
				t.Errorf("%s(%q): expected %d, got %d", p.Name(), in, want, got)
			}
		}
	}
}

func TestAccelerator(t *testing.T) {
	a := Accelerator()
	if a == nil {
		t.Fatal("No accelerator selected")
	}
	found := false
	for _, p := range EightDigitParsers() {
		if p.Name() == a.Name() {
			found = true
		}
	}
	if !found {
		t.Errorf("Accelerator %q is not a known strategy", a.Name())
	}
}

func putEightDigits(chars []byte, v uint32) {
	for i := 7; i >= 0; i-- {
		chars[i] = byte('0' + v%10)
		v /= 10
	}
}

func BenchmarkParseEightDigits(b *testing.B) {
	chars := []byte("87654321")
	for _, p := range EightDigitParsers() {
		b.Run(p.Name(), func(b *testing.B) {
			var sum uint32
			for i := 0; i < b.N; i++ {
				sum += p.ParseEightDigits(chars)
			}
			_ = sum
		})
	}
}
