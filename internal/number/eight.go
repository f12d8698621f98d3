package number

import "encoding/binary"

// EightDigitParser converts eight ASCII digits to their base-10 value.
// Every implementation returns the same result as accumulating the digits
// left to right; callers must check isMadeOfEightDigits first.
type EightDigitParser interface {
	Name() string
	ParseEightDigits(chars []byte) uint32
}

// isMadeOfEightDigits reports whether chars[0:8] are all ASCII digits using a
// single 64-bit load. A byte is a digit iff its high nibble is 3 and adding 6
// to it does not carry into the high nibble.
func isMadeOfEightDigits(chars []byte) bool {
	val := binary.LittleEndian.Uint64(chars)
	return ((val & 0xF0F0F0F0F0F0F0F0) |
		(((val + 0x0606060606060606) & 0xF0F0F0F0F0F0F0F0) >> 4)) ==
		0x3333333333333333
}

// Sequential accumulates the digits one at a time.
type Sequential struct{}

func (Sequential) Name() string { return "sequential" }

func (Sequential) ParseEightDigits(chars []byte) uint32 {
	_ = chars[7]
	var v uint32
	for _, c := range chars[:8] {
		v = v*10 + uint32(c-'0')
	}
	return v
}

// SWAR folds adjacent digits pairwise inside one 64-bit word: two digits per
// 16-bit lane, then four per 32-bit lane, then all eight.
type SWAR struct{}

func (SWAR) Name() string { return "swar" }

func (SWAR) ParseEightDigits(chars []byte) uint32 {
	val := binary.LittleEndian.Uint64(chars)
	val = (val & 0x0F0F0F0F0F0F0F0F) * 2561 >> 8
	val = (val & 0x00FF00FF00FF00FF) * 6553601 >> 16
	return uint32((val & 0x0000FFFF0000FFFF) * 42949672960001 >> 32)
}

// Lanes mirrors the SSE multiply-add-pack sequence lane by lane:
// maddubs with [10 1], madd with [100 1], pack to 16 bits, madd with [10000 1].
type Lanes struct{}

func (Lanes) Name() string { return "lanes" }

func (Lanes) ParseEightDigits(chars []byte) uint32 {
	_ = chars[7]
	var t1 [4]uint16
	for k := range t1 {
		t1[k] = uint16(chars[2*k]-'0')*10 + uint16(chars[2*k+1]-'0')
	}
	var t2 [2]uint32
	for j := range t2 {
		t2[j] = uint32(t1[2*j])*100 + uint32(t1[2*j+1])
	}
	// packus saturates to uint16; four digits never exceed 9999.
	t3 := [2]uint16{uint16(t2[0]), uint16(t2[1])}
	return uint32(t3[0])*10000 + uint32(t3[1])
}

var accelerator = selectEightDigitParser()

// Accelerator returns the strategy picked for this CPU.
func Accelerator() EightDigitParser {
	return accelerator
}

// EightDigitParsers returns every strategy compiled into the package.
func EightDigitParsers() []EightDigitParser {
	return []EightDigitParser{Sequential{}, SWAR{}, Lanes{}}
}
