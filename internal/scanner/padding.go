package scanner

import "github.com/biggeezerdevelopment/simdjson-numparse/internal/number"

// PaddedBuffer is a reusable copy of the input followed by a space and
// number.Padding zero bytes, so the last literal always has a terminator
// and fixed-width reads past it stay in bounds.
type PaddedBuffer struct {
	data []byte
}

// NewPaddedBuffer creates a buffer with room for size input bytes.
func NewPaddedBuffer(size int) *PaddedBuffer {
	return &PaddedBuffer{data: make([]byte, 0, size+1+number.Padding)}
}

// Load copies input into the buffer, growing it if needed, and returns the
// padded bytes. len(input) is the logical end.
func (pb *PaddedBuffer) Load(input []byte) []byte {
	need := len(input) + 1 + number.Padding
	if cap(pb.data) < need {
		pb.data = make([]byte, 0, need)
	}
	pb.data = append(pb.data[:0], input...)
	pb.data = append(pb.data, ' ')
	for i := 0; i < number.Padding; i++ {
		pb.data = append(pb.data, 0)
	}
	return pb.data
}

// Pad returns a freshly allocated padded copy of input.
func Pad(input []byte) []byte {
	return NewPaddedBuffer(len(input)).Load(input)
}
