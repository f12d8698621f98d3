package scanner

import (
	"errors"
	"fmt"
	"sync"

	"fortio.org/safecast"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedByte     = errors.New("unexpected byte")
	ErrInvalidLiteral     = errors.New("invalid literal")
	ErrInputTooLarge      = errors.New("input larger than 4 GiB")
)

// Error reports a scanning failure at a byte offset of the input.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scanner finds the structural indices of a document: every structural
// character, every opening quote, and the first byte of every bare value.
type Scanner struct {
	buf               []byte
	structuralIndices []uint32
	padded            *PaddedBuffer
}

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{
			structuralIndices: make([]uint32, 0, 1024),
			padded:            NewPaddedBuffer(4096),
		}
	},
}

func New() *Scanner {
	return scannerPool.Get().(*Scanner)
}

func (s *Scanner) Release() {
	s.buf = nil
	s.structuralIndices = s.structuralIndices[:0]
	scannerPool.Put(s)
}

// Pad copies data into the scanner's reusable padded buffer. The result is
// valid until the next Pad or Release.
func (s *Scanner) Pad(data []byte) []byte {
	return s.padded.Load(data)
}

func (s *Scanner) Scan(data []byte) error {
	s.buf = data
	s.structuralIndices = s.structuralIndices[:0]
	if _, err := safecast.Conv[uint32](len(data)); err != nil {
		return &Error{Offset: 0, Err: ErrInputTooLarge}
	}

	inString := false
	escaped := false
	inScalar := false
	stringStart := 0

	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		class := CharClassLookup[c]
		switch {
		case class&ClassQuote != 0:
			inString = true
			inScalar = false
			stringStart = i
			s.structuralIndices = append(s.structuralIndices, uint32(i))
		case class&ClassStructural != 0:
			inScalar = false
			s.structuralIndices = append(s.structuralIndices, uint32(i))
		case class&ClassWhitespace != 0:
			inScalar = false
		default:
			// Start of a value (number, true, false, null)
			if !inScalar {
				s.structuralIndices = append(s.structuralIndices, uint32(i))
			}
			inScalar = true
		}
	}

	if inString {
		return &Error{Offset: stringStart, Err: ErrUnterminatedString}
	}
	return nil
}
