// Package simdjson parses JSON with a tape-based parser whose number
// conversion follows simdjson: an unchecked fast path certified by digit
// counts, with correctly rounded fallbacks for everything it cannot certify.
package simdjson

import (
	"errors"
	"io"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/parser"
)

var (
	ErrInvalidJSON     = parser.ErrInvalidJSON
	ErrInvalidNumber   = number.ErrInvalidNumber
	ErrUnsupportedType = errors.New("unsupported type")
)

// SyntaxError reports the byte offset at which a document was rejected.
// errors.Is matches it against ErrInvalidJSON and its cause.
type SyntaxError = parser.SyntaxError

func Unmarshal(data []byte, v interface{}) error {
	d := newDecoder()
	defer d.release()

	return d.unmarshal(data, v)
}

// Decoder reads a whole JSON document from a stream and decodes it.
type Decoder struct {
	r   io.Reader
	buf []byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:   r,
		buf: make([]byte, 0, 4096),
	}
}

// Decode reads the rest of the stream and decodes it into v. It returns
// io.EOF once the stream is exhausted.
func (d *Decoder) Decode(v interface{}) error {
	if d.r == nil {
		return io.EOF
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	d.r = nil
	d.buf = append(d.buf[:0], data...)

	dec := newDecoder()
	defer dec.release()

	return dec.unmarshal(d.buf, v)
}

// Valid reports whether data is one complete JSON value, number literals
// included.
func Valid(data []byte) bool {
	d := newDecoder()
	defer d.release()

	return d.parser.Parse(data, d.tape) == nil
}
