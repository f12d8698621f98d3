// Package tape stores a parsed document as a flat sequence of 64-bit words.
//
// Each word holds a kind in its top byte and a 56-bit payload. Integers and
// doubles take a second word with the raw value. An opening container's
// payload is the index just past its matching close, and the close's
// payload points back at the opening word. String payloads are offsets into
// a side buffer of length-prefixed bytes.
package tape

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"

	"fortio.org/safecast"
)

type Kind byte

const (
	KindNone     Kind = 0
	KindObject   Kind = '{'
	KindObjEnd   Kind = '}'
	KindArray    Kind = '['
	KindArrayEnd Kind = ']'
	KindString   Kind = '"'
	KindInt64    Kind = 'l'
	KindFloat64  Kind = 'd'
	KindTrue     Kind = 't'
	KindFalse    Kind = 'f'
	KindNull     Kind = 'n'
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindObjEnd:
		return "object end"
	case KindArray:
		return "array"
	case KindArrayEnd:
		return "array end"
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindTrue, KindFalse:
		return "bool"
	case KindNull:
		return "null"
	}
	return "none"
}

const payloadMask = 1<<56 - 1

var ErrStringTooLong = errors.New("string longer than 4 GiB")

type Tape struct {
	words   []uint64
	strings []byte
}

var tapePool = sync.Pool{
	New: func() interface{} {
		return &Tape{
			words:   make([]uint64, 0, 256),
			strings: make([]byte, 0, 1024),
		}
	},
}

// Get returns an empty tape from the pool.
func Get() *Tape {
	return tapePool.Get().(*Tape)
}

func (t *Tape) Release() {
	t.Reset()
	tapePool.Put(t)
}

func (t *Tape) Reset() {
	t.words = t.words[:0]
	t.strings = t.strings[:0]
}

// Len is the number of words on the tape.
func (t *Tape) Len() int {
	return len(t.words)
}

func (t *Tape) append(k Kind, payload uint64) {
	t.words = append(t.words, uint64(k)<<56|payload&payloadMask)
}

// AppendInt64 appends an integer. Together with AppendFloat64 it makes a
// Tape usable as the sink of number parsing.
func (t *Tape) AppendInt64(v int64) {
	t.append(KindInt64, 0)
	t.words = append(t.words, uint64(v))
}

func (t *Tape) AppendFloat64(v float64) {
	t.append(KindFloat64, 0)
	t.words = append(t.words, math.Float64bits(v))
}

func (t *Tape) AppendBool(v bool) {
	if v {
		t.append(KindTrue, 0)
		return
	}
	t.append(KindFalse, 0)
}

func (t *Tape) AppendNull() {
	t.append(KindNull, 0)
}

// AppendString copies s into the string buffer.
func (t *Tape) AppendString(s []byte) error {
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		return ErrStringTooLong
	}
	t.append(KindString, uint64(len(t.strings)))
	t.strings = binary.LittleEndian.AppendUint32(t.strings, n)
	t.strings = append(t.strings, s...)
	return nil
}

// Open appends the opening word of an object or array and returns its
// index for the matching Close.
func (t *Tape) Open(k Kind) int {
	i := len(t.words)
	t.append(k, 0)
	return i
}

// Close appends the end word matching the container opened at open.
func (t *Tape) Close(open int) {
	end := KindObjEnd
	if Kind(t.words[open]>>56) == KindArray {
		end = KindArrayEnd
	}
	t.append(end, uint64(open))
	t.words[open] = t.words[open]&^payloadMask | uint64(len(t.words))
}

// Iter returns an iterator positioned at the first value.
func (t *Tape) Iter() Iter {
	return Iter{t: t}
}

// Iter walks a tape. The zero value is not usable; get one from Tape.Iter.
type Iter struct {
	t   *Tape
	pos int
}

func (it *Iter) Done() bool {
	return it.pos >= len(it.t.words)
}

// Pos is the index of the current word.
func (it *Iter) Pos() int {
	return it.pos
}

func (it *Iter) Kind() Kind {
	if it.Done() {
		return KindNone
	}
	return Kind(it.t.words[it.pos] >> 56)
}

func (it *Iter) payload() uint64 {
	return it.t.words[it.pos] & payloadMask
}

func (it *Iter) Int64() int64 {
	return int64(it.t.words[it.pos+1])
}

func (it *Iter) Float64() float64 {
	return math.Float64frombits(it.t.words[it.pos+1])
}

// StringBytes returns the current string. The bytes alias the tape.
func (it *Iter) StringBytes() []byte {
	off := it.payload()
	n := uint64(binary.LittleEndian.Uint32(it.t.strings[off:]))
	return it.t.strings[off+4 : off+4+n]
}

func (it *Iter) String() string {
	return string(it.StringBytes())
}

// Next moves to the following word, stepping into containers.
func (it *Iter) Next() {
	switch it.Kind() {
	case KindInt64, KindFloat64:
		it.pos += 2
	default:
		it.pos++
	}
}

// Skip moves past the current value, including everything inside it when
// it is a container.
func (it *Iter) Skip() {
	switch it.Kind() {
	case KindObject, KindArray:
		it.pos = int(it.payload())
	default:
		it.Next()
	}
}
