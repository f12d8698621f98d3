package simdjson

import (
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/parser"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/tape"
)

// Kind identifies the value under an Iter.
type Kind = tape.Kind

const (
	KindNone     = tape.KindNone
	KindObject   = tape.KindObject
	KindObjEnd   = tape.KindObjEnd
	KindArray    = tape.KindArray
	KindArrayEnd = tape.KindArrayEnd
	KindString   = tape.KindString
	KindInt64    = tape.KindInt64
	KindFloat64  = tape.KindFloat64
	KindTrue     = tape.KindTrue
	KindFalse    = tape.KindFalse
	KindNull     = tape.KindNull
)

// Iter walks a Document value by value.
type Iter = tape.Iter

// Document is a parsed JSON document held on a tape.
type Document struct {
	tape *tape.Tape
}

// Parse parses data into a Document. Call Release when done with it.
func Parse(data []byte) (*Document, error) {
	p := parser.New()
	defer p.Release()

	t := tape.Get()
	if err := p.Parse(data, t); err != nil {
		t.Release()
		return nil, err
	}
	return &Document{tape: t}, nil
}

// Iter returns an iterator at the document's root value.
func (d *Document) Iter() Iter {
	return d.tape.Iter()
}

// Interface materializes the document as map[string]interface{},
// []interface{}, string, int64, float64, bool or nil.
func (d *Document) Interface() interface{} {
	it := d.tape.Iter()
	return it.Interface()
}

// Release returns the document's storage. The Document and any string
// bytes obtained from it must not be used afterwards.
func (d *Document) Release() {
	if d.tape != nil {
		d.tape.Release()
		d.tape = nil
	}
}
