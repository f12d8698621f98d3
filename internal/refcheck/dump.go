package refcheck

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// dumpSchema changes whenever Dump's layout does.
const dumpSchema uint16 = 1

// Dump is the on-disk form of a run's mismatches, replayable later.
type Dump struct {
	Schema     uint16     `msgpack:"schema"`
	Seed       int64      `msgpack:"seed"`
	MaxULP     uint64     `msgpack:"max_ulp"`
	Mismatches []Mismatch `msgpack:"mismatches"`
}

// Literals returns the mismatching literals in dump order.
func (d *Dump) Literals() []string {
	out := make([]string, len(d.Mismatches))
	for i, m := range d.Mismatches {
		out[i] = m.Literal
	}
	return out
}

// WriteDump encodes d to w.
func WriteDump(w io.Writer, d *Dump) error {
	d.Schema = dumpSchema
	return msgpack.NewEncoder(w).Encode(d)
}

// ReadDump decodes a dump written by WriteDump.
func ReadDump(r io.Reader) (*Dump, error) {
	var d Dump
	if err := msgpack.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	if d.Schema != dumpSchema {
		return nil, fmt.Errorf("refcheck: dump schema %d, want %d", d.Schema, dumpSchema)
	}
	return &d, nil
}
