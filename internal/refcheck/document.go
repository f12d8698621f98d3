package refcheck

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument is returned by FromDocument for malformed JSON.
var ErrInvalidDocument = errors.New("refcheck: invalid JSON document")

// FromDocument returns the raw text of every number in data, in document
// order, object keys excluded.
func FromDocument(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	var out []string
	collectNumbers(gjson.ParseBytes(data), &out)
	return out, nil
}

func collectNumbers(r gjson.Result, out *[]string) {
	switch r.Type {
	case gjson.Number:
		*out = append(*out, r.Raw)
	case gjson.JSON:
		r.ForEach(func(_, v gjson.Result) bool {
			collectNumbers(v, out)
			return true
		})
	}
}
