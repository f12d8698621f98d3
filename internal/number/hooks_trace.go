//go:build numbertrace

package number

import "sync/atomic"

const hooksEnabled = true

var hooks atomic.Pointer[Hooks]

// SetHooks installs h (nil removes it) and reports whether hooks are
// compiled in.
func SetHooks(h *Hooks) bool {
	hooks.Store(h)
	return true
}

func foundInvalidNumber(buf []byte, offset int) {
	if h := hooks.Load(); h != nil && h.InvalidNumber != nil {
		h.InvalidNumber(buf, offset)
	}
}

func foundInteger(v int64, buf []byte, offset int) {
	if h := hooks.Load(); h != nil && h.Integer != nil {
		h.Integer(v, buf, offset)
	}
}

func foundFloat(v float64, buf []byte, offset int) {
	if h := hooks.Load(); h != nil && h.Float != nil {
		h.Float(v, buf, offset)
	}
}
