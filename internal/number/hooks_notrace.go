//go:build !numbertrace

package number

const hooksEnabled = false

// SetHooks is a no-op without the numbertrace build tag; it returns false.
func SetHooks(*Hooks) bool { return false }

func foundInvalidNumber([]byte, int) {}

func foundInteger(int64, []byte, int) {}

func foundFloat(float64, []byte, int) {}
