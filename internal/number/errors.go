package number

import "errors"

// ErrInvalidNumber is returned for any malformed or unrepresentable literal.
var ErrInvalidNumber = errors.New("invalid number")
