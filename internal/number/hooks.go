package number

// Hooks observe every parse outcome. They are only called when the package
// is built with the numbertrace tag; offset is the literal's first byte.
type Hooks struct {
	InvalidNumber func(buf []byte, offset int)
	Integer       func(v int64, buf []byte, offset int)
	Float         func(v float64, buf []byte, offset int)
}
