package scanner

import "sync"

var tokenPool = sync.Pool{
	New: func() interface{} {
		return make([]Token, 0, 64)
	},
}

func getTokenSlice() []Token {
	return tokenPool.Get().([]Token)
}

// PutTokenSlice returns a slice obtained from Tokenize to the pool.
func PutTokenSlice(tokens []Token) {
	if cap(tokens) > 1<<16 { // Don't pool very large slices
		return
	}
	tokens = tokens[:0]
	tokenPool.Put(tokens)
}
