package scanner

type TokenType uint8

const (
	TokenNone TokenType = iota
	TokenObjectBegin
	TokenObjectEnd
	TokenArrayBegin
	TokenArrayEnd
	TokenString
	TokenNumber
	TokenTrue
	TokenFalse
	TokenNull
	TokenColon
	TokenComma
)

var tokenTypeNames = [...]string{
	TokenNone:        "none",
	TokenObjectBegin: "{",
	TokenObjectEnd:   "}",
	TokenArrayBegin:  "[",
	TokenArrayEnd:    "]",
	TokenString:      "string",
	TokenNumber:      "number",
	TokenTrue:        "true",
	TokenFalse:       "false",
	TokenNull:        "null",
	TokenColon:       ":",
	TokenComma:       ",",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// Token spans buf[Start:End]. A number token covers the bytes up to the
// next terminator; whether they form a valid literal is decided when the
// number is parsed.
type Token struct {
	Type  TokenType
	Start uint32
	End   uint32
}

// Tokenize turns the indices of the last Scan into tokens. The returned
// slice comes from a pool; hand it back with PutTokenSlice.
func (s *Scanner) Tokenize() ([]Token, error) {
	tokens := getTokenSlice()
	if need := len(s.structuralIndices); cap(tokens) < need {
		tokens = make([]Token, 0, need)
	}

	for _, idx := range s.structuralIndices {
		token := Token{Start: idx, End: idx + 1}

		switch c := s.buf[idx]; c {
		case '{':
			token.Type = TokenObjectBegin
		case '}':
			token.Type = TokenObjectEnd
		case '[':
			token.Type = TokenArrayBegin
		case ']':
			token.Type = TokenArrayEnd
		case ':':
			token.Type = TokenColon
		case ',':
			token.Type = TokenComma
		case '"':
			token.Type = TokenString
			token.End = s.stringEnd(idx)
		default:
			token.End = s.scalarEnd(idx)
			lit := s.buf[idx:token.End]
			switch {
			case c == '-' || CharClassLookup[c]&ClassDigit != 0:
				token.Type = TokenNumber
			case string(lit) == "true":
				token.Type = TokenTrue
			case string(lit) == "false":
				token.Type = TokenFalse
			case string(lit) == "null":
				token.Type = TokenNull
			case c == 't' || c == 'f' || c == 'n':
				PutTokenSlice(tokens)
				return nil, &Error{Offset: int(idx), Err: ErrInvalidLiteral}
			default:
				PutTokenSlice(tokens)
				return nil, &Error{Offset: int(idx), Err: ErrUnexpectedByte}
			}
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// stringEnd returns the index after the closing quote of the string
// opened at start. Scan has already checked that one exists.
func (s *Scanner) stringEnd(start uint32) uint32 {
	escaped := false
	for j := start + 1; j < uint32(len(s.buf)); j++ {
		switch {
		case escaped:
			escaped = false
		case s.buf[j] == '\\':
			escaped = true
		case s.buf[j] == '"':
			return j + 1
		}
	}
	return uint32(len(s.buf))
}

func (s *Scanner) scalarEnd(start uint32) uint32 {
	for i := start; i < uint32(len(s.buf)); i++ {
		if endsScalar(s.buf[i]) {
			return i
		}
	}
	return uint32(len(s.buf))
}
