package parser

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/scanner"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/tape"
)

// DefaultMaxDepth bounds container nesting.
const DefaultMaxDepth = 1024

var (
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrEmpty           = errors.New("empty JSON")
	ErrUnexpectedEnd   = errors.New("unexpected end of JSON")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingData    = errors.New("data after top-level value")
	ErrInvalidString   = errors.New("invalid string")
	ErrTooDeep         = errors.New("nesting too deep")
)

// SyntaxError reports where a document was rejected. It matches both
// ErrInvalidJSON and the specific cause with errors.Is.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.Err}
}

type Parser struct {
	scanner  *scanner.Scanner
	tokens   []scanner.Token
	pos      int
	buf      []byte
	tape     *tape.Tape
	scratch  []byte
	depth    int
	MaxDepth int
}

func New() *Parser {
	return &Parser{
		scanner:  scanner.New(),
		scratch:  make([]byte, 0, 64),
		MaxDepth: DefaultMaxDepth,
	}
}

// Release returns the parser's scanner to its pool. The parser must not be
// used afterwards.
func (p *Parser) Release() {
	p.scanner.Release()
	p.scanner = nil
	p.buf = nil
	p.tape = nil
}

// Parse parses data onto t, which is reset first. On error t holds a
// partial document and must not be read.
func (p *Parser) Parse(data []byte, t *tape.Tape) error {
	t.Reset()
	p.tape = t
	p.pos = 0
	p.depth = 0

	if err := p.scanner.Scan(data); err != nil {
		return wrapScanError(err)
	}
	tokens, err := p.scanner.Tokenize()
	if err != nil {
		return wrapScanError(err)
	}
	p.tokens = tokens
	defer func() {
		scanner.PutTokenSlice(p.tokens)
		p.tokens = nil
	}()
	p.buf = p.scanner.Pad(data)

	if len(p.tokens) == 0 {
		return &SyntaxError{Offset: 0, Err: ErrEmpty}
	}
	if err := p.parseValue(); err != nil {
		return err
	}
	if p.pos != len(p.tokens) {
		return p.errorAt(ErrTrailingData)
	}
	return nil
}

func wrapScanError(err error) error {
	var scanErr *scanner.Error
	if errors.As(err, &scanErr) {
		return &SyntaxError{Offset: scanErr.Offset, Err: scanErr.Err}
	}
	return &SyntaxError{Err: err}
}

func (p *Parser) errorAt(err error) error {
	if p.pos >= len(p.tokens) {
		return &SyntaxError{Offset: len(p.buf) - 1 - number.Padding, Err: ErrUnexpectedEnd}
	}
	return &SyntaxError{Offset: int(p.tokens[p.pos].Start), Err: err}
}

func (p *Parser) peek() scanner.TokenType {
	if p.pos >= len(p.tokens) {
		return scanner.TokenNone
	}
	return p.tokens[p.pos].Type
}

func (p *Parser) parseValue() error {
	switch p.peek() {
	case scanner.TokenObjectBegin:
		return p.parseObject()
	case scanner.TokenArrayBegin:
		return p.parseArray()
	case scanner.TokenString:
		return p.parseString()
	case scanner.TokenNumber:
		return p.parseNumber()
	case scanner.TokenTrue:
		p.pos++
		p.tape.AppendBool(true)
		return nil
	case scanner.TokenFalse:
		p.pos++
		p.tape.AppendBool(false)
		return nil
	case scanner.TokenNull:
		p.pos++
		p.tape.AppendNull()
		return nil
	default:
		return p.errorAt(ErrUnexpectedToken)
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.MaxDepth {
		return p.errorAt(ErrTooDeep)
	}
	return nil
}

func (p *Parser) parseObject() error {
	if err := p.enter(); err != nil {
		return err
	}
	open := p.tape.Open(tape.KindObject)
	p.pos++ // Skip '{'

	// Empty object
	if p.peek() == scanner.TokenObjectEnd {
		p.pos++
		p.tape.Close(open)
		p.depth--
		return nil
	}

	for {
		if p.peek() != scanner.TokenString {
			return p.errorAt(ErrUnexpectedToken)
		}
		if err := p.parseString(); err != nil {
			return err
		}

		if p.peek() != scanner.TokenColon {
			return p.errorAt(ErrUnexpectedToken)
		}
		p.pos++

		if err := p.parseValue(); err != nil {
			return err
		}

		switch p.peek() {
		case scanner.TokenObjectEnd:
			p.pos++
			p.tape.Close(open)
			p.depth--
			return nil
		case scanner.TokenComma:
			p.pos++
		default:
			return p.errorAt(ErrUnexpectedToken)
		}
	}
}

func (p *Parser) parseArray() error {
	if err := p.enter(); err != nil {
		return err
	}
	open := p.tape.Open(tape.KindArray)
	p.pos++ // Skip '['

	// Empty array
	if p.peek() == scanner.TokenArrayEnd {
		p.pos++
		p.tape.Close(open)
		p.depth--
		return nil
	}

	for {
		if err := p.parseValue(); err != nil {
			return err
		}

		switch p.peek() {
		case scanner.TokenArrayEnd:
			p.pos++
			p.tape.Close(open)
			p.depth--
			return nil
		case scanner.TokenComma:
			p.pos++
		default:
			return p.errorAt(ErrUnexpectedToken)
		}
	}
}

func (p *Parser) parseNumber() error {
	token := p.tokens[p.pos]
	start := int(token.Start)
	if err := number.Parse(p.buf, start, p.buf[start] == '-', scanner.Terminators{}, p.tape); err != nil {
		return &SyntaxError{Offset: start, Err: err}
	}
	p.pos++
	return nil
}

func (p *Parser) parseString() error {
	token := p.tokens[p.pos]
	str := p.buf[token.Start+1 : token.End-1]

	// Fast path: no escapes or control characters
	plain := true
	for _, c := range str {
		if c == '\\' || c < 0x20 {
			plain = false
			break
		}
	}
	if plain {
		if !utf8.Valid(str) {
			return p.errorAt(ErrInvalidString)
		}
		p.pos++
		return p.tape.AppendString(str)
	}

	// Slow path: handle escapes
	out, ok := unescape(p.scratch[:0], str)
	p.scratch = out[:0]
	if !ok || !utf8.Valid(out) {
		return p.errorAt(ErrInvalidString)
	}
	p.pos++
	return p.tape.AppendString(out)
}

// unescape appends the decoded form of the string body b to buf.
func unescape(buf, b []byte) ([]byte, bool) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c < 0x20 {
			return buf, false
		}
		if c != '\\' {
			buf = append(buf, c)
			continue
		}

		i++
		if i >= len(b) {
			return buf, false
		}
		switch b[i] {
		case '"', '\\', '/':
			buf = append(buf, b[i])
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, ok := hex4(b[i+1:])
			if !ok {
				return buf, false
			}
			i += 4
			if utf16.IsSurrogate(r) {
				// A high surrogate must be followed by \u and a low one.
				if i+2 < len(b) && b[i+1] == '\\' && b[i+2] == 'u' {
					if r2, ok := hex4(b[i+3:]); ok {
						if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
							buf = utf8.AppendRune(buf, dec)
							i += 6
							continue
						}
					}
				}
				r = utf8.RuneError
			}
			buf = utf8.AppendRune(buf, r)
		default:
			return buf, false
		}
	}
	return buf, true
}

func hex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range b[:4] {
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}
