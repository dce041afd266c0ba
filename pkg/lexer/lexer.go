// Package lexer implements the WinZig scanner. It turns source text into the
// ordered token sequence consumed by the parser.
package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"winzigc/pkg/token"
)

// ErrLexical matches every error reported for unscannable input
var ErrLexical = errors.New("lexical error")

// Error reports input that cannot be tokenized
type Error struct {
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot tokenize at line: %d col: %d: %s", e.Line, e.Col, e.Msg)
}

// Is makes errors.Is(err, ErrLexical) hold for every *Error
func (e *Error) Is(target error) bool {
	return target == ErrLexical
}

// Tokenizer represents the tokenizer state
type Tokenizer struct {
	input     string
	pos       int // current position in input
	line      int // current line number
	column    int // current column number
	width     int // width of last rune read
	start     int // start offset of current token
	startLine int
	startCol  int
	tokens    []token.Token
	maxTokens int // Maximum number of tokens to prevent OOM
	err       *Error
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	const maxTokensLimit = 1000000
	return &Tokenizer{
		input:     input,
		line:      1,
		column:    1,
		tokens:    make([]token.Token, 0, len(input)/4+1),
		maxTokens: maxTokensLimit,
	}
}

// Tokenize scans a complete source text
func Tokenize(input string) ([]token.Token, error) {
	return NewTokenizer(input).Tokenize()
}

// SetMaxTokens sets the maximum number of tokens (for testing purposes)
func (t *Tokenizer) SetMaxTokens(max int) {
	t.maxTokens = max
}

// next reads the next rune and advances position
func (t *Tokenizer) next() rune {
	if t.pos >= len(t.input) {
		t.width = 0
		return 0
	}

	r, w := utf8.DecodeRuneInString(t.input[t.pos:])
	t.width = w
	t.pos += w

	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}

	return r
}

// peek returns the next rune without advancing position
func (t *Tokenizer) peek() rune {
	if t.pos >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
	return r
}

// mark records the start of the next token
func (t *Tokenizer) mark() {
	t.start = t.pos
	t.startLine = t.line
	t.startCol = t.column
}

// emit creates a token from the marked span
func (t *Tokenizer) emit(kind token.Kind) {
	text := t.input[t.start:t.pos]
	t.tokens = append(t.tokens, token.New(kind, text, t.startLine, t.startCol))
}

// errorf records the first error at the marked position
func (t *Tokenizer) errorf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	t.err = &Error{Line: t.startLine, Col: t.startCol, Msg: fmt.Sprintf(format, args...)}
}

// Tokenize processes the input and returns all tokens. The end-of-stream
// token is not part of the result.
func (t *Tokenizer) Tokenize() ([]token.Token, error) {
	for {
		t.skipWhitespaceAndComments()
		if t.err != nil {
			return nil, t.err
		}
		if t.pos >= len(t.input) {
			break
		}

		t.mark()
		if len(t.tokens) >= t.maxTokens {
			t.errorf("too many tokens (limit %d)", t.maxTokens)
			return nil, t.err
		}

		r := t.next()
		switch {
		case isLetter(r) || r == '_':
			t.scanIdentifier()
		case isDigit(r):
			t.scanNumber()
		case r == '\'':
			t.scanChar()
		case r == '"':
			t.scanString()
		default:
			t.scanOperator(r)
		}

		if t.err != nil {
			return nil, t.err
		}
	}

	return t.tokens, nil
}
