package parser

import (
	"errors"
	"fmt"
	"strings"

	"winzigc/pkg/token"
)

var (
	// ErrSyntax is matched by every *SyntaxError
	ErrSyntax = errors.New("syntax error")
	// ErrNoTree means the operand stack did not reduce to a single root
	ErrNoTree = errors.New("no tree produced")
	// ErrTooDeep means statements or expressions nest beyond Options.MaxDepth
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError reports the first token that did not fit the grammar
type SyntaxError struct {
	Line     int
	Col      int
	Found    token.Token
	Expected []token.Kind
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: expected %s, found %s",
		e.Line, e.Col, describeKinds(e.Expected), describeToken(e.Found))
}

// Is makes errors.Is(err, ErrSyntax) hold for any *SyntaxError
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func describeKinds(kinds []token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = describeKind(k)
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

func describeKind(k token.Kind) string {
	if k.IsLiteral() || k == token.EndOfStream {
		return k.Text()
	}
	return "'" + k.Text() + "'"
}

func describeToken(tok token.Token) string {
	switch {
	case tok.Kind == token.EndOfStream:
		return "end of input"
	case tok.Kind.IsLiteral():
		return fmt.Sprintf("%s %s", tok.Kind.Text(), tok.Text)
	}
	return "'" + tok.Text + "'"
}
