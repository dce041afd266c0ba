package parser

import (
	"winzigc/pkg/token"
)

// tokenCache navigates the token slice handed to a parse call. Reads past
// the last token return the synthesized end-of-stream token.
type tokenCache struct {
	tokens  []token.Token
	current int
	eos     token.Token
}

// newTokenCache wraps tokens. Anything after an explicit EndOfStream token
// is ignored.
func newTokenCache(tokens []token.Token) *tokenCache {
	for i, tok := range tokens {
		if tok.Kind == token.EndOfStream {
			tokens = tokens[:i]
			break
		}
	}

	eos := token.Token{Kind: token.EndOfStream, Text: token.EndOfStream.Text()}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eos.Line = last.Line
		eos.Col = last.EndCol
		eos.EndCol = last.EndCol
	}

	return &tokenCache{tokens: tokens, eos: eos}
}

// peek returns the lookahead token without consuming it
func (tc *tokenCache) peek() token.Token {
	if tc.current >= len(tc.tokens) {
		return tc.eos
	}
	return tc.tokens[tc.current]
}

// advance returns the lookahead token and moves past it
func (tc *tokenCache) advance() token.Token {
	tok := tc.peek()
	if !tc.isAtEnd() {
		tc.current++
	}
	return tok
}

// isAtEnd reports whether only the end-of-stream token remains
func (tc *tokenCache) isAtEnd() bool {
	return tc.current >= len(tc.tokens)
}

// check reports whether the lookahead token has the given kind
func (tc *tokenCache) check(kind token.Kind) bool {
	return tc.peek().Kind == kind
}

// checkAny reports whether the lookahead token has any of the given kinds
func (tc *tokenCache) checkAny(kinds kindSet) bool {
	return kinds.has(tc.peek().Kind)
}

// position returns the number of consumed tokens
func (tc *tokenCache) position() int {
	return tc.current
}
