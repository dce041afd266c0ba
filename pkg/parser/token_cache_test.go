package parser

import (
	"testing"

	"winzigc/pkg/ast"
	"winzigc/pkg/token"
)

func TestTokenCacheSynthesizesEndOfStream(t *testing.T) {
	tc := newTokenCache([]token.Token{
		token.New(token.Begin, "begin", 1, 1),
		token.New(token.End, "end", 2, 3),
	})

	if !tc.check(token.Begin) {
		t.Fatalf("expected begin, got %v", tc.peek())
	}
	tc.advance()
	tc.advance()

	if !tc.isAtEnd() {
		t.Fatal("expected the cache to be exhausted")
	}
	eos := tc.advance()
	if eos.Kind != token.EndOfStream || eos.Line != 2 || eos.Col != 6 {
		t.Errorf("unexpected end-of-stream token %v", eos)
	}
	if tc.position() != 2 {
		t.Errorf("Expected 2 consumed tokens, got %d", tc.position())
	}
}

func TestTokenCacheStopsAtExplicitEndOfStream(t *testing.T) {
	tc := newTokenCache([]token.Token{
		token.New(token.Identifier, "x", 1, 1),
		{Kind: token.EndOfStream, Line: 1, Col: 2},
		token.New(token.Identifier, "y", 1, 3),
	})

	if !tc.checkAny(kindSet{token.Integer, token.Identifier}) {
		t.Fatal("expected an identifier")
	}
	tc.advance()
	if !tc.check(token.EndOfStream) {
		t.Errorf("tokens after end of stream should be ignored, got %v", tc.peek())
	}
}

func TestNodeStackPopN(t *testing.T) {
	var st nodeStack
	for _, label := range []string{"a", "b", "c"} {
		st.push(&ast.Node{Label: label})
	}

	nodes, ok := st.popN(2)
	if !ok || len(nodes) != 2 || nodes[0].Label != "b" || nodes[1].Label != "c" {
		t.Fatalf("unexpected popN result %v %v", nodes, ok)
	}
	if _, ok := st.popN(2); ok {
		t.Error("popN past the bottom should fail")
	}
	if st.len() != 1 || st.pop().Label != "a" || st.pop() != nil {
		t.Error("unexpected remaining stack")
	}
}
