package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"program", Program},
		{"pool", Pool},
		{"eof", EOFKeyword},
		{"mod", Mod},
		{"integer", Identifier},
		{"Program", Identifier},
		{"x1", Identifier},
	}

	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for word, kind := range keywords {
		if !kind.IsKeyword() {
			t.Errorf("%q: expected %s to be a keyword", word, kind)
		}
		if kind.Text() != word {
			t.Errorf("%s.Text() = %q, want %q", kind, kind.Text(), word)
		}
	}

	for _, kind := range []Kind{Identifier, Integer, Char, String} {
		if !kind.IsLiteral() {
			t.Errorf("expected %s to be literal-bearing", kind)
		}
		if kind.IsKeyword() {
			t.Errorf("%s should not be a keyword", kind)
		}
	}

	if Assign.IsLiteral() || EndOfStream.IsLiteral() {
		t.Error("operators and end-of-stream are not literal-bearing")
	}
}

func TestKindNamesAreComplete(t *testing.T) {
	for k := Illegal; k < keywordEnd; k++ {
		if k == keywordStart {
			continue
		}
		if _, ok := kindNames[k]; !ok {
			t.Errorf("kind %d has no name", int(k))
		}
	}
}

func TestKindText(t *testing.T) {
	tests := map[Kind]string{
		Swap:        ":=:",
		Assign:      ":=",
		CaseDots:    "..",
		NotEqual:    "<>",
		Identifier:  "<identifier>",
		String:      "<string>",
		EndOfStream: "<EOF>",
	}

	for kind, want := range tests {
		if got := kind.Text(); got != want {
			t.Errorf("%s.Text() = %q, want %q", kind, got, want)
		}
	}
}

func TestTokenNew(t *testing.T) {
	tok := New(Identifier, "count", 3, 7)
	if tok.EndCol != 12 {
		t.Errorf("EndCol = %d, want 12", tok.EndCol)
	}
	if tok.Pos() != (Position{Line: 3, Col: 7}) {
		t.Errorf("Pos() = %v", tok.Pos())
	}
	if got := tok.String(); got != "IDENTIFIER(count)@3:7" {
		t.Errorf("String() = %q", got)
	}
}
