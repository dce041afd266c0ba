package lexer

import "winzigc/pkg/token"

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpace matches space, form feed, tab, vertical tab, carriage return and newline
func isSpace(r rune) bool {
	switch r {
	case ' ', '\f', '\t', '\v', '\r', '\n':
		return true
	}
	return false
}

// skipWhitespaceAndComments skips blanks, # line comments and { } block comments
func (t *Tokenizer) skipWhitespaceAndComments() {
	for t.pos < len(t.input) {
		r := t.peek()
		switch {
		case isSpace(r):
			t.next()
		case r == '#':
			for t.pos < len(t.input) && t.peek() != '\n' {
				t.next()
			}
		case r == '{':
			t.mark()
			t.next()
			for {
				c := t.next()
				if c == 0 && t.width == 0 {
					t.errorf("unterminated comment")
					return
				}
				if c == '}' {
					break
				}
			}
		default:
			return
		}
	}
}

// scanIdentifier scans an identifier or keyword
func (t *Tokenizer) scanIdentifier() {
	for {
		r := t.peek()
		if !isLetter(r) && !isDigit(r) && r != '_' {
			break
		}
		t.next()
	}
	t.emit(token.Lookup(t.input[t.start:t.pos]))
}

// scanNumber scans an unsigned integer literal
func (t *Tokenizer) scanNumber() {
	for isDigit(t.peek()) {
		t.next()
	}
	t.emit(token.Integer)
}

// scanChar scans a character literal holding exactly one character
func (t *Tokenizer) scanChar() {
	r := t.next()
	if t.width == 0 || r == '\'' {
		t.errorf("malformed character literal")
		return
	}
	if t.next() != '\'' {
		t.errorf("malformed character literal")
		return
	}
	t.emit(token.Char)
}

// scanString scans a double-quoted string literal
func (t *Tokenizer) scanString() {
	for {
		r := t.next()
		if r == 0 && t.width == 0 {
			t.errorf("unterminated string literal")
			return
		}
		if r == '"' {
			break
		}
	}
	t.emit(token.String)
}

// scanOperator scans operators and punctuation, longest match first
func (t *Tokenizer) scanOperator(r rune) {
	switch r {
	case ';':
		t.emit(token.Semicolon)
	case ',':
		t.emit(token.Comma)
	case '(':
		t.emit(token.LParen)
	case ')':
		t.emit(token.RParen)
	case '+':
		t.emit(token.Plus)
	case '-':
		t.emit(token.Minus)
	case '*':
		t.emit(token.Multiply)
	case '/':
		t.emit(token.Divide)
	case '=':
		t.emit(token.Equal)

	case ':':
		if t.peek() != '=' {
			t.emit(token.Colon)
			return
		}
		t.next()
		if t.peek() == ':' {
			t.next()
			t.emit(token.Swap)
		} else {
			t.emit(token.Assign)
		}

	case '.':
		if t.peek() == '.' {
			t.next()
			t.emit(token.CaseDots)
		} else {
			t.emit(token.Dot)
		}

	case '<':
		switch t.peek() {
		case '=':
			t.next()
			t.emit(token.LessEqual)
		case '>':
			t.next()
			t.emit(token.NotEqual)
		default:
			t.emit(token.Less)
		}

	case '>':
		if t.peek() == '=' {
			t.next()
			t.emit(token.GreaterEqual)
		} else {
			t.emit(token.Greater)
		}

	default:
		t.errorf("unexpected character %q", r)
	}
}
