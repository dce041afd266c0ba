// Package token defines the closed set of WinZig token kinds and the token value
// exchanged between the scanner and the parser
package token

import "fmt"

// Kind represents the kind of a token
type Kind int

const (
	Illegal Kind = iota
	EndOfStream

	// Literal-bearing kinds
	Identifier
	Integer
	Char
	String

	// Punctuation and operators
	Colon        // :
	Semicolon    // ;
	Dot          // .
	Comma        // ,
	LParen       // (
	RParen       // )
	Plus         // +
	Minus        // -
	Multiply     // *
	Divide       // /
	Assign       // :=
	Swap         // :=:
	CaseDots     // ..
	LessEqual    // <=
	NotEqual     // <>
	Less         // <
	GreaterEqual // >=
	Greater      // >
	Equal        // =

	// Keywords
	keywordStart // Marker for start of keywords
	Program
	Var
	Const
	Type
	Function
	Return
	Begin
	End
	Output
	If
	Then
	Else
	While
	Do
	Case
	Of
	Otherwise
	Repeat
	For
	Until
	Loop
	Pool
	Exit
	Mod
	And
	Or
	Not
	Read
	Succ
	Pred
	Chr
	Ord
	EOFKeyword // eof, the built-in end-of-input test
	keywordEnd // Marker for end of keywords
)

// kindNames maps kinds to their names for diagnostics
var kindNames = map[Kind]string{
	Illegal:      "ILLEGAL",
	EndOfStream:  "END_OF_STREAM",
	Identifier:   "IDENTIFIER",
	Integer:      "INTEGER",
	Char:         "CHAR",
	String:       "STRING",
	Colon:        "COLON",
	Semicolon:    "SEMI_COLON",
	Dot:          "DOT",
	Comma:        "COMMA",
	LParen:       "LPAREN",
	RParen:       "RPAREN",
	Plus:         "PLUS_OP",
	Minus:        "MINUS_OP",
	Multiply:     "MULTIPLY_OP",
	Divide:       "DIVIDE_OP",
	Assign:       "ASSIGN",
	Swap:         "SWAP",
	CaseDots:     "CASE_DOTS",
	LessEqual:    "LESS_EQUAL_OP",
	NotEqual:     "NOT_EQUAL_OP",
	Less:         "LESS_OP",
	GreaterEqual: "GREATER_EQUAL_OP",
	Greater:      "GREATER_OP",
	Equal:        "EQUAL_OP",
	Program:      "PROG",
	Var:          "VAR",
	Const:        "CONST",
	Type:         "TYPE",
	Function:     "FUNCTION",
	Return:       "RETURN",
	Begin:        "BEGIN",
	End:          "END",
	Output:       "OUTPUT",
	If:           "IF",
	Then:         "THEN",
	Else:         "ELSE",
	While:        "WHILE",
	Do:           "DO",
	Case:         "CASE",
	Of:           "OF",
	Otherwise:    "OTHERWISE",
	Repeat:       "REPEAT",
	For:          "FOR",
	Until:        "UNTIL",
	Loop:         "LOOP",
	Pool:         "POOL",
	Exit:         "EXIT",
	Mod:          "MOD_OP",
	And:          "AND_OP",
	Or:           "OR_OP",
	Not:          "NOT_OP",
	Read:         "READ",
	Succ:         "SUCC",
	Pred:         "PRED",
	Chr:          "CHR",
	Ord:          "ORD",
	EOFKeyword:   "EOF",
}

// kindText holds the fixed spelling of punctuation, operators and keywords
var kindText = map[Kind]string{
	Colon:        ":",
	Semicolon:    ";",
	Dot:          ".",
	Comma:        ",",
	LParen:       "(",
	RParen:       ")",
	Plus:         "+",
	Minus:        "-",
	Multiply:     "*",
	Divide:       "/",
	Assign:       ":=",
	Swap:         ":=:",
	CaseDots:     "..",
	LessEqual:    "<=",
	NotEqual:     "<>",
	Less:         "<",
	GreaterEqual: ">=",
	Greater:      ">",
	Equal:        "=",
}

// keywords maps reserved words to their kinds
var keywords = map[string]Kind{
	"program":   Program,
	"var":       Var,
	"const":     Const,
	"type":      Type,
	"function":  Function,
	"return":    Return,
	"begin":     Begin,
	"end":       End,
	"output":    Output,
	"if":        If,
	"then":      Then,
	"else":      Else,
	"while":     While,
	"do":        Do,
	"case":      Case,
	"of":        Of,
	"otherwise": Otherwise,
	"repeat":    Repeat,
	"for":       For,
	"until":     Until,
	"loop":      Loop,
	"pool":      Pool,
	"exit":      Exit,
	"mod":       Mod,
	"and":       And,
	"or":        Or,
	"not":       Not,
	"read":      Read,
	"succ":      Succ,
	"pred":      Pred,
	"chr":       Chr,
	"ord":       Ord,
	"eof":       EOFKeyword,
}

func init() {
	for word, kind := range keywords {
		kindText[kind] = word
	}
}

// String returns the symbolic name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Text returns the fixed spelling of the kind, or an angle-bracketed
// class name for literal-bearing kinds
func (k Kind) Text() string {
	switch k {
	case Identifier:
		return "<identifier>"
	case Integer:
		return "<integer>"
	case Char:
		return "<char>"
	case String:
		return "<string>"
	case EndOfStream:
		return "<EOF>"
	}
	if text, ok := kindText[k]; ok {
		return text
	}
	return k.String()
}

// IsKeyword reports whether the kind is a reserved word
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsLiteral reports whether tokens of this kind carry a literal value
func (k Kind) IsLiteral() bool {
	switch k {
	case Identifier, Integer, Char, String:
		return true
	}
	return false
}

// Lookup maps an identifier spelling to its keyword kind, or Identifier
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Position is a line/column location in the source, both 1-based
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexeme with its source position
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Col    int
	EndCol int
}

// New creates a token whose end column is derived from its text
func New(kind Kind, text string, line, col int) Token {
	return Token{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Col:    col,
		EndCol: col + len(text),
	}
}

// Pos returns the start position of the token
func (t Token) Pos() Position {
	return Position{Line: t.Line, Col: t.Col}
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d:%d", t.Kind, t.Text, t.Line, t.Col)
}
