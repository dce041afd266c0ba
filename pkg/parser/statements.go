package parser

import (
	"winzigc/pkg/ast"
	"winzigc/pkg/token"
)

// statement dispatches on the lookahead. Anything outside the statement
// FIRST set is the empty statement.
func (s *state) statement() error {
	if err := s.enter("statement"); err != nil {
		return err
	}
	defer s.leave()

	switch s.cur.Kind {
	case token.Identifier:
		return s.assignment()
	case token.Output:
		return s.outputStatement()
	case token.If:
		return s.ifStatement()
	case token.While:
		return s.whileStatement()
	case token.Repeat:
		return s.repeatStatement()
	case token.For:
		return s.forStatement()
	case token.Loop:
		return s.loopStatement()
	case token.Case:
		return s.caseStatement()
	case token.Read:
		return s.readStatement()
	case token.Exit:
		return s.run(s.want(token.Exit), s.buildStep("exit", 0))
	case token.Return:
		return s.run(s.want(token.Return), s.expression, s.buildStep("return", 1))
	case token.Begin:
		return s.body()
	default:
		s.placeholder(ast.LabelNull)
		return nil
	}
}

func (s *state) outputStatement() error {
	if err := s.run(s.want(token.Output), s.want(token.LParen)); err != nil {
		return err
	}
	n, err := s.list(s.outExp, token.Comma)
	if err != nil {
		return err
	}
	if err := s.expect(token.RParen); err != nil {
		return err
	}
	return s.build("output", n)
}

// outExp wraps a string literal in "string" and anything else in "integer"
func (s *state) outExp() error {
	switch {
	case s.cur.Kind == token.String:
		return s.run(s.want(token.String), s.buildStep("string", 1))
	case s.tokens.checkAny(primaryFirst):
		return s.run(s.expression, s.buildStep("integer", 1))
	default:
		return s.unexpected(outExpFirst...)
	}
}

func (s *state) ifStatement() error {
	if err := s.run(s.want(token.If), s.expression, s.want(token.Then), s.statement); err != nil {
		return err
	}
	if s.cur.Kind != token.Else {
		return s.build("if", 2)
	}
	return s.run(s.want(token.Else), s.statement, s.buildStep("if", 3))
}

func (s *state) whileStatement() error {
	return s.run(
		s.want(token.While),
		s.expression,
		s.want(token.Do),
		s.statement,
		s.buildStep("while", 2),
	)
}

func (s *state) repeatStatement() error {
	if err := s.expect(token.Repeat); err != nil {
		return err
	}
	n, err := s.list(s.statement, token.Semicolon)
	if err != nil {
		return err
	}
	if err := s.run(s.want(token.Until), s.expression); err != nil {
		return err
	}
	return s.build("repeat", n+1)
}

// forStatement parses 'for' '(' ForStat ';' ForExp ';' ForStat ')' Statement
func (s *state) forStatement() error {
	return s.run(
		s.want(token.For),
		s.want(token.LParen),
		s.forStat,
		s.want(token.Semicolon),
		s.forExp,
		s.want(token.Semicolon),
		s.forStat,
		s.want(token.RParen),
		s.statement,
		s.buildStep("for", 4),
	)
}

func (s *state) forStat() error {
	if s.cur.Kind == token.Identifier {
		return s.assignment()
	}
	s.placeholder(ast.LabelNull)
	return nil
}

func (s *state) forExp() error {
	if s.tokens.checkAny(primaryFirst) {
		return s.expression()
	}
	s.placeholder(ast.LabelTrue)
	return nil
}

func (s *state) loopStatement() error {
	if err := s.expect(token.Loop); err != nil {
		return err
	}
	n, err := s.list(s.statement, token.Semicolon)
	if err != nil {
		return err
	}
	if err := s.expect(token.Pool); err != nil {
		return err
	}
	return s.build("loop", n)
}

// caseStatement parses 'case' Expression 'of' Caseclauses OtherwiseClause 'end'
func (s *state) caseStatement() error {
	if err := s.run(s.want(token.Case), s.expression, s.want(token.Of)); err != nil {
		return err
	}
	n := 0
	for {
		if err := s.run(s.caseClause, s.want(token.Semicolon)); err != nil {
			return err
		}
		n++
		if !constValueFirst.has(s.cur.Kind) {
			break
		}
	}
	if s.cur.Kind == token.Otherwise {
		if err := s.run(s.want(token.Otherwise), s.statement, s.buildStep("otherwise", 1)); err != nil {
			return err
		}
		n++
	}
	if err := s.expect(token.End); err != nil {
		return err
	}
	return s.build("case", n+1)
}

func (s *state) caseClause() error {
	n, err := s.list(s.caseExpression, token.Comma)
	if err != nil {
		return err
	}
	if err := s.run(s.want(token.Colon), s.statement); err != nil {
		return err
	}
	return s.build("case_clause", n+1)
}

func (s *state) caseExpression() error {
	if err := s.constValue(); err != nil {
		return err
	}
	if s.cur.Kind != token.CaseDots {
		return nil
	}
	return s.run(s.want(token.CaseDots), s.constValue, s.buildStep("..", 2))
}

func (s *state) readStatement() error {
	if err := s.run(s.want(token.Read), s.want(token.LParen)); err != nil {
		return err
	}
	n, err := s.list(s.name, token.Comma)
	if err != nil {
		return err
	}
	if err := s.expect(token.RParen); err != nil {
		return err
	}
	return s.build("read", n)
}

// assignment parses Name ':=' Expression or Name ':=:' Name
func (s *state) assignment() error {
	if err := s.name(); err != nil {
		return err
	}
	switch s.cur.Kind {
	case token.Assign:
		return s.run(s.want(token.Assign), s.expression, s.buildStep("assign", 2))
	case token.Swap:
		return s.run(s.want(token.Swap), s.name, s.buildStep("swap", 2))
	default:
		return s.unexpected(token.Assign, token.Swap)
	}
}
