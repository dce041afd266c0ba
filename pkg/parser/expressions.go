package parser

import "winzigc/pkg/token"

// expression parses Term [relop Term]. A second relational operator is
// left for the caller to reject.
func (s *state) expression() error {
	if err := s.enter("expression"); err != nil {
		return err
	}
	defer s.leave()

	if err := s.term(); err != nil {
		return err
	}
	switch op := s.cur.Kind; op {
	case token.LessEqual, token.Less, token.GreaterEqual,
		token.Greater, token.Equal, token.NotEqual:
		return s.run(s.want(op), s.term, s.buildStep(op.Text(), 2))
	}
	return nil
}

// term parses Factor (('+'|'-'|'or') Factor)*, left-associative
func (s *state) term() error {
	if err := s.factor(); err != nil {
		return err
	}
	for {
		switch op := s.cur.Kind; op {
		case token.Plus, token.Minus, token.Or:
			if err := s.run(s.want(op), s.factor, s.buildStep(op.Text(), 2)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// factor parses Primary (('*'|'/'|'and'|'mod') Primary)*, left-associative
func (s *state) factor() error {
	if err := s.primary(); err != nil {
		return err
	}
	for {
		switch op := s.cur.Kind; op {
		case token.Multiply, token.Divide, token.And, token.Mod:
			if err := s.run(s.want(op), s.primary, s.buildStep(op.Text(), 2)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *state) primary() error {
	if err := s.enter("primary"); err != nil {
		return err
	}
	defer s.leave()

	switch s.cur.Kind {
	case token.Minus:
		return s.run(s.want(token.Minus), s.primary, s.buildStep("-", 1))
	case token.Plus:
		return s.run(s.want(token.Plus), s.primary)
	case token.Not:
		return s.run(s.want(token.Not), s.primary, s.buildStep("not", 1))
	case token.EOFKeyword:
		return s.run(s.want(token.EOFKeyword), s.buildStep("eof", 0))
	case token.Integer, token.Char:
		return s.expect(s.cur.Kind)
	case token.Identifier:
		return s.nameOrCall()
	case token.LParen:
		return s.run(s.want(token.LParen), s.expression, s.want(token.RParen))
	case token.Succ, token.Pred, token.Chr, token.Ord:
		fn := s.cur.Kind
		return s.run(
			s.want(fn),
			s.want(token.LParen),
			s.expression,
			s.want(token.RParen),
			s.buildStep(fn.Text(), 1),
		)
	default:
		return s.unexpected(primaryFirst...)
	}
}

// nameOrCall parses Name or Name '(' Expression list ',' ')'
func (s *state) nameOrCall() error {
	if err := s.name(); err != nil {
		return err
	}
	if s.cur.Kind != token.LParen {
		return nil
	}
	if err := s.expect(token.LParen); err != nil {
		return err
	}
	n, err := s.list(s.expression, token.Comma)
	if err != nil {
		return err
	}
	if err := s.expect(token.RParen); err != nil {
		return err
	}
	return s.build("call", n+1)
}
