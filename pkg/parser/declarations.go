package parser

import "winzigc/pkg/token"

// program parses
//
//	'program' Name ':' Consts Types Dclns SubProgs Body Name '.'
func (s *state) program() error {
	return s.run(
		s.want(token.Program),
		s.name,
		s.want(token.Colon),
		s.consts,
		s.types,
		s.dclns,
		s.subProgs,
		s.body,
		s.name,
		s.want(token.Dot),
		s.buildStep("program", 7),
	)
}

// consts parses an optional 'const' Const list ',' ';'
func (s *state) consts() error {
	if s.cur.Kind != token.Const {
		return s.build("consts", 0)
	}
	if err := s.expect(token.Const); err != nil {
		return err
	}
	n, err := s.list(s.constDef, token.Comma)
	if err != nil {
		return err
	}
	if err := s.expect(token.Semicolon); err != nil {
		return err
	}
	return s.build("consts", n)
}

func (s *state) constDef() error {
	return s.run(s.name, s.want(token.Equal), s.constValue, s.buildStep("const", 2))
}

func (s *state) constValue() error {
	switch s.cur.Kind {
	case token.Integer, token.Char, token.Identifier:
		return s.expect(s.cur.Kind)
	default:
		return s.unexpected(constValueFirst...)
	}
}

// types parses an optional 'type' (Type ';')+
func (s *state) types() error {
	if s.cur.Kind != token.Type {
		return s.build("types", 0)
	}
	if err := s.expect(token.Type); err != nil {
		return err
	}
	n := 0
	for {
		if err := s.run(s.typeDef, s.want(token.Semicolon)); err != nil {
			return err
		}
		n++
		if s.cur.Kind != token.Identifier {
			break
		}
	}
	return s.build("types", n)
}

func (s *state) typeDef() error {
	return s.run(s.name, s.want(token.Equal), s.litList, s.buildStep("type", 2))
}

func (s *state) litList() error {
	if err := s.expect(token.LParen); err != nil {
		return err
	}
	n, err := s.list(s.name, token.Comma)
	if err != nil {
		return err
	}
	if err := s.expect(token.RParen); err != nil {
		return err
	}
	return s.build("lit", n)
}

func (s *state) subProgs() error {
	n := 0
	for s.cur.Kind == token.Function {
		if err := s.fcn(); err != nil {
			return err
		}
		n++
	}
	return s.build("subprogs", n)
}

// fcn parses
//
//	'function' Name '(' Params ')' ':' Name ';' Consts Types Dclns Body Name ';'
func (s *state) fcn() error {
	return s.run(
		s.want(token.Function),
		s.name,
		s.want(token.LParen),
		s.params,
		s.want(token.RParen),
		s.want(token.Colon),
		s.name,
		s.want(token.Semicolon),
		s.consts,
		s.types,
		s.dclns,
		s.body,
		s.name,
		s.want(token.Semicolon),
		s.buildStep("fcn", 8),
	)
}

func (s *state) params() error {
	n, err := s.list(s.dcln, token.Semicolon)
	if err != nil {
		return err
	}
	return s.build("params", n)
}

// dclns parses an optional 'var' (Dcln ';')+
func (s *state) dclns() error {
	if s.cur.Kind != token.Var {
		return s.build("dclns", 0)
	}
	if err := s.expect(token.Var); err != nil {
		return err
	}
	n := 0
	for {
		if err := s.run(s.dcln, s.want(token.Semicolon)); err != nil {
			return err
		}
		n++
		if s.cur.Kind != token.Identifier {
			break
		}
	}
	return s.build("dclns", n)
}

// dcln parses Name list ',' ':' Name. The type name is the last child.
func (s *state) dcln() error {
	n, err := s.list(s.name, token.Comma)
	if err != nil {
		return err
	}
	if err := s.run(s.want(token.Colon), s.name); err != nil {
		return err
	}
	return s.build("var", n+1)
}

// body parses 'begin' Statement list ';' 'end'
func (s *state) body() error {
	if err := s.expect(token.Begin); err != nil {
		return err
	}
	n, err := s.list(s.statement, token.Semicolon)
	if err != nil {
		return err
	}
	if err := s.expect(token.End); err != nil {
		return err
	}
	return s.build("block", n)
}
