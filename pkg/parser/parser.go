// Package parser implements a recursive-descent recognizer for WinZig that
// assembles an ordinal tree on an operand stack as productions are reduced
package parser

import (
	"context"
	"fmt"
	"log/slog"

	"winzigc/pkg/ast"
	"winzigc/pkg/lexer"
	"winzigc/pkg/log"
	"winzigc/pkg/token"
)

// DefaultMaxDepth bounds statement and expression nesting when Options.MaxDepth is unset
const DefaultMaxDepth = 1000

// Options configures a Parser
type Options struct {
	Logger   *slog.Logger // Receives a debug record per reduce; nil discards
	MaxDepth int          // Nesting limit; zero means DefaultMaxDepth
}

// Parser holds immutable options and may be shared between goroutines.
// Every call builds its own state.
type Parser struct {
	logger   *slog.Logger
	maxDepth int
}

// New creates a parser
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{
		logger:   opts.Logger,
		maxDepth: opts.MaxDepth,
	}
}

// Parse parses tokens with default options
func Parse(tokens []token.Token) (*ast.Node, error) {
	return New(Options{}).Parse(tokens)
}

// Parse checks tokens against the grammar and returns the program node.
// No partial tree is returned on error.
func (p *Parser) Parse(tokens []token.Token) (*ast.Node, error) {
	s := newState(tokens, p.maxDepth, p.logger)

	if err := s.program(); err != nil {
		return nil, err
	}
	if err := s.expect(token.EndOfStream); err != nil {
		return nil, err
	}
	if s.stack.len() != 1 {
		return nil, fmt.Errorf("%w: %d nodes left on the operand stack", ErrNoTree, s.stack.len())
	}

	root := s.stack.pop()
	p.logger.Debug("parse finished", "tokens", s.tokens.position(), "nodes", root.Count())
	return root, nil
}

// ParseSource tokenizes src and parses the result. Lexical errors are
// returned unchanged.
func (p *Parser) ParseSource(filename, src string) (*ast.Tree, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	root, err := p.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return ast.NewTree(filename, root), nil
}

// state is the per-call parse state
type state struct {
	tokens   *tokenCache
	cur      token.Token
	stack    nodeStack
	depth    int
	maxDepth int
	logger   *slog.Logger
	trace    bool
}

func newState(tokens []token.Token, maxDepth int, logger *slog.Logger) *state {
	s := &state{
		tokens:   newTokenCache(tokens),
		maxDepth: maxDepth,
		logger:   logger,
		trace:    logger.Enabled(context.Background(), slog.LevelDebug),
	}
	s.cur = s.tokens.peek()
	return s
}

// expect consumes the lookahead if it has the given kind. Literal-bearing
// tokens leave a leaf wrapped in its class node on the stack.
func (s *state) expect(kind token.Kind) error {
	if s.cur.Kind != kind {
		return s.unexpected(kind)
	}
	tok := s.tokens.advance()
	s.cur = s.tokens.peek()

	if kind.IsLiteral() {
		s.stack.push(ast.NewLeaf(tok))
		return s.reduce(ast.Class, ast.ClassLabel(kind), 1)
	}
	return nil
}

// want returns expect(kind) as a step for run
func (s *state) want(kind token.Kind) func() error {
	return func() error { return s.expect(kind) }
}

// reduce pops n nodes and pushes them back as the children of one new node
func (s *state) reduce(kind ast.Kind, label string, n int) error {
	children, ok := s.stack.popN(n)
	if !ok {
		return fmt.Errorf("%w: %s needs %d nodes but the operand stack holds %d",
			ErrNoTree, label, n, s.stack.len())
	}
	s.stack.push(ast.NewNode(kind, label, children))

	if s.trace {
		s.logger.Debug("reduce", "label", label, "arity", n, "depth", s.depth)
	}
	return nil
}

// build reduces a grammar production
func (s *state) build(label string, n int) error {
	return s.reduce(ast.Production, label, n)
}

// buildStep returns build(label, n) as a step for run
func (s *state) buildStep(label string, n int) func() error {
	return func() error { return s.build(label, n) }
}

// placeholder pushes the node standing for an empty optional construct
func (s *state) placeholder(label string) {
	s.stack.push(ast.NewPlaceholder(label))
}

// run executes steps in order and stops at the first error
func (s *state) run(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// list parses item (sep item)* and returns the number of items
func (s *state) list(item func() error, sep token.Kind) (int, error) {
	n := 0
	for {
		if err := item(); err != nil {
			return n, err
		}
		n++
		if !s.tokens.check(sep) {
			return n, nil
		}
		if err := s.expect(sep); err != nil {
			return n, err
		}
	}
}

// enter guards recursion into rule. Every successful enter needs a leave.
func (s *state) enter(rule string) error {
	if s.depth >= s.maxDepth {
		return fmt.Errorf("%w: %s at line %d, col %d exceeds %d levels",
			ErrTooDeep, rule, s.cur.Line, s.cur.Col, s.maxDepth)
	}
	s.depth++
	return nil
}

func (s *state) leave() {
	s.depth--
}

func (s *state) unexpected(expected ...token.Kind) error {
	return &SyntaxError{
		Line:     s.cur.Line,
		Col:      s.cur.Col,
		Found:    s.cur,
		Expected: expected,
	}
}

// name parses an identifier
func (s *state) name() error {
	return s.expect(token.Identifier)
}
