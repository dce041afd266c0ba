package parser

import "winzigc/pkg/ast"

// nodeStack is the operand stack that productions reduce into
type nodeStack struct {
	items []*ast.Node
}

func (s *nodeStack) push(n *ast.Node) {
	s.items = append(s.items, n)
}

func (s *nodeStack) pop() *ast.Node {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	top := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return top
}

// popN removes the top n nodes and returns them oldest first
func (s *nodeStack) popN(n int) ([]*ast.Node, bool) {
	if n < 0 || n > len(s.items) {
		return nil, false
	}
	start := len(s.items) - n
	nodes := make([]*ast.Node, n)
	copy(nodes, s.items[start:])
	for i := start; i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = s.items[:start]
	return nodes, true
}

func (s *nodeStack) len() int {
	return len(s.items)
}
