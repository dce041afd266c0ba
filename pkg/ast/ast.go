// Package ast defines the ordinal tree built by the WinZig parser
package ast

import (
	"fmt"

	"winzigc/pkg/token"
)

// Kind tags what a node stands for
type Kind int

const (
	Production  Kind = iota // A reduced grammar production or operator
	Literal                 // Raw text of an identifier, integer, char or string
	Class                   // Generic marker wrapping exactly one Literal
	Placeholder             // An optional construct that matched nothing
)

func (k Kind) String() string {
	switch k {
	case Production:
		return "production"
	case Literal:
		return "literal"
	case Class:
		return "class"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Labels shared by the parser and consumers of the tree
const (
	LabelIdentifier = "<identifier>"
	LabelInteger    = "<integer>"
	LabelChar       = "<char>"
	LabelString     = "<string>"
	LabelNull       = "<null>"
	LabelTrue       = "true"
)

// ClassLabel returns the generic marker label for a literal-bearing token kind
func ClassLabel(k token.Kind) string {
	switch k {
	case token.Identifier:
		return LabelIdentifier
	case token.Integer:
		return LabelInteger
	case token.Char:
		return LabelChar
	case token.String:
		return LabelString
	}
	return ""
}

// Node is a single tree node. A node owns its children; Parent is a
// back-reference used only to compute depth.
type Node struct {
	Kind     Kind
	Label    string
	Arity    int
	Children []*Node
	Parent   *Node
	Pos      token.Position // Set on Literal nodes only
}

// NewNode creates a node that adopts the given children in order
func NewNode(kind Kind, label string, children []*Node) *Node {
	n := &Node{
		Kind:     kind,
		Label:    label,
		Arity:    len(children),
		Children: children,
	}
	for _, child := range children {
		child.Parent = n
	}
	return n
}

// NewLeaf creates a zero-arity literal node from a token
func NewLeaf(tok token.Token) *Node {
	return &Node{
		Kind:  Literal,
		Label: tok.Text,
		Pos:   tok.Pos(),
	}
}

// NewPlaceholder creates a zero-arity placeholder node
func NewPlaceholder(label string) *Node {
	return &Node{Kind: Placeholder, Label: label}
}

// IsEmpty reports whether the node marks an optional construct that matched nothing
func (n *Node) IsEmpty() bool {
	return n.Kind == Placeholder
}

// Text returns the raw literal text under a class wrapper, or the label itself
func (n *Node) Text() string {
	if n.Kind == Class && len(n.Children) == 1 {
		return n.Children[0].Label
	}
	return n.Label
}

// Depth returns the number of ancestor hops to the root
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Walk visits the subtree in pre-order. The callback receives the depth
// relative to n; returning false skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the subtree
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Find returns all nodes with the given label in pre-order
func (n *Node) Find(label string) []*Node {
	var found []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Label == label {
			found = append(found, node)
		}
		return true
	})
	return found
}

// CheckArity verifies that every node has exactly as many children as it
// declares and that each child points back to its parent
func (n *Node) CheckArity() error {
	var err error
	n.Walk(func(node *Node, _ int) bool {
		if err != nil {
			return false
		}
		if len(node.Children) != node.Arity {
			err = fmt.Errorf("node %s declares arity %d but has %d children", node.Label, node.Arity, len(node.Children))
			return false
		}
		for _, child := range node.Children {
			if child.Parent != node {
				err = fmt.Errorf("child %s of %s has a foreign parent", child.Label, node.Label)
				return false
			}
		}
		return true
	})
	return err
}

// String returns label(arity), the form used in tree dumps
func (n *Node) String() string {
	return fmt.Sprintf("%s(%d)", n.Label, n.Arity)
}

// Tree represents the complete parsed tree of a WinZig source file
type Tree struct {
	Root     *Node  // Program node
	Filename string // Source filename
}

// NewTree creates a new tree
func NewTree(filename string, root *Node) *Tree {
	return &Tree{Root: root, Filename: filename}
}

// ProgramName returns the name declared after the program keyword
func (t *Tree) ProgramName() string {
	if t.Root == nil || len(t.Root.Children) == 0 {
		return ""
	}
	return t.Root.Children[0].Text()
}
