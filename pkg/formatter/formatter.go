// Package formatter renders parse trees as text dumps, JSON and YAML
package formatter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"winzigc/pkg/ast"
)

// Output formats understood by Format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultIndent is the per-depth prefix of the text dump
const DefaultIndent = ". "

// Formatter renders trees
type Formatter struct {
	indent string
}

// New creates a formatter using DefaultIndent
func New() *Formatter {
	return &Formatter{indent: DefaultIndent}
}

// NewWithIndent creates a formatter with a custom per-depth prefix
func NewWithIndent(indent string) *Formatter {
	if indent == "" {
		indent = DefaultIndent
	}
	return &Formatter{indent: indent}
}

// Format renders root in the named format
func (f *Formatter) Format(root *ast.Node, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return []byte(f.FormatTree(root)), nil
	case FormatJSON:
		return f.FormatJSON(root)
	case FormatYAML, "yml":
		return f.FormatYAML(root)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Extension returns the file suffix used when saving a tree in format
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON:
		return ".json"
	case FormatYAML, "yml":
		return ".yaml"
	default:
		return ".tree"
	}
}

// FormatTree returns the pre-order dump with one label(arity) line per node
func (f *Formatter) FormatTree(root *ast.Node) string {
	var b strings.Builder
	f.writeTree(&b, root)
	return b.String()
}

// Write streams the text dump to w
func (f *Formatter) Write(w io.Writer, root *ast.Node) error {
	bw := bufio.NewWriter(w)
	f.writeTree(bw, root)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

func (f *Formatter) writeTree(w io.StringWriter, root *ast.Node) {
	if root == nil {
		return
	}
	root.Walk(func(node *ast.Node, depth int) bool {
		w.WriteString(f.getIndent(depth))
		w.WriteString(node.String())
		w.WriteString("\n")
		return true
	})
}

// getIndent returns the prefix for the given depth
func (f *Formatter) getIndent(depth int) string {
	return strings.Repeat(f.indent, depth)
}

// treeNode is the structured form used for JSON and YAML output
type treeNode struct {
	Label    string      `json:"label" yaml:"label"`
	Kind     string      `json:"kind" yaml:"kind"`
	Arity    int         `json:"arity" yaml:"arity"`
	Line     int         `json:"line,omitempty" yaml:"line,omitempty"`
	Col      int         `json:"col,omitempty" yaml:"col,omitempty"`
	Children []*treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toTreeNode(n *ast.Node) *treeNode {
	if n == nil {
		return nil
	}
	out := &treeNode{
		Label: n.Label,
		Kind:  n.Kind.String(),
		Arity: n.Arity,
		Line:  n.Pos.Line,
		Col:   n.Pos.Col,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, toTreeNode(child))
	}
	return out
}

// FormatJSON renders the tree as indented JSON
func (f *Formatter) FormatJSON(root *ast.Node) ([]byte, error) {
	data, err := json.MarshalIndent(toTreeNode(root), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// FormatYAML renders the tree as YAML
func (f *Formatter) FormatYAML(root *ast.Node) ([]byte, error) {
	data, err := yaml.Marshal(toTreeNode(root))
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree as YAML: %w", err)
	}
	return data, nil
}

// GetNodeSummary returns a short multi-line description of a node
func (f *Formatter) GetNodeSummary(node *ast.Node) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("Label: %s\n", node.Label))
	result.WriteString(fmt.Sprintf("Kind: %s\n", node.Kind))
	result.WriteString(fmt.Sprintf("Arity: %d\n", node.Arity))
	result.WriteString(fmt.Sprintf("Depth: %d\n", node.Depth()))

	if node.Kind == ast.Class {
		result.WriteString(fmt.Sprintf("Text: %s\n", node.Text()))
	}
	if node.Pos.Line > 0 {
		result.WriteString(fmt.Sprintf("Position: %s\n", node.Pos))
	}
	if len(node.Children) > 0 {
		result.WriteString(fmt.Sprintf("Subtree: %d nodes\n", node.Count()))
	}

	return result.String()
}
