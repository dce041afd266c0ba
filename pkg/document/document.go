// Package document provides a high-level abstraction over a WinZig
// compilation unit. It runs the scanner and the parser once and exposes the
// resulting tokens and tree together with statistics, validation and output.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"winzigc/pkg/ast"
	"winzigc/pkg/formatter"
	"winzigc/pkg/lexer"
	"winzigc/pkg/parser"
	"winzigc/pkg/token"
)

// Document is a parsed WinZig source file
type Document struct {
	filename  string               // Source filename (absolute when loaded from file)
	content   string               // Source text
	tokens    []token.Token        // Scanner output
	tree      *ast.Tree            // Parse result
	parser    *parser.Parser       // Parser instance
	formatter *formatter.Formatter // Formatter instance for output
}

// Option customizes a Document before it is parsed
type Option func(*Document)

// WithParser parses with p instead of a default parser
func WithParser(p *parser.Parser) Option {
	return func(d *Document) {
		d.parser = p
	}
}

// WithFormatter renders output with f instead of a default formatter
func WithFormatter(f *formatter.Formatter) Option {
	return func(d *Document) {
		d.formatter = f
	}
}

// NewFromFile creates a new document by loading and parsing a file
func NewFromFile(filename string, opts ...Option) (*Document, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", filename, err)
	}

	return NewFromContent(absPath, string(content), opts...)
}

// NewFromContent creates a new document from content with a given name
func NewFromContent(name, content string, opts ...Option) (*Document, error) {
	doc := &Document{
		filename: name,
		content:  content,
	}
	for _, opt := range opts {
		opt(doc)
	}
	if doc.parser == nil {
		doc.parser = parser.New(parser.Options{})
	}
	if doc.formatter == nil {
		doc.formatter = formatter.New()
	}

	tokens, err := lexer.Tokenize(content)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s: %w", name, err)
	}
	root, err := doc.parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	doc.tokens = tokens
	doc.tree = ast.NewTree(name, root)
	return doc, nil
}

// GetFilename returns the document's filename
func (d *Document) GetFilename() string {
	return d.filename
}

// GetContent returns the source text
func (d *Document) GetContent() string {
	return d.content
}

// GetTokens returns the scanned tokens
func (d *Document) GetTokens() []token.Token {
	return d.tokens
}

// GetTree returns the parse tree
func (d *Document) GetTree() *ast.Tree {
	return d.tree
}

// ProgramName returns the name after the program keyword
func (d *Document) ProgramName() string {
	return d.tree.ProgramName()
}

// FindNodes returns every node with the given label in source order
func (d *Document) FindNodes(label string) []*ast.Node {
	return d.tree.Root.Find(label)
}

// FunctionNames returns the names of the declared functions in source order
func (d *Document) FunctionNames() []string {
	var names []string
	for _, fcn := range d.FindNodes("fcn") {
		names = append(names, fcn.Children[0].Text())
	}
	return names
}

// Stats summarizes a document
type Stats struct {
	Lines        int `json:"lines" yaml:"lines"`
	Tokens       int `json:"tokens" yaml:"tokens"`
	Nodes        int `json:"nodes" yaml:"nodes"`
	MaxDepth     int `json:"max_depth" yaml:"max_depth"`
	Functions    int `json:"functions" yaml:"functions"`
	Declarations int `json:"declarations" yaml:"declarations"`
	Statements   int `json:"statements" yaml:"statements"`
}

var statementLabels = map[string]bool{
	"assign": true, "swap": true, "output": true, "if": true, "while": true,
	"repeat": true, "for": true, "loop": true, "case": true, "read": true,
	"exit": true, "return": true,
}

// GetStats walks the tree once and counts what it finds
func (d *Document) GetStats() Stats {
	stats := Stats{
		Lines:  strings.Count(d.content, "\n"),
		Tokens: len(d.tokens),
	}
	if d.content != "" && !strings.HasSuffix(d.content, "\n") {
		stats.Lines++
	}

	d.tree.Root.Walk(func(node *ast.Node, depth int) bool {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if node.Kind != ast.Production {
			return true
		}
		switch {
		case node.Label == "fcn":
			stats.Functions++
		case node.Label == "var" && node.Parent != nil && node.Parent.Label == "dclns":
			stats.Declarations += node.Arity - 1
		case statementLabels[node.Label]:
			stats.Statements++
		}
		return true
	})

	return stats
}

// Validation Methods

// Severity levels for validation issues
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ValidationIssue is a problem found by Validate
type ValidationIssue struct {
	Path      string // Program or function the issue belongs to
	IssueType string
	Message   string
	Severity  string // "error", "warning", "info"
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs checks that the grammar itself does not enforce
func (d *Document) Validate() []ValidationIssue {
	var issues []ValidationIssue
	root := d.tree.Root
	program := d.ProgramName()

	if err := root.CheckArity(); err != nil {
		issues = append(issues, ValidationIssue{
			Path:      program,
			IssueType: "arity_mismatch",
			Message:   err.Error(),
			Severity:  SeverityError,
		})
	}

	if end := root.Children[root.Arity-1].Text(); end != program {
		issues = append(issues, ValidationIssue{
			Path:      program,
			IssueType: "name_mismatch",
			Message:   fmt.Sprintf("program %s ends with name %s", program, end),
			Severity:  SeverityWarning,
		})
	}

	seen := make(map[string]bool)
	for _, fcn := range d.FindNodes("fcn") {
		name := fcn.Children[0].Text()
		path := program + "." + name

		if end := fcn.Children[fcn.Arity-1].Text(); end != name {
			issues = append(issues, ValidationIssue{
				Path:      path,
				IssueType: "name_mismatch",
				Message:   fmt.Sprintf("function %s ends with name %s", name, end),
				Severity:  SeverityWarning,
			})
		}
		if seen[name] {
			issues = append(issues, ValidationIssue{
				Path:      path,
				IssueType: "duplicate_function",
				Message:   fmt.Sprintf("function %s is declared more than once", name),
				Severity:  SeverityWarning,
			})
		}
		seen[name] = true

		if !containsLabel(fcn.Children[6], "return") {
			issues = append(issues, ValidationIssue{
				Path:      path,
				IssueType: "missing_return",
				Message:   fmt.Sprintf("function %s has no return statement", name),
				Severity:  SeverityInfo,
			})
		}
	}

	return issues
}

func containsLabel(n *ast.Node, label string) bool {
	return len(n.Find(label)) > 0
}

// Output Methods

// DumpTree returns the text dump of the tree
func (d *Document) DumpTree() string {
	return d.formatter.FormatTree(d.tree.Root)
}

// Render returns the tree in the named output format
func (d *Document) Render(format string) ([]byte, error) {
	return d.formatter.Format(d.tree.Root, format)
}

// SaveAs writes the tree in the named format to filename
func (d *Document) SaveAs(filename, format string) error {
	data, err := d.Render(format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// String returns a string representation of the document
func (d *Document) String() string {
	stats := d.GetStats()
	return fmt.Sprintf("Document[%s]: program %s, %d tokens, %d nodes, %d functions",
		filepath.Base(d.filename), d.ProgramName(), stats.Tokens, stats.Nodes, stats.Functions)
}
