package document

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"winzigc/pkg/formatter"
	"winzigc/pkg/log"
	"winzigc/pkg/parser"
	"winzigc/pkg/utils"
)

// CheckService parses many files concurrently
type CheckService struct {
	parser    *parser.Parser
	formatter *formatter.Formatter
	logger    *slog.Logger
	opts      ProcessingOptions
}

// ProcessingOptions contains options for checking files
type ProcessingOptions struct {
	Jobs       int    // Files parsed at once (0 = number of CPUs)
	WriteTrees bool   // Save each tree next to its source or in OutputDir
	OutputDir  string // Destination for saved trees
	Format     string // Output format of saved trees
	Validate   bool   // Run Document.Validate on each parsed file
}

// ProcessingResult contains the outcome for one file
type ProcessingResult struct {
	Filename   string
	Document   *Document // Nil when Err is set
	Issues     []ValidationIssue
	OutputPath string // Set when a tree was written
	Duration   time.Duration
	Err        error
}

// NewCheckService creates a service. A nil logger discards output.
func NewCheckService(p *parser.Parser, f *formatter.Formatter, logger *slog.Logger, opts ProcessingOptions) *CheckService {
	if p == nil {
		p = parser.New(parser.Options{})
	}
	if f == nil {
		f = formatter.New()
	}
	if logger == nil {
		logger = log.Discard()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	return &CheckService{
		parser:    p,
		formatter: f,
		logger:    logger,
		opts:      opts,
	}
}

// CheckFiles parses every file and returns one result per file in input
// order. Per-file failures are reported in the results. The returned error
// is non-nil only when ctx is cancelled.
func (s *CheckService) CheckFiles(ctx context.Context, files []string) ([]ProcessingResult, error) {
	results := make([]ProcessingResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Jobs)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.checkFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("check cancelled: %w", err)
	}
	return results, nil
}

// checkFile processes a single file
func (s *CheckService) checkFile(filename string) ProcessingResult {
	start := time.Now()
	result := ProcessingResult{Filename: filename}

	doc, err := NewFromFile(filename, WithParser(s.parser), WithFormatter(s.formatter))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		s.logger.Warn("check failed", "file", filename, "err", err)
		return result
	}
	result.Document = doc

	if s.opts.Validate {
		result.Issues = doc.Validate()
	}

	if s.opts.WriteTrees {
		out := utils.TreeOutputPath(s.opts.OutputDir, filename, formatter.Extension(s.opts.Format))
		if err := doc.SaveAs(out, s.opts.Format); err != nil {
			result.Err = err
		} else {
			result.OutputPath = out
		}
	}

	result.Duration = time.Since(start)
	s.logger.Info("checked file", "file", filename, "nodes", doc.GetStats().Nodes,
		"issues", len(result.Issues), "elapsed", result.Duration)
	return result
}

// Summary counts the outcome of a batch
type Summary struct {
	Files    int
	Passed   int
	Failed   int
	Warnings int
}

// Summarize tallies results
func Summarize(results []ProcessingResult) Summary {
	summary := Summary{Files: len(results)}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Passed++
		summary.Warnings += len(r.Issues)
	}
	return summary
}
