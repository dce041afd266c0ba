package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"winzigc/pkg/formatter"
	"winzigc/pkg/parser"
)

const (
	replPrompt         = "winzig> "
	replContinuePrompt = "   ...> "
	replHistoryFile    = ".winzigc_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse programs typed at an interactive prompt",
	Long: `Start an interactive prompt. Lines are collected until an empty line is
entered, then the collected program is parsed and its tree printed. Line editing
and history are available; history is kept in ~/.winzigc_history.
Press Ctrl-D or Ctrl-C to leave.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if hf, err := os.Open(historyPath); err == nil {
		line.ReadHistory(hf)
		hf.Close()
	}

	p := cfg.newParser(logger)
	f := cfg.newFormatter()
	out := cmd.OutOrStdout()

	var source strings.Builder
	for {
		prompt := replPrompt
		if source.Len() > 0 {
			prompt = replContinuePrompt
		}

		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			if source.Len() > 0 {
				evalSource(out, p, f, source.String())
				source.Reset()
			}
			continue
		}

		line.AppendHistory(input)
		source.WriteString(input)
		source.WriteByte('\n')
	}

	if source.Len() > 0 {
		evalSource(out, p, f, source.String())
	}

	if hf, err := os.Create(historyPath); err == nil {
		line.WriteHistory(hf)
		hf.Close()
	} else {
		logger.Debug("history not saved", "file", historyPath, "err", err)
	}
	return nil
}

// evalSource parses src and prints its tree or the error
func evalSource(w io.Writer, p *parser.Parser, f *formatter.Formatter, src string) {
	tree, err := p.ParseSource("<repl>", src)
	if err != nil {
		fmt.Fprintln(w, color.RedString("%v", err))
		return
	}
	if err := f.Write(w, tree.Root); err != nil {
		logger.Error("failed to print tree", "err", err)
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), replHistoryFile)
	}
	return filepath.Join(home, replHistoryFile)
}
