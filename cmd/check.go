package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"winzigc/pkg/document"
	"winzigc/pkg/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file_or_directory>...",
	Short: "Check many WinZig source files concurrently",
	Long: `Parse every WinZig source file found under the given files and directories.
Files are parsed concurrently and each one is reported as OK or FAIL. The command
exits with an error when any file fails.

Examples:
  # Check a directory using all CPUs
  winzigc check tests/

  # Check with four workers and save each tree next to its source
  winzigc check -j 4 --write tests/

  # Save JSON trees in a separate directory
  winzigc check --write --output-dir out -f json tests/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var (
	checkJobs      int
	checkWrite     bool
	checkOutputDir string
	checkFormat    string
	checkQuiet     bool
)

func init() {
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 0, "Files parsed at once (0 = config value or number of CPUs)")
	checkCmd.Flags().BoolVarP(&checkWrite, "write", "w", false, "Save the tree of every file that parses")
	checkCmd.Flags().StringVar(&checkOutputDir, "output-dir", "", "Directory for saved trees (default: config output_dir or next to the source)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "Format of saved trees (default: config format)")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only report failures")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var files []string
	for _, target := range args {
		found, err := utils.FindSourceFiles(target, cfg.Extensions, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", target, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no WinZig source files found")
	}

	opts := document.ProcessingOptions{
		Jobs:       cfg.Jobs,
		WriteTrees: checkWrite,
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		Validate:   true,
	}
	if checkJobs > 0 {
		opts.Jobs = checkJobs
	}
	if checkOutputDir != "" {
		opts.OutputDir = checkOutputDir
	}
	if checkFormat != "" {
		opts.Format = checkFormat
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	service := document.NewCheckService(cfg.newParser(logger), cfg.newFormatter(), logger, opts)
	results, err := service.CheckFiles(ctx, files)
	if err != nil {
		return err
	}

	summary := document.Summarize(results)
	printCheckResults(cmd.OutOrStdout(), results, checkQuiet)
	printCheckSummary(cmd.OutOrStdout(), summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Files)
	}
	return nil
}

// printCheckResults writes one status line per file followed by its issues
func printCheckResults(w io.Writer, results []document.ProcessingResult, quiet bool) {
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s %s\n      %v\n", fail("FAIL"), r.Filename, r.Err)
			continue
		}
		if quiet {
			continue
		}
		fmt.Fprintf(w, "%s   %s (%s)\n", ok("OK"), r.Filename, r.Duration.Round(time.Microsecond))
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "      %s %s\n", warn(issue.Severity+":"), issue.Message)
		}
		if r.OutputPath != "" {
			fmt.Fprintf(w, "      wrote %s\n", r.OutputPath)
		}
	}
}

func printCheckSummary(w io.Writer, summary document.Summary) {
	fmt.Fprintf(w, "\n%d files, %d passed, %d failed, %d issues\n",
		summary.Files, summary.Passed, summary.Failed, summary.Warnings)
}
