package cmd

import (
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"winzigc/pkg/formatter"
)

var debugCmd = &cobra.Command{
	Use:   "debug [file]",
	Short: "Parse a file with a reduce trace and dump internal structures",
	Long: `Parse a WinZig source file with debug logging enabled, so that every reduce
is traced on stderr, then dump the token slice, the document statistics and a
summary of each function node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel(slog.LevelDebug)

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		showTokens, _ := cmd.Flags().GetBool("tokens")
		out := cmd.OutOrStdout()
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

		fmt.Fprintf(out, "=== PARSER DEBUG OUTPUT ===\n")
		fmt.Fprintf(out, "%s\n\n", doc)

		if showTokens {
			fmt.Fprintf(out, "--- tokens ---\n")
			dumper.Fdump(out, doc.GetTokens())
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "--- stats ---\n")
		dumper.Fdump(out, doc.GetStats())

		f := formatter.New()
		for _, fcn := range doc.FindNodes("fcn") {
			fmt.Fprintf(out, "\n--- function %s ---\n", fcn.Children[0].Text())
			fmt.Fprint(out, f.GetNodeSummary(fcn))
		}

		for _, issue := range doc.Validate() {
			fmt.Fprintf(out, "\n%s\n", issue)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)

	debugCmd.Flags().BoolP("tokens", "t", true, "Dump the token slice")
}
