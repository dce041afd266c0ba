package cmd

import (
	"github.com/spf13/cobra"

	"winzigc/pkg/document"
	"winzigc/pkg/formatter"
	"winzigc/pkg/utils"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a WinZig source file and output its tree",
	Long: `Parse a WinZig source file and print the ordinal tree built from it.
The default text format prints one label(arity) line per node in pre-order with
". " repeated once per depth. JSON and YAML carry the same tree with node kinds
and literal positions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		format, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") {
			format = cfg.Format
		}
		output, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		doc, err := loadDocument(filename)
		if err != nil {
			return err
		}

		for _, issue := range doc.Validate() {
			logger.Warn(issue.Message, "path", issue.Path, "issue", issue.IssueType)
		}

		if output == "" && save {
			output = utils.TreeOutputPath(cfg.OutputDir, filename, formatter.Extension(format))
		}
		if output != "" {
			if err := doc.SaveAs(output, format); err != nil {
				return err
			}
			logger.Info("wrote tree", "file", output, "format", format)
			return nil
		}

		data, err := doc.Render(format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	parseCmd.Flags().StringP("format", "f", formatter.FormatText, "Output format (text, json, yaml)")
	parseCmd.Flags().StringP("output", "o", "", "Write the tree to a specific file")
	parseCmd.Flags().BoolP("save", "s", false, "Write the tree to <output_dir>/<name>.tree instead of stdout")
}

// loadDocument parses filename with the configured parser and formatter
func loadDocument(filename string) (*document.Document, error) {
	doc, err := document.NewFromFile(filename,
		document.WithParser(cfg.newParser(logger)),
		document.WithFormatter(cfg.newFormatter()),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed file", "file", filename, "nodes", doc.GetStats().Nodes)
	return doc, nil
}
