package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"winzigc/pkg/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token sequence of a WinZig source file",
	Long: `Scan a WinZig source file and print every token with its kind, text and
position. Comments and whitespace are not part of the sequence.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}

		tokens, err := lexer.Tokenize(string(content))
		if err != nil {
			return fmt.Errorf("failed to tokenize file %s: %w", filename, err)
		}

		keywordsOnly, _ := cmd.Flags().GetBool("keywords")

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Kind", "Text", "Line", "Col"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)

		for i, tok := range tokens {
			if keywordsOnly && !tok.Kind.IsKeyword() {
				continue
			}
			table.Append([]string{
				strconv.Itoa(i + 1),
				tok.Kind.String(),
				tok.Text,
				strconv.Itoa(tok.Line),
				strconv.Itoa(tok.Col),
			})
		}
		table.Render()

		fmt.Fprintf(cmd.OutOrStdout(), "%d tokens\n", len(tokens))
		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolP("keywords", "k", false, "Show keyword tokens only")
}
