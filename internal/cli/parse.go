package cli

import (
	"github.com/spf13/cobra"

	"docstyle/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract text and word count from a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, mt, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	parsed, err := parser.New().Parse(cmd.Context(), f, mt)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), outputFormat, parsed)
}
