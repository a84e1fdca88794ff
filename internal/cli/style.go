package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docstyle/internal/analyzer"
	"docstyle/internal/config"
	"docstyle/internal/logging"
	"docstyle/internal/model"
	"docstyle/internal/parser"
	"docstyle/internal/stylegen"
)

var styleCmd = &cobra.Command{
	Use:   "style [file]",
	Short: "Analyze a document and generate its stylesheet",
	Long: `Runs the full pipeline on a local file: parse, analyze, design and format.
Without OPENAI_API_KEY the default analysis and visual specs are used.
Use --output css to print only the stylesheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runStyle,
}

// logOutput receives pipeline warnings. Tests redirect it.
var logOutput io.Writer = os.Stderr

func init() {
	rootCmd.AddCommand(styleCmd)
}

type styleResult struct {
	Document     *model.ParsedDocument  `json:"document"`
	Analysis     model.DocumentAnalysis `json:"analysis"`
	VisualSpecs  model.VisualSpecs      `json:"visualSpecs"`
	CSSStyles    string                 `json:"cssStyles"`
	InlineStyles model.InlineStyles     `json:"inlineStyles"`
}

func runStyle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	logger := logging.New(logOutput, cfg.Location())

	f, mt, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	parsed, err := parser.New().Parse(ctx, f, mt)
	if err != nil {
		return err
	}

	chat, err := newChatModel(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("init chat model: %w", err)
	}

	analysis := analyzer.New(chat, analyzer.WithLogger(logger)).Analyze(ctx, parsed.Content)
	specs := stylegen.New(chat, stylegen.WithLogger(logger)).GenerateVisualSpecs(ctx, analysis)
	style := stylegen.GenerateStyle(specs)

	if outputFormat == FormatCSS {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), style.CSS)
		return err
	}
	return render(cmd.OutOrStdout(), outputFormat, styleResult{
		Document:     parsed,
		Analysis:     analysis,
		VisualSpecs:  specs,
		CSSStyles:    style.CSS,
		InlineStyles: style.Inline,
	})
}
