// Package cli implements the docstyle command line tool, which runs the
// parse and styling pipeline against local files without the HTTP server.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docstyle/internal/config"
	"docstyle/internal/llm"
	"docstyle/internal/model"
)

var version = "dev"

// Output formats accepted by --output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSS  = "css"
)

var outputFormat string

// newChatModel builds the model used by the style command. Tests replace it.
var newChatModel = func(ctx context.Context, cfg config.AIConfig) (llm.ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	return llm.NewChatModel(ctx, cfg)
}

var rootCmd = &cobra.Command{
	Use:           "docstyle",
	Short:         "Extract and style documents from the command line",
	Long:          `Parse .docx, .txt and .pdf files and generate a visual style for them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("docstyle version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", FormatJSON, "Output format: json, yaml or css (style only)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// mimeTypes maps file extensions to the MIME types the parser accepts.
var mimeTypes = map[string]string{
	".docx": model.MimeDocx,
	".txt":  model.MimeText,
	".pdf":  model.MimePDF,
}

func mimeTypeFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := mimeTypes[ext]; ok {
		return mt, nil
	}
	return "", fmt.Errorf("unsupported file extension %q: use .docx, .txt or .pdf", ext)
}

func openInput(path string) (io.ReadCloser, string, error) {
	mt, err := mimeTypeFor(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return f, mt, nil
}

// render writes v in the selected format. YAML keys follow the JSON field names.
func render(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
