// Package analyzer classifies document text with a hosted language model.
//
// Analyze never fails: any provider, decoding or validation problem yields
// model.DefaultAnalysis so the pipeline can continue with neutral styling.
package analyzer

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"docstyle/internal/llm"
	"docstyle/internal/metrics"
	"docstyle/internal/model"
)

// MaxContentRunes is how much of the document is sent to the model.
const MaxContentRunes = 2000

const (
	systemPrompt = "You are an expert document analyzer. Analyze the content and return only valid JSON with no additional text or explanations."

	temperature = 0.3
	maxTokens   = 500
)

var promptHeader = fmt.Sprintf(`Analyze this document content and return a JSON object with the following structure:

{
  "documentType": %s,
  "tone": %s,
  "mood": %s,
  "keyThemes": array of 3-5 main themes/topics,
  "targetAudience": %s,
  "primaryColors": array of 2-3 hex color codes that would suit this content,
  "structure": {
    "hasHeadings": boolean,
    "hasList": boolean,
    "hasTables": boolean,
    "sections": estimated number of main sections
  }
}

Document content:
`, llm.OneOf(model.DocumentTypes), llm.OneOf(model.Tones), llm.OneOf(model.Moods), llm.OneOf(model.TargetAudiences))

//go:embed analysis.schema.json
var schemaSource string

var analysisSchema = llm.MustCompileSchema(schemaSource)

var tracer = otel.Tracer("docstyle/analyzer")

var errNoModel = errors.New("no chat model configured")

// Analyzer turns document text into a model.DocumentAnalysis.
type Analyzer struct {
	chat    llm.ChatModel
	logger  *slog.Logger
	metrics *metrics.Pipeline
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics counts fallbacks and stage latency on m.
func WithMetrics(m *metrics.Pipeline) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// New returns an Analyzer backed by chat. A nil chat model makes every call fall back.
func New(chat llm.ChatModel, opts ...Option) *Analyzer {
	a := &Analyzer{chat: chat, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze classifies text. It always returns a usable analysis.
func (a *Analyzer) Analyze(ctx context.Context, text string) model.DocumentAnalysis {
	ctx, span := tracer.Start(ctx, "analyzer.Analyze")
	defer span.End()
	defer a.metrics.ObserveStage(metrics.StageAnalyze, time.Now())

	span.SetAttributes(attribute.Int("document.runes", len([]rune(text))))

	if a.chat == nil {
		return a.fallback(ctx, errNoModel)
	}

	var out model.DocumentAnalysis
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      BuildPrompt(text),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if err := llm.GenerateJSON(ctx, a.chat, req, analysisSchema, &out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis fallback")
		return a.fallback(ctx, err)
	}
	return out
}

func (a *Analyzer) fallback(ctx context.Context, err error) model.DocumentAnalysis {
	a.logger.WarnContext(ctx, "document analysis fell back to defaults", slog.String("error", err.Error()))
	a.metrics.Fallback(metrics.StageAnalyze)
	return model.DefaultAnalysis()
}

// BuildPrompt renders the user prompt for text. Only the first MaxContentRunes
// runes are included and the excerpt is always followed by "...".
func BuildPrompt(text string) string {
	return promptHeader + truncate(text, MaxContentRunes) + "..."
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
