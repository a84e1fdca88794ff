// Package stylegen derives visual design tokens from a document analysis and
// expands them into CSS.
package stylegen

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"docstyle/internal/llm"
	"docstyle/internal/metrics"
	"docstyle/internal/model"
)

const (
	systemPrompt = "You are an expert visual designer. Generate beautiful, professional design specifications based on document analysis. Return only valid JSON."

	temperature = 0.4
	maxTokens   = 600
)

const promptTemplate = `Based on this document analysis, generate visual design specifications as JSON:

Document Analysis:
- Type: %s
- Tone: %s
- Mood: %s
- Themes: %s
- Audience: %s

Return JSON with this structure:
{
  "colorPalette": {
    "primary": hex color for headers and key elements,
    "secondary": hex color for secondary elements,
    "accent": hex color for highlights,
    "background": hex color for page background,
    "text": hex color for body text
  },
  "typography": {
    "headingFont": web-safe font family for headings,
    "bodyFont": web-safe font family for body text,
    "headingSize": CSS size for h1 elements,
    "bodySize": CSS size for body text
  },
  "layout": {
    "maxWidth": CSS max-width for content,
    "spacing": CSS spacing unit,
    "borderRadius": CSS border radius
  },
  "background": {
    "type": %s,
    "value": CSS background value
  }
}`

//go:embed visual.schema.json
var schemaSource string

var specsSchema = llm.MustCompileSchema(schemaSource)

var tracer = otel.Tracer("docstyle/stylegen")

var errNoModel = errors.New("no chat model configured")

// Generator produces model.VisualSpecs from an analysis.
type Generator struct {
	chat    llm.ChatModel
	logger  *slog.Logger
	metrics *metrics.Pipeline
}

// Option configures a Generator.
type Option func(*Generator)

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithMetrics(m *metrics.Pipeline) Option {
	return func(g *Generator) { g.metrics = m }
}

// New returns a Generator backed by chat. A nil chat model makes every call fall back.
func New(chat llm.ChatModel, opts ...Option) *Generator {
	g := &Generator{chat: chat, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateVisualSpecs asks the model for design tokens suited to analysis.
// Any failure yields model.DefaultVisualSpecs.
func (g *Generator) GenerateVisualSpecs(ctx context.Context, analysis model.DocumentAnalysis) model.VisualSpecs {
	ctx, span := tracer.Start(ctx, "stylegen.GenerateVisualSpecs")
	defer span.End()
	defer g.metrics.ObserveStage(metrics.StageDesign, time.Now())

	span.SetAttributes(
		attribute.String("document.type", analysis.DocumentType),
		attribute.String("document.tone", analysis.Tone),
	)

	if g.chat == nil {
		return g.fallback(ctx, errNoModel)
	}

	var out model.VisualSpecs
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      BuildPrompt(analysis),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if err := llm.GenerateJSON(ctx, g.chat, req, specsSchema, &out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "visual specs fallback")
		return g.fallback(ctx, err)
	}
	return out
}

func (g *Generator) fallback(ctx context.Context, err error) model.VisualSpecs {
	g.logger.WarnContext(ctx, "visual specs fell back to defaults", slog.String("error", err.Error()))
	g.metrics.Fallback(metrics.StageDesign)
	return model.DefaultVisualSpecs()
}

// BuildPrompt renders the user prompt describing analysis.
func BuildPrompt(analysis model.DocumentAnalysis) string {
	return fmt.Sprintf(promptTemplate,
		analysis.DocumentType,
		analysis.Tone,
		analysis.Mood,
		strings.Join(analysis.KeyThemes, ", "),
		analysis.TargetAudience,
		llm.OneOf(model.BackgroundTypes),
	)
}
