package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docstyle/internal/analyzer"
	"docstyle/internal/config"
	"docstyle/internal/llm"
	"docstyle/internal/metrics"
	"docstyle/internal/model"
	"docstyle/internal/parser"
	"docstyle/internal/status"
	"docstyle/internal/storage"
	"docstyle/internal/stylegen"
)

var tracer = otel.Tracer("docstyle/service")

// UploadInput is one uploaded file as received from the transport.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AnalysisResult is the outcome of the analysis stage.
type AnalysisResult struct {
	DocumentID string                 `json:"documentId"`
	Analysis   model.DocumentAnalysis `json:"analysis"`
	Timestamp  time.Time              `json:"timestamp"`
}

// DesignResult is the outcome of the design and formatting stages.
type DesignResult struct {
	DocumentID   string             `json:"documentId"`
	VisualSpecs  model.VisualSpecs  `json:"visualSpecs"`
	CSSStyles    string             `json:"cssStyles"`
	InlineStyles model.InlineStyles `json:"inlineStyles"`
	Timestamp    time.Time          `json:"timestamp"`
}

// PipelineService drives a document through upload, analysis and design.
// Every returned error is an *Error.
type PipelineService interface {
	// Upload validates, stores and parses a document.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)
	// Analyze classifies document content.
	Analyze(ctx context.Context, documentID, content string) (*AnalysisResult, error)
	// Design turns a client-supplied analysis into visual specs and styles.
	Design(ctx context.Context, documentID string, analysis json.RawMessage) (*DesignResult, error)
	// Status reports the latest stage recorded for a document.
	Status(ctx context.Context, documentID string) (*status.Snapshot, error)
}

// DocumentParser extracts text from stored documents.
type DocumentParser interface {
	Parse(ctx context.Context, r io.Reader, mimeType string) (*model.ParsedDocument, error)
}

// ContentAnalyzer classifies document text. It does not fail.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, text string) model.DocumentAnalysis
}

// VisualDesigner turns an analysis into design tokens. It does not fail.
type VisualDesigner interface {
	GenerateVisualSpecs(ctx context.Context, analysis model.DocumentAnalysis) model.VisualSpecs
}

// Deps are the collaborators of the pipeline service.
type Deps struct {
	Storage  storage.Storage
	Parser   DocumentParser
	Analyzer ContentAnalyzer
	Designer VisualDesigner
	Tracker  *status.Tracker
	Quota    *llm.Quota
	Metrics  *metrics.Pipeline
	Logger   *slog.Logger

	// AIConfigured is false when no API key is available; AI stages then
	// fail fast with KindConfiguration.
	AIConfigured   bool
	MaxUploadBytes int64
}

type pipelineService struct {
	Deps
	now func() time.Time
}

// NewPipelineService constructs a PipelineService.
func NewPipelineService(d Deps) PipelineService {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.MaxUploadBytes <= 0 {
		d.MaxUploadBytes = config.DefaultMaxUploadBytes
	}
	return &pipelineService{Deps: d, now: time.Now}
}

func (s *pipelineService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "PipelineService.Upload")
	defer span.End()

	if in.Body == nil || in.Filename == "" {
		return nil, s.fail(span, validationError(MsgNoFile))
	}
	if in.Size > s.MaxUploadBytes {
		return nil, s.fail(span, validationError(fileTooLargeMessage(s.MaxUploadBytes)))
	}
	if !parser.IsSupported(in.ContentType) {
		return nil, s.fail(span, validationError(MsgUnsupportedType))
	}

	uploadedAt := s.now().UTC()
	id := fmt.Sprintf("%d-%s", uploadedAt.UnixMilli(), safeName(in.Filename))
	span.SetAttributes(
		attribute.String("document.id", id),
		attribute.String("document.mime_type", in.ContentType),
		attribute.Int64("document.size", in.Size),
	)

	// Cap the stream so a lying Size cannot exceed the limit.
	body := io.LimitReader(in.Body, s.MaxUploadBytes+1)
	info, err := s.Storage.Put(ctx, id, body, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata:    map[string]string{"original-filename": in.Filename},
	})
	if err != nil {
		s.Logger.ErrorContext(ctx, "store upload failed", slog.String("document_id", id), slog.String("error", err.Error()))
		return nil, s.fail(span, &Error{Kind: KindUnknown, Message: MsgUploadFailed, Err: fmt.Errorf("store upload: %w", err)})
	}

	parsed, err := s.parseStored(ctx, id, in.ContentType)
	if err != nil {
		s.record(ctx, id, model.StageFailed)
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return nil, s.fail(span, &Error{Kind: KindParse, Message: "Failed to parse document: " + pe.Error(), Err: err})
		}
		return nil, s.fail(span, &Error{Kind: KindUnknown, Message: MsgUploadFailed, Err: err})
	}

	s.record(ctx, id, model.StageUploaded)
	s.Logger.InfoContext(ctx, "document uploaded",
		slog.String("document_id", id),
		slog.String("mime_type", in.ContentType),
		slog.Int64("size", info.Size),
		slog.Int("word_count", parsed.WordCount),
	)

	return &model.Document{
		ID:             id,
		OriginalName:   in.Filename,
		Size:           in.Size,
		MimeType:       in.ContentType,
		StoragePath:    info.Key,
		UploadedAt:     uploadedAt,
		ParsedDocument: *parsed,
	}, nil
}

// parseStored reads the object back from storage and extracts its text.
func (s *pipelineService) parseStored(ctx context.Context, key, mimeType string) (*model.ParsedDocument, error) {
	defer s.Metrics.ObserveStage(metrics.StageParse, time.Now())

	rc, _, err := s.Storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open stored upload: %w", err)
	}
	defer rc.Close()

	return s.Parser.Parse(ctx, rc, mimeType)
}

func (s *pipelineService) Analyze(ctx context.Context, documentID, content string) (*AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "PipelineService.Analyze", trace.WithAttributes(attribute.String("document.id", documentID)))
	defer span.End()

	if content == "" {
		return nil, s.fail(span, validationError(MsgContentRequired))
	}
	if documentID == "" {
		return nil, s.fail(span, validationError(MsgIDRequired))
	}
	if err := s.admitAI(); err != nil {
		return nil, s.fail(span, err)
	}

	s.record(ctx, documentID, model.StageAnalyzing)
	analysis := s.Analyzer.Analyze(ctx, content)

	return &AnalysisResult{
		DocumentID: documentID,
		Analysis:   analysis,
		Timestamp:  s.now().UTC(),
	}, nil
}

func (s *pipelineService) Design(ctx context.Context, documentID string, raw json.RawMessage) (*DesignResult, error) {
	ctx, span := tracer.Start(ctx, "PipelineService.Design", trace.WithAttributes(attribute.String("document.id", documentID)))
	defer span.End()

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, s.fail(span, validationError(MsgAnalysisRequired))
	}
	if documentID == "" {
		return nil, s.fail(span, validationError(MsgIDRequired))
	}
	analysis, err := analyzer.DecodeAnalysis(trimmed)
	if err != nil {
		return nil, s.fail(span, &Error{Kind: KindValidation, Message: MsgInvalidAnalysis, Err: err})
	}
	if err := s.admitAI(); err != nil {
		return nil, s.fail(span, err)
	}

	s.record(ctx, documentID, model.StageDesigning)
	specs := s.Designer.GenerateVisualSpecs(ctx, analysis)

	s.record(ctx, documentID, model.StageFormatting)
	start := time.Now()
	style := stylegen.GenerateStyle(specs)
	s.Metrics.ObserveStage(metrics.StageFormat, start)

	s.record(ctx, documentID, model.StageComplete)

	return &DesignResult{
		DocumentID:   documentID,
		VisualSpecs:  specs,
		CSSStyles:    style.CSS,
		InlineStyles: style.Inline,
		Timestamp:    s.now().UTC(),
	}, nil
}

func (s *pipelineService) Status(ctx context.Context, documentID string) (*status.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "PipelineService.Status", trace.WithAttributes(attribute.String("document.id", documentID)))
	defer span.End()

	if documentID == "" {
		return nil, s.fail(span, validationError(MsgIDRequired))
	}
	snap, err := s.Tracker.Snapshot(ctx, documentID)
	if errors.Is(err, status.ErrNotFound) {
		return nil, &Error{Kind: KindNotFound, Message: MsgStatusNotFound, Err: err}
	}
	if err != nil {
		return nil, s.fail(span, &Error{Kind: KindUnknown, Message: "Status lookup failed. Please try again.", Err: err})
	}
	return snap, nil
}

// admitAI runs the checks that precede any upstream AI call.
func (s *pipelineService) admitAI() *Error {
	if !s.AIConfigured {
		return &Error{Kind: KindConfiguration, Message: MsgNotConfigured, Err: llm.ErrMissingAPIKey}
	}
	if err := s.Quota.Take(); err != nil {
		s.Metrics.QuotaRejected()
		return &Error{Kind: KindQuota, Message: MsgQuotaExceeded, Err: err}
	}
	return nil
}

// record appends a stage event. Status is progress reporting only, so a
// failing store is logged and the pipeline continues.
func (s *pipelineService) record(ctx context.Context, documentID string, stage model.Stage) {
	if s.Tracker == nil {
		return
	}
	if err := s.Tracker.Record(ctx, documentID, stage); err != nil {
		s.Logger.WarnContext(ctx, "status record failed",
			slog.String("document_id", documentID),
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *pipelineService) fail(span trace.Span, err *Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Kind.String())
	return err
}

// safeName strips path separators so the name is usable as a storage key.
func safeName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
