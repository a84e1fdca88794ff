package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ErrEmptyResponse is returned when the provider answers without content.
var ErrEmptyResponse = errors.New("empty response from model")

// Request is one system+user exchange expecting a single JSON object back.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// GenerateJSON sends req to cm and decodes the reply into out.
// The reply must be exactly one JSON object satisfying s; prose around the
// object, markdown fences and schema violations are all errors.
func GenerateJSON(ctx context.Context, cm ChatModel, req Request, s *Schema, out any) error {
	msgs := []*schema.Message{
		schema.SystemMessage(req.System),
		schema.UserMessage(req.Prompt),
	}

	opts := []model.Option{model.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	resp, err := cm.Generate(ctx, msgs, opts...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if resp == nil || resp.Content == "" {
		return ErrEmptyResponse
	}

	raw := []byte(resp.Content)
	if s != nil {
		if err := s.Validate(raw); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}
