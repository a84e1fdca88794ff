package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation marks documents that are valid JSON but do not match the schema.
var ErrSchemaViolation = errors.New("schema validation failed")

// Schema is a compiled JSON schema.
type Schema struct {
	compiled *gojsonschema.Schema
}

// MustCompileSchema compiles src or panics. Intended for embedded schemas.
func MustCompileSchema(src string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile json schema: %v", err))
	}
	return &Schema{compiled: s}
}

// Validate checks raw JSON against the schema. Malformed JSON is reported as a
// plain error, violations wrap ErrSchemaViolation.
func (s *Schema) Validate(raw []byte) error {
	res, err := s.compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
}
