// Package parser extracts plain text from uploaded documents.
//
// Three formats are supported, selected by declared MIME type:
//   - text/plain is decoded verbatim as UTF-8
//   - DOCX is read from word/document.xml inside the OOXML archive
//   - PDF text is pulled from page content streams with pdfcpu
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"docstyle/internal/model"
)

var (
	// ErrUnsupportedType is returned for any MIME type outside SupportedTypes.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrParseFailure matches every *ParseError via errors.Is.
	ErrParseFailure = errors.New("document parsing failed")
)

// ParseError wraps the underlying extraction error for one format.
type ParseError struct {
	Type model.DocumentType
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("document parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}

// SupportedTypes lists accepted MIME types in upload-validation order.
var SupportedTypes = []string{model.MimeDocx, model.MimeText, model.MimePDF}

// IsSupported reports whether mimeType can be parsed.
func IsSupported(mimeType string) bool {
	for _, t := range SupportedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// Parser dispatches extraction by MIME type. The zero value is ready to use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse reads r fully and extracts its text according to mimeType.
// Unsupported types fail with ErrUnsupportedType before r is read.
func (p *Parser) Parse(ctx context.Context, r io.Reader, mimeType string) (*model.ParsedDocument, error) {
	if !IsSupported(mimeType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &ParseError{Err: errors.New("reader is nil")}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("read input: %w", err)}
	}

	switch mimeType {
	case model.MimeText:
		return parseText(data), nil
	case model.MimeDocx:
		content, err := extractDocx(data)
		if err != nil {
			return nil, &ParseError{Type: model.TypeDocx, Err: err}
		}
		return &model.ParsedDocument{
			Content:   content,
			Type:      model.TypeDocx,
			WordCount: WordCount(content),
		}, nil
	default:
		content, pages, err := extractPDF(data)
		if err != nil {
			return nil, &ParseError{Type: model.TypePDF, Err: err}
		}
		return &model.ParsedDocument{
			Content:   content,
			Type:      model.TypePDF,
			WordCount: WordCount(content),
			Pages:     &pages,
		}, nil
	}
}

func parseText(data []byte) *model.ParsedDocument {
	content := strings.ToValidUTF8(string(data), "\uFFFD")
	return &model.ParsedDocument{
		Content:   content,
		Type:      model.TypeText,
		WordCount: WordCount(content),
	}
}
