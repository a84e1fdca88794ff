package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures for transport mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfiguration
	KindQuota
	KindParse
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindQuota:
		return "quota"
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is returned by PipelineService. Message is safe to show to clients;
// Err carries the internal cause and is never rendered.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// Client-facing messages.
const (
	MsgNoFile           = "No file uploaded"
	MsgUnsupportedType  = "Unsupported file type. Please upload .docx, .txt, or .pdf files."
	MsgContentRequired  = "Content is required"
	MsgIDRequired       = "Document ID is required"
	MsgAnalysisRequired = "Document analysis is required"
	MsgInvalidAnalysis  = "Document analysis is invalid"
	MsgNotConfigured    = "OpenAI API key not configured"
	MsgQuotaExceeded    = "AI service quota exceeded. Please try again later."
	MsgUploadFailed     = "Upload failed. Please try again."
	MsgStatusNotFound   = "Document status not found"
)

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func fileTooLargeMessage(maxBytes int64) string {
	const mib = 1024 * 1024
	if maxBytes%mib == 0 {
		return fmt.Sprintf("File too large. Maximum size is %dMB.", maxBytes/mib)
	}
	return fmt.Sprintf("File too large. Maximum size is %d bytes.", maxBytes)
}
