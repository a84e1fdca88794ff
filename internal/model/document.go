package model

import "time"

// Supported MIME types for uploaded documents.
const (
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
)

// DocumentType is the extraction format tag reported on a ParsedDocument.
type DocumentType string

const (
	TypeDocx DocumentType = "docx"
	TypeText DocumentType = "text"
	TypePDF  DocumentType = "pdf"
)

// ParsedDocument is the text extracted from one uploaded file.
// Pages is only set for PDF input.
type ParsedDocument struct {
	Content   string       `json:"content"`
	Type      DocumentType `json:"type"`
	WordCount int          `json:"wordCount"`
	Pages     *int         `json:"pages,omitempty"`
}

// Document is a ParsedDocument together with its upload metadata.
// It lives only for the duration of the upload request.
type Document struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	StoragePath  string    `json:"-"`
	UploadedAt   time.Time `json:"uploadedAt"`
	ParsedDocument
}
