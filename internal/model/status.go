package model

import "time"

// Stage is the client-visible progress of one document through the pipeline.
type Stage string

const (
	StageUploaded   Stage = "uploaded"
	StageAnalyzing  Stage = "analyzing"
	StageDesigning  Stage = "designing"
	StageFormatting Stage = "formatting"
	StageComplete   Stage = "complete"
	StageFailed     Stage = "failed"
)

var stageMessages = map[Stage]string{
	StageUploaded:   "Document uploaded",
	StageAnalyzing:  "Analyzing document content",
	StageDesigning:  "Generating visual design",
	StageFormatting: "Applying formatting",
	StageComplete:   "Document ready",
	StageFailed:     "Processing failed",
}

// Message returns the human-readable status line for s.
func (s Stage) Message() string {
	if m, ok := stageMessages[s]; ok {
		return m
	}
	return string(s)
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	_, ok := stageMessages[s]
	return ok
}

// StageEvent records a stage transition for a document.
type StageEvent struct {
	DocumentID string    `json:"documentId"`
	Stage      Stage     `json:"stage"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}
