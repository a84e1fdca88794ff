package model

// DocumentAnalysis is the classification returned by the content analyzer.
type DocumentAnalysis struct {
	DocumentType   string            `json:"documentType"`
	Tone           string            `json:"tone"`
	Mood           string            `json:"mood"`
	KeyThemes      []string          `json:"keyThemes"`
	TargetAudience string            `json:"targetAudience"`
	PrimaryColors  []string          `json:"primaryColors"`
	Structure      DocumentStructure `json:"structure"`
}

// DocumentStructure describes the coarse layout features of a document.
type DocumentStructure struct {
	HasHeadings bool `json:"hasHeadings"`
	HasList     bool `json:"hasList"`
	HasTables   bool `json:"hasTables"`
	Sections    int  `json:"sections"`
}

// Enumerations accepted for DocumentAnalysis fields.
var (
	DocumentTypes   = []string{"business-report", "creative-brief", "technical-doc", "academic-paper", "marketing-material", "general"}
	Tones           = []string{"professional", "creative", "technical", "academic", "friendly", "formal"}
	Moods           = []string{"serious", "optimistic", "neutral", "urgent", "inspirational", "informative"}
	TargetAudiences = []string{"business", "academic", "general", "technical", "creative"}
)

// DefaultAnalysis returns the classification used whenever the analysis call fails.
// A fresh value is returned on every call so callers cannot alias the slices.
func DefaultAnalysis() DocumentAnalysis {
	return DocumentAnalysis{
		DocumentType:   "general",
		Tone:           "professional",
		Mood:           "neutral",
		KeyThemes:      []string{"Document Content"},
		TargetAudience: "general",
		PrimaryColors:  []string{"#7C8B5A", "#A0825C"},
		Structure: DocumentStructure{
			HasHeadings: true,
			HasList:     false,
			HasTables:   false,
			Sections:    3,
		},
	}
}
