package analyzer

import (
	"encoding/json"
	"fmt"

	"docstyle/internal/model"
)

// DecodeAnalysis validates raw against the analysis schema and decodes it.
// It is used for analyses supplied by clients rather than by the model.
func DecodeAnalysis(raw []byte) (model.DocumentAnalysis, error) {
	var out model.DocumentAnalysis
	if err := analysisSchema.Validate(raw); err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode analysis: %w", err)
	}
	return out, nil
}
