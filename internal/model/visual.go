package model

// VisualSpecs is the design token set produced from a DocumentAnalysis.
type VisualSpecs struct {
	ColorPalette ColorPalette `json:"colorPalette"`
	Typography   Typography   `json:"typography"`
	Layout       Layout       `json:"layout"`
	Background   Background   `json:"background"`
}

type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type Typography struct {
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
	HeadingSize string `json:"headingSize"`
	BodySize    string `json:"bodySize"`
}

type Layout struct {
	MaxWidth     string `json:"maxWidth"`
	Spacing      string `json:"spacing"`
	BorderRadius string `json:"borderRadius"`
}

// Background.Type is one of BackgroundTypes; Value is a CSS background value.
type Background struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

var BackgroundTypes = []string{"solid", "gradient", "pattern"}

// DefaultVisualSpecs returns the visual specs used whenever the design call fails.
func DefaultVisualSpecs() VisualSpecs {
	return VisualSpecs{
		ColorPalette: ColorPalette{
			Primary:    "#7C8B5A",
			Secondary:  "#A0825C",
			Accent:     "#9B8C5A",
			Background: "#F8F6F2",
			Text:       "#3D3B36",
		},
		Typography: Typography{
			HeadingFont: `"Times New Roman", serif`,
			BodyFont:    `"Georgia", serif`,
			HeadingSize: "2rem",
			BodySize:    "1rem",
		},
		Layout: Layout{
			MaxWidth:     "800px",
			Spacing:      "1.5rem",
			BorderRadius: "8px",
		},
		Background: Background{
			Type:  "solid",
			Value: "#F8F6F2",
		},
	}
}

// InlineStyles maps a semantic element name (document, h1, h2, p, table, th, td)
// to its CSS property/value pairs. Property names use the camelCase DOM form.
type InlineStyles map[string]map[string]string

// GeneratedStyle is the deterministic expansion of a VisualSpecs value.
type GeneratedStyle struct {
	CSS    string       `json:"cssStyles"`
	Inline InlineStyles `json:"inlineStyles"`
}
