package stylegen

import (
	"strings"
	"text/template"

	"docstyle/internal/model"
)

// Every rule is scoped under the .ai-document container class.
var cssTemplate = template.Must(template.New("css").Parse(`
/* Generated Document Styles */
.ai-document {
  max-width: {{.Layout.MaxWidth}};
  margin: 0 auto;
  padding: {{.Layout.Spacing}};
  font-family: {{.Typography.BodyFont}};
  font-size: {{.Typography.BodySize}};
  line-height: 1.6;
  color: {{.ColorPalette.Text}};
  background: {{.Background.Value}};
  border-radius: {{.Layout.BorderRadius}};
}

.ai-document h1,
.ai-document h2,
.ai-document h3,
.ai-document h4,
.ai-document h5,
.ai-document h6 {
  font-family: {{.Typography.HeadingFont}};
  color: {{.ColorPalette.Primary}};
  margin-bottom: calc({{.Layout.Spacing}} * 0.5);
  margin-top: calc({{.Layout.Spacing}} * 1.5);
  line-height: 1.2;
}

.ai-document h1 {
  font-size: {{.Typography.HeadingSize}};
  border-bottom: 2px solid {{.ColorPalette.Accent}};
  padding-bottom: calc({{.Layout.Spacing}} * 0.25);
}

.ai-document h2 {
  font-size: calc({{.Typography.HeadingSize}} * 0.8);
  color: {{.ColorPalette.Secondary}};
}

.ai-document h3 {
  font-size: calc({{.Typography.HeadingSize}} * 0.65);
}

.ai-document p {
  margin-bottom: calc({{.Layout.Spacing}} * 0.75);
  text-align: justify;
}

.ai-document ul,
.ai-document ol {
  margin-bottom: calc({{.Layout.Spacing}} * 0.75);
  padding-left: calc({{.Layout.Spacing}} * 1.5);
}

.ai-document li {
  margin-bottom: calc({{.Layout.Spacing}} * 0.25);
}

.ai-document table {
  width: 100%;
  border-collapse: collapse;
  margin-bottom: {{.Layout.Spacing}};
  background: {{.ColorPalette.Background}};
  border-radius: {{.Layout.BorderRadius}};
  overflow: hidden;
}

.ai-document th,
.ai-document td {
  padding: calc({{.Layout.Spacing}} * 0.5);
  text-align: left;
  border-bottom: 1px solid {{.ColorPalette.Accent}}33;
}

.ai-document th {
  background: {{.ColorPalette.Primary}};
  color: white;
  font-weight: bold;
  font-family: {{.Typography.HeadingFont}};
}

.ai-document tr:nth-child(even) {
  background: {{.ColorPalette.Background}}80;
}

.ai-document blockquote {
  border-left: 4px solid {{.ColorPalette.Accent}};
  padding-left: {{.Layout.Spacing}};
  margin-left: 0;
  margin-right: 0;
  margin-bottom: {{.Layout.Spacing}};
  font-style: italic;
  background: {{.ColorPalette.Background}}40;
  padding: calc({{.Layout.Spacing}} * 0.75);
  border-radius: 0 {{.Layout.BorderRadius}} {{.Layout.BorderRadius}} 0;
}

.ai-document .highlight {
  background: {{.ColorPalette.Accent}}30;
  padding: 2px 4px;
  border-radius: calc({{.Layout.BorderRadius}} * 0.5);
}

.ai-document .section-divider {
  border: none;
  border-top: 2px solid {{.ColorPalette.Accent}}50;
  margin: calc({{.Layout.Spacing}} * 2) 0;
}

@media print {
  .ai-document {
    max-width: none;
    background: white;
    box-shadow: none;
  }
}
`))

// GenerateCSS expands specs into a stylesheet. Identical specs give
// byte-identical output.
func GenerateCSS(specs model.VisualSpecs) string {
	var b strings.Builder
	// Fields are plain strings, so execution cannot fail.
	_ = cssTemplate.Execute(&b, specs)
	return strings.TrimSpace(b.String())
}

// GenerateInlineStyles returns per-element style maps for renderers that
// cannot attach a stylesheet.
func GenerateInlineStyles(specs model.VisualSpecs) model.InlineStyles {
	c, t, l := specs.ColorPalette, specs.Typography, specs.Layout

	return model.InlineStyles{
		"document": {
			"maxWidth":     l.MaxWidth,
			"margin":       "0 auto",
			"padding":      l.Spacing,
			"fontFamily":   t.BodyFont,
			"fontSize":     t.BodySize,
			"lineHeight":   "1.6",
			"color":        c.Text,
			"borderRadius": l.BorderRadius,
		},
		"h1": {
			"fontFamily":    t.HeadingFont,
			"fontSize":      t.HeadingSize,
			"color":         c.Primary,
			"borderBottom":  "2px solid " + c.Accent,
			"paddingBottom": calc(l.Spacing, "0.25"),
			"marginBottom":  calc(l.Spacing, "0.5"),
			"marginTop":     calc(l.Spacing, "1.5"),
			"lineHeight":    "1.2",
		},
		"h2": {
			"fontFamily":   t.HeadingFont,
			"fontSize":     calc(t.HeadingSize, "0.8"),
			"color":        c.Secondary,
			"marginBottom": calc(l.Spacing, "0.5"),
			"marginTop":    calc(l.Spacing, "1.5"),
			"lineHeight":   "1.2",
		},
		"p": {
			"marginBottom": calc(l.Spacing, "0.75"),
			"textAlign":    "justify",
		},
		"table": {
			"width":          "100%",
			"borderCollapse": "collapse",
			"marginBottom":   l.Spacing,
			"background":     c.Background,
			"borderRadius":   l.BorderRadius,
			"overflow":       "hidden",
		},
		"th": {
			"padding":    calc(l.Spacing, "0.5"),
			"background": c.Primary,
			"color":      "white",
			"fontWeight": "bold",
			"fontFamily": t.HeadingFont,
		},
		"td": {
			"padding":      calc(l.Spacing, "0.5"),
			"borderBottom": "1px solid " + c.Accent + "33",
		},
	}
}

// GenerateStyle bundles the stylesheet and inline maps for specs.
func GenerateStyle(specs model.VisualSpecs) model.GeneratedStyle {
	return model.GeneratedStyle{
		CSS:    GenerateCSS(specs),
		Inline: GenerateInlineStyles(specs),
	}
}

func calc(v, factor string) string {
	return "calc(" + v + " * " + factor + ")"
}
