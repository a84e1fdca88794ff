package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// extractDocx returns the raw text of a DOCX archive. Every paragraph, including
// paragraphs inside table cells, is followed by a blank line. Formatting is dropped.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%s not found in archive", docxBodyPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", docxBodyPart, err)
	}
	defer rc.Close()

	return docxText(rc)
}

// docxText collects paragraph text from a WordprocessingML body. Paragraphs
// nested in text boxes are emitted as their own block when they close; the
// enclosing paragraph keeps its text on both sides of the box. Only the
// Fallback branch of mc:AlternateContent is read so boxes are not duplicated.
func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out         strings.Builder
		paragraphs  []*strings.Builder
		runDepth    int
		textDepth   int
		choiceDepth int
	)
	current := func() *strings.Builder {
		if len(paragraphs) == 0 || runDepth == 0 {
			return nil
		}
		return paragraphs[len(paragraphs)-1]
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", docxBodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Choice" {
				choiceDepth++
			}
			if choiceDepth > 0 {
				continue
			}
			switch t.Name.Local {
			case "p":
				paragraphs = append(paragraphs, &strings.Builder{})
			case "r":
				runDepth++
			case "t":
				textDepth++
			case "tab":
				if b := current(); b != nil {
					b.WriteByte('\t')
				}
			case "br", "cr":
				if b := current(); b != nil {
					b.WriteByte('\n')
				}
			}
		case xml.CharData:
			if choiceDepth > 0 || textDepth == 0 {
				continue
			}
			if b := current(); b != nil {
				b.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "Choice" {
				choiceDepth--
				continue
			}
			if choiceDepth > 0 {
				continue
			}
			switch t.Name.Local {
			case "r":
				if runDepth > 0 {
					runDepth--
				}
			case "t":
				if textDepth > 0 {
					textDepth--
				}
			case "p":
				if n := len(paragraphs); n > 0 {
					out.WriteString(paragraphs[n-1].String())
					out.WriteString("\n\n")
					paragraphs = paragraphs[:n-1]
				}
			}
		}
	}

	return out.String(), nil
}
