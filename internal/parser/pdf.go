package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF returns the text of every page, pages separated by a blank line,
// and the document page count.
func extractPDF(data []byte) (string, int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for nr := 1; nr <= ctx.PageCount; nr++ {
		text, err := pageText(ctx, nr)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", nr, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n\n"), ctx.PageCount, nil
}

func pageText(ctx *model.Context, nr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(ctx, nr)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return contentStreamText(data), nil
}

// contentStreamText tokenizes a page content stream and collects the operands
// of the text-showing operators. Positioning operators and ET start a new line.
// Hex strings are skipped; without the font's CMap they are glyph ids.
func contentStreamText(data []byte) string {
	var (
		lines    []string
		cur      strings.Builder
		operands []string
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			lines = append(lines, s)
		}
		cur.Reset()
	}
	write := func() {
		for _, o := range operands {
			cur.WriteString(o)
		}
	}

	lx := &contentLexer{data: data}
	for {
		tok, ok := lx.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokString:
			operands = append(operands, tok.text)
			continue
		case tokOperand:
			continue
		}

		switch tok.text {
		case "Tj", "TJ":
			write()
		case "'", `"`:
			flush()
			write()
		case "Td", "TD", "T*", "Tm", "ET":
			flush()
		case "ID":
			lx.skipInlineImage()
		}
		operands = operands[:0]
	}
	flush()

	return strings.Join(lines, "\n")
}

type tokenKind int

const (
	tokOperator tokenKind = iota
	tokString
	tokOperand
)

type token struct {
	kind tokenKind
	text string
}

// contentLexer splits a content stream into string literals, other operands
// and operators. Literals inside TJ arrays are returned as individual strings.
type contentLexer struct {
	data []byte
	pos  int
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isPDFDelim(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (l *contentLexer) next() (token, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case isPDFSpace(c):
			l.pos++
		case c == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
		case c == '(':
			return token{kind: tokString, text: decodeLiteral(l.literal())}, true
		case c == '<' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '<',
			c == '>' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '>':
			l.pos += 2
			return token{kind: tokOperand, text: string(c) + string(c)}, true
		case c == '<':
			end := bytes.IndexByte(l.data[l.pos:], '>')
			if end < 0 {
				l.pos = len(l.data)
			} else {
				l.pos += end + 1
			}
			return token{kind: tokOperand, text: "<>"}, true
		case c == '[' || c == ']' || c == '{' || c == '}' || c == ')' || c == '>':
			l.pos++
			return token{kind: tokOperand, text: string(c)}, true
		case c == '/':
			l.pos++
			return token{kind: tokOperand, text: "/" + l.word()}, true
		default:
			w := l.word()
			if isNumber(w) {
				return token{kind: tokOperand, text: w}, true
			}
			return token{kind: tokOperator, text: w}, true
		}
	}
	return token{}, false
}

// word consumes a regular token. The quote operators are single characters.
func (l *contentLexer) word() string {
	start := l.pos
	if l.pos < len(l.data) && (l.data[l.pos] == '\'' || l.data[l.pos] == '"') {
		l.pos++
		return string(l.data[start:l.pos])
	}
	for l.pos < len(l.data) && !isPDFSpace(l.data[l.pos]) && !isPDFDelim(l.data[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

// literal consumes a balanced string literal and returns its raw body.
func (l *contentLexer) literal() []byte {
	l.pos++
	start, depth := l.pos, 1
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '\\':
			l.pos++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				raw := l.data[start:l.pos]
				l.pos++
				return raw
			}
		}
		l.pos++
	}
	return l.data[start:]
}

// skipInlineImage moves past binary inline image data up to the EI operator.
func (l *contentLexer) skipInlineImage() {
	for l.pos+2 <= len(l.data) {
		if l.data[l.pos] == 'E' && l.data[l.pos+1] == 'I' &&
			l.pos > 0 && isPDFSpace(l.data[l.pos-1]) &&
			(l.pos+2 == len(l.data) || isPDFSpace(l.data[l.pos+2])) {
			l.pos += 2
			return
		}
		l.pos++
	}
	l.pos = len(l.data)
}

func isNumber(w string) bool {
	if w == "" {
		return false
	}
	digits := 0
	for i := 0; i < len(w); i++ {
		switch c := w[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
		case (c == '-' || c == '+') && i == 0:
		default:
			return false
		}
	}
	return digits > 0
}

// decodeLiteral resolves the escape sequences allowed in PDF string literals.
func decodeLiteral(raw []byte) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '(', ')', '\\':
			b.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				b.WriteByte(raw[i])
				continue
			}
			v := int(raw[i] - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				v = v*8 + int(raw[i]-'0')
			}
			b.WriteByte(byte(v))
		}
	}
	return b.String()
}
