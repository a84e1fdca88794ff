package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstyle/internal/model"
)

type failingReader struct{ reads int }

func (r *failingReader) Read([]byte) (int, error) {
	r.reads++
	return 0, errors.New("boom")
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "only whitespace", in: " \t\n ", want: 0},
		{name: "hello world", in: "Hello world", want: 2},
		{name: "whitespace runs", in: "one  two\t\tthree\n\nfour", want: 4},
		{name: "no-break space separates", in: "a\u00a0b", want: 2},
		{name: "byte order mark separates", in: "a\ufeffb", want: 2},
		{name: "next line does not separate", in: "a\u0085b", want: 1},
		{name: "punctuation stays attached", in: "well, then - ok.", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.in))
		})
	}
}

func TestWordCount_PaddingInvariant(t *testing.T) {
	base := "The quick brown fox jumps over the lazy dog"
	for _, pad := range []string{" ", "\n\n", "\t \r\n", "\u3000", "\u00a0 "} {
		assert.Equal(t, WordCount(base), WordCount(pad+base+pad), "pad %q", pad)
	}
}

func TestParse_Text(t *testing.T) {
	doc, err := New().Parse(context.Background(), strings.NewReader("Hello world"), model.MimeText)

	require.NoError(t, err)
	assert.Equal(t, "Hello world", doc.Content)
	assert.Equal(t, model.TypeText, doc.Type)
	assert.Equal(t, 2, doc.WordCount)
	assert.Nil(t, doc.Pages)
}

func TestParse_TextInvalidUTF8(t *testing.T) {
	doc, err := New().Parse(context.Background(), bytes.NewReader([]byte{'o', 'k', ' ', 0xff}), model.MimeText)

	require.NoError(t, err)
	assert.Equal(t, "ok \uFFFD", doc.Content)
	assert.Equal(t, 2, doc.WordCount)
}

func TestParse_UnsupportedType(t *testing.T) {
	for _, mt := range []string{"", "image/png", "application/msword", "text/html", "TEXT/PLAIN"} {
		t.Run(mt, func(t *testing.T) {
			r := &failingReader{}
			doc, err := New().Parse(context.Background(), r, mt)

			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrUnsupportedType)
			assert.NotErrorIs(t, err, ErrParseFailure)
			assert.Zero(t, r.reads, "no extraction attempt expected")
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	_, err := New().Parse(context.Background(), &failingReader{}, model.MimeText)

	assert.ErrorIs(t, err, ErrParseFailure)
	assert.Contains(t, err.Error(), "document parsing failed: read input: boom")
}

func TestParse_Docx(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Quarterly Report</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Revenue grew </w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>strongly</w:t></w:r><w:r><w:tab/><w:t>again.</w:t></w:r></w:p>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell A</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Cell B</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
  </w:body>
</w:document>`

	doc, err := New().Parse(context.Background(), bytes.NewReader(buildDocx(t, body)), model.MimeDocx)

	require.NoError(t, err)
	assert.Equal(t, model.TypeDocx, doc.Type)
	assert.Equal(t, "Quarterly Report\n\nRevenue grew strongly\tagain.\n\nCell A\n\nCell B\n\n", doc.Content)
	assert.Equal(t, 10, doc.WordCount)
	assert.Nil(t, doc.Pages)
}

func TestParse_DocxTextBox(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
  xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"
  xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"
  xmlns:v="urn:schemas-microsoft-com:vml">
  <w:body>
    <w:p>
      <w:r><w:t xml:space="preserve">Before </w:t></w:r>
      <w:r>
        <mc:AlternateContent>
          <mc:Choice Requires="wps"><wps:txbx><w:txbxContent><w:p><w:r><w:t>Inner</w:t></w:r></w:p></w:txbxContent></wps:txbx></mc:Choice>
          <mc:Fallback><v:textbox><w:txbxContent><w:p><w:r><w:t>Inner</w:t></w:r></w:p></w:txbxContent></v:textbox></mc:Fallback>
        </mc:AlternateContent>
        <w:tab/>
      </w:r>
      <w:r><w:t>After</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

	doc, err := New().Parse(context.Background(), bytes.NewReader(buildDocx(t, body)), model.MimeDocx)

	require.NoError(t, err)
	assert.Equal(t, "Inner\n\nBefore \tAfter\n\n", doc.Content)
	assert.Equal(t, 3, doc.WordCount)
}

func TestParse_DocxFailures(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantMsg string
	}{
		{name: "not a zip", data: []byte("plain text"), wantMsg: "open docx archive"},
		{name: "missing body part", data: buildZip(t, map[string]string{"word/styles.xml": "<x/>"}), wantMsg: "word/document.xml not found"},
		{name: "malformed xml", data: buildDocx(t, "<w:document><w:body>"), wantMsg: "decode word/document.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse(context.Background(), bytes.NewReader(tt.data), model.MimeDocx)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParseFailure)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, model.TypeDocx, pe.Type)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_PDF(t *testing.T) {
	doc, err := New().Parse(context.Background(), bytes.NewReader(buildTextPDF("Hello World from a PDF")), model.MimePDF)

	require.NoError(t, err)
	assert.Equal(t, model.TypePDF, doc.Type)
	require.NotNil(t, doc.Pages)
	assert.Equal(t, 1, *doc.Pages)
	assert.Equal(t, "Hello World from a PDF", doc.Content)
	assert.Equal(t, 5, doc.WordCount)
}

func TestParse_PDFCorrupt(t *testing.T) {
	_, err := New().Parse(context.Background(), strings.NewReader("%PDF-1.4 not really"), model.MimePDF)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailure)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, model.TypePDF, pe.Type)
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, strings.NewReader("x"), model.MimeText)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContentStreamText(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name: "one operator per line",
			stream: strings.Join([]string{
				"BT",
				"/F1 12 Tf",
				"72 720 Td",
				`(Title \(draft\)) Tj`,
				"0 -14 Td",
				`[(Body) -250 (text)] TJ`,
				`(next\040line) '`,
				"ET",
			}, "\n"),
			want: "Title (draft)\nBodytext\nnext line",
		},
		{
			name:   "whole text object on one line",
			stream: "BT /F1 12 Tf 72 720 Td (Hello World) Tj ET",
			want:   "Hello World",
		},
		{
			name:   "operators without separating spaces",
			stream: "BT(Hello)Tj 0 -14 Td[(Wor)20(ld)]TJ ET",
			want:   "Hello\nWorld",
		},
		{
			name:   "nested parentheses and comments",
			stream: "BT % heading\n(a (nested) note) Tj ET",
			want:   "a (nested) note",
		},
		{
			name:   "hex strings and marked content are skipped",
			stream: "/P << /MCID 0 >> BDC BT <0041> Tj (kept) Tj ET EMC",
			want:   "kept",
		},
		{
			name:   "inline image data is ignored",
			stream: "BI /W 1 /H 1 ID \x00(Tj)\xff EI BT (after) Tj ET",
			want:   "after",
		},
		{
			name:   "several text objects on one line",
			stream: "BT (one) Tj ET BT (two) Tj ET",
			want:   "one\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentStreamText([]byte(tt.stream)))
		})
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	return buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
	})
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildTextPDF writes a minimal single-page PDF with one Helvetica text run.
func buildTextPDF(text string) []byte {
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(" + text + ") Tj\nET"

	var b strings.Builder
	offsets := make([]int, 6)
	b.WriteString("%PDF-1.4\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		"<< /Length " + strconv.Itoa(len(stream)) + " >>\nstream\n" + stream + "\nendstream",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	for i, obj := range objects {
		offsets[i+1] = b.Len()
		b.WriteString(strconv.Itoa(i+1) + " 0 obj\n" + obj + "\nendobj\n")
	}

	xref := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		off := strconv.Itoa(offsets[i])
		b.WriteString(strings.Repeat("0", 10-len(off)) + off + " 00000 n \n")
	}
	b.WriteString("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n" + strconv.Itoa(xref) + "\n%%EOF\n")

	return []byte(b.String())
}
