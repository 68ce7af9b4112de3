package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	ex := NewDocumentExtractor()

	text, err := ex.Extract([]byte("Experience: 5 years"), "cv.TXT")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "Experience: 5 years" {
		t.Errorf("expected exact round-trip, got %q", text)
	}

	text, err = ex.Extract([]byte("Erfarenhet: 5 år"), "cv.txt")
	if err != nil || text != "Erfarenhet: 5 år" {
		t.Errorf("UTF-8 text should round-trip, got %q (%v)", text, err)
	}
}

// buildPDF writes a minimal PDF with one Helvetica text line per page.
func buildPDF(pages ...string) []byte {
	var objects []string
	kids := make([]string, len(pages))
	fontID := 3 + 2*len(pages)

	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractPDFJoinsPages(t *testing.T) {
	ex := NewDocumentExtractor()

	text, err := ex.Extract(buildPDF("Anna Svensson", "Go developer"), "cv.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	first := strings.Index(text, "Anna Svensson")
	second := strings.Index(text, "Go developer")
	if first == -1 || second == -1 {
		t.Fatalf("expected both pages in the text, got %q", text)
	}
	if first > second {
		t.Errorf("pages out of order: %q", text)
	}
	if !strings.Contains(text[first:second], "\n") {
		t.Errorf("pages should be separated by a newline, got %q", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Errorf("every page should end with a newline, got %q", text)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	ex := NewDocumentExtractor()

	for _, name := range []string{"cv.rtf", "cv.doc", "cv"} {
		_, err := ex.Extract([]byte("data"), name)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestExtractBrokenDocumentsReturnMessageAsText(t *testing.T) {
	ex := NewDocumentExtractor()

	cases := []struct {
		filename string
		prefix   string
	}{
		{"cv.pdf", "error reading PDF"},
		{"cv.docx", "error reading Word file"},
	}

	for _, tc := range cases {
		text, err := ex.Extract([]byte("definitely not a document"), tc.filename)

		var extractErr *ExtractionError
		if !errors.As(err, &extractErr) {
			t.Fatalf("%s: expected *ExtractionError, got %v", tc.filename, err)
		}
		if !strings.HasPrefix(text, tc.prefix) {
			t.Errorf("%s: expected text to start with %q, got %q", tc.filename, tc.prefix, text)
		}
		if text != err.Error() {
			t.Errorf("%s: text and error message should match", tc.filename)
		}
	}
}

func TestDocxParagraphs(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Anna </w:t></w:r><w:r><w:t>Svensson</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go &amp; SQL</w:t></w:r></w:p>
<w:p/>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
</w:body></w:document>`

	paragraphs, err := docxParagraphs(doc)
	if err != nil {
		t.Fatalf("docxParagraphs failed: %v", err)
	}

	want := []string{"Anna Svensson", "Skills:\tGo & SQL", "", "Line one\nLine two"}
	if len(paragraphs) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(paragraphs), paragraphs)
	}
	for i := range want {
		if paragraphs[i] != want[i] {
			t.Errorf("paragraph %d: expected %q, got %q", i, want[i], paragraphs[i])
		}
	}
}
