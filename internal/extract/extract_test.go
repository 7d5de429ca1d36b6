package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocxKeepsParagraphBreaks(t *testing.T) {
	data := buildDocx(t, []string{"Jane Doe", "Experience", "Software Engineer"})

	text, err := Extract(RawDocument{Content: data, MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FileName: "cv.docx"})
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
	if lines[1] != "Experience" {
		t.Fatalf("expected paragraph break before Experience, got %q", lines[1])
	}
}

func TestExtractDocxFromZipMediaType(t *testing.T) {
	data := buildDocx(t, []string{"Jane Doe", "Skills"})

	if _, err := Extract(RawDocument{Content: data, MediaType: "application/zip", FileName: "cv.docx"}); err != nil {
		t.Fatalf("expected docx to extract from zip media type, got %v", err)
	}
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	text, err := Extract(RawDocument{Content: []byte("John Smith\nSkills: Go, SQL\n"), MediaType: "text/plain", FileName: "cv.txt"})
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if !strings.Contains(text, "John Smith") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract(RawDocument{Content: []byte("GIF89a..."), MediaType: "image/gif", FileName: "photo.gif"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractEmptyContent(t *testing.T) {
	_, err := Extract(RawDocument{Content: nil, MediaType: "application/pdf", FileName: "cv.pdf"})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	_, err = Extract(RawDocument{Content: []byte("   \n \n  "), MediaType: "text/plain", FileName: "cv.txt"})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent for blank text, got %v", err)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := Extract(RawDocument{Content: []byte("%PDF-1.4 not really a pdf"), MediaType: "application/pdf", FileName: "cv.pdf"})
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestExtractCorruptDocx(t *testing.T) {
	_, err := Extract(RawDocument{Content: []byte("PK\x03\x04 broken"), MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FileName: "cv.docx"})
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestTidyStripsPageNumbersAndRepeatedHeaders(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe Resume", "Summary line one", "1",
		"Jane Doe Resume", "Experience detail", "Page 2 of 3",
		"Jane Doe Resume", "More detail", "page 3 of 3",
	}, "\n")

	got := tidy(text)
	if strings.Contains(got, "Jane Doe Resume") {
		t.Fatalf("expected repeated header to be stripped, got %q", got)
	}
	if strings.Contains(strings.ToLower(got), "page") {
		t.Fatalf("expected page numbers to be stripped, got %q", got)
	}
	if !strings.Contains(got, "Experience detail") {
		t.Fatalf("expected body text to survive, got %q", got)
	}
}

func TestTidyKeepsInfrequentLines(t *testing.T) {
	got := tidy("Jane Doe\nJane Doe\nBody text")
	if !strings.Contains(got, "Jane Doe") {
		t.Fatalf("two occurrences must not be treated as a running header: %q", got)
	}
}
