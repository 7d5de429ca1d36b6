// Package extract converts uploaded resume documents into plain text.
// Extraction is a pure transform: no side effects, no shared state.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

const (
	mimePDF   = "application/pdf"
	mimeDOC   = "application/msword"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain = "text/plain"
)

// RawDocument is an uploaded binary resume file prior to text extraction.
// It is owned by the extraction layer for the duration of one call.
type RawDocument struct {
	Content   []byte
	MediaType string
	FileName  string
}

// Extract returns the plain text of the document, preserving paragraph and
// line breaks where the source format allows it. It fails with
// ErrUnsupportedFormat, ErrCorruptDocument, or ErrEmptyContent.
func Extract(doc RawDocument) (string, error) {
	if len(doc.Content) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrEmptyContent, doc.FileName)
	}

	var text string
	var err error
	switch resolveMediaType(doc) {
	case mimePDF:
		text, err = extractPDF(doc.Content)
	case mimeDOCX:
		text, err = extractDOCX(doc.Content)
	case mimeDOC:
		text, err = extractDOC(doc.Content)
	case mimePlain:
		text = string(doc.Content)
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, doc.FileName, doc.MediaType)
	}
	if err != nil {
		return "", err
	}

	text = tidy(text)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyContent, doc.FileName)
	}
	return text, nil
}

// resolveMediaType prefers the declared type, falling back to byte sniffing
// and then the filename extension. Zip payloads are narrowed to OOXML when
// they carry word/document.xml.
func resolveMediaType(doc RawDocument) string {
	declared := strings.ToLower(strings.TrimSpace(strings.Split(doc.MediaType, ";")[0]))

	switch declared {
	case mimePDF, mimeDOC, mimeDOCX, mimePlain:
		return declared
	case "", "application/octet-stream", "application/zip":
		// Fall through to sniffing.
	default:
		return declared
	}

	sniffed := mimetype.Detect(doc.Content)
	switch {
	case sniffed.Is(mimePDF):
		return mimePDF
	case sniffed.Is(mimeDOCX):
		return mimeDOCX
	case sniffed.Is(mimeDOC):
		return mimeDOC
	case sniffed.Is("application/zip") && zipHasWordDocument(doc.Content):
		return mimeDOCX
	case sniffed.Is(mimePlain), strings.HasPrefix(sniffed.String(), "text/"):
		return mimePlain
	}

	switch strings.ToLower(filepath.Ext(doc.FileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".doc":
		return mimeDOC
	case ".txt":
		return mimePlain
	}
	if declared != "" {
		return declared
	}
	return sniffed.String()
}

func zipHasWordDocument(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs; a corrupt upload
	// must surface as an error, not take the worker down.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: unreadable pdf", ErrCorruptDocument)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: unreadable pdf", ErrCorruptDocument)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: unreadable docx archive", ErrCorruptDocument)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: docx missing word/document.xml", ErrCorruptDocument)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: docx body unreadable", ErrCorruptDocument)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: docx body unreadable", ErrCorruptDocument)
	}
	return stripDocxXML(raw), nil
}

// stripDocxXML walks WordprocessingML and keeps character data, emitting a
// newline at each paragraph or explicit break so section detection still
// sees document structure.
func stripDocxXML(raw []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var b strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			}
		case xml.StartElement:
			if t.Name.Local == "tab" {
				b.WriteString(" ")
			}
		}
	}
	return b.String()
}

// extractDOC pulls printable text runs out of a legacy binary .doc file.
// Word 97 stores body text as UTF-16LE inside the OLE container, so both
// byte-wise and UTF-16 runs are scanned. Best effort only.
func extractDOC(data []byte) (string, error) {
	ascii := printableRuns(data)
	utf := printableRuns(decodeUTF16LE(data))
	text := ascii
	if len(utf) > len(ascii) {
		text = utf
	}
	if len(strings.TrimSpace(text)) < 20 {
		return "", fmt.Errorf("%w: no readable text in doc file", ErrCorruptDocument)
	}
	return text, nil
}

func decodeUTF16LE(data []byte) []byte {
	u16 := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u16 = append(u16, uint16(data[i])|uint16(data[i+1])<<8)
	}
	return []byte(string(utf16.Decode(u16)))
}

func printableRuns(data []byte) string {
	var b strings.Builder
	var run []rune
	flush := func() {
		if len(run) >= 4 {
			b.WriteString(strings.TrimSpace(string(run)))
			b.WriteString("\n")
		}
		run = run[:0]
	}
	for _, r := range string(data) {
		switch {
		case r == '\r' || r == '\n' || r == 0x0b:
			flush()
		case unicode.IsPrint(r):
			run = append(run, r)
		default:
			flush()
		}
	}
	flush()
	return b.String()
}

var pageNumberRe = regexp.MustCompile(`(?i)^(page\s+)?\d+(\s+of\s+\d+)?$`)

// tidy normalizes line endings and drops bare page numbers and short lines
// repeated often enough to look like running headers or footers. Stripping
// is best effort; leftovers are fine.
func tidy(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	counts := make(map[string]int)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) <= 60 {
			counts[trimmed]++
		}
	}

	var out []string
	blank := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blank++
			if blank <= 1 && len(out) > 0 {
				out = append(out, "")
			}
			continue
		}
		blank = 0
		if pageNumberRe.MatchString(trimmed) {
			continue
		}
		if len(trimmed) <= 60 && counts[trimmed] >= 3 && !strings.ContainsAny(trimmed, ",;:") {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
