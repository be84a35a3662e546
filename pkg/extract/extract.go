// Package extract pulls plain text out of uploaded documents so the AI
// services have something to work with. PDFs are parsed structurally; plain
// text files pass through.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/ledongthuc/pdf"
)

// Kind is the coarse content type of an upload.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindText    Kind = "text"
	KindArchive Kind = "archive"
	KindUnknown Kind = "unknown"
)

// DetectKind sniffs the content type from the file header, falling back to
// the filename extension when the header is inconclusive.
func DetectKind(data []byte, filename string) Kind {
	head := data
	if len(head) > 261 {
		head = head[:261]
	}

	if filetype.IsType(head, matchers.TypePdf) {
		return KindPDF
	}
	if filetype.IsType(head, matchers.TypeZip) {
		return KindArchive
	}
	if looksLikeText(head) {
		return KindText
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".zip":
		return KindArchive
	case ".txt", ".md", ".log", ".csv":
		return KindText
	default:
		return KindUnknown
	}
}

// Text extracts the plain text of an upload. Archives are not unpacked here;
// resolve the payload first.
func Text(data []byte, filename string) (string, error) {
	switch DetectKind(data, filename) {
	case KindPDF:
		return pdfText(data)
	case KindText:
		return string(data), nil
	case KindArchive:
		return "", fmt.Errorf("cannot extract text from an archive, resolve the payload first")
	default:
		return "", fmt.Errorf("unsupported content in %q", filename)
	}
}

// maxPages caps extraction cost on pathological documents.
const maxPages = 50

func pdfText(data []byte) (text string, err error) {
	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}
	return text, nil
}

func looksLikeText(head []byte) bool {
	if len(head) == 0 {
		return false
	}
	if !utf8.Valid(head) {
		return false
	}
	for _, b := range head {
		if b == 0 {
			return false
		}
	}
	return true
}
