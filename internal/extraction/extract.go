// Package extraction converts uploaded resume documents into plain text.
// PDF and DOCX payloads are parsed in memory; NormalizeText cleans the
// result (or caller-supplied plain text) for segmentation.
package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphPattern = regexp.MustCompile(`</w:p>`)
	docxTagPattern       = regexp.MustCompile(`<[^>]*>`)
	multiBlankPattern    = regexp.MustCompile(`\n{3,}`)
)

// ExtractText returns the plain text content of a document. fileType selects
// the parser and must be "pdf" or "docx" (a leading dot and mixed case are
// tolerated); anything else fails with UnsupportedFileTypeError. A document
// that parses but carries no text fails with ExtractionError, the same as a
// corrupt one: there is nothing downstream to analyze either way.
func ExtractText(data []byte, fileType string) (string, error) {
	kind := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), "."))

	var (
		text string
		err  error
	)
	switch kind {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDocx(data)
	default:
		return "", &UnsupportedFileTypeError{FileType: fileType}
	}
	if err != nil {
		return "", &ExtractionError{FileType: kind, Cause: err}
	}

	text = NormalizeText(text)
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{FileType: kind, Cause: errors.New("no text content extracted")}
	}
	return text, nil
}

// extractPDF concatenates the plain text of every page. Pages that fail to
// decode are skipped rather than failing the whole document.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxMarkupToText(doc.Editable().GetContent()), nil
}

// docxMarkupToText flattens WordprocessingML into plain text. GetContent
// returns the raw document.xml, so paragraph boundaries become newlines and
// the remaining markup is dropped.
func docxMarkupToText(markup string) string {
	text := docxParagraphPattern.ReplaceAllString(markup, "\n")
	text = docxTagPattern.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// NormalizeText standardizes line endings, removes control characters that
// confuse downstream segmentation, and collapses runs of blank lines.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 0x20 {
			sb.WriteRune(r)
		}
	}

	return multiBlankPattern.ReplaceAllString(sb.String(), "\n\n")
}
