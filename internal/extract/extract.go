// Package extract pulls plain text out of uploaded reviewer documents.
// Extraction never fails an upload: when a document yields no usable text a
// placeholder string is stored instead and the file is kept for reference.
package extract

import (
	"fmt"
	"strings"
)

// Placeholder texts stored when extraction yields nothing usable.
const (
	PDFPlaceholder         = "[PDF document uploaded - text extraction limited. The document can still be used for reference.]"
	PDFMinimalPlaceholder  = "[PDF document uploaded - contains minimal extractable text.]"
	DocxPlaceholder        = "[DOCX document uploaded - text extraction limited. The document can still be used for reference.]"
	DocxMinimalPlaceholder = "[DOCX document uploaded - contains minimal extractable text.]"
)

// DefaultMaxChars caps the amount of document text embedded in a
// generation prompt.
const DefaultMaxChars = 15000

// IsPlaceholder reports whether stored text is one of the extraction
// placeholders rather than real document content.
func IsPlaceholder(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "[") && strings.Contains(text, "document uploaded")
}

// FromFile extracts text from an uploaded reviewer document. The format is
// picked from the filename extension; only PDF and DOCX are supported.
func FromFile(filename string, data []byte) (string, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return FromPDF(data), nil
	case strings.HasSuffix(name, ".docx"):
		return FromDocx(data), nil
	}
	return "", fmt.Errorf("unsupported file format %q: upload a PDF or DOCX file", filename)
}

// CleanText normalizes extracted text: trims each line, drops separator
// lines made of punctuation, and collapses runs of blank lines down to one.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" {
			// Keep a single blank line for paragraph separation.
			if len(cleaned) > 0 && cleaned[len(cleaned)-1] != "" {
				cleaned = append(cleaned, "")
			}
			continue
		}

		if isSeparatorLine(line) {
			continue
		}

		cleaned = append(cleaned, line)
	}

	out := strings.Join(cleaned, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}

func isSeparatorLine(line string) bool {
	for _, r := range line {
		if r == ' ' {
			continue
		}
		if !strings.ContainsRune(".-_=*#", r) {
			return false
		}
	}
	return true
}

// TruncateForPrompt limits document text to maxChars, preferring to cut at
// the last sentence boundary when one lands past 80% of the budget.
func TruncateForPrompt(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}

	truncated := text[:maxChars]
	if lastPeriod := strings.LastIndex(truncated, "."); lastPeriod > maxChars*8/10 {
		return truncated[:lastPeriod+1]
	}
	return truncated + "..."
}

// Stats summarizes extracted text for display in upload responses.
type Stats struct {
	CharCount      int `json:"char_count"`
	WordCount      int `json:"word_count"`
	LineCount      int `json:"line_count"`
	ParagraphCount int `json:"paragraph_count"`
}

// TextStats computes display statistics for extracted text.
func TextStats(text string) Stats {
	if text == "" {
		return Stats{}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return Stats{
		CharCount:      len(text),
		WordCount:      len(strings.Fields(text)),
		LineCount:      len(strings.Split(text, "\n")),
		ParagraphCount: paragraphs,
	}
}
