package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
	rscpdf "rsc.io/pdf"
)

// minUsefulPDFText is the threshold below which the next extraction method
// in the cascade is attempted.
const minUsefulPDFText = 100

// FromPDF extracts text from a PDF. Two readers are tried in order; when
// both come up short the upload is still accepted with a placeholder.
func FromPDF(data []byte) string {
	text, err := pdfPlainText(data)
	if err != nil || len(strings.TrimSpace(text)) < minUsefulPDFText {
		if fallback, ferr := pdfPageText(data); ferr == nil && len(fallback) > len(text) {
			text = fallback
		}
	}

	if strings.TrimSpace(text) == "" {
		return PDFPlaceholder
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return PDFMinimalPlaceholder
	}
	return cleaned
}

// pdfPlainText reads the whole document through ledongthuc/pdf.
func pdfPlainText(data []byte) (text string, err error) {
	// Malformed PDFs can panic inside the reader.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return string(raw), nil
}

// pdfPageText walks the document page by page with rsc.io/pdf, skipping
// pages that cannot be decoded.
func pdfPageText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := rscpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		pageText := func() (s string) {
			defer func() {
				if r := recover(); r != nil {
					s = ""
				}
			}()
			page := reader.Page(i)
			if page.V.IsNull() {
				return ""
			}
			var b strings.Builder
			for _, t := range page.Content().Text {
				b.WriteString(t.S)
				b.WriteString(" ")
			}
			return b.String()
		}()
		if strings.TrimSpace(pageText) != "" {
			parts = append(parts, pageText)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}
