package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FromDocx extracts text from a DOCX file. A DOCX is a zip archive; the
// body lives in word/document.xml as runs of <w:t> elements grouped into
// <w:p> paragraphs.
func FromDocx(data []byte) string {
	paragraphs, err := docxParagraphs(data)
	if err != nil || len(paragraphs) == 0 {
		return DocxPlaceholder
	}

	cleaned := CleanText(strings.Join(paragraphs, "\n\n"))
	if cleaned == "" {
		return DocxMinimalPlaceholder
	}
	return cleaned
}

func docxParagraphs(data []byte) ([]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return nil, errors.New("docx archive has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer rc.Close()

	var (
		paragraphs []string
		current    strings.Builder
		inTextRun  bool
	)
	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep whatever was decoded before the malformed region.
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inTextRun = true
			case "tab":
				current.WriteString(" ")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inTextRun {
				current.Write(t)
			}
		}
	}
	flush()

	return paragraphs, nil
}
