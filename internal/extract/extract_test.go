package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	raw := "  Heading  \n\n\n\n----------\nBody line one.\n   \nBody line two.\n======\n"

	got := CleanText(raw)

	assert.Equal(t, "Heading\n\nBody line one.\n\nBody line two.", got)
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n ***** \n---\n"))
}

func TestTruncateForPromptShortTextUntouched(t *testing.T) {
	assert.Equal(t, "short text.", TruncateForPrompt("short text.", 100))
}

func TestTruncateForPromptCutsAtSentenceBoundary(t *testing.T) {
	// A period lands past 80% of the budget, so the cut ends on it.
	text := strings.Repeat("x", 90) + ". trailing words without any stop"

	got := TruncateForPrompt(text, 100)

	assert.True(t, strings.HasSuffix(got, "."))
	assert.Len(t, got, 91)
}

func TestTruncateForPromptAppendsEllipsis(t *testing.T) {
	// No period in the back stretch: hard cut plus ellipsis.
	text := strings.Repeat("y", 200)

	got := TruncateForPrompt(text, 100)

	assert.Len(t, got, 103)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(PDFPlaceholder))
	assert.True(t, IsPlaceholder(DocxMinimalPlaceholder))
	assert.False(t, IsPlaceholder("Chapter 1 [revised] document uploaded twice"))
	assert.False(t, IsPlaceholder("Actual reviewer content about assessment."))
}

func TestFromFileUnsupportedFormat(t *testing.T) {
	_, err := FromFile("notes.txt", []byte("hello"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestFromDocx(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Learning theories overview.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Piaget</w:t></w:r><w:r><w:t xml:space="preserve"> and Vygotsky.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got := FromDocx(data)

	assert.Equal(t, "Learning theories overview.\n\nPiaget and Vygotsky.", got)
}

func TestFromDocxCorruptArchive(t *testing.T) {
	got := FromDocx([]byte("this is not a zip file"))

	assert.Equal(t, DocxPlaceholder, got)
}

func TestFromDocxNoText(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body></w:body></w:document>`)

	assert.Equal(t, DocxPlaceholder, FromDocx(data))
}

func TestFromPDFCorruptData(t *testing.T) {
	got := FromPDF([]byte("%PDF-1.4 truncated garbage"))

	assert.Equal(t, PDFPlaceholder, got)
}

func TestTextStats(t *testing.T) {
	stats := TextStats("one two three\n\nfour five")

	assert.Equal(t, 24, stats.CharCount)
	assert.Equal(t, 5, stats.WordCount)
	assert.Equal(t, 3, stats.LineCount)
	assert.Equal(t, 2, stats.ParagraphCount)

	assert.Equal(t, Stats{}, TextStats(""))
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
