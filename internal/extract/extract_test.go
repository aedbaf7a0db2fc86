package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nSkills:\nGo"), 0644))

	assert.Equal(t, "Jane Doe\nSkills:\nGo", Text(path))
}

func TestText_UnknownExtensionReadsRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Jane Doe"), 0644))

	assert.Equal(t, "# Jane Doe", Text(path))
}

func TestText_InvalidUTF8BytesDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte{'J', 'a', 'n', 0xff, 0xfe, 'e'}, 0644))

	assert.Equal(t, "Jane", Text(path))
}

func TestText_MissingFileYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Text(filepath.Join(t.TempDir(), "nope.txt")))
}

func TestText_CorruptPDFYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	assert.Equal(t, "", Text(path))
}

func TestText_CorruptDocxYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	assert.Equal(t, "", Text(path))
}

func TestText_DocxParagraphsJoinedWithNewlines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills: Go, Python</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	assert.Equal(t, "Jane Doe\nSkills: Go, Python", Text(path))
}

func TestText_DocxWithoutDocumentPartYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, "", Text(path))
}

// writeDocx builds the minimal zip layout Text expects from a .docx.
func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
