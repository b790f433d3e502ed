package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAndMarkdownAreVerbatim(t *testing.T) {
	e := NewExporter("")
	content := "# Title\n\nline one\nline two"

	assert.Equal(t, []byte(content), e.Text(content))
	assert.Equal(t, []byte(content), e.Markdown(content))
}

func TestPDFProducesDocument(t *testing.T) {
	e := NewExporter("")

	out, err := e.PDF("Operational notes.\n\nSecond paragraph with a noticeably longer line that has to be wrapped across the column width.", "Ops")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFEmptyContent(t *testing.T) {
	e := NewExporter("")

	out, err := e.PDF("", "Empty")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "munga_export.txt", Filename("", "txt"))
	assert.Equal(t, "munga_export.pdf", Filename("   ", "pdf"))
	assert.Equal(t, "My_Report.md", Filename("My Report", "md"))
	assert.Equal(t, "_etc_passwd.txt", Filename("/etc/passwd", "txt"))
	assert.NotContains(t, Filename("..\\..\\x", "txt"), "..")
}
