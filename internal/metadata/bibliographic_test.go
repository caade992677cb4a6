package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/doc-renamer/internal/common"
)

const defaultPDFTemplate = "{author_or_editor_last} {year} - {title}.pdf"

func TestRenderDefaultTemplate(t *testing.T) {
	info := BibliographicInfo{
		Author: "F. Scott Fitzgerald",
		Year:   "1925",
		Title:  "The Great Gatsby",
	}
	name, err := info.Render(defaultPDFTemplate)
	require.NoError(t, err)
	assert.Equal(t, "Fitzgerald 1925 - The Great Gatsby.pdf", name)
}

func TestRenderMissingFieldsUseSentinels(t *testing.T) {
	info := BibliographicInfo{Title: "T"}
	name, err := info.Render(defaultPDFTemplate)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Unknown Year - T.pdf", name)
}

func TestRenderIdempotent(t *testing.T) {
	info := BibliographicInfo{Author: "Jane Smith", Year: "2020", Title: "Report"}
	first, err := info.Render(defaultPDFTemplate)
	require.NoError(t, err)
	second, err := info.Render(defaultPDFTemplate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownVariableIsConfigError(t *testing.T) {
	info := BibliographicInfo{Title: "T"}
	_, err := info.Render("{bogus} - {title}.pdf")
	require.Error(t, err)
	assert.Equal(t, common.CodeConfig, common.CodeOf(err))
	assert.True(t, errors.Is(err, common.ErrUnknownVariable))
	assert.Contains(t, err.Error(), "bogus")
}

func TestRenderNeverLeavesPlaceholdersOrIllegalChars(t *testing.T) {
	infos := []BibliographicInfo{
		{Title: "T"},
		{Author: "A/B\\C", Year: "20?20", Title: `Draft: <v2?> "final" *really*`},
		{Editor: "Someone", Title: "Collected | Papers"},
		{Author: "X", AuthorLast: "X", Year: "1999", Title: "Plain"},
	}
	template := "{author_or_editor} {year} - {title}.pdf"
	for _, info := range infos {
		name, err := info.Render(template)
		require.NoError(t, err)
		assert.NotContains(t, name, "{")
		assert.NotContains(t, name, "}")
		for _, c := range `<>:"/\|?*` {
			assert.NotContains(t, name, string(c), "illegal char in %q", name)
		}
		assert.NotEmpty(t, name)
	}
}

func TestAuthorOrEditor(t *testing.T) {
	assert.Equal(t, "A. Writer",
		BibliographicInfo{Author: "A. Writer", Title: "x"}.AuthorOrEditor())
	assert.Equal(t, "E. Curator (Ed.)",
		BibliographicInfo{Editor: "E. Curator", Title: "x"}.AuthorOrEditor())
	assert.Equal(t, "Unknown",
		BibliographicInfo{Title: "x"}.AuthorOrEditor())
}

func TestAuthorOrEditorLast(t *testing.T) {
	// explicit last names from the model win
	assert.Equal(t, "Smith, Jones",
		BibliographicInfo{AuthorLast: "Smith and Jones", Title: "x"}.AuthorOrEditorLast())

	// heuristic fallback from the full author name
	assert.Equal(t, "Fitzgerald",
		BibliographicInfo{Author: "F. Scott Fitzgerald", Title: "x"}.AuthorOrEditorLast())

	// editors carry the (Ed.) suffix
	assert.Equal(t, "Brown (Ed.)",
		BibliographicInfo{EditorLast: "Brown", Title: "x"}.AuthorOrEditorLast())

	// more than three names collapse to et al
	assert.Equal(t, "A, B, C et al",
		BibliographicInfo{AuthorLast: "A, B, C, D", Title: "x"}.AuthorOrEditorLast())

	assert.Equal(t, "Unknown",
		BibliographicInfo{Title: "x"}.AuthorOrEditorLast())
}

func TestFullTitle(t *testing.T) {
	assert.Equal(t, "Title", BibliographicInfo{Title: "Title"}.FullTitle())
	assert.Equal(t, "Title. Sub",
		BibliographicInfo{Title: "Title", Subtitle: "Sub"}.FullTitle())
	assert.Equal(t, "Title? Sub",
		BibliographicInfo{Title: "Title?", Subtitle: "Sub"}.FullTitle())
}

func TestTruncationPreservesExtension(t *testing.T) {
	info := BibliographicInfo{
		Author: "Writer",
		Year:   "2001",
		Title:  strings.Repeat("Very Long Title ", 40),
	}
	name, err := info.Render(defaultPDFTemplate)
	require.NoError(t, err)
	final := Finalize(name, ".pdf")
	assert.LessOrEqual(t, len(final), MaxFilenameBytes)
	assert.True(t, strings.HasSuffix(final, ".pdf"))
}

func TestValidatePDFTemplate(t *testing.T) {
	require.NoError(t, ValidatePDFTemplate(defaultPDFTemplate))
	require.NoError(t, ValidatePDFTemplate("{author} {author_last} {editor} {editor_last} {author_or_editor} {year} {title} {subtitle} {full_title}.pdf"))
	require.Error(t, ValidatePDFTemplate("{datetime}.pdf")) // screenshot-only variable
}
