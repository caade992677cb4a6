// Package metadata holds the typed records extracted from documents and the
// template engine that turns them into filesystem-safe filenames. Instances
// live for exactly one file: built by an extraction adapter, rendered once,
// discarded.
package metadata

import "strings"

// Sentinels substituted for absent optional fields so a rendered component
// is never empty.
const (
	UnknownSentinel     = "Unknown"
	UnknownYearSentinel = "Unknown Year"
	UnknownDateSentinel = "Unknown-Date"
)

// BibliographicInfo is the structured result of extracting author/editor,
// year and title from PDF text. Empty string means the field was absent.
type BibliographicInfo struct {
	Author     string `json:"author,omitempty"`
	AuthorLast string `json:"author_last,omitempty"`
	Editor     string `json:"editor,omitempty"`
	EditorLast string `json:"editor_last,omitempty"`
	Year       string `json:"year,omitempty"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
}

// AuthorOrEditor prefers the author, falls back to the editor with an
// "(Ed.)" suffix, and finally to the Unknown sentinel.
func (b BibliographicInfo) AuthorOrEditor() string {
	switch {
	case b.Author != "":
		return b.Author
	case b.Editor != "":
		return b.Editor + " (Ed.)"
	default:
		return UnknownSentinel
	}
}

// AuthorOrEditorLast is the surname form of AuthorOrEditor: up to three
// comma-separated last names with "et al" past that, "(Ed.)" suffix when the
// names are editors'. Falls back to the surname heuristic when the model
// did not supply explicit last names.
func (b BibliographicInfo) AuthorOrEditorLast() string {
	if al := b.authorLast(); al != "" {
		return formatLastNames(al)
	}
	if el := b.editorLast(); el != "" {
		return formatLastNames(el) + " (Ed.)"
	}
	return UnknownSentinel
}

// FullTitle joins title and subtitle, terminating the title with a period
// when it carries no punctuation of its own.
func (b BibliographicInfo) FullTitle() string {
	if b.Subtitle == "" {
		return b.Title
	}
	title := strings.TrimRight(b.Title, " ")
	if !strings.HasSuffix(title, ".") && !strings.HasSuffix(title, "!") &&
		!strings.HasSuffix(title, "?") && !strings.HasSuffix(title, ":") {
		title += "."
	}
	return title + " " + b.Subtitle
}

func (b BibliographicInfo) authorLast() string {
	if b.AuthorLast != "" {
		return b.AuthorLast
	}
	return LastName(b.Author)
}

func (b BibliographicInfo) editorLast() string {
	if b.EditorLast != "" {
		return b.EditorLast
	}
	return LastName(b.Editor)
}

// Render substitutes the bibliographic variable vocabulary into template.
// Absent fields render as their sentinel, never as an empty component.
func (b BibliographicInfo) Render(template string) (string, error) {
	return render(template, map[string]string{
		"author":                clean(orSentinel(b.Author, UnknownSentinel)),
		"author_last":           clean(orSentinel(b.authorLast(), UnknownSentinel)),
		"editor":                clean(orSentinel(b.Editor, UnknownSentinel)),
		"editor_last":           clean(orSentinel(b.editorLast(), UnknownSentinel)),
		"author_or_editor":      clean(b.AuthorOrEditor()),
		"author_or_editor_last": clean(b.AuthorOrEditorLast()),
		"year":                  clean(orSentinel(b.Year, UnknownYearSentinel)),
		"title":                 clean(b.Title),
		"subtitle":              clean(b.Subtitle),
		"full_title":            clean(b.FullTitle()),
	})
}

func orSentinel(v, sentinel string) string {
	if strings.TrimSpace(v) == "" {
		return sentinel
	}
	return v
}
