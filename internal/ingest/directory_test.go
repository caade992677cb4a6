package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/doc-renamer/internal/common"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscoverFilesClassifiesAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z.pdf", "a.PDF", "shot.png", "photo.JPEG", "img.webp", "notes.txt", ".hidden.pdf"} {
		touch(t, filepath.Join(dir, name))
	}

	pdfs, images, stats, err := DiscoverFiles(dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.PDF"),
		filepath.Join(dir, "z.pdf"),
	}, pdfs)
	assert.Equal(t, []string{
		filepath.Join(dir, "img.webp"),
		filepath.Join(dir, "photo.JPEG"),
		filepath.Join(dir, "shot.png"),
	}, images)
	assert.Equal(t, uint32(2), stats.PDFs)
	assert.Equal(t, uint32(3), stats.Images)
	assert.Equal(t, uint32(1), stats.Ignored) // notes.txt; hidden file never scanned
}

func TestDiscoverFilesFlatByDefault(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.pdf"))
	touch(t, filepath.Join(dir, "sub", "nested.pdf"))

	pdfs, _, _, err := DiscoverFiles(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.pdf")}, pdfs)
}

func TestDiscoverFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.pdf"))
	touch(t, filepath.Join(dir, "sub", "nested.pdf"))
	touch(t, filepath.Join(dir, ".git", "object.pdf"))

	pdfs, _, _, err := DiscoverFiles(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "sub", "nested.pdf"),
		filepath.Join(dir, "top.pdf"),
	}, pdfs)
}

func TestDiscoverFilesRejectsMissingDirectory(t *testing.T) {
	_, _, _, err := DiscoverFiles(filepath.Join(t.TempDir(), "nope"), false)
	require.Error(t, err)
	assert.Equal(t, common.CodeConfig, common.CodeOf(err))
}

func TestDiscoverFilesRejectsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.pdf")
	touch(t, file)

	_, _, _, err := DiscoverFiles(file, false)
	require.Error(t, err)
	assert.Equal(t, common.CodeConfig, common.CodeOf(err))
}
