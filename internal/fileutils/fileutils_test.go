package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8}, 0600))
	return path
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "slip.jpg")

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.jpg")))
	assert.False(t, FileExists(dir), "a directory is not a file")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(touch(t, dir, "slip.jpg")))
}

func TestListImagePaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.jpg")
	touch(t, dir, "a.png")
	touch(t, dir, "c.jpeg")
	touch(t, dir, "notes.txt")
	touch(t, dir, "report.pdf")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0750))

	paths, err := ListImagePaths(dir)
	require.NoError(t, err)

	// Only supported image files, sorted by name.
	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
	}, paths)
}

func TestListImagePathsMissingDir(t *testing.T) {
	_, err := ListImagePaths(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "slip.jpg")

	img, err := LoadImage(path)
	require.NoError(t, err)

	assert.Equal(t, "slip.jpg", img.Filename)
	assert.Equal(t, "jpeg", img.Format)
	assert.Equal(t, []byte{0xff, 0xd8}, img.Data)
}

func TestLoadImageUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "document.pdf")

	_, err := LoadImage(path)
	assert.Error(t, err)
}

func TestLoadImagesSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := touch(t, dir, "good.jpg")
	missing := filepath.Join(dir, "missing.jpg")

	images := LoadImages([]string{missing, good})

	require.Len(t, images, 1)
	assert.Equal(t, "good.jpg", images[0].Filename)
}
