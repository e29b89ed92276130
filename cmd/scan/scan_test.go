package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectImagePathsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "skip.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0xff}, 0600))
	}

	paths, err := collectImagePaths(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
	}, paths)
}

func TestCollectImagePathsMergesFileAndArgs(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "single.jpg")
	require.NoError(t, os.WriteFile(single, []byte{0xff}, 0600))

	paths, err := collectImagePaths(single, []string{"extra1.jpg", "extra2.png"})
	require.NoError(t, err)

	// Flag input first, positional arguments after, order preserved.
	assert.Equal(t, []string{single, "extra1.jpg", "extra2.png"}, paths)
}

func TestCollectImagePathsEmpty(t *testing.T) {
	paths, err := collectImagePaths("", nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
