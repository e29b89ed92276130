package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCategoriesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCategoriesFromFile(t *testing.T) {
	path := writeCategoriesFile(t, `categories:
  - food
  - travel
  - bills
`)
	store := NewCategoryStore(path, logging.NewMockLogger())

	categories, err := store.LoadCategories()

	require.NoError(t, err)
	assert.Equal(t, []string{"food", "travel", "bills"}, categories)
}

func TestLoadCategoriesMissingFileFallsBack(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "nope.yaml"), logging.NewMockLogger())

	categories, err := store.LoadCategories()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories, categories)
}

func TestLoadCategoriesEmptyFileFallsBack(t *testing.T) {
	path := writeCategoriesFile(t, "categories: []\n")
	logger := logging.NewMockLogger()
	store := NewCategoryStore(path, logger)

	categories, err := store.LoadCategories()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories, categories)
	assert.True(t, logger.HasMessage("Categories file is empty, using defaults"))
}

func TestLoadCategoriesMalformedFile(t *testing.T) {
	path := writeCategoriesFile(t, "categories: [unclosed\n")
	store := NewCategoryStore(path, logging.NewMockLogger())

	_, err := store.LoadCategories()
	assert.Error(t, err)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	path := writeCategoriesFile(t, "categories: [food]\n")
	store := NewCategoryStore("", logging.NewMockLogger())

	found, err := store.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = store.FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
