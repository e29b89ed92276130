// Package store loads the optional category-suggestion list that is fed
// into the extraction prompt.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoriesConfig is the on-disk shape of the categories file.
type CategoriesConfig struct {
	Categories []string `yaml:"categories"`
}

// CategoryStore resolves and loads the categories YAML file. The category
// set is only a suggestion for the model; the label space stays open.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given categories file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for the file in standard locations: as given, under
// ./config/, and under ~/.config/slipscan/.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "slipscan", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories returns the configured category suggestions, falling back
// to the built-in defaults when no file is found. A missing file is not an
// error.
func (s *CategoryStore) LoadCategories() ([]string, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Categories file not found, using defaults",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return models.DefaultCategories, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path resolved from user configuration
	if err != nil {
		return nil, fmt.Errorf("could not read categories file: %w", err)
	}

	var cfg CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse categories file: %w", err)
	}

	if len(cfg.Categories) == 0 {
		s.logger.Warn("Categories file is empty, using defaults",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return models.DefaultCategories, nil
	}

	s.logger.Debug("Loaded category suggestions",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Categories)})

	return cfg.Categories, nil
}
