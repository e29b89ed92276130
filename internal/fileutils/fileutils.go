// Package fileutils provides the file operations shared by the commands:
// locating slip images and loading them into memory.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListImagePaths returns the supported image files (PNG/JPEG) directly
// inside dir, sorted by name so batch order is stable.
func ListImagePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if models.FormatForFilename(entry.Name()) == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadImage reads one image file into a SlipImage. Unsupported extensions
// are an error here; directory listings have already filtered them.
func LoadImage(path string) (models.SlipImage, error) {
	filename := filepath.Base(path)

	format := models.FormatForFilename(filename)
	if format == "" {
		return models.SlipImage{}, fmt.Errorf("unsupported image type: %s", filename)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return models.SlipImage{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	return models.SlipImage{
		Filename: filename,
		Format:   format,
		Data:     data,
	}, nil
}

// LoadImages loads a list of image paths in order, logging and skipping
// unreadable files rather than aborting the batch.
func LoadImages(paths []string) []models.SlipImage {
	images := make([]models.SlipImage, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			log.WithError(err).Warn("Skipping unreadable image",
				logging.Field{Key: logging.FieldFile, Value: p})
			continue
		}
		images = append(images, img)
	}
	return images
}
