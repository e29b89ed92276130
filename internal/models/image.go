package models

import (
	"path/filepath"
	"strings"
)

// SlipImage is one uploaded slip image awaiting extraction.
type SlipImage struct {
	Filename string // base name of the upload, attached to the resulting record
	Format   string // image format as the Gemini SDK expects it: "png" or "jpeg"
	Data     []byte
}

// FormatForFilename maps a filename extension to the SDK image format.
// Unsupported extensions return an empty string.
func FormatForFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	default:
		return ""
	}
}
