// Package media inspects local files picked for fall detection.
package media

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirectory is returned when the picked path is a directory
var ErrDirectory = errors.New("path is a directory")

// the system mime tables are often missing video types
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
}

// File describes a local file the way an upload would
type File struct {
	Name        string
	ContentType string
	Size        int64
}

// Probe stats path and guesses its content type from the extension
func Probe(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, ErrDirectory
	}

	return &File{
		Name:        info.Name(),
		ContentType: ContentType(path),
		Size:        info.Size(),
	}, nil
}

// ContentType returns the MIME type for the file extension, or "" if unknown
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	if t, ok := videoTypes[ext]; ok {
		return t
	}

	t := mime.TypeByExtension(ext)
	// drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
