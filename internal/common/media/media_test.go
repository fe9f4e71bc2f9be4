package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{path: "match.mp4", expected: "video/mp4"},
		{path: "MATCH.MOV", expected: "video/quicktime"},
		{path: "clip.avi", expected: "video/x-msvideo"},
		{path: "notes.json", expected: "application/json"},
		{path: "README", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, ContentType(tc.path))
		})
	}
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match.mp4")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o644))

	file, err := Probe(path)
	require.NoError(t, err)
	assert.Equal(t, "match.mp4", file.Name)
	assert.Equal(t, "video/mp4", file.ContentType)
	assert.Equal(t, int64(2048), file.Size)
}

func TestProbe_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Probe(dir)
	assert.ErrorIs(t, err, ErrDirectory)

	_, err = Probe(filepath.Join(dir, "missing.mp4"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
