// Package output handles file naming and writing for rendered articles.
// Files land under <dir>/series-<n>/ and are named by the zero-padded
// article number, e.g. dist/series-1/002.md.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is used when no output directory is configured.
const DefaultDir = "dist"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to DefaultDir.
func New(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = DefaultDir
	}
	return &Writer{OutputDir: outputDir}
}

// SeriesDir returns the directory holding a series' files.
func (w *Writer) SeriesDir(series int) string {
	return filepath.Join(w.OutputDir, fmt.Sprintf("series-%d", series))
}

// Path returns the file path for an article.
func (w *Writer) Path(series, index int, ext string) string {
	return filepath.Join(w.SeriesDir(series), fmt.Sprintf("%03d%s", index, ext))
}

// Write creates the series directory if needed and writes data to the
// article's file, truncating any previous version.
func (w *Writer) Write(series, index int, data []byte, ext string) (string, error) {
	dir := w.SeriesDir(series)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := w.Path(series, index, ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
