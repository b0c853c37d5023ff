package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/marks/internal/exporter"
	"github.com/nikbrunner/marks/internal/importer"
	"github.com/nikbrunner/marks/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .html, .htm and .json.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Storage defines the interface for moving bookmarks in and out of a
// session. It is only invoked by explicit import and export actions.
type Storage interface {
	Load() ([]model.Bookmark, error)
	Save(bookmarks []model.Bookmark) error
}

// Format is a bookmark file encoding.
type Format int

const (
	FormatHTML Format = iota // Netscape bookmark file
	FormatJSON               // {"bookmarks": [...]} snapshot
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "html"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// FileStorage implements Storage using a single bookmark file.
type FileStorage struct {
	path   string
	format Format
}

// NewFileStorage creates a FileStorage for path, choosing the format from
// its extension.
func NewFileStorage(path string) (*FileStorage, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStorage{path: path, format: format}, nil
}

// Path returns the storage file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Format returns the file format.
func (s *FileStorage) Format() Format {
	return s.format
}

// Load reads bookmarks from the file. A missing file is an error: the
// caller asked for that file by name.
func (s *FileStorage) Load() ([]model.Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.Bookmark
	switch s.format {
	case FormatJSON:
		bookmarks, err = importer.ParseJSONBookmarks(bytes.NewReader(data))
	default:
		bookmarks, err = importer.ParseHTMLBookmarks(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return bookmarks, nil
}

// Save writes bookmarks to the file.
// Creates the directory if it doesn't exist.
func (s *FileStorage) Save(bookmarks []model.Bookmark) error {
	// Ensure directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	switch s.format {
	case FormatJSON:
		var err error
		data, err = exporter.ExportJSON(bookmarks)
		if err != nil {
			return err
		}
	default:
		data = []byte(exporter.ExportHTML(bookmarks))
	}

	return os.WriteFile(s.path, data, 0644)
}
