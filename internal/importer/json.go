package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nikbrunner/marks/internal/model"
)

// snapshot mirrors the document written by exporter.ExportJSON.
type snapshot struct {
	Bookmarks []model.Bookmark `json:"bookmarks"`
}

// ParseJSONBookmarks reads a JSON snapshot of the form {"bookmarks": [...]}.
func ParseJSONBookmarks(r io.Reader) ([]model.Bookmark, error) {
	var s snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode json snapshot: %w", err)
	}

	// Ensure slice is not nil
	if s.Bookmarks == nil {
		s.Bookmarks = []model.Bookmark{}
	}
	return s.Bookmarks, nil
}
