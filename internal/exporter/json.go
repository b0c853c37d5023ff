package exporter

import (
	"encoding/json"

	"github.com/nikbrunner/marks/internal/model"
)

// ExportJSON encodes bookmarks as an indented {"bookmarks": [...]} document.
func ExportJSON(bookmarks []model.Bookmark) ([]byte, error) {
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	doc := struct {
		Bookmarks []model.Bookmark `json:"bookmarks"`
	}{Bookmarks: bookmarks}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
