package model

import "time"

// Bookmark represents a saved URL with a display name.
type Bookmark struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Name string
	URL  string
}

// NewBookmark creates a Bookmark with a generated UUID and creation time.
// Importers use it for entries read from files; Store.Import later assigns
// the store's own ids.
func NewBookmark(params NewBookmarkParams) Bookmark {
	return Bookmark{
		ID:        GenerateUUID(),
		Name:      params.Name,
		URL:       params.URL,
		CreatedAt: time.Now(),
	}
}
