package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/storage"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func sampleBookmarks() []model.Bookmark {
	created := time.Unix(1700000000, 0).UTC()
	return []model.Bookmark{
		{ID: "b1", Name: "First", URL: "https://first.example", CreatedAt: created},
		{ID: "b2", Name: "Second & more", URL: "https://second.example?a=1&b=2", CreatedAt: created},
		{ID: "b3", Name: "Third", URL: "https://third.example", CreatedAt: created},
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    storage.Format
		wantErr bool
	}{
		{"bookmarks.html", storage.FormatHTML, false},
		{"Bookmarks.HTM", storage.FormatHTML, false},
		{"export.json", storage.FormatJSON, false},
		{"bookmarks.db", 0, true},
		{"noext", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := storage.FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, storage.ErrUnsupportedFormat)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	for _, name := range []string{"bookmarks.html", "bookmarks.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			s, err := storage.NewFileStorage(path)
			assert.NilError(t, err)
			assert.Equal(t, s.Path(), path)

			assert.NilError(t, s.Save(sampleBookmarks()))

			loaded, err := s.Load()
			assert.NilError(t, err)
			assert.Equal(t, len(loaded), 3)

			// Verify order and content are preserved
			for i, want := range sampleBookmarks() {
				assert.Equal(t, loaded[i].Name, want.Name)
				assert.Equal(t, loaded[i].URL, want.URL)
				assert.Assert(t, loaded[i].CreatedAt.Equal(want.CreatedAt))
			}
		})
	}
}

func TestFileStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookmarks.html")

	s, err := storage.NewFileStorage(path)
	assert.NilError(t, err)
	assert.NilError(t, s.Save(nil))

	_, err = os.Stat(path)
	assert.NilError(t, err)
}

func TestFileStorage_LoadMissingFile(t *testing.T) {
	s, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "missing.json"))
	assert.NilError(t, err)

	_, err = s.Load()
	assert.Assert(t, os.IsNotExist(err), "got %v", err)
}

func TestFileStorage_LoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	assert.NilError(t, os.WriteFile(path, []byte("{"), 0644))

	s, err := storage.NewFileStorage(path)
	assert.NilError(t, err)

	_, err = s.Load()
	assert.Assert(t, is.ErrorContains(err, "parse"))
}

func TestNewFileStorage_Unsupported(t *testing.T) {
	_, err := storage.NewFileStorage("bookmarks.db")
	assert.ErrorIs(t, err, storage.ErrUnsupportedFormat)
}

func TestFileStorage_SatisfiesStorage(t *testing.T) {
	var _ storage.Storage = &storage.FileStorage{}
}
