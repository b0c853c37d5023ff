package model

import "time"

// Store holds the ordered bookmark collection and the open form.
//
// Every operation runs to completion and none returns an error: when a
// precondition does not hold the call is a no-op. A Store is not safe for
// concurrent use.
type Store struct {
	bookmarks []Bookmark
	form      form

	newID func() string
	now   func() time.Time
}

// NewStoreParams holds parameters for creating a new Store.
type NewStoreParams struct {
	NewID func() string    // optional, defaults to GenerateUUID
	Now   func() time.Time // optional, defaults to time.Now
}

// NewStore creates an empty Store.
func NewStore(params NewStoreParams) *Store {
	newID := params.NewID
	if newID == nil {
		newID = GenerateUUID
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		bookmarks: []Bookmark{},
		newID:     newID,
		now:       now,
	}
}

// Bookmarks returns a copy of the collection in insertion order.
func (s *Store) Bookmarks() []Bookmark {
	out := make([]Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.bookmarks)
}

// IndexOf returns the position of the bookmark with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
// The result is a copy; changing it does not change the store.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	i := s.IndexOf(id)
	if i < 0 {
		return nil
	}
	b := s.bookmarks[i]
	return &b
}

// HasBookmarkURL checks if a bookmark with the given URL exists.
func (s *Store) HasBookmarkURL(url string) bool {
	for _, b := range s.bookmarks {
		if b.URL == url {
			return true
		}
	}
	return false
}

// Mode returns the current form state.
func (s *Store) Mode() Mode {
	return s.form.mode
}

// IsAdding reports whether the add form is open.
func (s *Store) IsAdding() bool {
	return s.form.mode == ModeAdding
}

// EditTarget returns the ID of the bookmark being edited.
func (s *Store) EditTarget() (string, bool) {
	if s.form.mode != ModeEditing {
		return "", false
	}
	return s.form.targetID, true
}

// Draft returns the open form's draft. It is empty when no form is open.
func (s *Store) Draft() Draft {
	return s.form.draft
}

// OpenAddForm opens the add form. An add form that is already open keeps
// its draft; an edit in progress is abandoned.
func (s *Store) OpenAddForm() {
	if s.form.mode == ModeAdding {
		return
	}
	s.form = form{mode: ModeAdding}
}

// UpdateDraft overwrites one field of the open form's draft.
// Any text is accepted, including empty strings.
func (s *Store) UpdateDraft(field DraftField, value string) {
	if s.form.mode == ModeIdle {
		return
	}
	switch field {
	case DraftName:
		s.form.draft.Name = value
	case DraftURL:
		s.form.draft.URL = value
	}
}

// CommitAdd appends the draft as a new bookmark and closes the add form.
// Nothing happens unless the add form is open and both draft fields are
// non-empty.
func (s *Store) CommitAdd() {
	if s.form.mode != ModeAdding || !s.form.draft.IsComplete() {
		return
	}

	s.bookmarks = append(s.bookmarks, Bookmark{
		ID:        s.newID(),
		Name:      s.form.draft.Name,
		URL:       s.form.draft.URL,
		CreatedAt: s.now(),
	})
	s.form.close()
}

// CancelAdd discards the add form. It leaves an edit form alone.
func (s *Store) CancelAdd() {
	if s.form.mode != ModeAdding {
		return
	}
	s.form.close()
}

// StartEdit opens the edit form for the bookmark with the given ID, with
// a copy of its name and URL as the draft. Unknown IDs are ignored.
func (s *Store) StartEdit(id string) {
	i := s.IndexOf(id)
	if i < 0 {
		return
	}
	b := s.bookmarks[i]
	s.form = form{
		mode:     ModeEditing,
		targetID: id,
		draft:    Draft{Name: b.Name, URL: b.URL},
	}
}

// CommitEdit writes the draft's name and URL into the edited bookmark and
// closes the edit form. Unlike CommitAdd it accepts empty fields.
func (s *Store) CommitEdit() {
	if s.form.mode != ModeEditing {
		return
	}

	if i := s.IndexOf(s.form.targetID); i >= 0 {
		s.bookmarks[i].Name = s.form.draft.Name
		s.bookmarks[i].URL = s.form.draft.URL
	}
	s.form.close()
}

// CancelEdit discards the edit form. It leaves an add form alone.
func (s *Store) CancelEdit() {
	if s.form.mode != ModeEditing {
		return
	}
	s.form.close()
}

// DeleteBookmark removes the bookmark with the given ID, keeping the order
// of the rest. Deleting the bookmark being edited also closes the edit form.
func (s *Store) DeleteBookmark(id string) {
	i := s.IndexOf(id)
	if i < 0 {
		return
	}

	s.bookmarks = append(s.bookmarks[:i:i], s.bookmarks[i+1:]...)

	if s.form.mode == ModeEditing && s.form.targetID == id {
		s.form.close()
	}
}

// Import appends bookmarks whose URL is not already present.
// Entries missing a name or URL are skipped. Added entries get fresh IDs
// from the store; a zero CreatedAt is set to now.
func (s *Store) Import(bookmarks []Bookmark) (added, skipped int) {
	for _, b := range bookmarks {
		if b.Name == "" || b.URL == "" || s.HasBookmarkURL(b.URL) {
			skipped++
			continue
		}

		b.ID = s.newID()
		if b.CreatedAt.IsZero() {
			b.CreatedAt = s.now()
		}
		s.bookmarks = append(s.bookmarks, b)
		added++
	}
	return added, skipped
}
