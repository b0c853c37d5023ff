package model

// Draft is the unsaved name/url pair behind an open add or edit form.
type Draft struct {
	Name string
	URL  string
}

// IsComplete reports whether both fields are non-empty.
// Whitespace counts as content.
func (d Draft) IsComplete() bool {
	return d.Name != "" && d.URL != ""
}

// DraftField selects which draft field UpdateDraft writes.
type DraftField int

const (
	DraftName DraftField = iota
	DraftURL
)

// Mode is the form state of a Store.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAdding
	ModeEditing
)

// String returns a lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// form is the single open form, if any. It owns the only draft buffer,
// so adding and editing can never be active at the same time.
type form struct {
	mode     Mode
	targetID string // set only in ModeEditing
	draft    Draft
}

// close resets the form to idle with an empty draft.
func (f *form) close() {
	*f = form{}
}
