package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// MessageType is the severity of a status line message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// FormState holds the text inputs backing the add and edit forms.
// The inputs only mirror the store's draft; the store stays the source of truth.
type FormState struct {
	NameInput textinput.Model
	URLInput  textinput.Model
	Focus     model.DraftField
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.LayoutConfig) FormState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = 0 // unlimited
	nameInput.Width = cfg.Input.StandardWidth
	nameInput.Prompt = ""

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = 0
	urlInput.Width = cfg.Input.StandardWidth
	urlInput.Prompt = ""

	return FormState{
		NameInput: nameInput,
		URLInput:  urlInput,
		Focus:     model.DraftName,
	}
}

// Load fills the inputs from a draft and focuses the name field.
func (f *FormState) Load(draft model.Draft) tea.Cmd {
	f.NameInput.SetValue(draft.Name)
	f.URLInput.SetValue(draft.URL)
	return f.SetFocus(model.DraftName)
}

// SetWidth sets the display width of both inputs.
func (f *FormState) SetWidth(width int) {
	f.NameInput.Width = width
	f.URLInput.Width = width
}

// Reset clears and blurs both inputs.
func (f *FormState) Reset() {
	f.NameInput.Reset()
	f.URLInput.Reset()
	f.NameInput.Blur()
	f.URLInput.Blur()
	f.Focus = model.DraftName
}

// SetFocus moves keyboard focus to the given field.
func (f *FormState) SetFocus(field model.DraftField) tea.Cmd {
	f.Focus = field
	if field == model.DraftURL {
		f.NameInput.Blur()
		return f.URLInput.Focus()
	}
	f.URLInput.Blur()
	return f.NameInput.Focus()
}

// ToggleFocus switches between the name and URL fields.
func (f *FormState) ToggleFocus() tea.Cmd {
	if f.Focus == model.DraftName {
		return f.SetFocus(model.DraftURL)
	}
	return f.SetFocus(model.DraftName)
}

// Update forwards a message to the focused input and returns the field it
// changed along with the new value.
func (f *FormState) Update(msg tea.Msg) (model.DraftField, string, tea.Cmd) {
	var cmd tea.Cmd
	if f.Focus == model.DraftURL {
		f.URLInput, cmd = f.URLInput.Update(msg)
		return model.DraftURL, f.URLInput.Value(), cmd
	}
	f.NameInput, cmd = f.NameInput.Update(msg)
	return model.DraftName, f.NameInput.Value(), cmd
}

// GridNav holds the cursor over the card grid.
type GridNav struct {
	Cursor int // index into the store's bookmarks

	// For gg command
	LastKeyWasG bool
}

// Clamp keeps the cursor inside a collection of the given size.
func (g *GridNav) Clamp(count int) {
	if g.Cursor >= count {
		g.Cursor = count - 1
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
}

// MoveBy moves the cursor by delta when the target exists.
func (g *GridNav) MoveBy(delta, count int) {
	target := g.Cursor + delta
	if target >= 0 && target < count {
		g.Cursor = target
	}
}
