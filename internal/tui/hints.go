package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/nikbrunner/marks/internal/model"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// hintFor builds a hint from a binding's help text.
func hintFor(b key.Binding) Hint {
	h := b.Help()
	return Hint{Key: h.Key, Desc: h.Desc}
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move a:add e:edit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for forms: "Enter save  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (h/j/k/l)
	Edit   []Hint // Edit hints (a, e, d)
	Action []Hint // Action hints (o, Y, Enter, Tab)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.store.Mode() {
	case model.ModeAdding, model.ModeEditing:
		return a.getFormHints()
	default:
		return a.getNormalModeHints()
	}
}

// getNormalModeHints returns hints for browsing the grid.
func (a App) getNormalModeHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "h/j/k/l", Desc: "move"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
		},
		System: []Hint{
			{Key: "t", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}

	if a.store.Len() > 0 {
		hints.Action = []Hint{
			{Key: "o", Desc: "open"},
			{Key: "Y", Desc: "yank"},
		}
		hints.Edit = append(hints.Edit,
			Hint{Key: "e", Desc: "edit"},
			Hint{Key: "d", Desc: "del"},
		)
	}
	return hints
}

// getFormHints returns hints for the add and edit forms.
func (a App) getFormHints() HintSet {
	return HintSet{
		Action: a.formHints(),
	}
}

// formHints lists the keys that drive an open form.
func (a App) formHints() []Hint {
	return []Hint{
		hintFor(a.keys.NextField),
		hintFor(a.keys.Confirm),
		hintFor(a.keys.Cancel),
	}
}

// cardHints lists the per-card actions shown on the selected card.
func (a App) cardHints() []Hint {
	return []Hint{
		hintFor(a.keys.Edit),
		hintFor(a.keys.Delete),
		hintFor(a.keys.Open),
	}
}
