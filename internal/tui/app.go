package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// App is the main bubbletea model for the bookmark manager.
type App struct {
	store        *model.Store
	theme        model.Theme
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	log          logger.Logger

	exportPath string
	opener     Opener
	clipboard  Clipboard

	nav      GridNav
	form     FormState
	showHelp bool

	// Status line
	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store        *model.Store
	Theme        model.Theme
	Keys         *KeyMap              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       logger.Logger        // optional, discards if nil
	ExportPath   string               // target of the export key; empty disables it
	Opener       Opener               // optional, uses the system browser if nil
	Clipboard    Clipboard            // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	log := params.Logger
	if log == nil {
		log = logger.Noop()
	}

	var opener Opener = BrowserOpener{}
	if params.Opener != nil {
		opener = params.Opener
	}

	var cb Clipboard = SystemClipboard{}
	if params.Clipboard != nil {
		cb = params.Clipboard
	}

	store := params.Store
	if store == nil {
		store = model.NewStore(model.NewStoreParams{})
	}

	return App{
		store:        store,
		theme:        params.Theme,
		keys:         keys,
		styles:       NewStyles(params.Theme.Dark()),
		layoutConfig: layoutConfig,
		log:          log,
		exportPath:   params.ExportPath,
		opener:       opener,
		clipboard:    cb,
		form:         NewFormState(layoutConfig),
		width:        80,
		height:       24,
	}
}

// Store returns the bookmark store.
func (a App) Store() *model.Store {
	return a.store
}

// Theme returns the current theme.
func (a App) Theme() model.Theme {
	return a.theme
}

// Cursor returns the index of the selected card.
func (a App) Cursor() int {
	return a.nav.Cursor
}

// ShowingHelp reports whether the help overlay is open.
func (a App) ShowingHelp() bool {
	return a.showHelp
}

// Message returns the status line text.
func (a App) Message() string {
	return a.messageText
}

// WithDimensions returns a copy of the app with the given size.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// selected returns the bookmark under the cursor.
func (a App) selected() (model.Bookmark, bool) {
	bookmarks := a.store.Bookmarks()
	if a.nav.Cursor < 0 || a.nav.Cursor >= len(bookmarks) {
		return model.Bookmark{}, false
	}
	return bookmarks[a.nav.Cursor], true
}

// columns returns the number of grid columns for the current width.
func (a App) columns() int {
	return layout.CalculateColumns(a.width, a.layoutConfig.Grid)
}

// inputWidth returns the text input width for the open form: the add form
// box or the card being edited.
func (a App) inputWidth() int {
	if a.store.Mode() == model.ModeEditing {
		card := layout.CalculateCardWidth(a.width, a.columns(), a.layoutConfig.Grid)
		return max(card-5, 1) // border (2) + padding (2) + cursor (1)
	}
	modal := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	return max(modal-7, 1) // border (2) + padding (4) + cursor (1)
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetWidth(a.inputWidth())
		return a, nil

	case openedMsg:
		if msg.err != nil {
			a.log.Error("open %s: %v", msg.url, msg.err)
			a.setMessage(MessageError, "Open failed: "+msg.err.Error())
			return a, nil
		}
		a.setMessage(MessageInfo, "Opened "+msg.url)
		return a, nil

	case yankedMsg:
		if msg.err != nil {
			a.log.Error("copy %s: %v", msg.url, msg.err)
			a.setMessage(MessageError, "Copy failed: "+msg.err.Error())
			return a, nil
		}
		a.setMessage(MessageSuccess, "Copied URL")
		return a, nil

	case exportedMsg:
		if msg.err != nil {
			a.log.Error("export %s: %v", msg.path, msg.err)
			a.setMessage(MessageError, "Export failed: "+msg.err.Error())
			return a, nil
		}
		a.log.Info("exported %d bookmarks to %s", msg.count, msg.path)
		a.setMessage(MessageSuccess, fmt.Sprintf("Exported %d bookmarks to %s", msg.count, msg.path))
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			return a.handleHelpKey(msg)
		}
		if a.store.Mode() != model.ModeIdle {
			return a.handleFormKey(msg)
		}
		return a.handleNormalKey(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Cancel):
		a.showHelp = false
	}
	return a, nil
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := a.store.Len()

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.nav.LastKeyWasG {
			a.nav.Cursor = 0
			a.nav.LastKeyWasG = false
			return a, nil
		}
		a.nav.LastKeyWasG = true
		return a, nil
	}
	a.nav.LastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.nav.MoveBy(a.columns(), count)

	case key.Matches(msg, a.keys.Up):
		a.nav.MoveBy(-a.columns(), count)

	case key.Matches(msg, a.keys.Right):
		a.nav.MoveBy(1, count)

	case key.Matches(msg, a.keys.Left):
		a.nav.MoveBy(-1, count)

	case key.Matches(msg, a.keys.Bottom):
		if count > 0 {
			a.nav.Cursor = count - 1
		}

	case key.Matches(msg, a.keys.Add):
		a.clearMessage()
		a.store.OpenAddForm()
		a.form.SetWidth(a.inputWidth())
		return a, a.form.Load(a.store.Draft())

	case key.Matches(msg, a.keys.Edit):
		b, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.clearMessage()
		a.store.StartEdit(b.ID)
		a.form.SetWidth(a.inputWidth())
		return a, a.form.Load(a.store.Draft())

	case key.Matches(msg, a.keys.Delete):
		b, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.store.DeleteBookmark(b.ID)
		a.nav.Clamp(a.store.Len())
		a.log.Info("deleted bookmark %s (%s)", b.ID, b.URL)
		a.setMessage(MessageSuccess, "Deleted "+b.Name)

	case key.Matches(msg, a.keys.Open):
		b, ok := a.selected()
		if !ok {
			return a, nil
		}
		return a, openURLCmd(a.opener, b.URL)

	case key.Matches(msg, a.keys.YankURL):
		b, ok := a.selected()
		if !ok {
			return a, nil
		}
		return a, yankURLCmd(a.clipboard, b.URL)

	case key.Matches(msg, a.keys.ToggleTheme):
		a.theme.Toggle()
		a.styles = NewStyles(a.theme.Dark())
		a.log.Info("theme switched to %s", a.theme)

	case key.Matches(msg, a.keys.Export):
		if a.exportPath == "" {
			a.setMessage(MessageWarning, "No export path configured")
			return a, nil
		}
		return a, exportCmd(a.exportPath, a.store.Bookmarks())

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	}

	return a, nil
}

func (a App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.cancelForm()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		a.commitForm()
		return a, nil

	case key.Matches(msg, a.keys.NextField), key.Matches(msg, a.keys.PrevField):
		return a, a.form.ToggleFocus()
	}

	field, value, cmd := a.form.Update(msg)
	a.store.UpdateDraft(field, value)
	return a, cmd
}

func (a *App) cancelForm() {
	mode := a.store.Mode()
	switch mode {
	case model.ModeAdding:
		a.store.CancelAdd()
	case model.ModeEditing:
		a.store.CancelEdit()
	}
	a.form.Reset()
	a.clearMessage()
	a.log.Info("%s cancelled", mode)
}

func (a *App) commitForm() {
	switch a.store.Mode() {
	case model.ModeAdding:
		a.store.CommitAdd()
		if a.store.IsAdding() {
			a.setMessage(MessageError, "Name and URL are required")
			return
		}
		bookmarks := a.store.Bookmarks()
		added := bookmarks[len(bookmarks)-1]
		a.nav.Cursor = len(bookmarks) - 1
		a.log.Info("added bookmark %s (%s)", added.ID, added.URL)
		a.setMessage(MessageSuccess, "Added "+added.Name)

	case model.ModeEditing:
		id, _ := a.store.EditTarget()
		a.store.CommitEdit()
		if b := a.store.GetBookmarkByID(id); b != nil {
			a.log.Info("updated bookmark %s (%s)", b.ID, b.URL)
			a.setMessage(MessageSuccess, "Saved "+b.Name)
		}
	}
	a.form.Reset()
}
