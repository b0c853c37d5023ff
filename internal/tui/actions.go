package tui

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/storage"
)

// Opener opens a URL outside the terminal, usually in a browser.
type Opener interface {
	Open(url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// BrowserOpener opens URLs with the platform's default handler.
type BrowserOpener struct{}

// Open starts the platform URL handler without waiting for it.
func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("opening URLs is not supported on %s", runtime.GOOS)
	}
	return cmd.Start()
}

// SystemClipboard is the system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Result messages for side effects run as commands.
type (
	openedMsg struct {
		url string
		err error
	}

	yankedMsg struct {
		url string
		err error
	}

	exportedMsg struct {
		path  string
		count int
		err   error
	}
)

func openURLCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: opener.Open(url)}
	}
}

func yankURLCmd(cb Clipboard, url string) tea.Cmd {
	return func() tea.Msg {
		return yankedMsg{url: url, err: cb.WriteAll(url)}
	}
}

// exportCmd writes a snapshot of the bookmarks to path. The format follows
// the file extension.
func exportCmd(path string, bookmarks []model.Bookmark) tea.Cmd {
	return func() tea.Msg {
		fs, err := storage.NewFileStorage(path)
		if err != nil {
			return exportedMsg{path: path, err: err}
		}
		if err := fs.Save(bookmarks); err != nil {
			return exportedMsg{path: path, err: err}
		}
		return exportedMsg{path: path, count: len(bookmarks)}
	}
}
