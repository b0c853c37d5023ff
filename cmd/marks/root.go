package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/marks/internal/exporter"
	"github.com/nikbrunner/marks/internal/logger"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/storage"
	"github.com/nikbrunner/marks/internal/tui"
	"github.com/spf13/cobra"
)

// options holds the root command's flags.
type options struct {
	configPath string
	theme      string
	importPath string
	exportPath string
	logFile    string
	verbose    bool
}

// settings is the merged result of config file and flags.
type settings struct {
	theme      model.ThemePreference
	exportPath string // target of the in-app export key
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "marks",
		Short: "Keyboard-driven bookmark grid for the terminal",
		Long: `marks keeps a list of bookmarks as a grid of cards.

Bookmarks live for the session only. Use --import to start from a
bookmark file and E (or --export) to write them out again. Files ending
in .html or .htm use the Netscape bookmark format, .json a JSON snapshot.

Keys:
  h/j/k/l     Move between cards
  gg/G        First/last card
  a           Add bookmark
  e           Edit selected card in place
  d           Delete selected card
  o/Enter     Open in browser
  Y           Copy URL
  t           Toggle dark mode
  E           Export
  ?           Help
  q           Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.config/marks/config.yaml)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "initial theme: auto, dark or light (overrides config)")
	cmd.Flags().StringVarP(&opts.importPath, "import", "i", "", "load bookmarks from an .html or .json file at startup")
	cmd.Flags().StringVarP(&opts.exportPath, "export", "o", "", "write bookmarks to this file on quit")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append logs to this file (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log info messages, not just warnings and errors")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// run loads configuration, starts the TUI and handles the optional export
// when it exits.
func run(opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	s, err := resolveSettings(cfg, opts)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(s.logFile, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	store := model.NewStore(model.NewStoreParams{})
	if opts.importPath != "" {
		if err := importInto(store, opts.importPath, log); err != nil {
			return err
		}
	}

	theme := model.NewTheme(s.theme.Resolve(lipgloss.HasDarkBackground))
	log.Info("starting with %s theme and %d bookmarks", theme, store.Len())

	app := tui.NewApp(tui.AppParams{
		Store:      store,
		Theme:      theme,
		Logger:     log,
		ExportPath: s.exportPath,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	if opts.exportPath == "" {
		return nil
	}
	finalApp, ok := finalModel.(tui.App)
	if !ok {
		return nil
	}
	return exportTo(finalApp.Store(), opts.exportPath, log)
}

// loadConfig reads the config file. The default location is created with
// defaults on first run; a path given with --config must already exist.
func loadConfig(path string) (*storage.Config, error) {
	if path != "" {
		cfg, err := storage.ReadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		return cfg, nil
	}

	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}
	cfg, err := storage.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSettings merges the config file with flags. Flags win.
func resolveSettings(cfg *storage.Config, opts *options) (settings, error) {
	themeValue := cfg.Theme
	if opts.theme != "" {
		themeValue = opts.theme
	}
	pref, err := model.ParseThemePreference(themeValue)
	if err != nil {
		return settings{}, err
	}

	exportPath := opts.exportPath
	if exportPath == "" {
		exportPath = cfg.ExportPath
	}
	if exportPath == "" {
		exportPath, err = exporter.DefaultExportPath()
		if err != nil {
			return settings{}, fmt.Errorf("export path: %w", err)
		}
	}

	logFile := cfg.LogFile
	if opts.logFile != "" {
		logFile = opts.logFile
	}

	return settings{
		theme:      pref,
		exportPath: exportPath,
		logFile:    logFile,
	}, nil
}

// openLogger returns a file logger, or a no-op logger when path is empty.
// The TUI owns the terminal, so logs never go to stderr.
func openLogger(path string, verbose bool) (logger.Logger, func() error, error) {
	if path == "" {
		return logger.Noop(), func() error { return nil }, nil
	}
	log, closeFn, err := logger.OpenFile(path, !verbose)
	if err != nil {
		return nil, nil, err
	}
	return log, closeFn, nil
}

func importInto(store *model.Store, path string, log logger.Logger) error {
	fs, err := storage.NewFileStorage(path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	bookmarks, err := fs.Load()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	added, skipped := store.Import(bookmarks)
	log.Info("imported %d bookmarks from %s file %s (%d skipped)", added, fs.Format(), path, skipped)
	return nil
}

func exportTo(store *model.Store, path string, log logger.Logger) error {
	fs, err := storage.NewFileStorage(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	bookmarks := store.Bookmarks()
	if err := fs.Save(bookmarks); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info("exported %d bookmarks to %s file %s", len(bookmarks), fs.Format(), path)
	return nil
}
