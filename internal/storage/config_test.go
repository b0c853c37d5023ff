package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/marks/internal/storage"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_MissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks", "config.yaml")

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *cfg, storage.DefaultConfig())

	_, err = os.Stat(path)
	assert.NilError(t, err, "expected config file to be written")
}

func TestLoadConfig_AppliesDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("export_path: /tmp/out.json\n"), 0644))

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Theme, "auto")
	assert.Equal(t, cfg.ExportPath, "/tmp/out.json")
	assert.Equal(t, cfg.LogFile, "")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0644))

	_, err := storage.LoadConfig(path)
	assert.Assert(t, err != nil)
}

func TestReadConfig_MissingFileIsNotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")

	_, err := storage.ReadConfig(path)
	assert.Assert(t, errors.Is(err, os.ErrNotExist))

	_, err = os.Stat(path)
	assert.Assert(t, errors.Is(err, os.ErrNotExist), "config file must not be written")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := storage.Config{Theme: "dark", ExportPath: "/x/y.html", LogFile: "/x/marks.log"}

	assert.NilError(t, storage.SaveConfig(path, &want))

	got, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *got, want)
}

func TestDefaultConfigFilePath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	path, err := storage.DefaultConfigFilePath()
	assert.NilError(t, err)
	assert.Equal(t, path, filepath.Join("/xdg", "marks", "config.yaml"))
}
