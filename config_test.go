package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Missing(t *testing.T) {
	config := loadConfigFrom(filepath.Join(t.TempDir(), "nope"), "")

	require.Equal(t, defaultTargetYear, config.TargetYear)
	require.Equal(t, defaultFPS, config.FPS)
	require.Empty(t, config.Timezone)
	require.Empty(t, config.ExportDirectory)
}

func TestLoadConfigFrom_ParsesKeys(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".countdownrc")
	rc := `# countdown settings
target_year = 2030
TZ = Asia/Tokyo
theme=aurora
fps = 30
prefs_file = ~/prefs.yaml
export_directory = ~/shots
not a setting
fps = fast
year = -4
`
	require.NoError(t, os.WriteFile(path, []byte(rc), 0644))

	config := loadConfigFrom(path, home)
	require.Equal(t, 2030, config.TargetYear)
	require.Equal(t, "Asia/Tokyo", config.Timezone)
	require.Equal(t, "aurora", config.Theme)
	require.Equal(t, 30, config.FPS)
	require.Equal(t, filepath.Join(home, "prefs.yaml"), config.PrefsFile)
	require.Equal(t, filepath.Join(home, "shots"), config.ExportDirectory)
}

func TestGetExportPath(t *testing.T) {
	path, err := (&Config{}).GetExportPath("a.png")
	require.NoError(t, err)
	require.Equal(t, "a.png", path)

	dir := filepath.Join(t.TempDir(), "out")
	config := &Config{ExportDirectory: dir}
	path, err = config.GetExportPath("a.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "a.png"), path)
	require.DirExists(t, dir)
}

func TestGetExportPath_DirectoryNotCreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	config := &Config{ExportDirectory: filepath.Join(blocker, "out")}
	_, err := config.GetExportPath("a.png")
	require.ErrorContains(t, err, "create export directory")
}
