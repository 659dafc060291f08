package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFileStore_DefaultsWhenMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"), newTestLogger())

	require.Equal(t, defaultTimezone, store.LoadTimezone())
	require.Equal(t, defaultTheme, store.LoadTheme())
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store := NewFileStore(path, newTestLogger())

	store.SaveTimezone("Asia/Tokyo")
	store.SaveTheme("aurora")

	reopened := NewFileStore(path, newTestLogger())
	require.Equal(t, "Asia/Tokyo", reopened.LoadTimezone())
	require.Equal(t, "aurora", reopened.LoadTheme())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "timezone: Asia/Tokyo")
}

func TestFileStore_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: [unterminated"), 0644))
	store := NewFileStore(path, newTestLogger())

	require.Equal(t, defaultTimezone, store.LoadTimezone())
	require.Equal(t, defaultTheme, store.LoadTheme())

	store.SaveTheme("light")
	require.Equal(t, "light", store.LoadTheme())
	require.Equal(t, defaultTimezone, store.LoadTimezone())
}

func TestFileStore_UnwritableNeverFails(t *testing.T) {
	// A directory in place of the file makes every read and write fail.
	dir := t.TempDir()
	store := NewFileStore(dir, newTestLogger())

	store.SaveTimezone("Europe/Paris")
	store.SaveTheme("aurora")
	require.Equal(t, defaultTimezone, store.LoadTimezone())
	require.Equal(t, defaultTheme, store.LoadTheme())
}

func TestFileStore_InMemory(t *testing.T) {
	mem := afero.NewMemMapFs()
	store := newFileStoreFs(mem, "/cfg/countdown/prefs.yaml", newTestLogger())

	store.SaveTimezone("Asia/Kolkata")
	require.Equal(t, "Asia/Kolkata", store.LoadTimezone())

	ok, err := afero.Exists(mem, "/cfg/countdown/prefs.yaml")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFileStore_ReadOnlyKeepsExisting(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/prefs.yaml", []byte("theme: aurora\n"), 0644))
	store := newFileStoreFs(afero.NewReadOnlyFs(mem), "/prefs.yaml", newTestLogger())

	store.SaveTheme("light")
	require.Equal(t, "aurora", store.LoadTheme())
}
