package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// PreferencesStore persists the user's timezone and theme. Implementations
// never fail: storage problems degrade to the defaults.
type PreferencesStore interface {
	LoadTimezone() string
	SaveTimezone(tz string)
	LoadTheme() string
	SaveTheme(theme string)
}

type preferences struct {
	Timezone string `yaml:"timezone,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
}

// fileStore keeps preferences in a small YAML file.
type fileStore struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *fileStore {
	return newFileStoreFs(afero.NewOsFs(), path, logger)
}

func newFileStoreFs(fs afero.Fs, path string, logger *slog.Logger) *fileStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fileStore{fs: fs, path: path, logger: logger}
}

// defaultPrefsPath returns ~/.config/countdown/prefs.yaml, or a file in the
// working directory when the home directory is unknown.
func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "countdown-prefs.yaml"
	}
	return filepath.Join(dir, "countdown", "prefs.yaml")
}

func (s *fileStore) read() (preferences, error) {
	var p preferences
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return preferences{}, err
	}
	return p, nil
}

func (s *fileStore) write(update func(*preferences)) error {
	p, err := s.read()
	if err != nil {
		// Unreadable file: start over rather than keep a broken document.
		p = preferences{}
	}
	update(&p)
	data, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0644)
}

func (s *fileStore) LoadTimezone() string {
	p, err := s.read()
	if err != nil {
		s.logger.Warn("failed to load timezone preference", "path", s.path, "error", err)
		return defaultTimezone
	}
	if p.Timezone == "" {
		return defaultTimezone
	}
	return p.Timezone
}

func (s *fileStore) SaveTimezone(tz string) {
	if err := s.write(func(p *preferences) { p.Timezone = tz }); err != nil {
		s.logger.Warn("failed to save timezone preference", "path", s.path, "error", err)
	}
}

func (s *fileStore) LoadTheme() string {
	p, err := s.read()
	if err != nil {
		s.logger.Warn("failed to load theme preference", "path", s.path, "error", err)
		return defaultTheme
	}
	if p.Theme == "" {
		return defaultTheme
	}
	return p.Theme
}

func (s *fileStore) SaveTheme(theme string) {
	if err := s.write(func(p *preferences) { p.Theme = theme }); err != nil {
		s.logger.Warn("failed to save theme preference", "path", s.path, "error", err)
	}
}
