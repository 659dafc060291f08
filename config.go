package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	TargetYear      int
	Timezone        string // empty means use the saved preference
	Theme           string // empty means use the saved preference
	FPS             int
	PrefsFile       string
	ExportDirectory string
	LogFile         string
}

func defaultConfig() *Config {
	return &Config{
		TargetYear: defaultTargetYear,
		FPS:        defaultFPS,
		PrefsFile:  defaultPrefsPath(),
	}
}

// loadConfig reads ~/.countdownrc. Missing files and unknown keys are ignored.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".countdownrc"), homeDir)
}

func loadConfigFrom(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "targetyear", "target_year", "year":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.TargetYear = n
			}
		case "timezone", "tz":
			config.Timezone = value
		case "theme":
			config.Theme = value
		case "fps":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.FPS = n
			}
		case "prefsfile", "prefs_file":
			config.PrefsFile = expandPath(value, homeDir)
		case "exportdirectory", "export_directory", "exportdir":
			config.ExportDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetExportPath places filename in the export directory, creating it first.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
