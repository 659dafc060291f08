package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "?", "esc", "q":
			m.help = false
		case "ctrl+c":
			m.destroy()
			return m, tea.Quit
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "q", "ctrl+c", "esc":
		m.destroy()
		return m, tea.Quit
	case "?":
		m.help = true
	case "t", "right", "l", "tab":
		m.handleTimezoneChange(m.timezones.Next(m.countdown.Timezone(), m.getStep(key)))
	case "T", "left", "h", "shift+tab":
		m.handleTimezoneChange(m.timezones.Next(m.countdown.Timezone(), -m.getStep(key)))
	case "c":
		m.themes.Next()
		m.successMessage = "Theme: " + m.themes.Theme().Name
	case "f":
		m.toggleFireworks()
	case "y":
		if err := copyToClipboard(m.summary()); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Copied to clipboard"
		}
	case "s":
		m.exportPNG()
	case "e":
		m.exportTXT()
	}
	return m, nil
}

func (m *model) getStep(key string) int {
	switch key {
	case "tab", "shift+tab":
		return 2
	default:
		return 1
	}
}

func (m *model) handleTimezoneChange(tz string) {
	m.countdown.SetTimezone(tz)
	m.prefs.SaveTimezone(tz)
	m.countdown.Reset()
	m.countdown.Start()
	m.logger.Info("timezone changed", "timezone", tz)
}

func (m *model) toggleFireworks() {
	if m.fireworks == nil {
		m.errorMessage = "Fireworks unavailable: " + ErrNoSurface.Error()
		return
	}
	if m.fireworks.Active() {
		m.fireworks.Stop()
		m.successMessage = "Fireworks stopping"
		return
	}
	m.fireworks.Start()
}

func (m *model) exportPNG() {
	if m.surface == nil || m.fireworks == nil {
		m.errorMessage = "Nothing to export: " + ErrNoSurface.Error()
		return
	}
	filename, err := m.config.GetExportPath(fmt.Sprintf("countdown-%d.png", m.clock.Now().Unix()))
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Error("png export failed", "error", err)
		return
	}
	if err = exportSnapshotPNG(filename, m.surface, m.summary()); err != nil {
		m.errorMessage = err.Error()
		m.logger.Error("png export failed", "file", filename, "error", err)
		return
	}
	m.successMessage = "Saved " + filename
}

func (m *model) exportTXT() {
	filename, err := m.config.GetExportPath(fmt.Sprintf("countdown-%d.txt", m.clock.Now().Unix()))
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Error("text export failed", "error", err)
		return
	}
	if err = exportCountdownTXT(filename, m.summary()); err != nil {
		m.errorMessage = err.Error()
		m.logger.Error("text export failed", "file", filename, "error", err)
		return
	}
	m.successMessage = "Saved " + filename
}
