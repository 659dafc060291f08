package main

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles used by the countdown view.
type Theme struct {
	Name   string
	Digit  lipgloss.Style
	Unit   lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Banner lipgloss.Style
}

func newTheme(name string, accent, fg, muted, card, bg lipgloss.Color) Theme {
	return Theme{
		Name: name,
		Digit: lipgloss.NewStyle().
			Foreground(accent).
			Background(card).
			Bold(true).
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Unit:   lipgloss.NewStyle().Foreground(muted).Align(lipgloss.Center),
		Title:  lipgloss.NewStyle().Foreground(accent).Bold(true).MarginBottom(1),
		Label:  lipgloss.NewStyle().Foreground(fg),
		Status: lipgloss.NewStyle().Foreground(muted).Background(bg),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Banner: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 2),
	}
}

var themes = []Theme{
	newTheme("dark-gold", "#ffd700", "#f5f5f5", "#8a8a8a", "#1a1a1a", "#0d0d0d"),
	newTheme("midnight-blue", "#00e5ff", "#e0f7ff", "#5f87af", "#0a1628", "#050b14"),
	newTheme("aurora", "#00ff88", "#eafff4", "#a8e6cf", "#12203a", "#0b1424"),
	newTheme("light", "#c0392b", "#1a1a1a", "#6c6c6c", "#f2f2f2", "#ffffff"),
}

func lookupTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return themes[0], false
}

// ThemeManager holds the current theme and saves every change.
type ThemeManager struct {
	store   PreferencesStore
	current Theme
}

func NewThemeManager(store PreferencesStore) *ThemeManager {
	m := &ThemeManager{store: store}
	m.current, _ = lookupTheme(store.LoadTheme())
	return m
}

func (m *ThemeManager) Theme() Theme {
	return m.current
}

// Apply switches to name for this session only. Unknown names fall back to
// the default theme.
func (m *ThemeManager) Apply(name string) {
	m.current, _ = lookupTheme(name)
}

// SetTheme applies name and saves it.
func (m *ThemeManager) SetTheme(name string) {
	m.Apply(name)
	m.store.SaveTheme(m.current.Name)
}

func (m *ThemeManager) Next() {
	for i, t := range themes {
		if t.Name == m.current.Name {
			m.SetTheme(themes[(i+1)%len(themes)].Name)
			return
		}
	}
	m.SetTheme(themes[0].Name)
}
