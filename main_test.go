package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, now time.Time) (*model, *fixedClock, *memoryStore) {
	t.Helper()
	clock := &fixedClock{now: now}
	store := &memoryStore{}
	config := &Config{TargetYear: 2026, FPS: 60, ExportDirectory: t.TempDir()}
	m := newModel(config, newTestLogger(), clock, store, fixedRandom{f: 0.5, i: 3})
	m.countdown.SetTimezone(TimezoneUTC)
	return m, clock, store
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_MidnightStartsCelebration(t *testing.T) {
	m, clock, _ := newTestModel(t, time.Date(2025, 12, 31, 23, 59, 58, 500000000, time.UTC))

	require.NotNil(t, m.Init())
	require.Equal(t, TimeRemaining{Seconds: 1}, m.remaining)
	require.Equal(t, ModeCountdown, m.mode)
	require.True(t, m.countdown.Running())

	clock.Advance(2 * time.Second)
	_, cmd := m.Update(frameMsg(clock.Now()))
	require.NotNil(t, cmd)
	require.Equal(t, ModeTransition, m.mode)
	require.True(t, m.remaining.IsComplete)
	require.False(t, m.countdown.Running())
	require.False(t, m.fireworks.Active())

	clock.Advance(celebrationDelay)
	m.Update(frameMsg(clock.Now()))
	require.Equal(t, ModeCelebration, m.mode)
	require.True(t, m.fireworks.Active())
	require.Contains(t, m.View(), "Happy New Year 2026!")

	// A second completion must not restart the show.
	pending := m.loop.PendingDelayed()
	m.Completed()
	require.Equal(t, ModeCelebration, m.mode)
	require.Equal(t, pending, m.loop.PendingDelayed())
}

func TestModel_TimezoneKeySavesPreference(t *testing.T) {
	m, _, store := newTestModel(t, time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC))
	m.Init()

	m.Update(keyPress('t'))
	require.Equal(t, "America/New_York", m.countdown.Timezone())
	require.Equal(t, "America/New_York", store.timezone)
	require.Equal(t, TimeRemaining{Hours: 17}, m.remaining)
	require.True(t, m.countdown.Running())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, TimezoneLocal, m.countdown.Timezone())
	require.Equal(t, 2, store.saves)
}

func TestModel_ThemeAndHelpKeys(t *testing.T) {
	m, _, store := newTestModel(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	m.Init()

	m.Update(keyPress('c'))
	require.Equal(t, "midnight-blue", m.themes.Theme().Name)
	require.Equal(t, "midnight-blue", store.theme)
	require.Equal(t, "Theme: midnight-blue", m.successMessage)

	m.Update(keyPress('?'))
	require.True(t, m.help)
	require.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	m.Update(keyPress('t'))
	require.Equal(t, TimezoneUTC, m.countdown.Timezone())

	m.Update(keyPress('?'))
	require.False(t, m.help)
	require.Contains(t, m.View(), "Countdown to 2026")
}

func TestModel_FireworksToggle(t *testing.T) {
	m, _, _ := newTestModel(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	m.Init()

	m.Update(keyPress('f'))
	require.True(t, m.fireworks.Active())
	require.Contains(t, m.View(), "Fireworks preview")

	m.Update(keyPress('f'))
	require.False(t, m.fireworks.Active())
	require.Equal(t, "Fireworks stopping", m.successMessage)
}

func TestModel_WindowResize(t *testing.T) {
	m, _, _ := newTestModel(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	w, h := m.surface.Size()
	require.Equal(t, 40*cellWidth, w)
	require.Equal(t, 10*cellHeight, h)
}

func TestModel_Exports(t *testing.T) {
	m, _, _ := newTestModel(t, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	m.Init()

	m.Update(keyPress('e'))
	require.True(t, strings.HasPrefix(m.successMessage, "Saved "), m.errorMessage)
	data, err := os.ReadFile(strings.TrimPrefix(m.successMessage, "Saved "))
	require.NoError(t, err)
	require.Equal(t, "00d 01:00:00 until 2026 (UTC (Coordinated Universal Time))\n", string(data))

	m.Update(keyPress('s'))
	require.True(t, strings.HasPrefix(m.successMessage, "Saved "), m.errorMessage)
	require.Equal(t, ".png", filepath.Ext(m.successMessage))
}

func TestModel_QuitStopsEverything(t *testing.T) {
	m, _, _ := newTestModel(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	m.Init()
	m.Update(keyPress('f'))

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	require.False(t, m.countdown.Running())
	require.False(t, m.fireworks.Active())
}

func TestModel_ExportDirectoryError(t *testing.T) {
	m, _, _ := newTestModel(t, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	m.config.ExportDirectory = filepath.Join(blocker, "out")
	m.Init()

	m.Update(keyPress('e'))
	require.Empty(t, m.successMessage)
	require.Contains(t, m.errorMessage, "create export directory")

	m.Update(keyPress('s'))
	require.Contains(t, m.errorMessage, "create export directory")
}
