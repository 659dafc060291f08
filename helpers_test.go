package main

import (
	"image/color"
	"io"
	"log/slog"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock is a settable clock.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fixedRandom returns the same draws every time.
type fixedRandom struct {
	f float64
	i int
}

func (r fixedRandom) Float64() float64 { return r.f }

func (r fixedRandom) Intn(n int) int { return r.i % n }

type memoryStore struct {
	timezone string
	theme    string
	saves    int
}

func (s *memoryStore) LoadTimezone() string {
	if s.timezone == "" {
		return defaultTimezone
	}
	return s.timezone
}

func (s *memoryStore) SaveTimezone(tz string) {
	s.timezone = tz
	s.saves++
}

func (s *memoryStore) LoadTheme() string {
	if s.theme == "" {
		return defaultTheme
	}
	return s.theme
}

func (s *memoryStore) SaveTheme(theme string) {
	s.theme = theme
	s.saves++
}

// recordingSurface counts drawing calls without rasterizing anything.
type recordingSurface struct {
	width, height int
	clears        int
	rects         int
	radials       int
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Clear() { s.clears++ }

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) { s.rects++ }

func (s *recordingSurface) FillRadial(x, y, r float64, stops []GradientStop, alpha float64) {
	s.radials++
}

type listenerRecorder struct {
	ticks     []TimeRemaining
	completed int
}

func (l *listenerRecorder) Tick(r TimeRemaining) { l.ticks = append(l.ticks, r) }

func (l *listenerRecorder) Completed() { l.completed++ }
