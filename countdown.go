package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Countdown tracks the time left until midnight January 1 of a target year
// in a configurable timezone, ticking once per scheduled frame.
type Countdown struct {
	targetYear int
	timezone   string

	clock    Clock
	sched    Scheduler
	listener CountdownListener
	logger   *slog.Logger

	frame     CallbackID
	locations map[string]*time.Location
	warned    map[string]bool
}

func NewCountdown(targetYear int, clock Clock, sched Scheduler, logger *slog.Logger) *Countdown {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Countdown{
		targetYear: targetYear,
		timezone:   TimezoneLocal,
		clock:      clock,
		sched:      sched,
		logger:     logger,
		locations:  make(map[string]*time.Location),
		warned:     make(map[string]bool),
	}
}

func (c *Countdown) SetListener(l CountdownListener) {
	c.listener = l
}

// SetTimezone takes effect on the next computation. The identifier is not
// validated here.
func (c *Countdown) SetTimezone(tz string) {
	c.timezone = tz
}

func (c *Countdown) Timezone() string {
	return c.timezone
}

func (c *Countdown) TargetYear() int {
	return c.targetYear
}

// Running reports whether a frame is pending.
func (c *Countdown) Running() bool {
	return c.frame != 0
}

// Target returns the New Year instant for the configured year and timezone.
func (c *Countdown) Target() time.Time {
	switch c.timezone {
	case TimezoneLocal:
		return time.Date(c.targetYear, time.January, 1, 0, 0, 0, 0, time.Local)
	case TimezoneUTC:
		return time.Date(c.targetYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	midnightUTC := time.Date(c.targetYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	loc, ok := c.location(c.timezone)
	if !ok {
		return midnightUTC
	}
	offset := wallClockOffset(loc, midnightUTC)
	return midnightUTC.Add(-time.Duration(offset) * time.Minute)
}

func (c *Countdown) location(tz string) (*time.Location, bool) {
	if loc, ok := c.locations[tz]; ok {
		return loc, loc != nil
	}
	loc, err := resolveLocation(tz)
	if err != nil {
		if !c.warned[tz] {
			c.logger.Warn("timezone not recognized, counting down to UTC midnight", "timezone", tz, "error", err)
			c.warned[tz] = true
		}
		c.locations[tz] = nil
		return nil, false
	}
	c.locations[tz] = loc
	return loc, true
}

func (c *Countdown) CalculateTimeRemaining() TimeRemaining {
	// time.Duration saturates near 292 years, so subtract epoch milliseconds.
	ms := c.Target().UnixMilli() - c.clock.Now().UnixMilli()
	if ms <= 0 {
		return TimeRemaining{IsComplete: true}
	}
	return decompose(ms)
}

// decompose splits a positive millisecond delta into whole units, each taken
// from the remainder of the larger one.
func decompose(ms int64) TimeRemaining {
	days := ms / msPerDay
	ms %= msPerDay
	hours := ms / msPerHour
	ms %= msPerHour
	minutes := ms / msPerMinute
	ms %= msPerMinute
	seconds := ms / msPerSecond
	return TimeRemaining{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

func (c *Countdown) tick() {
	c.frame = 0
	remaining := c.CalculateTimeRemaining()
	if remaining.IsComplete {
		c.Stop()
		if c.listener != nil {
			c.listener.Completed()
		}
		return
	}
	if c.listener != nil {
		c.listener.Tick(remaining)
	}
	c.frame = c.sched.RequestFrame(c.tick)
}

// Start begins the tick loop, replacing any loop already running.
func (c *Countdown) Start() {
	c.Stop()
	c.tick()
}

func (c *Countdown) Stop() {
	if c.frame != 0 {
		c.sched.CancelFrame(c.frame)
		c.frame = 0
	}
}

// Reset stops the loop and emits one fresh tick without restarting it.
func (c *Countdown) Reset() {
	c.Stop()
	if c.listener != nil {
		c.listener.Tick(c.CalculateTimeRemaining())
	}
}

// FormatTimeUnit left-pads a unit to two digits.
func FormatTimeUnit(n int) string {
	return fmt.Sprintf("%02d", n)
}

// String renders the remaining time as "Dd HH:MM:SS".
func (r TimeRemaining) String() string {
	return fmt.Sprintf("%sd %s:%s:%s", FormatTimeUnit(r.Days), FormatTimeUnit(r.Hours), FormatTimeUnit(r.Minutes), FormatTimeUnit(r.Seconds))
}
