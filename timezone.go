package main

import (
	"fmt"
	"strings"
	"time"
)

// Display names for the zones offered in the selector.
var timezoneNames = map[string]string{
	"America/New_York":    "New York",
	"America/Los_Angeles": "Los Angeles",
	"Europe/London":       "London",
	"Europe/Paris":        "Paris",
	"Asia/Kolkata":        "India",
	"Asia/Tokyo":          "Tokyo",
	"Asia/Dubai":          "Dubai",
	"Australia/Sydney":    "Sydney",
}

// Selector order, mirrored by the t/T keys.
var timezoneChoices = []string{
	TimezoneLocal,
	TimezoneUTC,
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Asia/Dubai",
	"Australia/Sydney",
}

// resolveLocation maps a timezone identifier onto a *time.Location.
func resolveLocation(tz string) (*time.Location, error) {
	switch tz {
	case TimezoneLocal:
		return time.Local, nil
	case TimezoneUTC:
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}

// wallClockOffset returns the zone's offset from UTC at instant, in minutes.
// Both renderings of the instant are read back as UTC wall clocks and
// differenced, so seconds are dropped just like a formatted timestamp.
func wallClockOffset(loc *time.Location, instant time.Time) int {
	u := instant.UTC()
	z := instant.In(loc)
	utcWall := time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, time.UTC)
	zoneWall := time.Date(z.Year(), z.Month(), z.Day(), z.Hour(), z.Minute(), z.Second(), 0, time.UTC)
	return int(zoneWall.Sub(utcWall) / time.Minute)
}

// TimezoneService answers display and validation questions about timezone
// identifiers. The countdown computation does not depend on it.
type TimezoneService struct {
	clock Clock
}

func NewTimezoneService(clock Clock) *TimezoneService {
	if clock == nil {
		clock = SystemClock
	}
	return &TimezoneService{clock: clock}
}

func (s *TimezoneService) Label(tz string) string {
	switch tz {
	case TimezoneLocal:
		return "Your Local Time"
	case TimezoneUTC:
		return "UTC (Coordinated Universal Time)"
	}
	name, ok := timezoneNames[tz]
	if !ok {
		name = tz
	}
	return fmt.Sprintf("%s (%s)", name, s.OffsetString(tz))
}

// OffsetString returns the zone's short name at the current instant, or a
// UTC±hh:mm form when the zone has no alphabetic abbreviation.
func (s *TimezoneService) OffsetString(tz string) string {
	loc, err := resolveLocation(tz)
	if err != nil {
		return "UTC"
	}
	now := s.clock.Now()
	abbr, _ := now.In(loc).Zone()
	if abbr != "" && !strings.HasPrefix(abbr, "+") && !strings.HasPrefix(abbr, "-") {
		return abbr
	}
	return formatUTCOffset(wallClockOffset(loc, now))
}

func formatUTCOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

func (s *TimezoneService) IsValid(tz string) bool {
	_, err := resolveLocation(tz)
	return err == nil
}

func (s *TimezoneService) Choices() []string {
	out := make([]string, len(timezoneChoices))
	copy(out, timezoneChoices)
	return out
}

// Next steps through the selector list. Identifiers outside the list start
// from the first entry.
func (s *TimezoneService) Next(tz string, step int) string {
	idx := -1
	for i, c := range timezoneChoices {
		if c == tz {
			idx = i
			break
		}
	}
	if idx < 0 {
		return timezoneChoices[0]
	}
	n := len(timezoneChoices)
	return timezoneChoices[((idx+step)%n+n)%n]
}
