package main

import "time"

// Clock reads the current time. Tests pass a settable one.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// offsetClock runs at wall-clock speed but shifted by a fixed amount. The
// --celebrate preview uses it to start a few seconds before midnight.
type offsetClock struct {
	base   Clock
	offset time.Duration
}

func (c offsetClock) Now() time.Time {
	return c.base.Now().Add(c.offset)
}
