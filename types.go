package main

import "time"

// TimeRemaining is the countdown value recomputed on every tick.
// When IsComplete is set every numeric field is zero.
type TimeRemaining struct {
	Days       int
	Hours      int
	Minutes    int
	Seconds    int
	IsComplete bool
}

// CountdownListener receives the two countdown events.
type CountdownListener interface {
	Tick(remaining TimeRemaining)
	Completed()
}

// ListenerFuncs adapts a pair of functions to CountdownListener. Nil fields
// are skipped.
type ListenerFuncs struct {
	OnTick      func(TimeRemaining)
	OnCompleted func()
}

func (l ListenerFuncs) Tick(remaining TimeRemaining) {
	if l.OnTick != nil {
		l.OnTick(remaining)
	}
}

func (l ListenerFuncs) Completed() {
	if l.OnCompleted != nil {
		l.OnCompleted()
	}
}

type point struct {
	X, Y float64
}

// frameMsg drives one frame of both engines.
type frameMsg time.Time
