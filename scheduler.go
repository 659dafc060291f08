package main

import (
	"sort"
	"time"
)

// CallbackID identifies a scheduled callback. Zero means "nothing scheduled".
type CallbackID int

// Scheduler is the frame-callback capability the engines depend on.
// RequestFrame runs fn on the next frame, After runs fn once the delay has
// elapsed. Cancelling an unknown or already fired ID is a no-op.
type Scheduler interface {
	RequestFrame(fn func()) CallbackID
	CancelFrame(id CallbackID)
	After(d time.Duration, fn func()) CallbackID
	Cancel(id CallbackID)
}

type frameCallback struct {
	id CallbackID
	fn func()
}

type delayedCallback struct {
	id  CallbackID
	due time.Time
	seq int
	fn  func()
}

// FrameLoop is a single-threaded Scheduler pumped by RunFrame. The program
// calls RunFrame once per frame message; tests call it directly.
type FrameLoop struct {
	clock   Clock
	nextID  CallbackID
	seq     int
	frames  []frameCallback
	delayed []delayedCallback

	// ids taken off the queues for the batch currently running
	inFlight map[CallbackID]struct{}
}

func NewFrameLoop(clock Clock) *FrameLoop {
	if clock == nil {
		clock = SystemClock
	}
	return &FrameLoop{
		clock:    clock,
		inFlight: make(map[CallbackID]struct{}),
	}
}

func (l *FrameLoop) allocID() CallbackID {
	l.nextID++
	return l.nextID
}

func (l *FrameLoop) RequestFrame(fn func()) CallbackID {
	id := l.allocID()
	l.frames = append(l.frames, frameCallback{id: id, fn: fn})
	return id
}

func (l *FrameLoop) CancelFrame(id CallbackID) {
	if id == 0 {
		return
	}
	delete(l.inFlight, id)
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

func (l *FrameLoop) After(d time.Duration, fn func()) CallbackID {
	id := l.allocID()
	l.seq++
	l.delayed = append(l.delayed, delayedCallback{
		id:  id,
		due: l.clock.Now().Add(d),
		seq: l.seq,
		fn:  fn,
	})
	return id
}

func (l *FrameLoop) Cancel(id CallbackID) {
	if id == 0 {
		return
	}
	delete(l.inFlight, id)
	for i, d := range l.delayed {
		if d.id == id {
			l.delayed = append(l.delayed[:i], l.delayed[i+1:]...)
			return
		}
	}
	l.CancelFrame(id)
}

// Pending reports how many frame callbacks are queued for the next frame.
func (l *FrameLoop) Pending() int {
	return len(l.frames)
}

// PendingDelayed reports how many delayed callbacks have not fired yet.
func (l *FrameLoop) PendingDelayed() int {
	return len(l.delayed)
}

// RunFrame fires every delayed callback due at now (earliest first), then the
// frame callbacks queued before this call. Callbacks requested while the frame
// runs are deferred to the next RunFrame.
func (l *FrameLoop) RunFrame(now time.Time) {
	l.runDue(now)

	queued := l.frames
	l.frames = nil
	for _, f := range queued {
		l.inFlight[f.id] = struct{}{}
	}
	for _, f := range queued {
		if !l.take(f.id) {
			continue
		}
		f.fn()
	}
}

func (l *FrameLoop) runDue(now time.Time) {
	for {
		var due, rest []delayedCallback
		for _, d := range l.delayed {
			if d.due.After(now) {
				rest = append(rest, d)
			} else {
				due = append(due, d)
			}
		}
		if len(due) == 0 {
			return
		}
		l.delayed = rest
		sort.Slice(due, func(i, j int) bool {
			if due[i].due.Equal(due[j].due) {
				return due[i].seq < due[j].seq
			}
			return due[i].due.Before(due[j].due)
		})
		for _, d := range due {
			l.inFlight[d.id] = struct{}{}
		}
		for _, d := range due {
			if !l.take(d.id) {
				continue
			}
			d.fn()
		}
	}
}

// take removes id from the in-flight set, reporting whether it was still there.
func (l *FrameLoop) take(id CallbackID) bool {
	if _, ok := l.inFlight[id]; !ok {
		return false
	}
	delete(l.inFlight, id)
	return true
}
