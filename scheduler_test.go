package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameLoop_FramesRequestedDuringFrameRunNext(t *testing.T) {
	clock := &fixedClock{now: time.Unix(0, 0)}
	loop := NewFrameLoop(clock)

	var calls []string
	var again func()
	again = func() {
		calls = append(calls, "again")
		loop.RequestFrame(again)
	}
	loop.RequestFrame(func() { calls = append(calls, "first") })
	loop.RequestFrame(again)

	loop.RunFrame(clock.Now())
	require.Equal(t, []string{"first", "again"}, calls)
	require.Equal(t, 1, loop.Pending())

	loop.RunFrame(clock.Now())
	require.Equal(t, []string{"first", "again", "again"}, calls)
}

func TestFrameLoop_CancelFrame(t *testing.T) {
	clock := &fixedClock{now: time.Unix(0, 0)}
	loop := NewFrameLoop(clock)

	ran := 0
	id := loop.RequestFrame(func() { ran++ })
	loop.CancelFrame(id)
	loop.CancelFrame(id)
	loop.CancelFrame(0)

	loop.RunFrame(clock.Now())
	require.Zero(t, ran)
}

func TestFrameLoop_CancelLaterCallbackInSameFrame(t *testing.T) {
	clock := &fixedClock{now: time.Unix(0, 0)}
	loop := NewFrameLoop(clock)

	ran := 0
	var second CallbackID
	loop.RequestFrame(func() { loop.CancelFrame(second) })
	second = loop.RequestFrame(func() { ran++ })

	loop.RunFrame(clock.Now())
	require.Zero(t, ran)
}

func TestFrameLoop_DelayedCallbacksFireInDueOrder(t *testing.T) {
	clock := &fixedClock{now: time.Unix(0, 0)}
	loop := NewFrameLoop(clock)

	var order []int
	loop.After(300*time.Millisecond, func() { order = append(order, 300) })
	loop.After(0, func() { order = append(order, 0) })
	cancelled := loop.After(100*time.Millisecond, func() { order = append(order, 100) })
	loop.After(200*time.Millisecond, func() { order = append(order, 200) })
	loop.Cancel(cancelled)

	loop.RunFrame(clock.Now())
	require.Equal(t, []int{0}, order)

	clock.Advance(250 * time.Millisecond)
	loop.RunFrame(clock.Now())
	require.Equal(t, []int{0, 200}, order)

	clock.Advance(time.Second)
	loop.RunFrame(clock.Now())
	require.Equal(t, []int{0, 200, 300}, order)
	require.Zero(t, loop.PendingDelayed())
}

func TestFrameLoop_DelayedRunBeforeFrames(t *testing.T) {
	clock := &fixedClock{now: time.Unix(0, 0)}
	loop := NewFrameLoop(clock)

	var order []string
	loop.RequestFrame(func() { order = append(order, "frame") })
	loop.After(0, func() { order = append(order, "timer") })

	loop.RunFrame(clock.Now())
	require.Equal(t, []string{"timer", "frame"}, order)
}
