package tween_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/matt-g-everett/styletx/tween"
)

func TestFrameLoop_Interval(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, tween.NewFrameLoop(clockz.NewFakeClock(), 10).Interval())
	assert.Equal(t, tween.NewFrameLoop(nil, tween.DefaultFrameRate).Interval(),
		tween.NewFrameLoop(clockz.NewFakeClock(), 0).Interval())
}

func TestFrameLoop_FrameTimestamps(t *testing.T) {
	clock := clockz.NewFakeClock()
	loop := tween.NewFrameLoop(clock, 10)

	var stamps []float64
	var record tween.FrameCallback
	record = func(ts float64) {
		stamps = append(stamps, ts)
		loop.Schedule(record)
	}
	loop.Schedule(record)

	for i := 0; i < 3; i++ {
		clock.Advance(100 * time.Millisecond)
		loop.Frame()
	}

	assert.Equal(t, []float64{100, 200, 300}, stamps)
	assert.Equal(t, 1, loop.Pending(), "callbacks scheduled during a frame wait for the next one")
}

func TestFrameLoop_Cancel(t *testing.T) {
	loop := tween.NewFrameLoop(clockz.NewFakeClock(), 10)

	ran := 0
	h := loop.Schedule(func(float64) { ran++ })
	loop.Schedule(func(float64) { ran += 10 })
	loop.Cancel(h)
	loop.Cancel(h)
	loop.Cancel(999)

	loop.Frame()
	assert.Equal(t, 10, ran)
	assert.Zero(t, loop.Pending())
}

func TestFrameLoop_HandlesAreUnique(t *testing.T) {
	loop := tween.NewFrameLoop(clockz.NewFakeClock(), 10)
	seen := map[tween.FrameHandle]bool{}
	for i := 0; i < 50; i++ {
		h := loop.Schedule(func(float64) {})
		assert.NotZero(t, h)
		assert.False(t, seen[h])
		seen[h] = true
	}
}

func TestFrameLoop_RunKeepsTicking(t *testing.T) {
	clock := clockz.NewFakeClock()
	loop := tween.NewFrameLoop(clock, 10)

	frames := make(chan float64, 64)
	var record tween.FrameCallback
	record = func(ts float64) {
		frames <- ts
		loop.Schedule(record)
	}
	loop.Schedule(record)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	var stamps []float64
	require.Eventually(t, func() bool {
		clock.Advance(loop.Interval())
		clock.BlockUntilReady()
		for {
			select {
			case ts := <-frames:
				stamps = append(stamps, ts)
			default:
				return len(stamps) >= 5
			}
		}
	}, 5*time.Second, 5*time.Millisecond)

	for i := 1; i < len(stamps); i++ {
		assert.Greater(t, stamps[i], stamps[i-1])
	}
}

func TestFrameLoop_RunDrivesEngine(t *testing.T) {
	clock := clockz.NewFakeClock()
	loop := tween.NewFrameLoop(clock, 10)
	el := newFakeElement(map[string]string{"width": "0px"})
	e := quietEngine(el, loop, nil).To(tween.StyleMap{"width": "50px"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errs := make(chan error, 1)
	go func() { errs <- loop.Run(ctx) }()

	res, err := e.Run(0.3)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		clock.Advance(loop.Interval())
		clock.BlockUntilReady()
		return res.Future.Resolved()
	}, 5*time.Second, 5*time.Millisecond)

	assert.Equal(t, tween.StateCompleted, e.State())

	cancel()
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("frame loop did not stop")
	}
}
