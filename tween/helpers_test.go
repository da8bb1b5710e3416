package tween_test

import (
	"io"
	"log"

	"github.com/matt-g-everett/styletx/tween"
)

// manualScheduler queues callbacks until the test fires a frame.
type manualScheduler struct {
	next      tween.FrameHandle
	order     []tween.FrameHandle
	pending   map[tween.FrameHandle]tween.FrameCallback
	scheduled int
	cancelled int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[tween.FrameHandle]tween.FrameCallback)}
}

func (s *manualScheduler) Schedule(cb tween.FrameCallback) tween.FrameHandle {
	s.scheduled++
	s.next++
	s.pending[s.next] = cb
	s.order = append(s.order, s.next)
	return s.next
}

func (s *manualScheduler) Cancel(h tween.FrameHandle) {
	if _, ok := s.pending[h]; ok {
		s.cancelled++
	}
	delete(s.pending, h)
}

// fire runs the queued callbacks at timestamp and returns how many ran.
func (s *manualScheduler) fire(timestamp float64) int {
	order, pending := s.order, s.pending
	s.order = nil
	s.pending = make(map[tween.FrameHandle]tween.FrameCallback)

	n := 0
	for _, h := range order {
		if cb, ok := pending[h]; ok {
			cb(timestamp)
			n++
		}
	}
	return n
}

// fakeElement records every style batch written to it.
type fakeElement struct {
	computed map[string]string
	style    tween.StyleMap
	batches  []tween.StyleMap
}

func newFakeElement(computed map[string]string) *fakeElement {
	return &fakeElement{computed: computed, style: tween.StyleMap{}}
}

func (e *fakeElement) ComputedStyle(property string) string {
	if v, ok := e.computed[property]; ok {
		return v
	}
	return tween.FormatValue(e.style[property])
}

func (e *fakeElement) ApplyStyle(style tween.StyleMap) {
	e.batches = append(e.batches, style)
	for k, v := range style {
		e.style[k] = v
	}
}

func quietEngine(target tween.Element, scheduler tween.Scheduler, addons tween.Addons) *tween.Engine {
	return tween.NewEngine(target, scheduler, addons).SetLogger(log.New(io.Discard, "", 0))
}
