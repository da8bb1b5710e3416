package tween

// FrameCallback is invoked once per frame with a millisecond timestamp that
// increases monotonically across calls.
type FrameCallback func(timestamp float64)

// FrameHandle identifies a scheduled callback. The zero handle is never issued.
type FrameHandle uint64

// A Scheduler runs callbacks on the host's next redraw.
type Scheduler interface {
	Schedule(cb FrameCallback) FrameHandle
	Cancel(h FrameHandle)
}
