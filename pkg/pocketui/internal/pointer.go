package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// PointerPhase describes where a pointer event sits in the down/move/up cycle.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a normalized touch or mouse event in window coordinates.
type PointerEvent struct {
	Phase       PointerPhase
	X           float32
	Y           float32
	TimestampMS uint32
}

// TranslatePointerEvent converts SDL mouse and touch events into pointer events.
// Touch coordinates arrive normalized to [0,1] and are mapped to window pixels.
// Returns nil for events that are not pointer input, and for mouse motion with
// no button held (hover is meaningless on a touch screen).
func TranslatePointerEvent(event sdl.Event, windowW, windowH int32) *PointerEvent {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return nil
		}
		phase := PointerDown
		if e.State == sdl.RELEASED {
			phase = PointerUp
		}
		return &PointerEvent{Phase: phase, X: float32(e.X), Y: float32(e.Y), TimestampMS: e.Timestamp}

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() == 0 {
			return nil
		}
		return &PointerEvent{Phase: PointerMove, X: float32(e.X), Y: float32(e.Y), TimestampMS: e.Timestamp}

	case *sdl.TouchFingerEvent:
		var phase PointerPhase
		switch e.Type {
		case sdl.FINGERDOWN:
			phase = PointerDown
		case sdl.FINGERMOTION:
			phase = PointerMove
		case sdl.FINGERUP:
			phase = PointerUp
		default:
			return nil
		}
		return &PointerEvent{
			Phase:       phase,
			X:           e.X * float32(windowW),
			Y:           e.Y * float32(windowH),
			TimestampMS: e.Timestamp,
		}
	}
	return nil
}

// velocitySamples is the ring capacity of the tracker. At ~60 events per
// second eight samples cover well past the estimation horizon.
const velocitySamples = 8

// velocityHorizonMS is how far back the tracker looks when estimating
// release velocity. Samples older than this are ignored so a long slow
// drag does not dilute a final flick.
const velocityHorizonMS = 100

// VelocityTracker estimates vertical pointer velocity from recent samples.
// SDL reports no velocity on release, so the drag path records positions
// here and asks for the estimate when the finger lifts.
type VelocityTracker struct {
	samples [velocitySamples]struct {
		y float32
		t uint32
	}
	count int
	next  int
}

// Reset discards all recorded samples. Call on pointer down.
func (vt *VelocityTracker) Reset() {
	vt.count = 0
	vt.next = 0
}

// Add records a vertical position sample at the given timestamp.
func (vt *VelocityTracker) Add(y float32, timestampMS uint32) {
	vt.samples[vt.next].y = y
	vt.samples[vt.next].t = timestampMS
	vt.next = (vt.next + 1) % velocitySamples
	if vt.count < velocitySamples {
		vt.count++
	}
}

// VelocityY returns the estimated vertical velocity in pixels per millisecond.
// Positive is downward (SDL's y axis grows downward). Returns 0 when fewer
// than two usable samples exist.
func (vt *VelocityTracker) VelocityY() float32 {
	if vt.count < 2 {
		return 0
	}

	newestIdx := (vt.next - 1 + velocitySamples) % velocitySamples
	newest := vt.samples[newestIdx]

	// Walk back to the oldest sample still inside the horizon.
	oldest := newest
	for i := 1; i < vt.count; i++ {
		idx := (newestIdx - i + velocitySamples) % velocitySamples
		s := vt.samples[idx]
		if newest.t-s.t > velocityHorizonMS {
			break
		}
		oldest = s
	}

	dt := newest.t - oldest.t
	if dt == 0 {
		return 0
	}
	return (newest.y - oldest.y) / float32(dt)
}
