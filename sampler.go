package cursor

// Actions produced by direct Ebitengine acquisition.
const (
	ActionMouseLeft   ActionID = "mouse_left"
	ActionMouseRight  ActionID = "mouse_right"
	ActionMouseMiddle ActionID = "mouse_middle"
	ActionTouch       ActionID = "touch"
)

// RawEvent is a platform pointer or touch event before normalization. It
// arrives either from direct acquisition or forwarded by the host.
type RawEvent struct {
	// Action is the input action that produced the event. Empty for plain
	// pointer movement.
	Action ActionID
	// X and Y are world coordinates. They are only meaningful when
	// HasPosition is set; accelerometer-only events carry none.
	X, Y        float64
	HasPosition bool
	Pressed     bool
	Released    bool
}

// Signal is the normalized pointer state for one frame. Pressed and
// Released are sticky within a frame; Position is last write wins and
// carries over between frames.
type Signal struct {
	Pressed  bool
	Released bool
	Position Vec2
	// Skip is raised by a press or release and asks the state machine to
	// disregard overlap data on the following frame(s).
	Skip bool
}

// Sampler folds raw events into the current frame's Signal.
type Sampler struct {
	bound  ActionID
	signal Signal
}

// NewSampler returns a sampler that responds to the given action, or to any
// action when bound is empty.
func NewSampler(bound ActionID) *Sampler {
	return &Sampler{bound: bound}
}

// Sample applies ev to the frame's signal and reports whether it was used.
// Events without coordinates and events for another action are dropped.
func (s *Sampler) Sample(ev RawEvent) bool {
	if !ev.HasPosition {
		return false
	}
	pos := Vec2{ev.X, ev.Y}

	if ev.Action == "" {
		// Free movement.
		s.signal.Position = pos
		return true
	}
	if s.bound != "" && ev.Action != s.bound {
		return false
	}

	s.signal.Position = pos
	if ev.Pressed {
		s.signal.Pressed = true
		s.signal.Skip = true
	}
	if ev.Released {
		s.signal.Released = true
		s.signal.Skip = true
	}
	return true
}

// Signal returns the signal accumulated so far this frame.
func (s *Sampler) Signal() Signal {
	return s.signal
}

// Reset ends the frame: transient flags are cleared, the position is kept.
func (s *Sampler) Reset() {
	s.signal = Signal{Position: s.signal.Position}
}
