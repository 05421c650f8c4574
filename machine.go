package cursor

// Emitter receives events as the state machine produces them. Delivery
// problems stay on the emitter's side; nothing is reported back.
type Emitter interface {
	Emit(ev Event)
}

// State is the interaction state carried between frames.
//
// Invariants: Dragging implies Pressing, and Pressing means a pressed event
// went out for Press with no released since.
type State struct {
	Hover    Target
	Hovering bool

	Press    Target
	Pressing bool
	// PressOrigin is the pointer position when Press was pressed.
	PressOrigin Vec2
	// PressOffset is pointer minus entity position at press. Only valid
	// with HasOffset.
	PressOffset Vec2
	HasOffset   bool

	Dragging bool
	// TouchActive is true between a press and its release.
	TouchActive bool

	skip int // frames of overlap data still to discard
}

// Machine is the per-frame interaction state machine. It owns State and is
// driven by one Advance call per frame.
type Machine struct {
	cfg       Config
	state     State
	emitter   Emitter
	positions PositionStore
	events    []Event
}

// NewMachine creates a Machine in the idle state. emitter and positions may
// be nil; events are then only returned from Advance, and offsets and drag
// following are disabled.
func NewMachine(cfg Config, emitter Emitter, positions PositionStore) *Machine {
	return &Machine{
		cfg:       cfg,
		emitter:   emitter,
		positions: positions,
		events:    make([]Event, 0, 8),
	}
}

// State returns a copy of the current interaction state.
func (m *Machine) State() State {
	return m.state
}

// Advance runs one frame. The transitions are evaluated in a fixed order
// and each one sees the state left by the previous: skip gate, release,
// hover out, hover in, press, drag start, drag follow. The returned slice
// lists the frame's events in emission order and is reused by the next call.
func (m *Machine) Advance(sig Signal, cand Candidate, hasCand bool) []Event {
	m.events = m.events[:0]
	st := &m.state

	// Overlap data lags a just-moved pointer by a physics step.
	if st.skip > 0 {
		st.skip--
		hasCand = false
	}

	if sig.Pressed {
		st.TouchActive = true
	}

	forceOut := false
	if sig.Released {
		if st.Pressing {
			target := st.Press
			if st.Dragging {
				m.follow(sig.Position)
				st.Dragging = false
				m.fire(EventDragEnd, target)
			}
			st.Pressing = false
			st.Press = Target{}
			st.PressOrigin = Vec2{}
			st.PressOffset = Vec2{}
			st.HasOffset = false
			m.fire(EventReleased, target)
		}
		st.TouchActive = false
		// Touch has no hover once the finger lifts.
		forceOut = m.cfg.Device == DeviceTouch
	}

	if st.Hovering && (forceOut || !hasCand || cand.Target.ID != st.Hover.ID) {
		target := st.Hover
		st.Hovering = false
		st.Hover = Target{}
		m.fire(EventCursorOut, target)
	}

	if hasCand && !st.Hovering && m.hoverAllowed() {
		st.Hover = cand.Target
		st.Hovering = true
		m.fire(EventCursorOver, cand.Target)
	}

	if sig.Pressed && !st.Pressing && st.Hovering {
		st.Press = st.Hover
		st.Pressing = true
		st.PressOrigin = sig.Position
		st.PressOffset, st.HasOffset = m.grabOffset(st.Press.ID, sig.Position)
		m.fire(EventPressed, st.Press)
	}

	if m.cfg.DragEnabled && st.Pressing && !st.Dragging &&
		sig.Position.Dist(st.PressOrigin) >= m.cfg.DragThreshold {
		st.Dragging = true
		m.fire(EventDragStart, st.Press)
	}

	if st.Dragging {
		m.follow(sig.Position)
	}

	if sig.Skip && m.cfg.SkipFrames > 0 {
		st.skip = m.cfg.SkipFrames
	}
	return m.events
}

// hoverAllowed applies device gating: touch only hovers while down.
func (m *Machine) hoverAllowed() bool {
	if m.cfg.Device == DeviceTouch {
		return m.state.TouchActive
	}
	return true
}

// grabOffset returns pointer minus entity position, if offsets are tracked
// and the entity has a position.
func (m *Machine) grabOffset(id EntityID, pointer Vec2) (Vec2, bool) {
	if !m.cfg.TrackOffset || m.positions == nil {
		return Vec2{}, false
	}
	p, ok := m.positions.Position(id)
	if !ok {
		return Vec2{}, false
	}
	return pointer.Sub(p), true
}

// follow moves the press target so it stays anchored under the pointer.
func (m *Machine) follow(pointer Vec2) {
	if m.positions == nil {
		return
	}
	p := pointer
	if m.state.HasOffset {
		p = pointer.Sub(m.state.PressOffset)
	}
	m.positions.SetPosition(m.state.Press.ID, p)
}

func (m *Machine) fire(t EventType, target Target) {
	ev := Event{Type: t, Target: target}
	m.events = append(m.events, ev)
	if m.emitter != nil {
		m.emitter.Emit(ev)
	}
}
