package cursor

// Receiver delivers an event to its target entity. It returns
// ErrStaleTarget (possibly wrapped) when the entity no longer exists.
type Receiver interface {
	Deliver(ev Event) error
}

// ReceiverFunc adapts a function to Receiver.
type ReceiverFunc func(ev Event) error

// Deliver calls f(ev).
func (f ReceiverFunc) Deliver(ev Event) error { return f(ev) }

// Owner observes a mirrored copy of every event together with the target
// identity, whether or not the target still exists.
type Owner interface {
	Observe(ev Event)
}

// OwnerFunc adapts a function to Owner.
type OwnerFunc func(ev Event)

// Observe calls f(ev).
func (f OwnerFunc) Observe(ev Event) { f(ev) }

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	byType [numEventTypes][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a running observer; observers already queued for the current
// event still run.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= numEventTypes {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Build a new slice: an emit in progress keeps ranging over the old one.
			out := make([]eventHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			h.reg.byType[h.event] = append(out, s[i+1:]...)
			return
		}
	}
}

// --- Dispatcher ---

// Dispatcher delivers state machine events. Per event it runs observers
// registered with On, then the Receiver, then the Owner mirror. A failure
// or panic in any of them is captured, logged and dropped; the remaining
// stages still run.
type Dispatcher struct {
	receiver Receiver
	owner    Owner
	mirror   bool
	handlers handlerRegistry
	failures int
}

// NewDispatcher returns a Dispatcher delivering to receiver, which may be nil
// when only observers are used.
func NewDispatcher(receiver Receiver) *Dispatcher {
	return &Dispatcher{receiver: receiver}
}

// SetOwner sets the mirror destination. Mirroring only happens while
// enabled with SetMirror.
func (d *Dispatcher) SetOwner(owner Owner) {
	d.owner = owner
}

// SetMirror enables or disables mirroring to the owner.
func (d *Dispatcher) SetMirror(enabled bool) {
	d.mirror = enabled
}

// On registers an observer for one event type. Observers run before the
// target receives the event.
func (d *Dispatcher) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= numEventTypes {
		return CallbackHandle{}
	}
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.byType[t] = append(d.handlers.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: t}
}

// Failures returns the number of deliveries dropped so far.
func (d *Dispatcher) Failures() int {
	return d.failures
}

// Emit implements Emitter. Failures are logged at warn level and counted.
func (d *Dispatcher) Emit(ev Event) {
	_ = d.TryEmit(ev)
}

// TryEmit delivers ev and returns the first failure as a *DispatchError,
// after all stages have run.
func (d *Dispatcher) TryEmit(ev Event) error {
	var first error
	record := func(err error) {
		if err == nil {
			return
		}
		d.failures++
		Logger().Warn("cursor: dropped event", "event", ev.Type.String(),
			"entity", uint64(ev.Target.ID), "group", ev.Target.Group, "err", err)
		if first == nil {
			first = err
		}
	}

	if ev.Type < numEventTypes {
		for _, h := range d.handlers.byType[ev.Type] {
			record(guard(ev, func() error { h.fn(ev); return nil }))
		}
	}
	if d.receiver != nil {
		record(guard(ev, func() error { return d.receiver.Deliver(ev) }))
	}
	if d.mirror && d.owner != nil {
		record(guard(ev, func() error { d.owner.Observe(ev); return nil }))
	}
	return first
}

// guard runs fn and converts an error or panic into a *DispatchError.
func guard(ev Event, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DispatchError{Event: ev, Panic: r}
		}
	}()
	if e := fn(); e != nil {
		return &DispatchError{Event: ev, Err: e}
	}
	return nil
}
