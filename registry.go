package cursor

// Handlers holds per-entity callbacks. Nil callbacks are skipped.
type Handlers struct {
	OnCursorOver func(Event)
	OnCursorOut  func(Event)
	OnPressed    func(Event)
	OnReleased   func(Event)
	OnDragStart  func(Event)
	OnDragEnd    func(Event)
}

func (h *Handlers) lookup(t EventType) func(Event) {
	switch t {
	case EventCursorOver:
		return h.OnCursorOver
	case EventCursorOut:
		return h.OnCursorOut
	case EventPressed:
		return h.OnPressed
	case EventReleased:
		return h.OnReleased
	case EventDragStart:
		return h.OnDragStart
	case EventDragEnd:
		return h.OnDragEnd
	}
	return nil
}

// Registry is a Receiver backed by a table of per-entity handlers. An entity
// that is not registered, or was unregistered, is a stale target.
// Handlers may unregister their own entity while running.
type Registry struct {
	entries map[EntityID]*Handlers
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[EntityID]*Handlers)}
}

// Register installs handlers for id, replacing any previous set.
func (r *Registry) Register(id EntityID, h Handlers) {
	r.entries[id] = &h
}

// Unregister removes id. Later events addressed to it are stale.
func (r *Registry) Unregister(id EntityID) {
	delete(r.entries, id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id EntityID) bool {
	_, ok := r.entries[id]
	return ok
}

// Deliver implements Receiver.
func (r *Registry) Deliver(ev Event) error {
	h, ok := r.entries[ev.Target.ID]
	if !ok {
		return ErrStaleTarget
	}
	if fn := h.lookup(ev.Type); fn != nil {
		fn(ev)
	}
	return nil
}
