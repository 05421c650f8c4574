package cursor

// PositionStore is the host's world-position storage, keyed by entity.
// Both methods report false when the entity is unknown.
type PositionStore interface {
	Position(id EntityID) (Vec2, bool)
	SetPosition(id EntityID, p Vec2) bool
}

// PositionMap is an in-memory PositionStore.
type PositionMap map[EntityID]Vec2

// Position implements PositionStore.
func (m PositionMap) Position(id EntityID) (Vec2, bool) {
	p, ok := m[id]
	return p, ok
}

// SetPosition implements PositionStore. Unknown entities are not created.
func (m PositionMap) SetPosition(id EntityID, p Vec2) bool {
	if _, ok := m[id]; !ok {
		return false
	}
	m[id] = p
	return true
}
