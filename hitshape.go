package cursor

// HitShape is an overlap region in an entity's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]

		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Shape feed ---

// OverlapFeed reports the entities overlapping point p to r. The
// Interactor calls it once per frame after sampling input.
type OverlapFeed interface {
	ReportOverlaps(r *Resolver, p Vec2)
}

type shapeEntry struct {
	target Target
	shape  HitShape
	depth  float64
}

// ShapeFeed is an OverlapFeed that tests the pointer against hit shapes
// placed at each entity's stored position. It stands in for a physics
// engine's trigger notifications and reports in registration order.
type ShapeFeed struct {
	entries   []shapeEntry
	positions PositionStore
}

// NewShapeFeed creates a feed whose shapes are offset by positions. With a
// nil store shapes are in world coordinates.
func NewShapeFeed(positions PositionStore) *ShapeFeed {
	return &ShapeFeed{positions: positions}
}

// Add registers a shape for t at the given depth. Adding an entity again
// replaces its entry.
func (f *ShapeFeed) Add(t Target, shape HitShape, depth float64) {
	for i := range f.entries {
		if f.entries[i].target.ID == t.ID {
			f.entries[i] = shapeEntry{target: t, shape: shape, depth: depth}
			return
		}
	}
	f.entries = append(f.entries, shapeEntry{target: t, shape: shape, depth: depth})
}

// Remove unregisters an entity's shape.
func (f *ShapeFeed) Remove(id EntityID) {
	for i := range f.entries {
		if f.entries[i].target.ID == id {
			copy(f.entries[i:], f.entries[i+1:])
			f.entries[len(f.entries)-1] = shapeEntry{}
			f.entries = f.entries[:len(f.entries)-1]
			return
		}
	}
}

// SetDepth changes an entity's depth, e.g. to raise a dragged entity.
func (f *ShapeFeed) SetDepth(id EntityID, depth float64) {
	for i := range f.entries {
		if f.entries[i].target.ID == id {
			f.entries[i].depth = depth
			return
		}
	}
}

// Len returns the number of registered shapes.
func (f *ShapeFeed) Len() int {
	return len(f.entries)
}

// ReportOverlaps implements OverlapFeed. Entities missing from the
// position store are skipped.
func (f *ShapeFeed) ReportOverlaps(r *Resolver, p Vec2) {
	for _, e := range f.entries {
		local := p
		if f.positions != nil {
			origin, ok := f.positions.Position(e.target.ID)
			if !ok {
				continue
			}
			local = p.Sub(origin)
		}
		if e.shape.Contains(local.X, local.Y) {
			r.Report(e.target.ID, e.target.Group, e.depth)
		}
	}
}
