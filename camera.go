package cursor

import "math"

// Camera maps screen coordinates from Ebitengine to the world coordinates
// the cursor works in. Only the view transform is modeled: position, zoom,
// rotation and viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera centered on the middle of viewport with no
// zoom or rotation, so screen and world coordinates coincide.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Y, Zoom, Rotation or Viewport.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// screenToWorld converts through cam, or passes through when cam is nil.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}
