package cursor

import "math"

// Vec2 is a 2D vector used for pointer positions, entity positions, and
// pointer-to-entity offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EntityID identifies an interacting entity in the host's world. Zero is a
// valid identifier; absence is always expressed with a separate flag.
type EntityID uint64

// Target is the identity of an entity as it was recorded by the cursor: the
// entity and its group tag. It is captured once when a candidate is reported
// and never re-queried, so events still carry it after the entity is gone.
type Target struct {
	ID    EntityID
	Group string
}

// EventType identifies a kind of semantic interaction event.
type EventType uint8

const (
	EventCursorOver EventType = iota // fires when the cursor starts hovering an entity
	EventCursorOut                   // fires when the cursor stops hovering an entity
	EventPressed                     // fires when the pointer is pressed over the hovered entity
	EventReleased                    // fires when the pointer is released after a press
	EventDragStart                   // fires when movement since press reaches the drag threshold
	EventDragEnd                     // fires when the pointer is released while dragging

	numEventTypes
)

var eventNames = [numEventTypes]string{
	EventCursorOver: "cursor_over",
	EventCursorOut:  "cursor_out",
	EventPressed:    "pressed",
	EventReleased:   "released",
	EventDragStart:  "drag_start",
	EventDragEnd:    "drag_end",
}

// String returns the wire name of the event ("cursor_over", "pressed", ...).
func (t EventType) String() string {
	if t < numEventTypes {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a semantic interaction event addressed to a single target.
type Event struct {
	Type   EventType
	Target Target
}

// DeviceMode selects hover behavior. Pointer devices hover whenever something
// is under the cursor; touch devices only hover while a finger is down.
type DeviceMode uint8

const (
	DevicePointer DeviceMode = iota // mouse or pen with persistent hover
	DeviceTouch                     // touch screen, no hover without contact
)

// String returns "pointer" or "touch".
func (d DeviceMode) String() string {
	switch d {
	case DevicePointer:
		return "pointer"
	case DeviceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// ActionID names the input action a cursor responds to, such as "touch" or
// "mouse_left". The empty ActionID means no action is bound.
type ActionID string

// MarshalText implements encoding.TextMarshaler.
func (d DeviceMode) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files can say
// device = "touch".
func (d *DeviceMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pointer", "mouse", "":
		*d = DevicePointer
	case "touch", "mobile":
		*d = DeviceTouch
	default:
		return &ConfigError{Field: "device", Reason: "unknown device mode " + string(text)}
	}
	return nil
}
