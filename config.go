package cursor

import (
	"math"
	"runtime"
)

const (
	defaultDragThreshold  = 4.0 // world units
	defaultSkipFrames     = 1
	defaultReturnDuration = 0.25 // seconds
)

// Config holds the options recognized by an Interactor. The zero value is
// usable but DefaultConfig is the intended starting point.
type Config struct {
	// BoundAction is the action the cursor responds to. Empty means any
	// pointer event is accepted, which gives free hover without a button.
	BoundAction ActionID `toml:"bound_action" json:"bound_action" yaml:"bound_action"`

	// DragEnabled turns on drag_start/drag_end and position following.
	DragEnabled bool `toml:"drag_enabled" json:"drag_enabled" yaml:"drag_enabled"`
	// DragThreshold is the distance from the press position at which a
	// drag starts. Reaching it exactly counts.
	DragThreshold float64 `toml:"drag_threshold" json:"drag_threshold" yaml:"drag_threshold"`

	// AcquireInputDirectly makes Update poll Ebitengine for mouse and touch
	// input. When false, input arrives through HandleInput.
	AcquireInputDirectly bool `toml:"acquire_input" json:"acquire_input" yaml:"acquire_input"`

	// MirrorEventsToOwner copies every event to the Owner set with SetOwner.
	MirrorEventsToOwner bool `toml:"mirror_events" json:"mirror_events" yaml:"mirror_events"`

	// Device selects pointer or touch hover gating.
	Device DeviceMode `toml:"device" json:"device" yaml:"device"`

	// TrackOffset records the pointer-to-entity offset at press so a drag
	// keeps the entity anchored where it was grabbed. Without it the entity
	// snaps to the pointer.
	TrackOffset bool `toml:"track_offset" json:"track_offset" yaml:"track_offset"`

	// SkipFrames is how many frames of overlap data are ignored after a
	// press or release, while the collision feed catches up with the new
	// pointer position.
	SkipFrames int `toml:"skip_frames" json:"skip_frames" yaml:"skip_frames"`

	// ReturnOnRelease tweens a dragged entity back to where it was when
	// pressed after drag_end, over ReturnDuration seconds.
	ReturnOnRelease bool    `toml:"return_on_release" json:"return_on_release" yaml:"return_on_release"`
	ReturnDuration  float32 `toml:"return_duration" json:"return_duration" yaml:"return_duration"`
}

// DefaultConfig returns a Config that follows any pointer, drags with a
// small dead zone, and tracks grab offsets.
func DefaultConfig() Config {
	return Config{
		DragEnabled:    true,
		DragThreshold:  defaultDragThreshold,
		Device:         DefaultDevice(),
		TrackOffset:    true,
		SkipFrames:     defaultSkipFrames,
		ReturnDuration: defaultReturnDuration,
	}
}

// DefaultDevice returns DeviceTouch on mobile platforms and DevicePointer
// everywhere else.
func DefaultDevice() DeviceMode {
	switch runtime.GOOS {
	case "android", "ios":
		return DeviceTouch
	}
	return DevicePointer
}

// Validate reports the first invalid field as a *ConfigError.
func (c *Config) Validate() error {
	if !finite(c.DragThreshold) {
		return &ConfigError{Field: "drag_threshold", Reason: "must be a finite number"}
	}
	if c.DragThreshold < 0 {
		return &ConfigError{Field: "drag_threshold", Reason: "must not be negative"}
	}
	if c.SkipFrames < 0 {
		return &ConfigError{Field: "skip_frames", Reason: "must not be negative"}
	}
	if c.Device != DevicePointer && c.Device != DeviceTouch {
		return &ConfigError{Field: "device", Reason: "unknown device mode"}
	}
	if !finite(float64(c.ReturnDuration)) {
		return &ConfigError{Field: "return_duration", Reason: "must be a finite number"}
	}
	if c.ReturnDuration < 0 {
		return &ConfigError{Field: "return_duration", Reason: "must not be negative"}
	}
	if c.ReturnOnRelease && !c.DragEnabled {
		return &ConfigError{Field: "return_on_release", Reason: "requires drag_enabled"}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
