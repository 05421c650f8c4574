package cursor

import (
	"errors"
	"fmt"
)

// ErrStaleTarget is reported by a Receiver when the addressed entity no
// longer exists. The dispatcher logs and drops it.
var ErrStaleTarget = errors.New("cursor: stale target")

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// ConfigError reports a configuration value rejected at setup time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cursor: invalid config %s: %s", e.Field, e.Reason)
}

// DispatchError records a failed delivery. Err is the receiver's error, or
// nil when the receiver panicked, in which case Panic holds the value.
type DispatchError struct {
	Event Event
	Err   error
	Panic any
}

func (e *DispatchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cursor: %s to entity %d (%s) panicked: %v",
			e.Event.Type, e.Event.Target.ID, e.Event.Target.Group, e.Panic)
	}
	return fmt.Sprintf("cursor: %s to entity %d (%s): %v",
		e.Event.Type, e.Event.Target.ID, e.Event.Target.Group, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
