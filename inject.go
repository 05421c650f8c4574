package cursor

// syntheticEvent is a single injected pointer event in screen coordinates,
// converted to world coordinates via the camera exactly like real input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	released         bool
	hover            bool
}

// InjectPress queues a press at the given screen coordinates. Each queued
// event is consumed by one Update and replaces real input for that frame.
func (it *Interactor) InjectPress(x, y float64) {
	it.injectQueue = append(it.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a movement of the bound action, as while a button is
// held. Use it between InjectPress and InjectRelease to simulate a drag.
func (it *Interactor) InjectMove(x, y float64) {
	it.injectQueue = append(it.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectHover queues a plain pointer movement with no action, as from a
// mouse moving with no button held.
func (it *Interactor) InjectHover(x, y float64) {
	it.injectQueue = append(it.injectQueue, syntheticEvent{screenX: x, screenY: y, hover: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (it *Interactor) InjectRelease(x, y float64) {
	it.injectQueue = append(it.injectQueue, syntheticEvent{screenX: x, screenY: y, released: true})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (it *Interactor) InjectClick(x, y float64) {
	it.InjectPress(x, y)
	it.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (it *Interactor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	it.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		it.InjectMove(x, y)
	}
	it.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (it *Interactor) Pending() int {
	return len(it.injectQueue)
}

// injectAction is the action injected presses are attributed to.
func (it *Interactor) injectAction() ActionID {
	if it.cfg.BoundAction != "" {
		return it.cfg.BoundAction
	}
	return ActionMouseLeft
}

// processInjectedInput pops one event from the inject queue and samples
// it. Returns true if an event was consumed.
func (it *Interactor) processInjectedInput() bool {
	if len(it.injectQueue) == 0 {
		return false
	}
	evt := it.injectQueue[0]
	copy(it.injectQueue, it.injectQueue[1:])
	it.injectQueue = it.injectQueue[:len(it.injectQueue)-1]

	wx, wy := screenToWorld(it.camera, evt.screenX, evt.screenY)
	raw := RawEvent{
		Action: it.injectAction(), X: wx, Y: wy, HasPosition: true,
		Pressed: evt.pressed, Released: evt.released,
	}
	if evt.hover {
		raw.Action = ""
	}
	it.sampler.Sample(raw)
	return true
}
