package cursor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleTween eases a released entity back to where it was picked up.
// It stops on its own when the entity leaves the position store.
type settleTween struct {
	id     EntityID
	tweenX *gween.Tween
	tweenY *gween.Tween
	done   bool
}

func newSettleTween(id EntityID, from, to Vec2, duration float32) *settleTween {
	return &settleTween{
		id:     id,
		tweenX: gween.New(float32(from.X), float32(to.X), duration, ease.OutQuad),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, ease.OutQuad),
	}
}

// update advances the tween by dt seconds and writes the position.
func (t *settleTween) update(dt float32, store PositionStore) {
	if t.done {
		return
	}
	x, doneX := t.tweenX.Update(dt)
	y, doneY := t.tweenY.Update(dt)
	if !store.SetPosition(t.id, Vec2{float64(x), float64(y)}) {
		t.done = true
		return
	}
	t.done = doneX && doneY
}

// trackSettle watches the frame's events: a press remembers where the
// entity started and cancels any tween still moving it, a drag end starts
// the return trip.
func (it *Interactor) trackSettle(events []Event) {
	if !it.cfg.ReturnOnRelease || it.positions == nil {
		return
	}
	for _, ev := range events {
		switch ev.Type {
		case EventPressed:
			it.cancelSettle(ev.Target.ID)
			it.home, it.hasHome = it.positions.Position(ev.Target.ID)
		case EventDragEnd:
			if !it.hasHome {
				continue
			}
			from, ok := it.positions.Position(ev.Target.ID)
			if !ok {
				continue
			}
			if it.cfg.ReturnDuration == 0 {
				it.positions.SetPosition(ev.Target.ID, it.home)
				continue
			}
			it.settles = append(it.settles, newSettleTween(ev.Target.ID, from, it.home, it.cfg.ReturnDuration))
		case EventReleased:
			it.hasHome = false
		}
	}
}

func (it *Interactor) cancelSettle(id EntityID) {
	for _, t := range it.settles {
		if t.id == id {
			t.done = true
		}
	}
}

// updateSettles advances running tweens and compacts finished ones.
func (it *Interactor) updateSettles(dt float32) {
	if len(it.settles) == 0 {
		return
	}
	n := 0
	for _, t := range it.settles {
		t.update(dt, it.positions)
		if !t.done {
			it.settles[n] = t
			n++
		}
	}
	for i := n; i < len(it.settles); i++ {
		it.settles[i] = nil
	}
	it.settles = it.settles[:n]
}

// Settling reports whether any entity is still easing back after a drag.
func (it *Interactor) Settling() bool {
	return len(it.settles) > 0
}
