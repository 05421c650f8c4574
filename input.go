package cursor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseActions = [...]struct {
	button ebiten.MouseButton
	action ActionID
}{
	{ebiten.MouseButtonLeft, ActionMouseLeft},
	{ebiten.MouseButtonRight, ActionMouseRight},
	{ebiten.MouseButtonMiddle, ActionMouseMiddle},
}

// pollInput reads mouse and touch state from Ebitengine and feeds it to
// the sampler as raw events. Only one touch is followed: the first finger
// down owns the cursor until it lifts.
func (it *Interactor) pollInput() {
	it.pollMouse()
	it.pollTouch()
}

// pollMouse emits a movement event every frame plus press and release
// events for each button that changed this tick.
func (it *Interactor) pollMouse() {
	mx, my := ebiten.CursorPosition()
	wx, wy := screenToWorld(it.camera, float64(mx), float64(my))

	it.sampler.Sample(RawEvent{X: wx, Y: wy, HasPosition: true})

	for _, m := range mouseActions {
		pressed := inpututil.IsMouseButtonJustPressed(m.button)
		released := inpututil.IsMouseButtonJustReleased(m.button)
		if !pressed && !released {
			continue
		}
		it.sampler.Sample(RawEvent{
			Action: m.action, X: wx, Y: wy, HasPosition: true,
			Pressed: pressed, Released: released,
		})
	}
}

// pollTouch follows a single touch as ActionTouch.
func (it *Interactor) pollTouch() {
	if it.touching {
		if inpututil.IsTouchJustReleased(it.touchID) {
			it.touching = false
			it.sampler.Sample(RawEvent{
				Action: ActionTouch, X: it.lastTouchAt.X, Y: it.lastTouchAt.Y,
				HasPosition: true, Released: true,
			})
			return
		}
		tx, ty := ebiten.TouchPosition(it.touchID)
		wx, wy := screenToWorld(it.camera, float64(tx), float64(ty))
		it.lastTouchAt = Vec2{wx, wy}
		it.sampler.Sample(RawEvent{Action: ActionTouch, X: wx, Y: wy, HasPosition: true})
		return
	}

	it.touchBuf = inpututil.AppendJustPressedTouchIDs(it.touchBuf[:0])
	if len(it.touchBuf) == 0 {
		return
	}
	it.touchID = it.touchBuf[0]
	it.touching = true
	tx, ty := ebiten.TouchPosition(it.touchID)
	wx, wy := screenToWorld(it.camera, float64(tx), float64(ty))
	it.lastTouchAt = Vec2{wx, wy}
	it.sampler.Sample(RawEvent{
		Action: ActionTouch, X: wx, Y: wy, HasPosition: true, Pressed: true,
	})
}
