// Package cursor turns raw pointer input and per-frame overlap reports into
// hover, press and drag events for a 2D scene running on [Ebitengine] or any
// other frame loop.
//
// Each frame the cursor samples pointer input, picks the frontmost entity
// reported under the pointer, and advances a small state machine that emits
// at most one transition of each kind per target:
//
//	cursor_over  cursor_out  pressed  released  drag_start  drag_end
//
// # Quick start
//
//	reg := cursor.NewRegistry()
//	reg.Register(1, cursor.Handlers{
//		OnPressed: func(ev cursor.Event) { fmt.Println("pressed", ev.Target.ID) },
//	})
//
//	cfg := cursor.DefaultConfig()
//	cfg.AcquireInputDirectly = true
//	cur, err := cursor.New(cfg, reg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// In ebiten.Game.Update, after the physics step:
//	cur.ReportOverlap(1, "cards", 1)
//	cur.Update()
//
// # Input
//
// Input reaches the cursor either by polling Ebitengine directly
// ([Config.AcquireInputDirectly]) or by forwarding [RawEvent] values through
// [Interactor.HandleInput]. Both paths coalesce into the same per-frame
// [Signal]: the last position wins, presses and releases stick for the frame.
//
// # Overlaps
//
// The cursor does not do its own picking. A physics or collision system
// reports every entity overlapping the pointer with [Interactor.ReportOverlap],
// or an [OverlapFeed] such as [ShapeFeed] is installed. The greatest depth
// wins; ties go to the first report.
//
// Collision data usually trails the pointer by one step, so after a press or
// release the next [Config.SkipFrames] frames treat overlap data as empty.
// The press frame itself still uses its overlaps. A hovered entity therefore
// sees cursor_out on the skipped frame and cursor_over again on the frame
// after; hosts that highlight on hover and want no flicker can set SkipFrames
// to 0 when their collision feed is current with the pointer.
//
// A press and a release sampled in the same frame are applied release first,
// so the press stays held until the next release.
//
// # Delivery
//
// Events go to a [Receiver] (for example a [Registry], or the Donburi adapter
// in cursor/ecs). A target that disappeared before its event is delivered is
// not an error for the frame: the failure is logged through [Logger] and the
// frame continues. With [Config.MirrorEventsToOwner] every event is also
// copied to an [Owner].
//
// [Ebitengine]: https://ebitengine.org
package cursor
