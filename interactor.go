package cursor

import "github.com/hajimehoshi/ebiten/v2"

// Interactor drives the cursor once per frame. It owns the sampler, the
// overlap resolver, the state machine and the dispatcher, and runs them in
// order from Update.
//
// During a frame the host forwards input with HandleInput and reports
// overlaps with ReportOverlap (or installs an OverlapFeed); Update then
// advances the state machine and clears the frame's transient input.
type Interactor struct {
	cfg        Config
	sampler    *Sampler
	resolver   Resolver
	machine    *Machine
	dispatcher *Dispatcher
	positions  PositionStore
	feed       OverlapFeed
	camera     *Camera
	debug      bool
	frame      uint64

	// Direct acquisition (input.go)
	touchID     ebiten.TouchID
	touching    bool
	touchBuf    []ebiten.TouchID
	lastTouchAt Vec2

	// Synthetic input (inject.go)
	injectQueue []syntheticEvent
	testRunner  *TestRunner

	// Return-to-origin tweens (settle.go)
	settles []*settleTween
	home    Vec2
	hasHome bool
}

// New validates cfg and creates an Interactor delivering to receiver.
// receiver may be nil when only observers registered with On are used.
func New(cfg Config, receiver Receiver) (*Interactor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := NewDispatcher(receiver)
	d.SetMirror(cfg.MirrorEventsToOwner)
	return &Interactor{
		cfg:        cfg,
		sampler:    NewSampler(cfg.BoundAction),
		machine:    NewMachine(cfg, d, nil),
		dispatcher: d,
	}, nil
}

// Config returns the configuration the Interactor was built with.
func (it *Interactor) Config() Config {
	return it.cfg
}

// SetPositionStore sets the store used for grab offsets, drag following and
// the optional settle tween.
func (it *Interactor) SetPositionStore(ps PositionStore) {
	it.positions = ps
	it.machine.positions = ps
}

// SetOverlapFeed installs a feed queried every frame with the sampled
// pointer position. Reports made with ReportOverlap are kept as well.
func (it *Interactor) SetOverlapFeed(feed OverlapFeed) {
	it.feed = feed
}

// SetOwner sets the destination for mirrored events. Mirroring follows
// Config.MirrorEventsToOwner.
func (it *Interactor) SetOwner(owner Owner) {
	it.dispatcher.SetOwner(owner)
}

// SetCamera sets the camera used to convert Ebitengine screen coordinates
// and injected coordinates to world coordinates.
func (it *Interactor) SetCamera(cam *Camera) {
	it.camera = cam
}

// SetDebugMode enables or disables per-frame debug logging through Logger.
func (it *Interactor) SetDebugMode(enabled bool) {
	it.debug = enabled
}

// On registers an observer for one event type.
func (it *Interactor) On(t EventType, fn func(Event)) CallbackHandle {
	return it.dispatcher.On(t, fn)
}

// HandleInput forwards a raw pointer event from the host. It reports
// whether the event was accepted.
func (it *Interactor) HandleInput(ev RawEvent) bool {
	return it.sampler.Sample(ev)
}

// ReportOverlap records an overlap notification from the collision feed
// for the current frame.
func (it *Interactor) ReportOverlap(id EntityID, group string, depth float64) {
	it.resolver.Report(id, group, depth)
}

// State returns a copy of the persistent interaction state.
func (it *Interactor) State() State {
	return it.machine.State()
}

// Position returns the pointer position as of the last sampled event.
func (it *Interactor) Position() Vec2 {
	return it.sampler.Signal().Position
}

// Frame returns the number of completed frames.
func (it *Interactor) Frame() uint64 {
	return it.frame
}

// Update runs one frame using Ebitengine's tick rate for tween timing.
func (it *Interactor) Update() {
	it.tick(float32(1.0 / float64(ebiten.TPS())))
}

// tick runs one frame: input, overlaps, state machine, tweens, reset.
func (it *Interactor) tick(dt float32) {
	if it.testRunner != nil {
		it.testRunner.step(it)
	}

	// An injected event replaces real input for this frame.
	if !it.processInjectedInput() && it.cfg.AcquireInputDirectly {
		it.pollInput()
	}

	sig := it.sampler.Signal()
	if it.feed != nil {
		it.feed.ReportOverlaps(&it.resolver, sig.Position)
	}

	var stats frameStats
	if it.debug {
		stats.candidates = it.resolver.Count()
		stats.failures = it.dispatcher.Failures()
		stats.skipped = it.machine.state.skip > 0
	}

	cand, ok := it.resolver.Resolve()
	events := it.machine.Advance(sig, cand, ok)
	it.trackSettle(events)
	it.updateSettles(dt)

	if it.debug {
		stats.signal = sig
		stats.events = events
		stats.failures = it.dispatcher.Failures() - stats.failures
		it.debugLog(stats)
	}

	it.sampler.Reset()
	it.frame++
}
