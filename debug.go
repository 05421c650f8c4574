package cursor

import "log/slog"

// frameStats holds what one frame did. Only populated in debug mode.
type frameStats struct {
	signal     Signal
	candidates int
	skipped    bool
	events     []Event
	failures   int
}

// debugLog writes the frame summary and each emitted event at debug level.
func (it *Interactor) debugLog(stats frameStats) {
	if !it.debug {
		return
	}
	log := Logger()
	log.Debug("cursor: frame",
		slog.Uint64("frame", it.frame),
		slog.Float64("x", stats.signal.Position.X),
		slog.Float64("y", stats.signal.Position.Y),
		slog.Bool("pressed", stats.signal.Pressed),
		slog.Bool("released", stats.signal.Released),
		slog.Int("candidates", stats.candidates),
		slog.Bool("skipped", stats.skipped),
		slog.Int("events", len(stats.events)),
		slog.Int("failures", stats.failures),
	)
	for _, ev := range stats.events {
		log.Debug("cursor: event",
			slog.Uint64("frame", it.frame),
			slog.String("type", ev.Type.String()),
			slog.Uint64("entity", uint64(ev.Target.ID)),
			slog.String("group", ev.Target.Group),
		)
	}
}
