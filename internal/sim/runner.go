package sim

import "sparselife/internal/life"

// StopFunc is an external halting predicate consulted after each advance.
// It receives the retained history (most recent first), the newest
// generation index, and a reserved counter that is always zero.
type StopFunc func(history []life.World, gen, aux int) bool

// Config holds the tunables for a simulation run.
type Config struct {
	Rule   life.Rule
	Window int

	// FlushEvery asks the cache to drop stale coordinates after that many
	// generations; zero disables flushing. FlushRetain is the retain
	// threshold handed to the cache and is clamped so it always covers
	// the retained history depth.
	FlushEvery  int
	FlushRetain int

	Stop StopFunc
}

// DefaultConfig returns the standard run configuration: Conway's rules and
// a ten-generation window.
func DefaultConfig() Config {
	return Config{
		Rule:        life.MustParseRule("B3/S23"),
		Window:      10,
		FlushEvery:  64,
		FlushRetain: 0,
	}
}

// Runner drives the engine generation by generation, keeping a bounded
// most-recent-first history and watching for termination: extinction, the
// pattern closing a positional cycle back to its starting silhouette, the
// external stop predicate, or a population-size plateau.
type Runner struct {
	cache *life.Cache
	cfg   Config
}

// NewRunner builds a runner over the given cache. A nil cache gets a fresh
// private one; sharing a cache across runners is allowed, but flushing is
// then the callers' business to coordinate.
func NewRunner(cache *life.Cache, cfg Config) *Runner {
	if cache == nil {
		cache = life.NewCache()
	}
	if cfg.Window < 1 {
		cfg.Window = 1
	}
	if cfg.FlushRetain < 2*cfg.Window {
		cfg.FlushRetain = 2 * cfg.Window
	}
	return &Runner{cache: cache, cfg: cfg}
}

// Cache exposes the runner's coordinate cache.
func (r *Runner) Cache() *life.Cache { return r.cache }

// Run advances from seed until a termination condition holds and returns
// the retained generations oldest first, at most Window of them.
func (r *Runner) Run(seed life.World) []life.World {
	reference := seed.Recenter(life.Coord{})
	window := r.cfg.Window
	bound := 2 * window

	history := []life.World{seed}
	for {
		next := Advance(r.cache, history[0], r.cfg.Rule)
		history = append([]life.World{next}, history...)
		if len(history) > bound {
			history = history[:bound]
		}

		if r.cfg.FlushEvery > 0 && (next.Gen-seed.Gen)%r.cfg.FlushEvery == 0 {
			r.cache.Flush(r.cfg.FlushRetain)
		}

		if next.Population() == 0 {
			break
		}
		if next.Recenter(life.Coord{}).Equal(reference) {
			break
		}
		if r.cfg.Stop != nil && r.cfg.Stop(history, next.Gen, 0) {
			break
		}
		if len(history) >= bound && stabilized(history, window) {
			// Only the final stable generation is worth keeping; the
			// transient window is discarded.
			history = history[:1]
			break
		}
	}
	return finalize(history, window)
}

// stabilized reports whether every entry in the trailing window matches the
// newest entry's population size.
func stabilized(history []life.World, window int) bool {
	target := history[0].Population()
	for _, w := range history[window : 2*window] {
		if w.Population() != target {
			return false
		}
	}
	return true
}

// finalize flips the most-recent-first history into oldest-first order and
// keeps at most the last window generations.
func finalize(history []life.World, window int) []life.World {
	if len(history) > window {
		history = history[:window]
	}
	out := make([]life.World, len(history))
	for i, w := range history {
		out[len(out)-1-i] = w
	}
	return out
}
