package paths

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/history"
)

type entry struct {
	name  string
	path  FollowablePath
	track bool
}

// Simulation advances a set of paths in lockstep with a history keeper.
//
// Each step advances the keeper by one frame and then advances every started
// path. Positions of tracked paths are recorded into the keeper only after
// all paths have advanced, so all paths observe the same committed history
// during a step regardless of their order. Readers of tracked positions, such
// as a [TrackedVelocity], should therefore use a velocity calculator with an
// Offset of 1.
type Simulation struct {
	keeper  *history.Keeper
	logger  *slog.Logger
	entries []*entry
	byName  map[string]*entry
}

// SimulationOption configures a Simulation.
type SimulationOption func(*Simulation)

// WithSimulationLogger sets the logger used for path failures.
func WithSimulationLogger(logger *slog.Logger) SimulationOption {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulation returns an empty simulation driving k.
func NewSimulation(k *history.Keeper, opts ...SimulationOption) *Simulation {
	s := &Simulation{
		keeper: k,
		logger: slog.Default(),
		byName: map[string]*entry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Keeper returns the history keeper the simulation advances.
func (s *Simulation) Keeper() *history.Keeper { return s.keeper }

// Add adds a path under a unique name. If track is set, the path's position
// is recorded into history under that name every step, as a [calc.Point].
func (s *Simulation) Add(name string, p FollowablePath, track bool) error {
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("paths: duplicate path name %q", name)
	}
	e := &entry{name: name, path: p, track: track}
	s.entries = append(s.entries, e)
	s.byName[name] = e
	if track {
		s.keeper.Record(name, p.Position())
	}
	return nil
}

// Path returns the path added under name.
func (s *Simulation) Path(name string) (FollowablePath, bool) {
	e, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return e.path, true
}

// Names returns the names of all paths in the order they were added.
func (s *Simulation) Names() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.name
	}
	return out
}

// Start starts every path that has not been started yet.
func (s *Simulation) Start() {
	for _, e := range s.entries {
		if e.path.State() == NotStarted {
			e.path.Start()
		}
	}
}

// Step advances the simulation by one frame of dt seconds. Paths that have
// not been started are left alone. A path that fails to advance keeps its
// previous position; the other paths are not affected. All failures are
// returned together.
func (s *Simulation) Step(dt float64) error {
	s.keeper.AdvanceFrame()
	frame := s.keeper.Frame()

	type write struct {
		name string
		pos  calc.Point
	}
	var (
		staged []write
		errs   []error
	)
	for _, e := range s.entries {
		if e.path.State() != NotStarted {
			if _, err := e.path.Advance(dt); err != nil {
				stepErrors.Inc()
				s.logger.Warn("path failed to advance", "path", e.name, "frame", frame, "error", err)
				errs = append(errs, fmt.Errorf("path %q: %w", e.name, err))
			}
		}
		if e.track {
			staged = append(staged, write{e.name, e.path.Position()})
		}
	}
	for _, w := range staged {
		s.keeper.Record(w.name, w.pos)
	}
	return errors.Join(errs...)
}

// Positions returns the current position of every path by name.
func (s *Simulation) Positions() map[string]calc.Point {
	out := make(map[string]calc.Point, len(s.entries))
	for _, e := range s.entries {
		out[e.name] = e.path.Position()
	}
	return out
}

// Done reports whether every path has completed. Open-ended paths never
// complete on their own.
func (s *Simulation) Done() bool {
	for _, e := range s.entries {
		if e.path.State() != Completed {
			return false
		}
	}
	return true
}
