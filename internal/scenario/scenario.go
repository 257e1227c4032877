// Package scenario loads declarative descriptions of simulations: a
// configuration and a list of paths, read from a YAML or TOML file.
package scenario

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/config"
	"github.com/Micah-Ribbens/Game-Qu/history"
	"github.com/Micah-Ribbens/Game-Qu/paths"
)

// Vec is an (x, y) pair, written as a two-element list.
type Vec [2]float64

func (v Vec) point() calc.Point { return calc.Pt(v[0], v[1]) }
func (v Vec) vec() calc.Vec2    { return calc.Vec(v[0], v[1]) }

// SegmentSpec is a polynomial displacement over the time span [From, To],
// or [From, To) if OpenEnd is set.
type SegmentSpec struct {
	From    float64   `yaml:"from" toml:"from" validate:"gte=0"`
	To      float64   `yaml:"to" toml:"to" validate:"gtfield=From"`
	Coeffs  []float64 `yaml:"coeffs" toml:"coeffs" validate:"required"`
	OpenEnd bool      `yaml:"open_end" toml:"open_end"`
}

// TargetSpec makes a physics path complete at a displacement along an axis.
type TargetSpec struct {
	Axis         string  `yaml:"axis" toml:"axis" validate:"oneof=x y"`
	Displacement float64 `yaml:"displacement" toml:"displacement"`
}

// Path kinds.
const (
	KindPiecewise = "piecewise"
	KindWaypoints = "waypoints"
	KindPhysics   = "physics"
	KindVelocity  = "velocity"
	KindSeek      = "seek"
)

// PathSpec describes one path. Which fields apply depends on Kind:
//
//   - piecewise: X, Y
//   - waypoints: Speed, Points
//   - physics: Velocity, Acceleration, Target
//   - velocity: Velocity, or Follow and Scale to copy the velocity of another
//     path
//   - seek: Goal, Speed; moves straight towards Goal and stops there
type PathSpec struct {
	Name     string  `yaml:"name" toml:"name"`
	Kind     string  `yaml:"kind" toml:"kind" validate:"required,oneof=piecewise waypoints physics velocity seek"`
	Start    Vec     `yaml:"start" toml:"start"`
	Track    bool    `yaml:"track" toml:"track"`
	Duration float64 `yaml:"duration" toml:"duration" validate:"gte=0"`
	Loop     bool    `yaml:"loop" toml:"loop"`

	X []SegmentSpec `yaml:"x" toml:"x" validate:"dive"`
	Y []SegmentSpec `yaml:"y" toml:"y" validate:"dive"`

	Speed  float64 `yaml:"speed" toml:"speed" validate:"gte=0"`
	Points []Vec   `yaml:"points" toml:"points"`

	Velocity     Vec         `yaml:"velocity" toml:"velocity"`
	Acceleration Vec         `yaml:"acceleration" toml:"acceleration"`
	Target       *TargetSpec `yaml:"target" toml:"target"`

	Follow string  `yaml:"follow" toml:"follow"`
	Scale  float64 `yaml:"scale" toml:"scale"`

	Goal Vec `yaml:"goal" toml:"goal"`
}

// Scenario is a simulation description.
type Scenario struct {
	Config config.Config `yaml:"config" toml:"config"`
	// Frames is the number of frames to run, 0 meaning until every path
	// has completed.
	Frames int        `yaml:"frames" toml:"frames" validate:"gte=0"`
	Paths  []PathSpec `yaml:"paths" toml:"paths" validate:"required,min=1,dive"`
}

// Load reads and validates a scenario file. Configuration parameters the
// file does not set keep their defaults, and paths without a name are given
// a unique one.
func Load(path string) (*Scenario, error) {
	s := &Scenario{Config: config.Default()}
	if err := config.DecodeFile(path, s); err != nil {
		return nil, err
	}
	if err := config.Validate(s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	for i := range s.Paths {
		p := &s.Paths[i]
		if p.Name == "" {
			p.Name = p.Kind + "-" + uuid.NewString()
		}
	}
	return s, nil
}

// Build creates a simulation of the scenario's paths, all started. Paths that
// other paths follow are tracked in history regardless of their Track
// setting.
func (s *Scenario) Build(logger *slog.Logger) (*paths.Simulation, error) {
	if logger == nil {
		logger = slog.Default()
	}
	k := s.Config.NewKeeper(history.WithLogger(logger))
	vc, err := s.Config.VelocityCalculator(k)
	if err != nil {
		return nil, err
	}
	// Paths advance before their positions are committed, so only the
	// previous frames are complete.
	vc.Offset = 1

	followed := map[string]bool{}
	names := map[string]bool{}
	for _, spec := range s.Paths {
		names[spec.Name] = true
		if spec.Follow != "" {
			followed[spec.Follow] = true
		}
	}
	for name := range followed {
		if !names[name] {
			return nil, fmt.Errorf("scenario: path %q is followed but does not exist", name)
		}
	}

	sim := paths.NewSimulation(k, paths.WithSimulationLogger(logger))
	for _, spec := range s.Paths {
		opts := append(s.Config.PathOptions(), paths.WithName(spec.Name), paths.WithLogger(logger))
		if spec.Duration > 0 {
			opts = append(opts, paths.WithDuration(spec.Duration))
		}
		if spec.Loop {
			opts = append(opts, paths.Looping())
		}
		p, err := buildPath(spec, vc, opts)
		if err != nil {
			return nil, fmt.Errorf("scenario: path %q: %w", spec.Name, err)
		}
		if err := sim.Add(spec.Name, p, spec.Track || followed[spec.Name]); err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
	}
	sim.Start()
	logger.Info("scenario built", "paths", len(s.Paths), "tick", s.Config.Tick, "frames", s.Frames)
	return sim, nil
}

func buildPath(spec PathSpec, vc *history.VelocityCalculator, opts []paths.Option) (paths.FollowablePath, error) {
	start := spec.Start.point()
	switch spec.Kind {
	case KindPiecewise:
		return paths.NewPiecewisePath(start, segments(spec.X), segments(spec.Y), opts...)
	case KindWaypoints:
		pts := make([]calc.Point, len(spec.Points))
		for i, v := range spec.Points {
			pts[i] = v.point()
		}
		return paths.NewWaypointPath(start, spec.Speed, pts, opts...)
	case KindPhysics:
		p, err := paths.NewPhysicsPath(start, spec.Velocity.vec(), spec.Acceleration.vec(), opts...)
		if err != nil {
			return nil, err
		}
		if spec.Target != nil {
			axis := paths.X
			if strings.EqualFold(spec.Target.Axis, "y") {
				axis = paths.Y
			}
			if err := p.SetTarget(axis, spec.Target.Displacement); err != nil {
				return nil, err
			}
		}
		return p, nil
	case KindVelocity:
		var src paths.VelocitySource = paths.ConstantVelocity(spec.Velocity.vec())
		if spec.Follow != "" {
			src = paths.TrackedVelocity{
				Calculator:         vc,
				Name:               spec.Follow,
				Scale:              spec.Scale,
				ZeroUntilAvailable: true,
			}
		}
		return paths.NewVelocityPath(start, src, opts...)
	case KindSeek:
		goal := spec.Goal.point()
		arrived := func(pos calc.Point, _ float64) bool { return pos.Near(goal, arrivalTolerance) }
		return paths.NewActionPath(start, seek(goal, spec.Speed), append(opts, paths.WithStopCondition(arrived))...)
	default:
		return nil, fmt.Errorf("unknown path kind %q", spec.Kind)
	}
}

func segments(specs []SegmentSpec) []calc.Segment {
	out := make([]calc.Segment, len(specs))
	for i, s := range specs {
		r := calc.Closed(s.From, s.To)
		if s.OpenEnd {
			r = calc.ClosedOpen(s.From, s.To)
		}
		out[i] = calc.Segment{Range: r, Func: calc.NewPolynomial(s.Coeffs...)}
	}
	return out
}

const arrivalTolerance = 1e-9

// seek moves straight towards goal at speed, without overshooting it.
func seek(goal calc.Point, speed float64) paths.DisplacementRule {
	return func(cur calc.Point, dt, _ float64) (calc.Vec2, error) {
		return cur.MoveTowards(goal, speed*dt).Sub(cur), nil
	}
}
