package paths

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

// FollowablePath is an object that moves along a path as simulation time
// passes.
//
// A path starts out NotStarted. Start moves it to InProgress with zero
// elapsed time, from where every call to Advance adds to the elapsed time and
// moves the path. Paths with a finite duration become Completed once the
// elapsed time reaches the duration; from then on, Advance keeps returning the
// end point.
type FollowablePath interface {
	Start()
	// Advance moves the path forward by dt seconds and returns its new
	// position. If Advance fails, the path is left unchanged.
	Advance(dt float64) (calc.Point, error)
	State() State
	Position() calc.Point
	// Elapsed returns the number of seconds the path has been advanced by
	// since it was started.
	Elapsed() float64
	// Reset returns the path to NotStarted at its start point.
	Reset()
}

// StopCondition reports whether an open-ended path should complete at pos.
type StopCondition func(pos calc.Point, elapsed float64) bool

// Option configures a path.
type Option func(*base)

// WithName names the path in log messages.
func WithName(name string) Option {
	return func(b *base) { b.name = name }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithDuration makes the path complete after the given number of seconds.
func WithDuration(seconds float64) Option {
	return func(b *base) {
		b.durSecs = seconds
		b.hasDur = true
	}
}

// WithStopCondition makes the path complete as soon as stop reports true for
// a position it advanced to.
func WithStopCondition(stop StopCondition) Option {
	return func(b *base) { b.stop = stop }
}

// WithMaxDenominator bounds the denominators of the fractions that elapsed
// time is accumulated in. Time steps are rounded to the nearest such
// fraction, so the bound must be large enough to represent the tick duration.
func WithMaxDenominator(maxDen int64) Option {
	return func(b *base) { b.maxDen = maxDen }
}

// Looping makes a piecewise path repeat its segments forever instead of
// completing. Other paths ignore it.
func Looping() Option {
	return func(b *base) { b.loop = true }
}

// motion computes the position of a path after advancing it by dt seconds
// from position from. elapsed is the total elapsed time after the step.
type motion func(from calc.Point, elapsed, dt float64) (calc.Point, error)

// base implements the state machine shared by all paths.
type base struct {
	name   string
	logger *slog.Logger

	start   calc.Point
	pos     calc.Point
	elapsed calc.Fraction
	state   State

	durSecs float64
	hasDur  bool
	// nil for open-ended paths
	duration *calc.Fraction
	// position reported once the duration has passed, if not computed
	end  *calc.Point
	stop StopCondition
	loop bool

	maxDen int64
}

func (b *base) init(start calc.Point, opts []Option) error {
	b.start = start
	b.pos = start
	b.logger = slog.Default()
	b.maxDen = calc.DefaultMaxDenominator
	for _, opt := range opts {
		opt(b)
	}
	if b.maxDen < 1 {
		return fmt.Errorf("%w: maximum denominator must be positive, got %d", ErrInvalidPathState, b.maxDen)
	}
	if b.hasDur {
		return b.setDuration(b.durSecs)
	}
	return nil
}

func (b *base) setDuration(seconds float64) error {
	if !(seconds >= 0) || math.IsInf(seconds, 0) {
		return fmt.Errorf("%w: duration must be finite and non-negative, got %g", ErrInvalidPathState, seconds)
	}
	d, err := calc.FractionFromFloat(seconds, b.maxDen)
	if err != nil {
		return fmt.Errorf("%w: duration %g: %w", ErrInvalidPathState, seconds, err)
	}
	b.duration = &d
	b.durSecs, b.hasDur = seconds, true
	return nil
}

func (b *base) setState(s State) {
	if b.state == s {
		return
	}
	transitions.WithLabelValues(b.state.String(), s.String()).Inc()
	b.logger.Debug("path state changed", "path", b.name, "from", b.state, "to", s, "elapsed", b.elapsed.Float64())
	b.state = s
}

func (b *base) Start() {
	b.elapsed = calc.Fraction{}
	b.pos = b.start
	b.setState(InProgress)
}

func (b *base) Reset() {
	b.elapsed = calc.Fraction{}
	b.pos = b.start
	b.setState(NotStarted)
}

func (b *base) State() State           { return b.state }
func (b *base) Position() calc.Point   { return b.pos }
func (b *base) StartPoint() calc.Point { return b.start }
func (b *base) Elapsed() float64       { return b.elapsed.Float64() }

// ElapsedFraction returns the elapsed time as an exact fraction of seconds.
func (b *base) ElapsedFraction() calc.Fraction { return b.elapsed }

// Duration returns the number of seconds after which the path completes, and
// whether it has one.
func (b *base) Duration() (float64, bool) {
	if b.duration == nil {
		return 0, false
	}
	return b.duration.Float64(), true
}

func (b *base) advance(dt float64, next motion) (calc.Point, error) {
	switch b.state {
	case NotStarted:
		return b.pos, fmt.Errorf("%w: path %q advanced before it was started", ErrInvalidPathState, b.name)
	case Completed:
		return b.pos, nil
	}
	if !(dt >= 0) || math.IsInf(dt, 0) {
		return b.pos, fmt.Errorf("%w: cannot advance path %q by %g seconds", ErrInvalidPathState, b.name, dt)
	}
	step, err := calc.FractionFromFloat(dt, b.maxDen)
	if err != nil {
		return b.pos, fmt.Errorf("%w: cannot advance path %q by %g seconds: %w", ErrInvalidPathState, b.name, dt, err)
	}
	elapsed, err := b.elapsed.Add(step)
	if err != nil {
		return b.pos, fmt.Errorf("%w: path %q elapsed time: %w", ErrInvalidPathState, b.name, err)
	}
	done := false
	if b.duration != nil && !elapsed.Less(*b.duration) {
		// Both operands are in range and elapsed < duration, so this cannot overflow.
		step, _ = b.duration.Sub(b.elapsed)
		elapsed = *b.duration
		done = true
	}
	pos, err := next(b.pos, elapsed.Float64(), step.Float64())
	if err != nil {
		return b.pos, fmt.Errorf("path %q at %gs: %w", b.name, elapsed.Float64(), err)
	}
	if done && b.end != nil {
		pos = *b.end
	}
	if !done && b.stop != nil && b.stop(pos, elapsed.Float64()) {
		done = true
	}
	b.pos, b.elapsed = pos, elapsed
	if done {
		b.setState(Completed)
	}
	return pos, nil
}
