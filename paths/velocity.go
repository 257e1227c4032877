package paths

import (
	"errors"
	"fmt"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/history"
)

// VelocitySource supplies the velocity of a VelocityPath each step.
type VelocitySource interface {
	Velocity(pos calc.Point, elapsed float64) (calc.Vec2, error)
}

// VelocityFunc adapts a function to a VelocitySource.
type VelocityFunc func(pos calc.Point, elapsed float64) (calc.Vec2, error)

func (f VelocityFunc) Velocity(pos calc.Point, elapsed float64) (calc.Vec2, error) {
	return f(pos, elapsed)
}

// ConstantVelocity returns a source that always reports v.
func ConstantVelocity(v calc.Vec2) VelocitySource {
	return VelocityFunc(func(calc.Point, float64) (calc.Vec2, error) { return v, nil })
}

// TrackedVelocity reads the velocity of a tracked position from history.
type TrackedVelocity struct {
	Calculator *history.VelocityCalculator
	// Name is the history name of a calc.Point or calc.Vec2 value.
	Name string
	// Scale multiplies the velocity read from history. Zero means 1.
	Scale float64
	// ZeroUntilAvailable reports a zero velocity instead of failing while
	// the history needed to compute the velocity does not exist yet.
	ZeroUntilAvailable bool
}

func (tv TrackedVelocity) Velocity(calc.Point, float64) (calc.Vec2, error) {
	v, err := tv.Calculator.VelocityVec(tv.Name)
	if err != nil {
		if tv.ZeroUntilAvailable && errors.Is(err, history.ErrHistoryUnavailable) {
			return calc.Vec2{}, nil
		}
		return calc.Vec2{}, err
	}
	if tv.Scale != 0 {
		v = v.Mul(tv.Scale)
	}
	return v, nil
}

// VelocityPath moves by integrating a velocity that is read anew every step,
// position += velocity · dt. It is open-ended unless given a duration or a
// stop condition.
type VelocityPath struct {
	base
	src VelocitySource
}

var _ FollowablePath = (*VelocityPath)(nil)

func NewVelocityPath(start calc.Point, src VelocitySource, opts ...Option) (*VelocityPath, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: velocity path without a velocity source", ErrInvalidPathState)
	}
	p := &VelocityPath{src: src}
	if err := p.init(start, opts); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *VelocityPath) Advance(dt float64) (calc.Point, error) {
	return p.advance(dt, func(from calc.Point, elapsed, dt float64) (calc.Point, error) {
		v, err := p.src.Velocity(from, elapsed-dt)
		if err != nil {
			return calc.Point{}, err
		}
		return from.Translate(v.Mul(dt)), nil
	})
}
