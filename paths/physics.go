package paths

import (
	"fmt"
	"math"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

// PhysicsPath moves under constant acceleration:
//
//	position(t) = start + v₀·t + ½·a·t²
//
// Positions are computed from the total elapsed time rather than accumulated
// per step, so the result does not depend on how time is divided into steps.
// A PhysicsPath is open-ended unless a duration or target is set.
type PhysicsPath struct {
	base
	v0    calc.Vec2
	accel calc.Vec2
}

var _ FollowablePath = (*PhysicsPath)(nil)

// NewPhysicsPath returns a path starting at start with initial velocity v0
// and constant acceleration accel.
func NewPhysicsPath(start calc.Point, v0, accel calc.Vec2, opts ...Option) (*PhysicsPath, error) {
	p := &PhysicsPath{v0: v0, accel: accel}
	if err := p.init(start, opts); err != nil {
		return nil, err
	}
	if v0.IsNaN() || v0.IsInf() || accel.IsNaN() || accel.IsInf() {
		return nil, fmt.Errorf("%w: non-finite velocity %s or acceleration %s", ErrInvalidPathState, v0, accel)
	}
	return p, nil
}

// PhysicsPathFromVertex returns the path that reaches start+peak after
// timeToPeak seconds with zero velocity, such as a jump reaching its apex.
// Each axis decelerates uniformly, v₀ = 2·peak/t and a = −2·peak/t².
func PhysicsPathFromVertex(start calc.Point, peak calc.Vec2, timeToPeak float64, opts ...Option) (*PhysicsPath, error) {
	if !(timeToPeak > 0) || math.IsInf(timeToPeak, 0) {
		return nil, fmt.Errorf("%w: time to peak must be positive, got %g", ErrInvalidPathState, timeToPeak)
	}
	v0 := peak.Mul(2 / timeToPeak)
	accel := peak.Mul(-2 / (timeToPeak * timeToPeak))
	return NewPhysicsPath(start, v0, accel, opts...)
}

// InitialVelocity returns v₀.
func (p *PhysicsPath) InitialVelocity() calc.Vec2 { return p.v0 }

// Acceleration returns a.
func (p *PhysicsPath) Acceleration() calc.Vec2 { return p.accel }

func (p *PhysicsPath) axis(a Axis) calc.Quadratic {
	if a == X {
		return calc.Kinematic(p.accel.X, p.v0.X, 0)
	}
	return calc.Kinematic(p.accel.Y, p.v0.Y, 0)
}

// At returns the position of the path after elapsed seconds, without
// changing its state.
func (p *PhysicsPath) At(elapsed float64) calc.Point {
	dx, _ := p.axis(X).Eval(elapsed)
	dy, _ := p.axis(Y).Eval(elapsed)
	return p.start.Translate(calc.Vec(dx, dy))
}

// Velocity returns the velocity after elapsed seconds, v₀ + a·t.
func (p *PhysicsPath) Velocity(elapsed float64) calc.Vec2 {
	return p.v0.Add(p.accel.Mul(elapsed))
}

// TimeToReach returns the first time after the start at which the
// displacement along axis a equals displacement.
func (p *PhysicsPath) TimeToReach(a Axis, displacement float64) (float64, error) {
	for _, t := range p.axis(a).TimesToReach(displacement) {
		if t > 0 {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s displacement %g with v₀=%s, a=%s", ErrUnreachableTarget, a, displacement, p.v0, p.accel)
}

// SetTarget makes the path complete when its displacement along axis a first
// reaches displacement. The end point lies exactly on the target.
func (p *PhysicsPath) SetTarget(a Axis, displacement float64) error {
	t, err := p.TimeToReach(a, displacement)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPathState, err)
	}
	if err := p.setDuration(t); err != nil {
		return err
	}
	end := p.At(t)
	if a == X {
		end.X = p.start.X + displacement
	} else {
		end.Y = p.start.Y + displacement
	}
	p.end = &end
	return nil
}

func (p *PhysicsPath) Advance(dt float64) (calc.Point, error) {
	return p.advance(dt, func(_ calc.Point, elapsed, _ float64) (calc.Point, error) {
		return p.At(elapsed), nil
	})
}
