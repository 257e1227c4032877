package history

import (
	"fmt"
	"math"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

// VelocityCalculator derives rates of change of tracked values from the
// difference between consecutive frames of history.
type VelocityCalculator struct {
	keeper *Keeper
	tick   float64
	// Offset is the number of frames between the current frame and the newer
	// of the two frames that are compared. It is 0 by default; callers that
	// run while the current frame is still being written should use 1 so that
	// they only observe committed history.
	Offset int
}

// NewVelocityCalculator returns a calculator reading from k, for a simulation
// whose frames are tick seconds apart.
func NewVelocityCalculator(k *Keeper, tick float64) (*VelocityCalculator, error) {
	if !(tick > 0) || math.IsInf(tick, 0) {
		return nil, fmt.Errorf("history: tick duration must be positive and finite, got %g", tick)
	}
	return &VelocityCalculator{keeper: k, tick: tick}, nil
}

// Tick returns the duration of one frame in seconds.
func (vc *VelocityCalculator) Tick() float64 { return vc.tick }

// Velocity returns the average rate of change of name over the last frame,
// (v[Offset] - v[Offset+1]) / tick. It fails with [ErrHistoryUnavailable] if
// either value is missing, for example on the first frame a value is tracked.
func (vc *VelocityCalculator) Velocity(name string) (float64, error) {
	return vc.velocityAt(name, vc.Offset)
}

func (vc *VelocityCalculator) velocityAt(name string, offset int) (float64, error) {
	cur, err := vc.keeper.Float(name, offset)
	if err != nil {
		return 0, err
	}
	prev, err := vc.keeper.Float(name, offset+1)
	if err != nil {
		return 0, err
	}
	return (cur - prev) / vc.tick, nil
}

// Acceleration returns the change in velocity of name over the last frame. It
// needs three consecutive frames of history.
func (vc *VelocityCalculator) Acceleration(name string) (float64, error) {
	v1, err := vc.velocityAt(name, vc.Offset)
	if err != nil {
		return 0, err
	}
	v0, err := vc.velocityAt(name, vc.Offset+1)
	if err != nil {
		return 0, err
	}
	return (v1 - v0) / vc.tick, nil
}

// VelocityVec is like Velocity for values that are a [calc.Point] or a
// [calc.Vec2].
func (vc *VelocityCalculator) VelocityVec(name string) (calc.Vec2, error) {
	cur, err := vc.vecAt(name, vc.Offset)
	if err != nil {
		return calc.Vec2{}, err
	}
	prev, err := vc.vecAt(name, vc.Offset+1)
	if err != nil {
		return calc.Vec2{}, err
	}
	return cur.Sub(prev).Div(vc.tick), nil
}

func (vc *VelocityCalculator) vecAt(name string, framesAgo int) (calc.Vec2, error) {
	v, err := vc.keeper.Get(name, framesAgo)
	if err != nil {
		return calc.Vec2{}, err
	}
	switch v := v.(type) {
	case calc.Vec2:
		return v, nil
	case calc.Point:
		return calc.Vec2(v), nil
	default:
		return calc.Vec2{}, fmt.Errorf("history: value of %q %d frames ago is %T, not a point or vector", name, framesAgo, v)
	}
}

// Distance returns how far something moving at velocity travels in one frame.
func (vc *VelocityCalculator) Distance(velocity float64) float64 {
	return velocity * vc.tick
}
