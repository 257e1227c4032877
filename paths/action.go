package paths

import (
	"fmt"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

// DisplacementRule returns how far to move from current during a step of dt
// seconds that ends elapsed seconds after the path was started.
type DisplacementRule func(current calc.Point, dt, elapsed float64) (calc.Vec2, error)

// ActionPath moves by a caller-supplied rule each step, for motion that is
// not a function of time, such as homing in on a moving target. It is
// open-ended unless given a duration or a stop condition.
type ActionPath struct {
	base
	rule DisplacementRule
}

var _ FollowablePath = (*ActionPath)(nil)

func NewActionPath(start calc.Point, rule DisplacementRule, opts ...Option) (*ActionPath, error) {
	if rule == nil {
		return nil, fmt.Errorf("%w: action path without a displacement rule", ErrInvalidPathState)
	}
	p := &ActionPath{rule: rule}
	if err := p.init(start, opts); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ActionPath) Advance(dt float64) (calc.Point, error) {
	return p.advance(dt, func(from calc.Point, elapsed, dt float64) (calc.Point, error) {
		d, err := p.rule(from, dt, elapsed)
		if err != nil {
			return calc.Point{}, err
		}
		return from.Translate(d), nil
	})
}
