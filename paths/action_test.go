package paths

import (
	"testing"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/stretchr/testify/require"
)

func TestActionPath(t *testing.T) {
	target := calc.Pt(10, 0)
	halfway := func(cur calc.Point, _, _ float64) (calc.Vec2, error) {
		return target.Sub(cur).Mul(0.5), nil
	}
	near := func(pos calc.Point, _ float64) bool { return pos.Distance(target) < 1 }
	p, err := NewActionPath(calc.Pt(0, 0), halfway, WithStopCondition(near))
	require.NoError(t, err)
	p.Start()

	var got []calc.Point
	for p.State() != Completed {
		pos, err := p.Advance(1)
		require.NoError(t, err)
		got = append(got, pos)
	}
	diff(t, []calc.Point{
		calc.Pt(5, 0),
		calc.Pt(7.5, 0),
		calc.Pt(8.75, 0),
		calc.Pt(9.375, 0),
	}, got)
	diff(t, 4.0, p.Elapsed())
}

func TestActionPathDuration(t *testing.T) {
	var steps []float64
	rule := func(_ calc.Point, dt, _ float64) (calc.Vec2, error) {
		steps = append(steps, dt)
		return calc.Vec(dt, 0), nil
	}
	p, err := NewActionPath(calc.Pt(0, 0), rule, WithDuration(1))
	require.NoError(t, err)
	p.Start()
	for range 3 {
		_, err = p.Advance(0.75)
		require.NoError(t, err)
	}
	// The second step is cut short at the end of the duration.
	diff(t, []float64{0.75, 0.25}, steps)
	diff(t, calc.Pt(1, 0), p.Position())

	_, err = NewActionPath(calc.Pt(0, 0), nil)
	require.ErrorIs(t, err, ErrInvalidPathState)
}
