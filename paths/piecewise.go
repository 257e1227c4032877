package paths

import (
	"fmt"
	"math"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

// PiecewisePath moves along displacement functions of elapsed time, one per
// axis. Each axis is described by segments, for example a linear run followed
// by a pause and a linear return.
//
// Before the first and after the last segment of an axis, its displacement is
// held at the nearest boundary, so one axis may finish before the other. The
// path completes once elapsed time passes the end of the last segment of
// either axis. Segments should therefore include their end point; gaps between
// segments are reported as errors when the path reaches them.
type PiecewisePath struct {
	base
	x, y calc.Function
}

var _ FollowablePath = (*PiecewisePath)(nil)

// NewPiecewisePath returns a path starting at start whose displacement from
// start along each axis is given by segments over elapsed time. An axis
// without segments does not move.
func NewPiecewisePath(start calc.Point, x, y []calc.Segment, opts ...Option) (*PiecewisePath, error) {
	p := &PiecewisePath{}
	if err := p.init(start, opts); err != nil {
		return nil, err
	}
	if len(x) == 0 && len(y) == 0 {
		return nil, fmt.Errorf("%w: piecewise path has no segments", ErrInvalidPathState)
	}

	end := math.Inf(-1)
	axis := func(a Axis, segs []calc.Segment) (calc.Function, error) {
		if len(segs) == 0 {
			return calc.NewPolynomial(), nil
		}
		pw, err := calc.NewPiecewiseFunction(segs...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s displacement: %w", ErrInvalidPathState, a, err)
		}
		d := pw.Domain()
		if d.Lower < 0 || !d.IsFinite() {
			return nil, fmt.Errorf("%w: %s displacement must cover a finite, non-negative time span, got %s", ErrInvalidPathState, a, d)
		}
		if p.loop {
			f, err := calc.Periodic(pw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s displacement: %w", ErrInvalidPathState, a, err)
			}
			return f, nil
		}
		end = max(end, d.Upper)
		return calc.Bounded(pw, d), nil
	}
	var err error
	if p.x, err = axis(X, x); err != nil {
		return nil, err
	}
	if p.y, err = axis(Y, y); err != nil {
		return nil, err
	}
	if !p.loop && !p.hasDur {
		if err := p.setDuration(end); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewWaypointPath returns a path that moves from start through each of the
// given points in turn, in straight lines at a constant speed in units per
// second. Points equal to their predecessor are skipped.
func NewWaypointPath(start calc.Point, speed float64, points []calc.Point, opts ...Option) (*PiecewisePath, error) {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%w: waypoint speed must be positive, got %g", ErrInvalidPathState, speed)
	}
	xs := []calc.Point{calc.Pt(0, 0)}
	ys := []calc.Point{calc.Pt(0, 0)}
	t, prev := 0.0, start
	for _, pt := range points {
		d := prev.Distance(pt)
		if d == 0 {
			continue
		}
		t += d / speed
		off := pt.Sub(start)
		xs = append(xs, calc.Pt(t, off.X))
		ys = append(ys, calc.Pt(t, off.Y))
		prev = pt
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: waypoint path needs a point other than its start", ErrInvalidPathState)
	}
	px, err := calc.Polyline(xs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPathState, err)
	}
	py, err := calc.Polyline(ys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPathState, err)
	}
	return NewPiecewisePath(start, px.Segments(), py.Segments(), opts...)
}

func (p *PiecewisePath) Advance(dt float64) (calc.Point, error) {
	return p.advance(dt, func(_ calc.Point, elapsed, _ float64) (calc.Point, error) {
		return p.At(elapsed)
	})
}

// At returns the position of the path after elapsed seconds, without
// changing its state.
func (p *PiecewisePath) At(elapsed float64) (calc.Point, error) {
	dx, err := p.x.Eval(elapsed)
	if err != nil {
		return calc.Point{}, err
	}
	dy, err := p.y.Eval(elapsed)
	if err != nil {
		return calc.Point{}, err
	}
	return p.start.Translate(calc.Vec(dx, dy)), nil
}
