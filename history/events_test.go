package history

import (
	"testing"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fires(n int, step func() bool) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if step() {
			out = append(out, i)
		}
	}
	return out
}

func TestCountEventOneShot(t *testing.T) {
	e := NewCountEvent(3, false)
	diff(t, []int{3}, fires(10, e.Increment))
	diff(t, Triggered, e.State())

	e.Reset()
	diff(t, Armed, e.State())
	diff(t, 0, e.Count())
	diff(t, []int{3}, fires(5, e.Increment))
}

func TestCountEventRepeating(t *testing.T) {
	e := NewCountEvent(3, true)
	diff(t, []int{3, 6, 9}, fires(10, e.Increment))
	diff(t, 1, e.Count())
}

func TestCountEventMinimumThreshold(t *testing.T) {
	e := NewCountEvent(0, false)
	diff(t, 1, e.Threshold())
	assert.True(t, e.Increment())
	assert.False(t, e.Increment())
}

func TestTimedEvent(t *testing.T) {
	e := NewTimedEvent(4, true)
	diff(t, 4, e.Remaining())
	e.Tick()
	diff(t, 3, e.Remaining())
	diff(t, 1, e.Elapsed())
	diff(t, []int{3, 7}, fires(8, e.Tick))
}

func TestNewTimedEventFor(t *testing.T) {
	e, err := NewTimedEventFor(1, 0.1, false)
	require.NoError(t, err)
	diff(t, 10, e.Frames())

	e, err = NewTimedEventFor(0.25, 0.1, false)
	require.NoError(t, err)
	diff(t, 3, e.Frames())

	_, err = NewTimedEventFor(1, 0, false)
	assert.Error(t, err)
	_, err = NewTimedEventFor(-1, 0.1, false)
	assert.Error(t, err)
	_, err = NewTimedEventFor(1e19, 0.1, false)
	require.ErrorIs(t, err, calc.ErrFractionOverflow)
	_, err = NewTimedEventFor(5e18, 0.1, false)
	require.ErrorIs(t, err, calc.ErrFractionOverflow)
}

func TestEventEdges(t *testing.T) {
	k := NewKeeper(2)
	e := NewEvent(k, "jump")
	diff(t, "jump", e.Name())

	type edges struct{ Click, Stopped bool }
	var got []edges
	for _, happened := range []bool{false, true, true, false, false} {
		k.AdvanceFrame()
		e.Run(happened)
		got = append(got, edges{e.IsClick(), e.HasStopped()})
	}
	diff(t, []edges{
		{false, false},
		{true, false},
		{false, false},
		{false, true},
		{false, false},
	}, got)
}

func TestEventGeneratedName(t *testing.T) {
	k := NewKeeper(1)
	a, b := NewEvent(k, ""), NewEvent(k, "")
	assert.NotEqual(t, a.Name(), b.Name())
	assert.Contains(t, a.Name(), "event-")
	assert.False(t, a.Happened())
}
