package paths

import (
	"errors"
	"testing"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/history"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	started := transitions.WithLabelValues(NotStarted.String(), InProgress.String())
	completed := transitions.WithLabelValues(InProgress.String(), Completed.String())
	nStarted := testutil.ToFloat64(started)
	nCompleted := testutil.ToFloat64(completed)
	nErrors := testutil.ToFloat64(stepErrors)

	p, err := NewPhysicsPath(calc.Pt(0, 0), calc.Vec(1, 0), calc.Vec2{}, WithDuration(1))
	require.NoError(t, err)
	broken, err := NewActionPath(calc.Pt(0, 0), func(calc.Point, float64, float64) (calc.Vec2, error) {
		return calc.Vec2{}, errors.New("stuck")
	})
	require.NoError(t, err)
	sim := NewSimulation(history.NewKeeper(1))
	require.NoError(t, sim.Add("p", p, false))
	require.NoError(t, sim.Add("broken", broken, false))
	sim.Start()
	require.Error(t, sim.Step(2))

	diff(t, nStarted+2, testutil.ToFloat64(started))
	diff(t, nCompleted+1, testutil.ToFloat64(completed))
	diff(t, nErrors+1, testutil.ToFloat64(stepErrors))
}
