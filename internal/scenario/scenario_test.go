package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/paths"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "chase.yaml"))
	require.NoError(t, err)
	diff(t, 4, s.Config.HistoryWindow)
	diff(t, 0.5, s.Config.Tick)
	diff(t, 1000, s.Config.Subdivisions)
	diff(t, 3, s.Frames)
	require.Len(t, s.Paths, 3)
	assert.True(t, strings.HasPrefix(s.Paths[2].Name, "seek-"), s.Paths[2].Name)
}

func TestChase(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "chase.yaml"))
	require.NoError(t, err)
	sim, err := s.Build(nil)
	require.NoError(t, err)
	for range s.Frames {
		require.NoError(t, sim.Step(s.Config.Tick))
	}
	got := sim.Positions()
	diff(t, calc.Pt(4.5, 0), got["leader"], approx)
	// The follower reads committed velocities and lags one frame behind.
	diff(t, calc.Pt(3, 0), got["follower"], approx)
	diff(t, calc.Pt(3, 4), got[s.Paths[2].Name], approx)

	seeker, ok := sim.Path(s.Paths[2].Name)
	require.True(t, ok)
	diff(t, paths.Completed, seeker.State())
}

func TestJumpTOML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "jump.toml"))
	require.NoError(t, err)
	diff(t, 0.1, s.Config.Tick)
	require.NotNil(t, s.Paths[0].Target)

	sim, err := s.Build(nil)
	require.NoError(t, err)
	frames := 0
	for !sim.Done() {
		require.NoError(t, sim.Step(s.Config.Tick))
		frames++
		require.Less(t, frames, 100)
	}
	// The ball lands after 2 seconds; the patrol returns after 2 seconds.
	diff(t, 20, frames)
	got := sim.Positions()
	diff(t, calc.Pt(2, 0), got["ball"], approx)
	diff(t, calc.Pt(0, 0), got["patrol"], approx)

	v, err := sim.Keeper().Get("ball", 0)
	require.NoError(t, err)
	diff(t, calc.Pt(2, 0), v, approx)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "Kind")
	assert.ErrorContains(t, err, "To")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"unknown follow target",
			"paths:\n  - {name: a, kind: velocity, follow: nobody}\n",
			`"nobody"`,
		},
		{
			"duplicate name",
			"paths:\n  - {name: a, kind: velocity}\n  - {name: a, kind: velocity}\n",
			"duplicate",
		},
		{
			"overlapping segments",
			"paths:\n  - name: a\n    kind: piecewise\n    x: [{from: 0, to: 2, coeffs: [1]}, {from: 1, to: 3, coeffs: [2]}]\n",
			"overlapping",
		},
		{
			"unreachable target",
			"paths:\n  - {name: a, kind: physics, velocity: [0, 1], target: {axis: x, displacement: 1}}\n",
			"never reached",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			s, err := Load(path)
			require.NoError(t, err)
			_, err = s.Build(nil)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
