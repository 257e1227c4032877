package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1", "-3", "2"}, "1 2\n"},
		{[]string{"1", "2", "1"}, "-1\n"},
		{[]string{"1", "0", "1"}, "no real roots\n"},
		{[]string{"0", "2", "-4"}, "2\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, append([]string{"solve", "--"}, tt.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out, "solve %v", tt.args)
	}

	_, err := execute(t, "solve", "1", "x", "2")
	assert.ErrorContains(t, err, `"x" is not a number`)
	_, err = execute(t, "solve", "1", "2")
	assert.Error(t, err)
}

func TestCalc(t *testing.T) {
	out, err := execute(t, "calc", "deriv", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6x + 2\n", out)

	out, err = execute(t, "calc", "integ", "--constant", "4", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "x^3 + x^2 + x + 4\n", out)

	out, err = execute(t, "calc", "area", "--from", "0", "--to", "2", "0", "0", "3")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)
}

func TestCalcAreaNumeric(t *testing.T) {
	area := func(args ...string) float64 {
		t.Helper()
		out, err := execute(t, append([]string{"calc", "area"}, args...)...)
		require.NoError(t, err)
		v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
		require.NoError(t, err)
		return v
	}
	assert.InDelta(t, math.E-1, area("--func", "exp"), 1e-5)
	// A single trapezoid.
	coarse := filepath.Join("testdata", "coarse.yaml")
	assert.InDelta(t, (1+math.E)/2, area("--func", "exp", "--config", coarse), 1e-12)
	// Polynomials are exact regardless.
	assert.InDelta(t, 8, area("--config", coarse, "--from", "0", "--to", "2", "0", "0", "3"), 1e-12)

	_, err := execute(t, "calc", "area", "--func", "tan")
	assert.ErrorContains(t, err, `unknown function "tan"`)
	_, err = execute(t, "calc", "area", "--func", "exp", "1", "2")
	assert.Error(t, err)
	_, err = execute(t, "calc", "area")
	assert.Error(t, err)
	_, err = execute(t, "calc", "area", "--func", "sqrt", "--from", "-1")
	assert.Error(t, err)
	_, err = execute(t, "calc", "area", "--func", "exp", "--config", filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", filepath.Join("testdata", "walk.yaml"))
	require.NoError(t, err)
	assert.Equal(t, `frame,time,path,x,y,state
0,0,walker,0,0,in progress
1,0.5,walker,1,0,in progress
2,1,walker,2,0,completed
`, out)

	out, err = execute(t, "run", "--frames", "4", "--every", "2", filepath.Join("testdata", "walk.yaml"))
	require.NoError(t, err)
	assert.Equal(t, `frame,time,path,x,y,state
0,0,walker,0,0,in progress
2,1,walker,2,0,completed
4,2,walker,2,0,completed
`, out)

	_, err = execute(t, "run", filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
