package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Micah-Ribbens/Game-Qu/calc"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	diff(t, 8, cfg.HistoryWindow)
	diff(t, calc.DefaultNumeric, cfg.Numeric())
	diff(t, int64(1_000_000), cfg.MaxDenominator)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "sim.yaml", "history_window: 16\ntick: 0.1\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.HistoryWindow = 16
	want.Tick = 0.1
	diff(t, want, cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "sim.toml", "integration_subdivisions = 50\nderivative_step = 0.001\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Subdivisions = 50
	want.DerivativeStep = 0.001
	diff(t, want, cfg)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	diff(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content, errContains string
	}{
		{"unknown yaml key", "a.yaml", "histroy_window: 3\n", "histroy_window"},
		{"unknown toml key", "a.toml", "histroy_window = 3\n", "histroy_window"},
		{"extension", "a.json", "{}", "unsupported file extension"},
		{"negative tick", "a.yaml", "tick: -1\n", "Config.Tick"},
		{"zero window", "a.toml", "history_window = 0\n", "Config.HistoryWindow"},
		{"malformed", "a.yaml", "tick: [\n", "decoding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg := Default()
	cfg.Tick = 0
	cfg.Subdivisions = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "Config.Tick")
	assert.ErrorContains(t, err, "Config.Subdivisions")
}

func TestAccessors(t *testing.T) {
	cfg := Default()
	cfg.HistoryWindow = 3
	cfg.Tick = 0.5
	k := cfg.NewKeeper()
	diff(t, 3, k.Window())

	vc, err := cfg.VelocityCalculator(k)
	require.NoError(t, err)
	diff(t, 0.5, vc.Tick())
	assert.Len(t, cfg.PathOptions(), 1)
}
