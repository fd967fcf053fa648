package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridstrike/parameter"
)

// restoreLevels snapshots the level table and restores it after the test,
// since Apply mutates the package-level table
func restoreLevels(t *testing.T) {
	t.Helper()
	orig := parameter.Levels
	t.Cleanup(func() {
		parameter.Levels = orig
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Level)
}

func TestLoadEmptyPathIsNotAnError(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Level)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "level = not toml")
	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyOverridesSingleLevel(t *testing.T) {
	restoreLevels(t)

	path := writeConfig(t, `
[level.2]
spawn_interval_ms = 1500
concurrency_ceiling = 3
time_bank_start_ms = 50000
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Apply(cfg))

	spec := parameter.Level(2)
	assert.Equal(t, 1500*time.Millisecond, spec.SpawnInterval)
	assert.Equal(t, 3, spec.ConcurrencyCeiling)
	assert.Equal(t, 50*time.Second, spec.TimeBankStart)

	// Untouched fields and other levels keep their built-in values
	assert.Equal(t, 3, spec.Rows)
	assert.Equal(t, 1400*time.Millisecond, parameter.Level(1).SpawnInterval)
}

func TestApplyRejectsUnknownLevelKey(t *testing.T) {
	restoreLevels(t)

	cfg, err := Load(writeConfig(t, "[level.9]\nrows = 6\n"))
	require.NoError(t, err)
	require.Error(t, Apply(cfg))
}

func TestApplyRejectsNonNumericLevelKey(t *testing.T) {
	restoreLevels(t)

	cfg, err := Load(writeConfig(t, "[level.hard]\nrows = 6\n"))
	require.NoError(t, err)
	require.Error(t, Apply(cfg))
}

func TestApplyRejectsDegenerateOverride(t *testing.T) {
	restoreLevels(t)

	// Exposure range inverted: the validator must refuse the whole table
	// rather than fall back silently
	cfg, err := Load(writeConfig(t, `
[level.1]
exposure_min_ms = 2000
exposure_max_ms = 1000
`))
	require.NoError(t, err)
	require.Error(t, Apply(cfg))
}

func TestApplyRejectsCeilingBeyondGrid(t *testing.T) {
	restoreLevels(t)

	cfg, err := Load(writeConfig(t, `
[level.1]
concurrency_ceiling = 50
`))
	require.NoError(t, err)
	require.Error(t, Apply(cfg))
}
