// Package config provides the optional TOML override of the level table,
// with a validation pass that rejects gaps instead of falling back silently
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridstrike/parameter"
)

// FileConfig represents the TOML configuration file
type FileConfig struct {
	Level map[string]LevelConfig `toml:"level"`
}

// LevelConfig overrides fields of one level table row. Nil fields keep
// the built-in value
type LevelConfig struct {
	Rows               *int     `toml:"rows"`
	Cols               *int     `toml:"cols"`
	SpawnIntervalMs    *int     `toml:"spawn_interval_ms"`
	ExposureMinMs      *int     `toml:"exposure_min_ms"`
	ExposureMaxMs      *int     `toml:"exposure_max_ms"`
	ConcurrencyFloor   *int     `toml:"concurrency_floor"`
	ConcurrencyCeiling *int     `toml:"concurrency_ceiling"`
	TargetPI           *float64 `toml:"target_pi"`
	TimeBankStartMs    *int     `toml:"time_bank_start_ms"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; the built-in tables apply
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply merges the overrides into the level table and re-validates it.
// An out-of-range level key or a table the validator rejects is a startup
// error, never a silent fallback
func Apply(cfg FileConfig) error {
	for key, lc := range cfg.Level {
		n, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("config level %q: not a number", key)
		}
		if n < parameter.MinLevel || n > parameter.MaxLevel {
			return fmt.Errorf("config level %d outside range [%d,%d]", n, parameter.MinLevel, parameter.MaxLevel)
		}

		spec := &parameter.Levels[n]
		if lc.Rows != nil {
			spec.Rows = *lc.Rows
		}
		if lc.Cols != nil {
			spec.Cols = *lc.Cols
		}
		if lc.SpawnIntervalMs != nil {
			spec.SpawnInterval = time.Duration(*lc.SpawnIntervalMs) * time.Millisecond
		}
		if lc.ExposureMinMs != nil {
			spec.ExposureMin = time.Duration(*lc.ExposureMinMs) * time.Millisecond
		}
		if lc.ExposureMaxMs != nil {
			spec.ExposureMax = time.Duration(*lc.ExposureMaxMs) * time.Millisecond
		}
		if lc.ConcurrencyFloor != nil {
			spec.ConcurrencyFloor = *lc.ConcurrencyFloor
		}
		if lc.ConcurrencyCeiling != nil {
			spec.ConcurrencyCeiling = *lc.ConcurrencyCeiling
		}
		if lc.TargetPI != nil {
			spec.TargetPI = *lc.TargetPI
		}
		if lc.TimeBankStartMs != nil {
			spec.TimeBankStart = time.Duration(*lc.TimeBankStartMs) * time.Millisecond
		}
	}

	if err := parameter.ValidateLevels(); err != nil {
		return fmt.Errorf("config produced invalid level table: %w", err)
	}
	return nil
}
