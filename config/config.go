// SPDX-License-Identifier: MIT

// Package config resolves matshell settings.
//
// Precedence, lowest first: Default(), the TOML file, MATSHELL_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/matshell/matrix"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "matshell.toml"

var (
	// ErrInvalid wraps every Validate failure.
	ErrInvalid = errors.New("config: invalid configuration")
	// ErrUnknownKey indicates a TOML key that maps to no setting.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config holds every setting the shell needs.
type Config struct {
	Capacity   int        `toml:"capacity" env:"MATSHELL_CAPACITY"`
	DataDir    string     `toml:"data_dir" env:"MATSHELL_DATA_DIR"`
	Prompt     string     `toml:"prompt" env:"MATSHELL_PROMPT"`
	Seed       int64      `toml:"seed" env:"MATSHELL_SEED"` // 0 seeds from the clock
	SeedMatrix SeedMatrix `toml:"seed_matrix"`
	Log        Log        `toml:"log"`
}

// SeedMatrix describes the matrix created, randomized and written at startup.
type SeedMatrix struct {
	Enabled bool   `toml:"enabled" env:"MATSHELL_SEED_MATRIX"`
	Name    string `toml:"name"`
	Rows    uint32 `toml:"rows"`
	Cols    uint32 `toml:"cols"`
	Low     uint32 `toml:"low"`
	High    uint32 `toml:"high"`
}

// Log selects the diagnostic logger.
type Log struct {
	Level  string `toml:"level" env:"MATSHELL_LOG_LEVEL"`
	Format string `toml:"format" env:"MATSHELL_LOG_FORMAT"`
}

// Default returns the built-in settings: ten slots, the current directory,
// and the temp_mat 5x5 seed matrix filled from [10,15].
func Default() Config {
	return Config{
		Capacity: 10,
		DataDir:  ".",
		Prompt:   "> ",
		SeedMatrix: SeedMatrix{
			Enabled: true,
			Name:    "temp_mat",
			Rows:    5,
			Cols:    5,
			Low:     10,
			High:    15,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load layers the TOML file at path and then the environment over
// Default(). The result is not validated: callers apply their own
// overrides first and then call Validate.
// An empty path tries DefaultFile and skips it when absent; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := decodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decodeFile overlays the TOML file at path onto cfg. Keys that map to no
// field are rejected so typos do not pass silently.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be > 0, got %d", ErrInvalid, c.Capacity)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir is empty", ErrInvalid)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalid, c.Log.Format)
	}
	if c.SeedMatrix.Enabled {
		sm := c.SeedMatrix
		if err := matrix.ValidateName(sm.Name); err != nil {
			return fmt.Errorf("%w: seed_matrix: %v", ErrInvalid, err)
		}
		if err := matrix.ValidateShape(sm.Rows, sm.Cols); err != nil {
			return fmt.Errorf("%w: seed_matrix: %v", ErrInvalid, err)
		}
		if sm.Low > sm.High {
			return fmt.Errorf("%w: seed_matrix: low %d > high %d", ErrInvalid, sm.Low, sm.High)
		}
	}

	return nil
}
