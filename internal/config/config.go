// Package config loads numcheck settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the numcheck run configuration.
type Config struct {
	Seed        int64   `toml:"seed"`
	Count       int     `toml:"count"`
	Workers     int     `toml:"workers"`
	MaxULP      uint64  `toml:"max_ulp"`
	MaxFailures int     `toml:"max_failures"`
	Dump        string  `toml:"dump"`
	Corpus      Corpus  `toml:"corpus"`
	Logging     Logging `toml:"logging"`
}

// Corpus toggles the generated literal families.
type Corpus struct {
	Integers bool `toml:"integers"`
	Shortest bool `toml:"shortest"`
	Full     bool `toml:"full"`
	Halfway  bool `toml:"halfway"`
	Long     bool `toml:"long"`
	Edge     bool `toml:"edge"`
}

type Logging struct {
	Level string `toml:"level"`
}

// Defaults returns a configuration that runs every corpus family once.
func Defaults() Config {
	return Config{
		Seed:        1,
		Count:       100000,
		Workers:     runtime.GOMAXPROCS(0),
		MaxULP:      1,
		MaxFailures: 20,
		Corpus: Corpus{
			Integers: true,
			Shortest: true,
			Full:     true,
			Halfway:  true,
			Long:     true,
			Edge:     true,
		},
		Logging: Logging{Level: "info"},
	}
}

// Load overlays the file at path onto Defaults. Unknown keys are errors.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.New("config: count must be >= 0")
	}
	if c.Workers < 1 {
		return errors.New("config: workers must be >= 1")
	}
	if c.MaxFailures < 0 {
		return errors.New("config: max_failures must be >= 0")
	}
	if c.Corpus == (Corpus{}) {
		return errors.New("config: every corpus family is disabled")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging level %q", c.Logging.Level)
	}
	return nil
}
