// Package config loads presenter settings from defaults, an optional TOML
// file, and SENTRADECK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "SENTRADECK_"
	// FileEnv names the variable holding the config file path.
	FileEnv = EnvPrefix + "CONFIG"
	// DefaultFile is the config file looked up under the user config dir.
	DefaultFile = "sentradeck/config.toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full presenter configuration.
type Config struct {
	Deck       string `toml:"deck" env:"DECK"`
	Style      string `toml:"style" env:"STYLE"`
	Fullscreen bool   `toml:"fullscreen" env:"FULLSCREEN"`
	Mouse      bool   `toml:"mouse" env:"MOUSE"`
	StartSlide int    `toml:"start_slide" env:"START_SLIDE"`

	AutoAdvanceInterval time.Duration `toml:"auto_advance_interval" env:"AUTO_ADVANCE_INTERVAL"`

	Timing Timing `toml:"timing" envPrefix:"TIMING_"`
	Swipe  Swipe  `toml:"swipe" envPrefix:"SWIPE_"`
	Log    Log    `toml:"log" envPrefix:"LOG_"`
}

// Timing holds transition and debounce delays.
type Timing struct {
	Swap           time.Duration `toml:"swap" env:"SWAP"`
	Settle         time.Duration `toml:"settle" env:"SETTLE"`
	Animation      time.Duration `toml:"animation" env:"ANIMATION"`
	ResizeDebounce time.Duration `toml:"resize_debounce" env:"RESIZE_DEBOUNCE"`
}

// Swipe holds drag gesture thresholds in terminal cells.
type Swipe struct {
	Threshold   int `toml:"threshold" env:"THRESHOLD"`
	MaxVertical int `toml:"max_vertical" env:"MAX_VERTICAL"`
}

// Log configures the file logger.
type Log struct {
	Path  string `toml:"path" env:"PATH"`
	Level string `toml:"level" env:"LEVEL"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Style:               "dark",
		Mouse:               true,
		StartSlide:          1,
		AutoAdvanceInterval: 8 * time.Second,
		Timing: Timing{
			Swap:           50 * time.Millisecond,
			Settle:         500 * time.Millisecond,
			Animation:      100 * time.Millisecond,
			ResizeDebounce: 100 * time.Millisecond,
		},
		Swipe: Swipe{
			Threshold:   50,
			MaxVertical: 100,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, then the TOML file at path, then the
// environment. An empty path falls back to $SENTRADECK_CONFIG and then the
// default file under the user config dir; a missing default file is not an
// error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(FileEnv)
		explicit = path != ""
	}
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, DefaultFile)
		}
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.StartSlide < 1:
		return fmt.Errorf("%w: start_slide must be >= 1, got %d", ErrInvalid, c.StartSlide)
	case c.AutoAdvanceInterval <= 0:
		return fmt.Errorf("%w: auto_advance_interval must be positive", ErrInvalid)
	case c.Timing.Swap <= 0 || c.Timing.Settle <= 0 || c.Timing.Animation <= 0:
		return fmt.Errorf("%w: timing delays must be positive", ErrInvalid)
	case c.Timing.ResizeDebounce <= 0:
		return fmt.Errorf("%w: timing.resize_debounce must be positive", ErrInvalid)
	case c.Swipe.Threshold <= 0 || c.Swipe.MaxVertical <= 0:
		return fmt.Errorf("%w: swipe thresholds must be positive", ErrInvalid)
	}
	return nil
}
