// Package config loads the host configuration for the event API server and
// the reminder scheduler.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultPath = ".iljeong.yaml"

type Config struct {
	Addr      string       `yaml:"addr"`
	SeedFile  string       `yaml:"seedFile"`
	WatchSeed bool         `yaml:"watchSeed"`
	LogLevel  string       `yaml:"logLevel"`
	Notify    NotifyConfig `yaml:"notify"`
	NTP       NTPConfig    `yaml:"ntp"`
}

type NotifyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Tick    string `yaml:"tick"` // Go duration string, e.g. "1s"
}

type NTPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Server  string `yaml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Notify:   NotifyConfig{Enabled: true, Tick: "1s"},
		NTP:      NTPConfig{Server: "pool.ntp.org"},
	}
}

// Load reads the config at path, falling back to .iljeong.yaml and then to
// defaults when no path was specified and no file exists. Fields absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	useDefaultConf := path == ""
	if useDefaultConf {
		path = defaultPath
	}

	conf := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return &conf, nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	if _, err := conf.Notify.TickDuration(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// TickDuration parses the scheduler cadence.
func (n NotifyConfig) TickDuration() (time.Duration, error) {
	d, err := time.ParseDuration(n.Tick)
	if err != nil {
		return 0, fmt.Errorf("invalid notify tick %q: %w", n.Tick, err)
	}
	return d, nil
}

// SlogLevel maps the configured log level onto slog's levels, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
