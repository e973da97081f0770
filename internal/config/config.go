package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	World   WorldConfig   `toml:"world"`
	Stress  StressConfig  `toml:"stress"`
	Sandbox SandboxConfig `toml:"sandbox"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type WorldConfig struct {
	TickRate  float64 `toml:"tick_rate"`  // frames per second
	TimeScale float64 `toml:"time_scale"` // multiplies every frame time
	Seed      uint64  `toml:"seed"`       // 0 picks a random seed
}

type StressConfig struct {
	Entities   int           `toml:"entities"`
	Duration   time.Duration `toml:"duration"`
	PoolSize   int           `toml:"pool_size"`
	QueryEvery int           `toml:"query_every"` // frames between spatial queries
}

type SandboxConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	LevelFile string `toml:"level_file"` // empty uses the built-in level
	DebugUI   bool   `toml:"debug_ui"`
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error when path is empty.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the binaries cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("world.tick_rate must be positive, got %g", c.World.TickRate))
	}
	if c.World.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("world.time_scale must not be negative, got %g", c.World.TimeScale))
	}
	if c.Stress.Entities < 0 {
		errs = append(errs, fmt.Errorf("stress.entities must not be negative, got %d", c.Stress.Entities))
	}
	if c.Stress.QueryEvery < 1 {
		errs = append(errs, fmt.Errorf("stress.query_every must be at least 1, got %d", c.Stress.QueryEvery))
	}
	if c.Sandbox.Width <= 0 || c.Sandbox.Height <= 0 {
		errs = append(errs, fmt.Errorf("sandbox size must be positive, got %dx%d", c.Sandbox.Width, c.Sandbox.Height))
	}
	return errors.Join(errs...)
}

// FrameTime is the seconds per frame implied by the tick rate.
func (w WorldConfig) FrameTime() float64 {
	return 1 / w.TickRate
}

// Interval is FrameTime as a duration.
func (w WorldConfig) Interval() time.Duration {
	return time.Duration(float64(time.Second) / w.TickRate)
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		World: WorldConfig{
			TickRate:  60,
			TimeScale: 1,
		},
		Stress: StressConfig{
			Entities:   10000,
			Duration:   10 * time.Second,
			PoolSize:   1000,
			QueryEvery: 10,
		},
		Sandbox: SandboxConfig{
			Width:   1280,
			Height:  720,
			Title:   "Game World Sandbox",
			DebugUI: true,
		},
	}
}
