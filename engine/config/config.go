package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/geometry"
)

const DefaultPath = "config/solids.toml"

var (
	ErrInvalidSegments = fmt.Errorf("scene.segments must be between 3 and %d", geometry.MaxCylinderSegments)
	ErrInvalidWindow   = errors.New("window width and height must be nonzero")
	ErrInvalidRadius   = errors.New("scene.radius must be positive")
	ErrInvalidHeight   = errors.New("scene.top must be above scene.bottom")
	ErrInvalidLogLevel = errors.New("log.level must be one of debug, info, warn, error")
)

type WindowConfig struct {
	Title  string `toml:"title"`
	X      uint32 `toml:"x"`
	Y      uint32 `toml:"y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type SceneConfig struct {
	Segments      uint32     `toml:"segments"`
	Radius        float32    `toml:"radius"`
	Top           float32    `toml:"top"`
	Bottom        float32    `toml:"bottom"`
	CylinderColor [4]float32 `toml:"cylinder_color"`
	ClearColor    [4]float32 `toml:"clear_color"`
	InitialAngles [3]float32 `toml:"initial_angles"`
	// Each frame every angle decreases by a random whole number of degrees in [0, Jitter).
	Jitter uint32 `toml:"jitter"`
	// Zero seeds from the clock.
	Seed uint64 `toml:"seed"`
}

type Config struct {
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Scene  SceneConfig  `toml:"scene"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Color Cube",
			X:      100,
			Y:      100,
			Width:  800,
			Height: 800,
		},
		Log: LogConfig{
			Level: "info",
		},
		Scene: SceneConfig{
			Segments:      64,
			Radius:        0.5,
			Top:           0.5,
			Bottom:        -0.5,
			CylinderColor: [4]float32{0.8, 0.0, 0.0, 1.0},
			ClearColor:    [4]float32{1.0, 1.0, 1.0, 1.0},
			InitialAngles: [3]float32{20, 20, 20},
			Jitter:        2,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogInfo("config file %s not found, using defaults", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML document on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return ErrInvalidWindow
	}
	if c.Scene.Segments < 3 || c.Scene.Segments > geometry.MaxCylinderSegments {
		return fmt.Errorf("%w, got %d", ErrInvalidSegments, c.Scene.Segments)
	}
	if c.Scene.Radius <= 0 {
		return ErrInvalidRadius
	}
	if c.Scene.Top <= c.Scene.Bottom {
		return ErrInvalidHeight
	}
	if _, ok := core.ParseLogLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured level. Validate guarantees it parses.
func (c *Config) LogLevel() core.LogLevel {
	level, _ := core.ParseLogLevel(c.Log.Level)
	return level
}

// GeometryChanged reports whether other needs the meshes to be rebuilt.
func (c *Config) GeometryChanged(other *Config) bool {
	return c.Scene.Segments != other.Scene.Segments ||
		c.Scene.Radius != other.Scene.Radius ||
		c.Scene.Top != other.Scene.Top ||
		c.Scene.Bottom != other.Scene.Bottom
}
