package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration. Gameplay balancing is compiled in and
// deliberately absent here.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Logging LoggingConfig `yaml:"logging"`
	Run     RunConfig     `yaml:"run"`
	Debug   DebugConfig   `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize int `yaml:"tile_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

type RunConfig struct {
	// Seed for the simulation RNG; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
}

type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
	ShowStats    bool `yaml:"show_stats"`
}

var GlobalConfig *Config

// Default returns the configuration matching an 800x600 window with 16px tiles.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "The Next Level",
		},
		World: WorldConfig{
			TileSize: 16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads filename and overlays it on Default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	GlobalConfig = cfg
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.World.TileSize)
	}
	if c.GetMapWidth() < 1 || c.GetMapHeight() < 1 {
		return fmt.Errorf("screen %dx%d holds no %dpx tiles",
			c.Display.ScreenWidth, c.Display.ScreenHeight, c.World.TileSize)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

// GetMapWidth is the grid width in cells.
func (c *Config) GetMapWidth() int {
	return c.Display.ScreenWidth / c.World.TileSize
}

// GetMapHeight is the grid height in cells.
func (c *Config) GetMapHeight() int {
	return c.Display.ScreenHeight / c.World.TileSize
}
