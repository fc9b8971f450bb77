package scrollfx

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the host configuration read from the environment.
type Config struct {
	Title  string `env:"SCROLLFX_TITLE" envDefault:"scrollfx"`
	Width  int    `env:"SCROLLFX_WIDTH" envDefault:"1280"`
	Height int    `env:"SCROLLFX_HEIGHT" envDefault:"800"`

	// WheelStep is the scroll distance in pixels per wheel notch.
	WheelStep float64 `env:"SCROLLFX_WHEEL_STEP" envDefault:"60"`
	// KeyStep is the scroll distance in pixels per arrow key press.
	KeyStep float64 `env:"SCROLLFX_KEY_STEP" envDefault:"120"`
	// ScrollDuration is the keyboard scroll animation length in seconds.
	ScrollDuration float32 `env:"SCROLLFX_SCROLL_DURATION" envDefault:"0.35"`

	ShowFPS  bool   `env:"SCROLLFX_SHOW_FPS" envDefault:"false"`
	Debug    bool   `env:"SCROLLFX_DEBUG" envDefault:"false"`
	LogLevel string `env:"SCROLLFX_LOG_LEVEL" envDefault:"warn"`

	// Script is an optional path to a JSON scroll script (see ScrollScript).
	Script        string `env:"SCROLLFX_SCRIPT"`
	ScreenshotDir string `env:"SCROLLFX_SCREENSHOT_DIR" envDefault:"screenshots"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse env: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.WheelStep < 0 || cfg.KeyStep < 0 || cfg.ScrollDuration < 0 {
		return Config{}, fmt.Errorf("parse env: scroll steps and duration must not be negative")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("parse env: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// RunConfig derives the window and input settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:          c.Title,
		Width:          c.Width,
		Height:         c.Height,
		ShowFPS:        c.ShowFPS,
		WheelStep:      c.WheelStep,
		KeyStep:        c.KeyStep,
		ScrollDuration: c.ScrollDuration,
	}
}
