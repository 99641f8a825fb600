// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/pixelforge/pkg/palette"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all editor settings.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Palette  PaletteConfig  `yaml:"palette"`
	Viewport ViewportConfig `yaml:"viewport"`
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CanvasConfig holds the logical canvas size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaletteConfig holds the palette capacity and seed entries.
type PaletteConfig struct {
	Size   int            `yaml:"size"`
	Colors map[int]string `yaml:"colors"` // index -> "#rrggbb"
}

// ViewportConfig holds the initial pan/zoom and input step.
type ViewportConfig struct {
	Zoom     float64 `yaml:"zoom"`
	ZoomStep float64 `yaml:"zoom_step"` // Factor applied per zoom-in key press
	PanX     int     `yaml:"pan_x"`
	PanY     int     `yaml:"pan_y"`
}

// WindowConfig holds display settings for the SDL host.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  64,
			Height: 64,
		},
		Palette: PaletteConfig{
			Size: palette.DefaultSize,
			Colors: map[int]string{
				1: "#ffffff",
			},
		},
		Viewport: ViewportConfig{
			Zoom:     8,
			ZoomStep: 2,
		},
		Window: WindowConfig{
			Title:    "Pixelforge",
			Width:    1024,
			Height:   768,
			VSync:    true,
			FPSLimit: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the engine cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Palette.Size < 1 || c.Palette.Size > palette.DefaultSize {
		errs = append(errs, fmt.Errorf("palette size %d out of 1..%d", c.Palette.Size, palette.DefaultSize))
	}
	for idx, hex := range c.Palette.Colors {
		if idx < 0 || idx >= c.Palette.Size {
			errs = append(errs, fmt.Errorf("palette color index %d out of range", idx))
		}
		if _, err := palette.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette color %d: %w", idx, err))
		}
	}
	if !(c.Viewport.Zoom > 0) {
		errs = append(errs, fmt.Errorf("viewport zoom %v must be positive", c.Viewport.Zoom))
	}
	if !(c.Viewport.ZoomStep > 1) {
		errs = append(errs, fmt.Errorf("viewport zoom_step %v must be greater than 1", c.Viewport.ZoomStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
