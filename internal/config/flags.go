package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagCanvasWidth  = flag.Int("canvas-width", 0, "Canvas width in pixels")
	flagCanvasHeight = flag.Int("canvas-height", 0, "Canvas height in pixels")
	flagZoom         = flag.Float64("zoom", 0, "Initial zoom (screen pixels per canvas pixel)")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagSaveConfig   = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCanvasWidth > 0 {
		cfg.Canvas.Width = *flagCanvasWidth
	}
	if *flagCanvasHeight > 0 {
		cfg.Canvas.Height = *flagCanvasHeight
	}
	if *flagZoom > 0 {
		cfg.Viewport.Zoom = *flagZoom
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
}
