// Package main is the entry point for the Pixelforge editor.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/pixelforge/internal/config"
	"github.com/Faultbox/pixelforge/internal/engine"
	"github.com/Faultbox/pixelforge/internal/input"
	"github.com/Faultbox/pixelforge/internal/logger"
	"github.com/Faultbox/pixelforge/internal/window"
	"github.com/Faultbox/pixelforge/pkg/palette"
	"github.com/Faultbox/pixelforge/pkg/render"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Pixelforge ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("config not saved", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", config.DefaultPath()))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("pixelforge error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	opts, err := engine.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	var win *window.Window
	eng, err := engine.Open(opts, func() (render.Surface, error) {
		w, err := window.New(window.Config{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			VSync:      cfg.Window.VSync,
		})
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	})
	if err != nil {
		if win != nil {
			win.Close()
		}
		return err
	}
	defer win.Close()

	// An explicit pan in the config wins over centering.
	if cfg.Viewport.PanX == 0 && cfg.Viewport.PanY == 0 {
		eng.Center(win.GetSize())
	}

	in := input.New(cfg.Viewport.ZoomStep)

	// Redraws happen only after a change; the frame budget paces polling.
	frame := time.Second / 60
	if cfg.Window.FPSLimit > 0 {
		frame = time.Second / time.Duration(cfg.Window.FPSLimit)
	}

	dirty := true
	for {
		start := time.Now()

		if in.Update() {
			return nil
		}
		for _, cmd := range in.Commands() {
			if err := eng.Apply(cmd); err != nil {
				logger.Warn("command rejected", zap.Stringer("kind", cmd.Kind), zap.Error(err))
				continue
			}
			dirty = true
		}

		if dirty {
			win.Clear(palette.RGB{})
			if err := eng.Render(); err != nil {
				return err
			}
			if err := win.Present(); err != nil {
				logger.Warn("draw error", zap.Error(err))
			}
			win.SetStatus(eng.Status())
			dirty = false
		}

		if elapsed := time.Since(start); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}
}
