// Package window provides an SDL2 window whose renderer serves as the
// engine's drawing surface.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/pixelforge/internal/logger"
	"github.com/Faultbox/pixelforge/pkg/palette"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window and its 2D renderer.
// It implements render.Surface.
type Window struct {
	config   Config
	window   *sdl.Window
	renderer *sdl.Renderer
	rect     sdl.FRect
	err      error // First draw error since the last Present
}

// New creates a window with an accelerated renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{config: cfg}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, rflags)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// SetFillColor sets the draw color for subsequent FillRect calls.
func (w *Window) SetFillColor(c palette.RGB) {
	w.keep(w.renderer.SetDrawColor(c.R, c.G, c.B, 255))
}

// FillRect fills a rectangle in window coordinates.
func (w *Window) FillRect(x, y, width, height float64) {
	w.rect = sdl.FRect{X: float32(x), Y: float32(y), W: float32(width), H: float32(height)}
	w.keep(w.renderer.FillRectF(&w.rect))
}

// Clear fills the backbuffer with c.
func (w *Window) Clear(c palette.RGB) {
	w.keep(w.renderer.SetDrawColor(c.R, c.G, c.B, 255))
	w.keep(w.renderer.Clear())
}

// Present shows the frame and returns the first draw error since the
// previous Present, if any.
func (w *Window) Present() error {
	w.renderer.Present()
	err := w.err
	w.err = nil
	return err
}

func (w *Window) keep(err error) {
	if err != nil && w.err == nil {
		w.err = err
	}
}

// Close destroys the renderer and window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.window != nil {
		_ = w.window.Destroy()
	}

	sdl.Quit()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// SetStatus shows status after the configured window title.
func (w *Window) SetStatus(status string) {
	w.window.SetTitle(w.config.Title + " - " + status)
}
