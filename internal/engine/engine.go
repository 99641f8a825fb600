// Package engine ties the palette, layer stack and viewport together and
// drives rendering onto a host surface.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/pixelforge/internal/config"
	"github.com/Faultbox/pixelforge/internal/logger"
	"github.com/Faultbox/pixelforge/pkg/layer"
	"github.com/Faultbox/pixelforge/pkg/palette"
	"github.com/Faultbox/pixelforge/pkg/render"
	"github.com/Faultbox/pixelforge/pkg/viewport"
)

// ErrSurfaceUnavailable is returned when no drawing surface could be
// obtained from the host.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Options configures a new Engine.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	PaletteSize  int
	Colors       map[int]palette.RGB // Seed palette entries
	Zoom         float64
	PanX         int
	PanY         int
}

// DefaultOptions returns options for a width x height canvas with a
// 256-color black palette and an identity viewport.
func DefaultOptions(width, height int) Options {
	return Options{
		CanvasWidth:  width,
		CanvasHeight: height,
		PaletteSize:  palette.DefaultSize,
		Zoom:         1,
	}
}

// OptionsFromConfig converts loaded configuration into engine options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := Options{
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
		PaletteSize:  cfg.Palette.Size,
		Colors:       make(map[int]palette.RGB, len(cfg.Palette.Colors)),
		Zoom:         cfg.Viewport.Zoom,
		PanX:         cfg.Viewport.PanX,
		PanY:         cfg.Viewport.PanY,
	}
	for idx, hex := range cfg.Palette.Colors {
		c, err := palette.ParseHex(hex)
		if err != nil {
			return Options{}, fmt.Errorf("palette color %d: %w", idx, err)
		}
		opts.Colors[idx] = c
	}
	return opts, nil
}

// SurfaceFactory acquires a drawing surface from the host.
type SurfaceFactory func() (render.Surface, error)

// Engine is the single owned aggregate of editor state. It is not safe
// for concurrent use.
type Engine struct {
	surface  render.Surface
	palette  *palette.Palette
	layers   *layer.Manager
	viewport viewport.Viewport
	log      *zap.Logger
}

// Open acquires a surface through factory and creates an Engine on it.
func Open(opts Options, factory SurfaceFactory) (*Engine, error) {
	if factory == nil {
		return nil, ErrSurfaceUnavailable
	}
	s, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	return New(opts, s)
}

// New creates an Engine with one default layer drawing onto s.
func New(opts Options, s render.Surface) (*Engine, error) {
	if s == nil {
		return nil, ErrSurfaceUnavailable
	}

	layers, err := layer.NewManager(opts.CanvasWidth, opts.CanvasHeight)
	if err != nil {
		return nil, err
	}

	size := opts.PaletteSize
	if size == 0 {
		size = palette.DefaultSize
	}
	pal, err := palette.NewSize(size)
	if err != nil {
		return nil, err
	}
	for idx, c := range opts.Colors {
		if err := pal.Set(idx, c); err != nil {
			return nil, fmt.Errorf("seeding palette: %w", err)
		}
	}

	vp := viewport.New()
	if opts.Zoom != 0 {
		if err := vp.SetZoom(opts.Zoom); err != nil {
			return nil, err
		}
	}
	vp.Pan(opts.PanX, opts.PanY)

	e := &Engine{
		surface:  s,
		palette:  pal,
		layers:   layers,
		viewport: vp,
		log:      logger.Named("engine"),
	}
	e.layers.AddLayer()

	e.log.Info("engine created",
		zap.Int("canvas_width", opts.CanvasWidth),
		zap.Int("canvas_height", opts.CanvasHeight),
		zap.Int("palette_size", size),
		zap.Float64("zoom", vp.Zoom),
	)
	return e, nil
}

// Render composites all layers and redraws the whole canvas.
func (e *Engine) Render() error {
	if err := render.Render(e.surface, e.layers, e.palette, e.viewport); err != nil {
		e.log.Error("render aborted", zap.Error(err))
		return err
	}
	e.log.Debug("frame rendered",
		zap.Int("layers", e.layers.Len()),
		zap.Int("commands", e.layers.Width()*e.layers.Height()),
	)
	return nil
}

// SetPaletteColor overwrites one palette entry.
func (e *Engine) SetPaletteColor(index int, r, g, b uint8) error {
	if err := e.palette.SetColor(index, r, g, b); err != nil {
		e.log.Warn("set palette color rejected", zap.Int("index", index), zap.Error(err))
		return err
	}
	e.log.Debug("palette color set",
		zap.Int("index", index),
		zap.Stringer("color", palette.RGB{R: r, G: g, B: b}),
	)
	return nil
}

// Pan moves the viewport by (dx, dy) canvas pixels.
func (e *Engine) Pan(dx, dy int) {
	e.viewport.Pan(dx, dy)
	e.log.Debug("pan",
		zap.Int("dx", dx), zap.Int("dy", dy),
		zap.Int("offset_x", e.viewport.OffsetX), zap.Int("offset_y", e.viewport.OffsetY),
	)
}

// Zoom multiplies the viewport zoom by factor. Non-positive factors are
// rejected and leave the viewport unchanged.
func (e *Engine) Zoom(factor float64) error {
	if err := e.viewport.ZoomBy(factor); err != nil {
		e.log.Warn("zoom rejected", zap.Float64("factor", factor), zap.Error(err))
		return err
	}
	e.log.Debug("zoom", zap.Float64("factor", factor), zap.Float64("zoom", e.viewport.Zoom))
	return nil
}

// AddLayer pushes a new canvas-sized layer on top of the stack.
func (e *Engine) AddLayer() *layer.Layer {
	l := e.layers.AddLayer()
	e.log.Debug("layer added", zap.Uint64("id", uint64(l.ID)), zap.Int("depth", e.layers.Len()))
	return l
}

// Layers returns the layer stack.
func (e *Engine) Layers() *layer.Manager { return e.layers }

// Palette returns the palette.
func (e *Engine) Palette() *palette.Palette { return e.palette }

// Viewport returns a copy of the current viewport.
func (e *Engine) Viewport() viewport.Viewport { return e.viewport }

// ScreenToCanvas maps a host pointer position to a canvas pixel.
func (e *Engine) ScreenToCanvas(sx, sy float64) (x, y int, ok bool) {
	x, y = e.viewport.ToCanvas(sx, sy)
	ok = x >= 0 && y >= 0 && x < e.layers.Width() && y < e.layers.Height()
	return x, y, ok
}

// Sample is the composited color of one canvas pixel.
type Sample struct {
	X, Y  int
	Color palette.RGB
}

// Inspect composites the stack and reports the pixel under host position
// (sx, sy). ok is false when the position lies outside the canvas.
func (e *Engine) Inspect(sx, sy float64) (s Sample, ok bool, err error) {
	x, y, ok := e.ScreenToCanvas(sx, sy)
	if !ok {
		e.log.Debug("inspect outside canvas", zap.Float64("sx", sx), zap.Float64("sy", sy))
		return Sample{}, false, nil
	}
	f, err := render.Composite(e.layers, e.palette)
	if err != nil {
		e.log.Warn("inspect failed", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		return Sample{}, false, err
	}
	s = Sample{X: x, Y: y, Color: f.At(x, y)}
	e.log.Info("pixel inspected",
		zap.Int("x", x), zap.Int("y", y),
		zap.Stringer("color", s.Color),
	)
	return s, true, nil
}

// Center places the canvas in the middle of a screenW x screenH surface
// at the current zoom.
func (e *Engine) Center(screenW, screenH int) {
	e.viewport.Center(screenW, screenH, e.layers.Width(), e.layers.Height())
	e.log.Debug("centered",
		zap.Int("screen_width", screenW), zap.Int("screen_height", screenH),
		zap.Int("offset_x", e.viewport.OffsetX), zap.Int("offset_y", e.viewport.OffsetY),
	)
}

// Status summarizes canvas size, zoom and layer count for display.
func (e *Engine) Status() string {
	return fmt.Sprintf("%dx%d @ %gx, %d layers",
		e.layers.Width(), e.layers.Height(), e.viewport.Zoom, e.layers.Len())
}
