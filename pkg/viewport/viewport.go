// Package viewport provides the pan/zoom transform from canvas space to
// screen space.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScale is returned for zoom factors that are not finite and
// strictly positive.
var ErrInvalidScale = errors.New("invalid zoom scale")

// Viewport holds a pan offset in canvas pixels and a zoom in screen pixels
// per canvas pixel.
type Viewport struct {
	OffsetX int
	OffsetY int
	Zoom    float64
}

// New returns a viewport with zero offset and zoom 1.
func New() Viewport {
	return Viewport{Zoom: 1.0}
}

// Reset restores the defaults from New.
func (v *Viewport) Reset() {
	*v = New()
}

// Pan adds (dx, dy) to the offset.
func (v *Viewport) Pan(dx, dy int) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomBy multiplies the zoom by factor. The viewport is left unchanged
// when factor or the resulting zoom is not a finite positive number.
func (v *Viewport) ZoomBy(factor float64) error {
	if !validScale(factor) {
		return fmt.Errorf("%w: factor %v", ErrInvalidScale, factor)
	}
	z := v.Zoom * factor
	if !validScale(z) {
		return fmt.Errorf("%w: zoom %v * %v", ErrInvalidScale, v.Zoom, factor)
	}
	v.Zoom = z
	return nil
}

// SetZoom sets an absolute zoom.
func (v *Viewport) SetZoom(zoom float64) error {
	if !validScale(zoom) {
		return fmt.Errorf("%w: zoom %v", ErrInvalidScale, zoom)
	}
	v.Zoom = zoom
	return nil
}

// ToScreen maps the top-left corner of canvas pixel (cx, cy) to screen
// coordinates.
func (v Viewport) ToScreen(cx, cy int) (sx, sy float64) {
	sx = float64(cx+v.OffsetX) * v.Zoom
	sy = float64(cy+v.OffsetY) * v.Zoom
	return sx, sy
}

// ToCanvas maps a screen position back to the canvas pixel containing it.
func (v Viewport) ToCanvas(sx, sy float64) (cx, cy int) {
	cx = int(math.Floor(sx/v.Zoom)) - v.OffsetX
	cy = int(math.Floor(sy/v.Zoom)) - v.OffsetY
	return cx, cy
}

// Center sets the offset so a canvasW x canvasH canvas sits in the middle
// of a screenW x screenH area at the current zoom. Odd remainders round
// toward the top-left.
func (v *Viewport) Center(screenW, screenH, canvasW, canvasH int) {
	v.OffsetX = int(math.Floor((float64(screenW)/v.Zoom - float64(canvasW)) / 2))
	v.OffsetY = int(math.Floor((float64(screenH)/v.Zoom - float64(canvasH)) / 2))
}

// CellSize returns the screen size of one canvas pixel.
func (v Viewport) CellSize() float64 {
	return v.Zoom
}

func validScale(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
