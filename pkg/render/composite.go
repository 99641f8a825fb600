package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/pixelforge/pkg/layer"
	"github.com/Faultbox/pixelforge/pkg/palette"
	"github.com/Faultbox/pixelforge/pkg/viewport"
)

// Compositing errors.
var (
	// ErrIndexOutOfRange is returned when a layer holds an index the
	// palette does not have.
	ErrIndexOutOfRange = palette.ErrIndexOutOfRange

	// ErrBitmapSize is returned when a layer's pixel buffer does not
	// match its dimensions.
	ErrBitmapSize = layer.ErrBitmapSize
)

// Frame is a fully resolved canvas, one color per pixel, row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []palette.RGB
}

// At returns the color of canvas pixel (x, y).
func (f *Frame) At(x, y int) palette.RGB {
	return f.Pix[y*f.Width+x]
}

// RGBA converts the frame to an opaque image.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// Blend mixes src over acc with opacity alpha. Each channel is
// (alpha*src + (255-alpha)*acc) / 255, truncated.
func Blend(acc, src palette.RGB, alpha uint8) palette.RGB {
	switch alpha {
	case 0:
		return acc
	case 255:
		return src
	}
	a := uint32(alpha)
	return palette.RGB{
		R: uint8((a*uint32(src.R) + (255-a)*uint32(acc.R)) / 255),
		G: uint8((a*uint32(src.G) + (255-a)*uint32(acc.G)) / 255),
		B: uint8((a*uint32(src.B) + (255-a)*uint32(acc.B)) / 255),
	}
}

// Composite resolves every canvas pixel by walking the stack bottom to top
// over a black background. Hidden layers, fully transparent layers and
// layers not covering a pixel leave it unchanged.
//
// A stored index outside the palette, or a layer whose pixel buffer does
// not match its size, aborts the whole pass.
func Composite(m *layer.Manager, p *palette.Palette) (*Frame, error) {
	layers := m.Layers()
	for _, l := range layers {
		if err := l.CheckBitmap(); err != nil {
			return nil, err
		}
	}

	w, h := m.Width(), m.Height()
	f := &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]palette.RGB, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc palette.RGB

			for _, l := range layers {
				if !l.Visible {
					continue
				}

				lx, ly, ok := l.Covers(x, y)
				if !ok {
					continue
				}

				idx := l.Pixels[ly*l.Width+lx]
				c, err := p.Lookup(int(idx))
				if err != nil {
					return nil, fmt.Errorf("layer %d at canvas (%d, %d): %w", l.ID, x, y, err)
				}

				acc = Blend(acc, c, l.Opacity)
			}

			f.Pix[y*w+x] = acc
		}
	}

	return f, nil
}

// Draw emits one filled zoom x zoom rectangle per frame pixel, row-major.
func Draw(s Surface, f *Frame, v viewport.Viewport) {
	size := v.CellSize()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sx, sy := v.ToScreen(x, y)
			s.SetFillColor(f.Pix[y*f.Width+x])
			s.FillRect(sx, sy, size, size)
		}
	}
}

// Render composites the stack and draws it. Nothing is drawn if
// compositing fails.
func Render(s Surface, m *layer.Manager, p *palette.Palette, v viewport.Viewport) error {
	f, err := Composite(m, p)
	if err != nil {
		return err
	}
	Draw(s, f, v)
	return nil
}
