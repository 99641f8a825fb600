package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/Faultbox/pixelforge/pkg/palette"
)

// ImageSurface is an offscreen Surface backed by an RGBA image.
// Rectangles are snapped to whole device pixels and clipped to the image.
type ImageSurface struct {
	img  *image.RGBA
	fill *image.Uniform
}

// NewImageSurface creates a black width x height surface.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		fill: image.NewUniform(color.RGBA{A: 255}),
	}
	s.Clear(palette.RGB{})
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole surface with c.
func (s *ImageSurface) Clear(c palette.RGB) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (s *ImageSurface) SetFillColor(c palette.RGB) {
	s.fill.C = toRGBA(c)
}

// FillRect paints the device pixels whose centers fall inside the
// rectangle. Both edges are rounded the same way, so cells that share an
// edge up to float error tile without gaps or overlap.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	r := image.Rect(
		snap(x), snap(y),
		snap(x+w), snap(y+h),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, s.fill, image.Point{}, draw.Src)
}

// Scale returns the frame enlarged by an integer factor with
// nearest-neighbor sampling. Only for an unpanned viewport at that exact
// integer zoom does this equal an ImageSurface redraw.
func (f *Frame) Scale(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	src := f.RGBA()
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*factor, f.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// snap rounds a device coordinate to a pixel edge. Values within 1e-9 of
// a half are pushed up so x and x+w from adjacent cells agree.
func snap(v float64) int {
	return int(math.Floor(v + 0.5 + 1e-9))
}

func toRGBA(c palette.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
