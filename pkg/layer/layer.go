// Package layer provides indexed-color bitmap layers and the ordered stack
// that owns them.
package layer

import (
	"errors"
	"fmt"
)

// Layer errors.
var (
	ErrInvalidCanvas = errors.New("invalid canvas size")
	ErrLayerIndex    = errors.New("layer index out of range")
	ErrBitmapSize    = errors.New("layer bitmap size mismatch")
)

// ID identifies a layer for its whole lifetime, independent of its
// position in the stack.
type ID uint64

// Layer is an indexed-color bitmap placed on the canvas.
type Layer struct {
	ID      ID
	Name    string
	Width   int
	Height  int
	OffsetX int // Origin within canvas space
	OffsetY int
	Visible bool
	Opacity uint8   // 0 = transparent, 255 = opaque
	Pixels  []uint8 // Palette indices, row-major, Width*Height
}

// NewLayer creates a visible, fully opaque layer filled with index 0.
func NewLayer(id ID, width, height int) *Layer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Layer{
		ID:      id,
		Name:    fmt.Sprintf("Layer %d", id),
		Width:   width,
		Height:  height,
		Visible: true,
		Opacity: 255,
		Pixels:  make([]uint8, width*height),
	}
}

// Resize changes the bitmap dimensions, keeping the overlapping top-left
// region and filling new pixels with index 0. Negative sizes become 0.
func (l *Layer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pixels := make([]uint8, width*height)
	if l.CheckBitmap() == nil {
		cw, ch := min(width, l.Width), min(height, l.Height)
		for y := 0; y < ch; y++ {
			copy(pixels[y*width:y*width+cw], l.Pixels[y*l.Width:y*l.Width+cw])
		}
	}
	l.Width = width
	l.Height = height
	l.Pixels = pixels
}

// CheckBitmap reports whether Pixels holds exactly Width*Height entries.
func (l *Layer) CheckBitmap() error {
	if l.Width < 0 || l.Height < 0 || len(l.Pixels) != l.Width*l.Height {
		return fmt.Errorf("%w: layer %d is %dx%d with %d pixels",
			ErrBitmapSize, l.ID, l.Width, l.Height, len(l.Pixels))
	}
	return nil
}

// Contains reports whether layer-local (lx, ly) lies inside the bitmap.
func (l *Layer) Contains(lx, ly int) bool {
	return lx >= 0 && ly >= 0 && lx < l.Width && ly < l.Height
}

// At returns the palette index at layer-local (lx, ly).
func (l *Layer) At(lx, ly int) (uint8, bool) {
	i := ly*l.Width + lx
	if !l.Contains(lx, ly) || i >= len(l.Pixels) {
		return 0, false
	}
	return l.Pixels[i], true
}

// Set writes a palette index at layer-local (lx, ly).
// Returns false if the coordinate is outside the bitmap.
func (l *Layer) Set(lx, ly int, index uint8) bool {
	i := ly*l.Width + lx
	if !l.Contains(lx, ly) || i >= len(l.Pixels) {
		return false
	}
	l.Pixels[i] = index
	return true
}

// Fill sets every pixel to index.
func (l *Layer) Fill(index uint8) {
	for i := range l.Pixels {
		l.Pixels[i] = index
	}
}

// SetOffset moves the layer origin within the canvas.
func (l *Layer) SetOffset(x, y int) {
	l.OffsetX = x
	l.OffsetY = y
}

// SetOpacity sets the layer opacity.
func (l *Layer) SetOpacity(a uint8) {
	l.Opacity = a
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) {
	l.Visible = v
}

// Covers reports whether the layer contributes to canvas pixel (x, y),
// returning the layer-local coordinate when it does.
func (l *Layer) Covers(x, y int) (lx, ly int, ok bool) {
	lx = x - l.OffsetX
	ly = y - l.OffsetY
	return lx, ly, l.Contains(lx, ly)
}
