// Package render composites a layer stack into RGB pixels and draws the
// result onto a host surface through a viewport.
package render

import "github.com/Faultbox/pixelforge/pkg/palette"

// Surface is the drawing capability a host provides.
// Coordinates are in device units.
type Surface interface {
	SetFillColor(c palette.RGB)
	FillRect(x, y, w, h float64)
}

// Command is one filled rectangle recorded by a Recorder.
type Command struct {
	Color palette.RGB
	X, Y  float64
	W, H  float64
}

// Recorder is a Surface that stores every fill instead of drawing it.
type Recorder struct {
	Commands []Command
	fill     palette.RGB
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (r *Recorder) SetFillColor(c palette.RGB) {
	r.fill = c
}

// FillRect records a rectangle in the current fill color.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Color: r.fill, X: x, Y: y, W: w, H: h})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.fill = palette.RGB{}
}
