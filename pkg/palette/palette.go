// Package palette provides the indexed color table shared by all layers.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the number of entries in a palette created by New.
// Layer pixels are bytes, so this is also the largest usable palette.
const DefaultSize = 256

// Palette errors.
var (
	ErrIndexOutOfRange = errors.New("palette index out of range")
	ErrInvalidSize     = errors.New("invalid palette size")
	ErrInvalidHex      = errors.New("invalid hex color")
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// String returns the color in CSS form, e.g. "rgb(255,0,0)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Palette maps small integer indices to RGB triples.
// Entries are stored flat: index i occupies colors[3i:3i+3].
type Palette struct {
	colors []byte
}

// New returns a palette with DefaultSize entries, all black.
func New() *Palette {
	return &Palette{colors: make([]byte, DefaultSize*3)}
}

// NewSize returns a black palette with n entries.
func NewSize(n int) (*Palette, error) {
	if n < 1 || n > DefaultSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, n, DefaultSize)
	}
	return &Palette{colors: make([]byte, n*3)}, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors) / 3
}

// SetColor overwrites the entry at index.
func (p *Palette) SetColor(index int, r, g, b uint8) error {
	if err := p.check(index); err != nil {
		return err
	}
	off := index * 3
	p.colors[off] = r
	p.colors[off+1] = g
	p.colors[off+2] = b
	return nil
}

// Set is SetColor taking an RGB value.
func (p *Palette) Set(index int, c RGB) error {
	return p.SetColor(index, c.R, c.G, c.B)
}

// Lookup returns the color stored at index.
func (p *Palette) Lookup(index int) (RGB, error) {
	if err := p.check(index); err != nil {
		return RGB{}, err
	}
	off := index * 3
	return RGB{R: p.colors[off], G: p.colors[off+1], B: p.colors[off+2]}, nil
}

// Bytes returns a copy of the flat R,G,B table.
func (p *Palette) Bytes() []byte {
	out := make([]byte, len(p.colors))
	copy(out, p.colors)
	return out
}

func (p *Palette) check(index int) error {
	if index < 0 || index >= p.Len() {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, p.Len())
	}
	return nil
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
