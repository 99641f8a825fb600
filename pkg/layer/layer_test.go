package layer

import (
	"errors"
	"testing"
)

func TestNewManager(t *testing.T) {
	m, err := NewManager(32, 16)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.Width() != 32 || m.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", m.Width(), m.Height())
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-4, 4}} {
		if _, err := NewManager(size[0], size[1]); !errors.Is(err, ErrInvalidCanvas) {
			t.Errorf("NewManager(%d, %d) error = %v, want ErrInvalidCanvas", size[0], size[1], err)
		}
	}
}

func TestAddLayerDefaults(t *testing.T) {
	m, _ := NewManager(4, 3)
	l := m.AddLayer()

	if l.Width != 4 || l.Height != 3 {
		t.Errorf("layer size = %dx%d, want 4x3", l.Width, l.Height)
	}
	if !l.Visible {
		t.Error("new layer should be visible")
	}
	if l.Opacity != 255 {
		t.Errorf("Opacity = %d, want 255", l.Opacity)
	}
	if l.OffsetX != 0 || l.OffsetY != 0 {
		t.Errorf("offset = (%d, %d), want (0, 0)", l.OffsetX, l.OffsetY)
	}
	if len(l.Pixels) != 12 {
		t.Fatalf("len(Pixels) = %d, want 12", len(l.Pixels))
	}
	for i, p := range l.Pixels {
		if p != 0 {
			t.Fatalf("Pixels[%d] = %d, want 0", i, p)
		}
	}
}

func TestAddLayerOrder(t *testing.T) {
	m, _ := NewManager(2, 2)
	a := m.AddLayer()
	b := m.AddLayer()
	c := m.AddLayer()

	got := m.Layers()
	want := []*Layer{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Layers()[%d] = %d, want %d", i, got[i].ID, want[i].ID)
		}
	}
	if a.ID == b.ID || b.ID == c.ID {
		t.Error("layer IDs must be unique")
	}
}

func TestRemove(t *testing.T) {
	m, _ := NewManager(2, 2)
	a := m.AddLayer()
	b := m.AddLayer()
	c := m.AddLayer()

	if err := m.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if _, ok := m.ByID(b.ID); ok {
		t.Error("removed layer still reachable by ID")
	}
	if m.Index(a.ID) != 0 || m.Index(c.ID) != 1 {
		t.Errorf("indices after remove: a=%d c=%d", m.Index(a.ID), m.Index(c.ID))
	}

	for _, i := range []int{-1, 2, 5} {
		if err := m.Remove(i); !errors.Is(err, ErrLayerIndex) {
			t.Errorf("Remove(%d) error = %v, want ErrLayerIndex", i, err)
		}
	}

	// IDs are not reused.
	d := m.AddLayer()
	if d.ID == b.ID {
		t.Error("new layer reused a removed ID")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int // original positions in resulting order
	}{
		{"up", 0, 2, []int{1, 2, 0, 3}},
		{"down", 3, 1, []int{0, 3, 1, 2}},
		{"same", 2, 2, []int{0, 1, 2, 3}},
		{"top to bottom", 3, 0, []int{3, 0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewManager(1, 1)
			var orig []*Layer
			for i := 0; i < 4; i++ {
				orig = append(orig, m.AddLayer())
			}
			if err := m.Move(tt.from, tt.to); err != nil {
				t.Fatalf("Move(%d, %d): %v", tt.from, tt.to, err)
			}
			got := m.Layers()
			for i, w := range tt.want {
				if got[i] != orig[w] {
					t.Errorf("position %d holds layer %d, want %d", i, got[i].ID, orig[w].ID)
				}
			}
		})
	}

	m, _ := NewManager(1, 1)
	m.AddLayer()
	if err := m.Move(0, 1); !errors.Is(err, ErrLayerIndex) {
		t.Errorf("Move(0, 1) error = %v, want ErrLayerIndex", err)
	}
}

func TestLayersIsCopy(t *testing.T) {
	m, _ := NewManager(1, 1)
	m.AddLayer()
	s := m.Layers()
	s[0] = nil
	if l, err := m.At(0); err != nil || l == nil {
		t.Error("mutating Layers() result changed the stack")
	}
}

func TestLayerPixelAccess(t *testing.T) {
	l := NewLayer(1, 3, 2)

	if !l.Set(2, 1, 7) {
		t.Fatal("Set(2, 1) returned false")
	}
	if got := l.Pixels[1*3+2]; got != 7 {
		t.Errorf("row-major storage: Pixels[5] = %d, want 7", got)
	}
	if v, ok := l.At(2, 1); !ok || v != 7 {
		t.Errorf("At(2, 1) = %d, %v, want 7, true", v, ok)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if l.Set(p[0], p[1], 1) {
			t.Errorf("Set(%d, %d) should fail", p[0], p[1])
		}
		if _, ok := l.At(p[0], p[1]); ok {
			t.Errorf("At(%d, %d) should fail", p[0], p[1])
		}
	}

	l.Fill(3)
	for i, p := range l.Pixels {
		if p != 3 {
			t.Fatalf("after Fill: Pixels[%d] = %d, want 3", i, p)
		}
	}
}

func TestCovers(t *testing.T) {
	l := NewLayer(1, 1, 2)
	l.SetOffset(1, 0)

	tests := []struct {
		x, y   int
		lx, ly int
		ok     bool
	}{
		{0, 0, -1, 0, false},
		{1, 0, 0, 0, true},
		{1, 1, 0, 1, true},
		{2, 0, 1, 0, false},
		{1, 2, 0, 2, false},
	}
	for _, tt := range tests {
		lx, ly, ok := l.Covers(tt.x, tt.y)
		if lx != tt.lx || ly != tt.ly || ok != tt.ok {
			t.Errorf("Covers(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.x, tt.y, lx, ly, ok, tt.lx, tt.ly, tt.ok)
		}
	}
}

func TestAddLayerSized(t *testing.T) {
	m, _ := NewManager(4, 4)
	l := m.AddLayerSized(1, 2)

	if l.Width != 1 || l.Height != 2 || len(l.Pixels) != 2 {
		t.Errorf("layer = %dx%d with %d pixels, want 1x2 with 2", l.Width, l.Height, len(l.Pixels))
	}
	if err := l.CheckBitmap(); err != nil {
		t.Errorf("CheckBitmap: %v", err)
	}
	if m.Width() != 4 || m.Height() != 4 {
		t.Error("sized layer changed the canvas")
	}
	if next := m.AddLayer(); next.ID == l.ID {
		t.Error("AddLayerSized and AddLayer share an ID")
	}
}

func TestResize(t *testing.T) {
	l := NewLayer(1, 3, 2)
	copy(l.Pixels, []uint8{
		1, 2, 3,
		4, 5, 6,
	})

	l.Resize(2, 3)
	want := []uint8{
		1, 2,
		4, 5,
		0, 0,
	}
	if l.Width != 2 || l.Height != 3 {
		t.Fatalf("size = %dx%d, want 2x3", l.Width, l.Height)
	}
	if string(l.Pixels) != string(want) {
		t.Errorf("Pixels = %v, want %v", l.Pixels, want)
	}

	l.Resize(-1, 4)
	if l.Width != 0 || len(l.Pixels) != 0 {
		t.Errorf("negative width: size = %dx%d, %d pixels", l.Width, l.Height, len(l.Pixels))
	}
	if err := l.CheckBitmap(); err != nil {
		t.Errorf("CheckBitmap after Resize: %v", err)
	}
}

func TestResizeRepairsMismatchedBitmap(t *testing.T) {
	l := NewLayer(1, 2, 2)
	l.Width = 3
	if err := l.CheckBitmap(); !errors.Is(err, ErrBitmapSize) {
		t.Fatalf("CheckBitmap error = %v, want ErrBitmapSize", err)
	}

	l.Resize(3, 2)
	if err := l.CheckBitmap(); err != nil {
		t.Errorf("CheckBitmap after Resize: %v", err)
	}
}

func TestPixelAccessOnMismatchedBitmap(t *testing.T) {
	l := NewLayer(1, 2, 2)
	l.Width = 3

	// (1, 1) is inside the claimed bounds but past the buffer.
	if _, ok := l.At(1, 1); ok {
		t.Error("At(1, 1) read past the pixel buffer")
	}
	if l.Set(1, 1, 4) {
		t.Error("Set(1, 1) wrote past the pixel buffer")
	}
}
