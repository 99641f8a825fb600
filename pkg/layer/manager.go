package layer

import "fmt"

// Manager owns the layer stack for one canvas.
// Layers are ordered bottom to top; index 0 is composited first.
type Manager struct {
	width  int
	height int
	layers []*Layer
	nextID ID
}

// NewManager creates an empty stack for a width x height canvas.
func NewManager(width, height int) (*Manager, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	return &Manager{
		width:  width,
		height: height,
		layers: make([]*Layer, 0, 4),
		nextID: 1,
	}, nil
}

// Width returns the canvas width.
func (m *Manager) Width() int { return m.width }

// Height returns the canvas height.
func (m *Manager) Height() int { return m.height }

// Len returns the number of layers.
func (m *Manager) Len() int { return len(m.layers) }

// AddLayer appends a canvas-sized default layer on top of the stack.
func (m *Manager) AddLayer() *Layer {
	return m.AddLayerSized(m.width, m.height)
}

// AddLayerSized appends a width x height default layer on top of the
// stack. Its size is independent of the canvas.
func (m *Manager) AddLayerSized(width, height int) *Layer {
	l := NewLayer(m.nextID, width, height)
	m.nextID++
	m.layers = append(m.layers, l)
	return l
}

// At returns the layer at stack index i.
func (m *Manager) At(i int) (*Layer, error) {
	if i < 0 || i >= len(m.layers) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrLayerIndex, i, len(m.layers))
	}
	return m.layers[i], nil
}

// Index returns the stack index of the layer with the given ID, or -1.
func (m *Manager) Index(id ID) int {
	for i, l := range m.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// ByID returns the layer with the given ID.
func (m *Manager) ByID(id ID) (*Layer, bool) {
	if i := m.Index(id); i >= 0 {
		return m.layers[i], true
	}
	return nil, false
}

// Remove deletes the layer at stack index i.
func (m *Manager) Remove(i int) error {
	if i < 0 || i >= len(m.layers) {
		return fmt.Errorf("%w: %d (have %d)", ErrLayerIndex, i, len(m.layers))
	}
	copy(m.layers[i:], m.layers[i+1:])
	m.layers[len(m.layers)-1] = nil
	m.layers = m.layers[:len(m.layers)-1]
	return nil
}

// Move relocates the layer at index from to index to, shifting the
// layers in between.
func (m *Manager) Move(from, to int) error {
	n := len(m.layers)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from %d (have %d)", ErrLayerIndex, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to %d (have %d)", ErrLayerIndex, to, n)
	}
	l := m.layers[from]
	if from < to {
		copy(m.layers[from:to], m.layers[from+1:to+1])
	} else {
		copy(m.layers[to+1:from+1], m.layers[to:from])
	}
	m.layers[to] = l
	return nil
}

// Layers returns the stack bottom to top. The slice is a copy; the layers
// are shared.
func (m *Manager) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}
