package manager

import (
	"charm.land/lipgloss/v2"
)

// Layers renders every window as a canvas layer, bottom to top. The
// focused window is the last one.
func (m *Manager) Layers() []*lipgloss.Layer {
	m.sync()
	vw, vh := int(m.viewport.Width), int(m.viewport.Height)
	layers := make([]*lipgloss.Layer, 0, len(m.stack))
	for z, w := range m.stack {
		layers = append(layers, w.Layer(z == len(m.stack)-1, z, vw, vh))
	}
	return layers
}

// Canvas composes the windows onto a viewport-sized canvas.
func (m *Manager) Canvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(int(m.viewport.Width), int(m.viewport.Height))
	for _, layer := range m.Layers() {
		canvas.Compose(layer)
	}
	return canvas
}

// Render returns the composed screen.
func (m *Manager) Render() string {
	return lipgloss.Sprint(m.Canvas().Render())
}
