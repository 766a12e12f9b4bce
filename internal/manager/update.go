package manager

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

// Update handles viewport, mouse and click timer messages and returns the
// commands they produce. Other messages only flush registry changes.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	m.sync()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseClickMsg:
		m.handleClick(msg)
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		p := geometry.Pt(float64(mouse.X), float64(mouse.Y))
		for _, w := range m.stack {
			w.Controller().Move(p)
		}
	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		p := geometry.Pt(float64(mouse.X), float64(mouse.Y))
		for _, w := range m.stack {
			w.Controller().Up(p)
		}
	case tea.MouseWheelMsg:
		m.handleWheel(msg)
	case ClickTimeoutMsg:
		if i := m.index(msg.WindowID); i >= 0 {
			fired := m.stack[i].Controller().Fire(msg.Token)
			m.log.Debug("click timeout", "id", msg.WindowID, "token", msg.Token, "fired", fired)
		}
	}

	// Handlers may have closed windows.
	m.sync()

	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Manager) resize(width, height int) {
	m.viewport = geometry.Dims{Width: float64(width), Height: float64(height)}
	for _, w := range m.stack {
		w.Controller().SetViewport(m.viewport)
	}
	m.log.Debug("viewport", "width", width, "height", height)
}

// hit returns the index of the topmost window under p and what was hit.
func (m *Manager) hit(p geometry.Point) (int, window.Region) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if r := m.stack[i].HitTest(p); r.Kind != window.RegionNone {
			return i, r
		}
	}
	return -1, window.Region{}
}

func (m *Manager) handleClick(msg tea.MouseClickMsg) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return
	}
	p := geometry.Pt(float64(mouse.X), float64(mouse.Y))

	i, region := m.hit(p)
	if i < 0 {
		return
	}
	m.raise(i)
	w := m.stack[len(m.stack)-1]
	m.log.Debug("press", "id", w.ID, "region", region, "x", mouse.X, "y", mouse.Y)

	switch region.Kind {
	case window.RegionClose:
		if onClose := w.HeaderProps(true).OnClose; onClose != nil {
			onClose()
		}
	case window.RegionHeader:
		if down := w.HeaderProps(true).DragHandle.OnPointerDown; down != nil {
			down(p)
		}
	case window.RegionResize:
		w.Controller().ResizeDown(region.Direction, p)
	}
}

func (m *Manager) handleWheel(msg tea.MouseWheelMsg) {
	mouse := msg.Mouse()
	p := geometry.Pt(float64(mouse.X), float64(mouse.Y))

	i, region := m.hit(p)
	if i < 0 || region.Kind != window.RegionBody {
		return
	}
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.stack[i].ScrollBy(-m.opts.WheelStep)
	case tea.MouseWheelDown:
		m.stack[i].ScrollBy(m.opts.WheelStep)
	}
}
