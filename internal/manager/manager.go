// Package manager mounts a floating window for every descriptor in a
// registry and routes Bubble Tea mouse messages to them.
//
// The manager owns z-order and focus: the last window in its stack is
// drawn on top and has focus, and pressing any window raises it. Pointer
// presses are hit tested against the topmost window under the pointer;
// motion and release reach every mounted window, each of which ignores
// them unless it owns the gesture in progress.
package manager

import (
	"io"
	"slices"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
	"github.com/Gaurav-Gosain/floatwin/internal/registry"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

// ClickTimeoutMsg is delivered when the double-click window of a press on
// a fullscreen header elapses.
type ClickTimeoutMsg struct {
	WindowID string
	Token    uint64
}

// Options configures a Manager.
type Options struct {
	// Limits are the gesture limits of every window.
	Limits gesture.Limits
	// Viewport is the size used until the first tea.WindowSizeMsg.
	Viewport geometry.Dims
	// HeaderHeight is the number of header rows per window.
	HeaderHeight int
	// WheelStep is the number of lines one wheel notch scrolls.
	WheelStep int
	// Logger receives lifecycle and gesture logs. Nil discards them.
	Logger *log.Logger
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns options for a terminal of the given size.
func DefaultOptions(width, height int) Options {
	return Options{
		Limits:       config.DefaultLimits(),
		Viewport:     geometry.Dims{Width: float64(width), Height: float64(height)},
		HeaderHeight: config.HeaderHeight,
		WheelStep:    3,
	}
}

// Manager is the window manager behind a floatwin program.
type Manager struct {
	reg  *registry.Registry
	opts Options
	log  *log.Logger

	// stack is bottom to top; the last window has focus.
	stack    []*window.Window
	viewport geometry.Dims

	mu    sync.Mutex
	inbox []registry.Event

	pending     []tea.Cmd
	unsubscribe func()
}

// New creates a manager for reg, mounts the windows that are already open
// and subscribes to later changes.
func New(reg *registry.Registry, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WheelStep <= 0 {
		opts.WheelStep = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Manager{
		reg:      reg,
		opts:     opts,
		log:      logger,
		viewport: opts.Viewport,
	}
	m.unsubscribe = reg.Subscribe(m.enqueue)
	for _, d := range reg.Descriptors() {
		m.mount(d)
	}
	return m
}

// enqueue runs on whichever goroutine changed the registry. Events are
// applied on the update loop by sync.
func (m *Manager) enqueue(ev registry.Event) {
	m.mu.Lock()
	m.inbox = append(m.inbox, ev)
	m.mu.Unlock()
}

// sync applies queued registry events.
func (m *Manager) sync() {
	m.mu.Lock()
	events := m.inbox
	m.inbox = nil
	m.mu.Unlock()

	for _, ev := range events {
		switch ev.Kind {
		case registry.Opened:
			m.mount(ev.Descriptor)
		case registry.Closed:
			m.unmount(ev.ID)
		}
	}
}

func (m *Manager) mount(d registry.Descriptor) {
	if m.index(d.ID) >= 0 {
		return
	}

	id := d.ID
	ctl := gesture.New(
		m.opts.Limits.Initial(d.Position, d.Size),
		m.viewport,
		m.opts.Limits,
		gesture.WithStateObserver(func(from, to gesture.State) {
			m.log.Debug("window state", "id", id, "from", from, "to", to)
		}),
	)

	var w *window.Window
	w = window.New(ctl, window.Options{
		ID:           d.ID,
		Title:        d.Title,
		Content:      d.Content,
		Header:       d.Header,
		Props:        d.Props,
		HeaderHeight: m.opts.HeaderHeight,
		Handlers: window.Handlers{
			PointerDown: func(p geometry.Point) { m.headerDown(w, p) },
			DoubleClick: func() { w.Controller().DoubleClick() },
			Close:       func() { m.reg.Close(id) },
		},
	})

	m.stack = append(m.stack, w)
	m.log.Info("window mounted", "id", d.ID, "title", d.Title, "rect", ctl.Rect())
}

func (m *Manager) unmount(id string) {
	i := m.index(id)
	if i < 0 {
		return
	}
	m.stack[i].Controller().Unmount()
	m.stack = slices.Delete(m.stack, i, i+1)
	m.log.Info("window unmounted", "id", id)
}

func (m *Manager) index(id string) int {
	return slices.IndexFunc(m.stack, func(w *window.Window) bool { return w.ID == id })
}

// headerDown forwards a header press and schedules the click timer the
// controller asks for.
func (m *Manager) headerDown(w *window.Window, p geometry.Point) {
	d := w.HeaderDown(p, m.opts.Now())
	if !d.Pending() {
		return
	}
	id := w.ID
	m.pending = append(m.pending, tea.Tick(d.Delay, func(time.Time) tea.Msg {
		return ClickTimeoutMsg{WindowID: id, Token: d.Token}
	}))
}

// Focus raises the window with the given id and reports whether it exists.
func (m *Manager) Focus(id string) bool {
	m.sync()
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.raise(i)
	return true
}

func (m *Manager) raise(i int) {
	if i == len(m.stack)-1 {
		return
	}
	w := m.stack[i]
	m.stack = append(slices.Delete(m.stack, i, i+1), w)
}

// Focused returns the id of the topmost window, or "" if none is open.
func (m *Manager) Focused() string {
	m.sync()
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1].ID
}

// Order returns the mounted window ids, bottom to top.
func (m *Manager) Order() []string {
	m.sync()
	ids := make([]string, len(m.stack))
	for i, w := range m.stack {
		ids[i] = w.ID
	}
	return ids
}

// Window returns the mounted window with the given id.
func (m *Manager) Window(id string) (*window.Window, bool) {
	m.sync()
	if i := m.index(id); i >= 0 {
		return m.stack[i], true
	}
	return nil, false
}

// Viewport returns the current viewport size.
func (m *Manager) Viewport() geometry.Dims { return m.viewport }

// Interacting reports whether a window is being dragged or resized, or is
// waiting for its pointer to be released.
func (m *Manager) Interacting() bool {
	for _, w := range m.stack {
		if w.Controller().Active() {
			return true
		}
	}
	return false
}

// Close unsubscribes from the registry and unmounts every window,
// cancelling pending click timers.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.mu.Lock()
	m.inbox = nil
	m.mu.Unlock()
	for len(m.stack) > 0 {
		m.unmount(m.stack[len(m.stack)-1].ID)
	}
}
