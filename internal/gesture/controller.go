// Package gesture implements the pointer state machine of a floating
// window: dragging, edge and corner resizing, and double-click fullscreen
// toggling with restore to the previous geometry.
//
// A Controller never blocks and never schedules anything on its own. When
// a press needs a deferred decision (a single press on a fullscreen window
// may turn into a double-click or into a drag out of fullscreen), the
// controller hands back a Deferred that the host schedules and later
// delivers through Fire. A Deferred is identified by a monotonically
// increasing token; cancelling simply retires the token, so a late Fire is
// ignored.
package gesture

import (
	"time"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
)

// State is the observable state of a Controller.
type State int

const (
	// Idle means no gesture is in progress and the window is not fullscreen.
	Idle State = iota
	// Dragging means the window follows the pointer.
	Dragging
	// Resizing means one or two edges follow the pointer.
	Resizing
	// Fullscreen means the window covers the viewport.
	Fullscreen
	// FullscreenPendingExit means a press on a fullscreen window is waiting
	// to be classified as a double-click or a drag out of fullscreen.
	FullscreenPendingExit
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	case Fullscreen:
		return "fullscreen"
	case FullscreenPendingExit:
		return "fullscreen-pending-exit"
	default:
		return "unknown"
	}
}

// Deferred is a single-shot action the host must schedule. The zero value
// means nothing needs scheduling.
type Deferred struct {
	Token    uint64
	Delay    time.Duration
	Deadline time.Time
}

// Pending reports whether d needs scheduling.
func (d Deferred) Pending() bool {
	return d.Token != 0
}

type dragState struct {
	active bool
	offset geometry.Point
}

type resizeState struct {
	active      bool
	direction   Direction
	start       geometry.Point
	startWidth  float64
	startHeight float64
	startTop    float64
	startLeft   float64
}

type clickState struct {
	count      int
	pending    uint64
	lastHeader time.Time
}

// Controller owns the geometry of one window and turns raw pointer events
// into position and size updates. It is not safe for concurrent use; all
// calls are expected to come from the UI event loop.
type Controller struct {
	limits   Limits
	viewport geometry.Dims

	position   geometry.Point
	size       geometry.Size
	fullscreen bool
	previous   *geometry.Geometry

	drag   dragState
	resize resizeState
	click  clickState

	held      bool
	pointer   geometry.Point
	seq       uint64
	unmounted bool

	onChange func(from, to State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithStateObserver registers fn to be called after every state change.
func WithStateObserver(fn func(from, to State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// New creates a controller with the given starting geometry.
func New(initial geometry.Geometry, viewport geometry.Dims, limits Limits, opts ...Option) *Controller {
	c := &Controller{
		limits:   limits,
		viewport: viewport,
		position: initial.Position,
		size:     initial.Size,
	}
	// A zero Geometry carries no size at all.
	if c.size == (geometry.Size{}) {
		c.size = limits.DefaultDims().Size()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	switch {
	case c.fullscreen && c.click.pending != 0:
		return FullscreenPendingExit
	case c.fullscreen:
		return Fullscreen
	case c.drag.active:
		return Dragging
	case c.resize.active:
		return Resizing
	default:
		return Idle
	}
}

// Position returns the top-left corner of the window.
func (c *Controller) Position() geometry.Point { return c.position }

// Size returns the size as last set, strings included.
func (c *Controller) Size() geometry.Size { return c.size }

// ResolvedSize returns the size in numbers.
func (c *Controller) ResolvedSize() geometry.Dims {
	return c.size.Resolve(c.viewport, c.limits.DefaultDims())
}

// Geometry returns position and size together.
func (c *Controller) Geometry() geometry.Geometry {
	return geometry.Geometry{Position: c.position, Size: c.size}
}

// Rect returns the window bounds in viewport coordinates.
func (c *Controller) Rect() geometry.Rect {
	d := c.ResolvedSize()
	return geometry.Rect{X: c.position.X, Y: c.position.Y, W: d.Width, H: d.Height}
}

// Fullscreen reports whether the window covers the viewport.
func (c *Controller) Fullscreen() bool { return c.fullscreen }

// Previous returns the geometry saved on the last fullscreen entry.
func (c *Controller) Previous() (geometry.Geometry, bool) {
	if c.previous == nil {
		return geometry.Geometry{}, false
	}
	return *c.previous, true
}

// Viewport returns the viewport size.
func (c *Controller) Viewport() geometry.Dims { return c.viewport }

// Limits returns the controller limits.
func (c *Controller) Limits() Limits { return c.limits }

// Held reports whether the pointer that started the current gesture is
// still pressed.
func (c *Controller) Held() bool { return c.held }

// Active reports whether the controller wants pointer motion events.
func (c *Controller) Active() bool {
	return !c.unmounted && c.held
}

// SetViewport updates the viewport. A fullscreen window follows it.
func (c *Controller) SetViewport(d geometry.Dims) {
	if c.unmounted {
		return
	}
	c.viewport = d
	if c.fullscreen {
		c.size = d.Size()
	}
}

// HeaderDown handles a press on the drag affordance at p.
//
// On a normal window the first press starts a drag and a second press
// within the double-click window toggles fullscreen. On a fullscreen
// window the first press returns a Deferred; a second press before it
// fires restores the window, otherwise Fire drags it out of fullscreen.
func (c *Controller) HeaderDown(p geometry.Point, now time.Time) Deferred {
	if c.unmounted {
		return Deferred{}
	}
	defer c.track(c.State())

	c.held = true
	c.pointer = p

	if c.fullscreen {
		c.click.count++
		if c.click.count == 1 {
			c.seq++
			c.click.pending = c.seq
			return Deferred{
				Token:    c.seq,
				Delay:    c.limits.DoubleClick,
				Deadline: now.Add(c.limits.DoubleClick),
			}
		}
		c.click.pending = 0
		c.click.count = 0
		c.toggle()
		return Deferred{}
	}

	if !c.click.lastHeader.IsZero() && now.Sub(c.click.lastHeader) <= c.limits.DoubleClick {
		c.toggle()
		return Deferred{}
	}
	c.click.lastHeader = now

	c.resize.active = false
	c.drag = dragState{active: true, offset: p.Sub(c.position)}
	return Deferred{}
}

// ResizeDown starts a resize from the affordance dir. It does nothing on
// a fullscreen window.
func (c *Controller) ResizeDown(dir Direction, p geometry.Point) {
	if c.unmounted || c.fullscreen {
		return
	}
	defer c.track(c.State())

	d := c.ResolvedSize()
	c.held = true
	c.pointer = p
	c.drag.active = false
	c.resize = resizeState{
		active:      true,
		direction:   dir,
		start:       p,
		startWidth:  d.Width,
		startHeight: d.Height,
		startTop:    c.position.Y,
		startLeft:   c.position.X,
	}
}

// Move handles pointer motion anywhere in the viewport.
func (c *Controller) Move(p geometry.Point) {
	if c.unmounted {
		return
	}
	c.pointer = p
	if !c.held {
		return
	}

	if c.drag.active {
		c.position = p.Sub(c.drag.offset)
	}
	if c.resize.active {
		c.applyResize(p)
	}
}

func (c *Controller) applyResize(p geometry.Point) {
	r := c.resize
	dx := p.X - r.start.X
	dy := p.Y - r.start.Y

	width, height := r.startWidth, r.startHeight
	left, top := r.startLeft, r.startTop

	if r.direction.HasEast() {
		width = max(c.limits.MinWidth, r.startWidth+dx)
	}
	if r.direction.HasWest() {
		width = max(c.limits.MinWidth, r.startWidth-dx)
		left = r.startLeft + (r.startWidth - width)
	}
	if r.direction.HasSouth() {
		height = max(c.limits.MinHeight, r.startHeight+dy)
	}
	if r.direction.HasNorth() {
		height = max(c.limits.MinHeight, r.startHeight-dy)
		top = r.startTop + (r.startHeight - height)
	}

	c.size = geometry.Sz(width, height)
	c.position = geometry.Pt(left, top)
}

// Up handles a pointer release anywhere in the viewport. A pending
// Deferred is left alone; when it fires it sees the released pointer and
// does nothing.
func (c *Controller) Up(p geometry.Point) {
	if c.unmounted {
		return
	}
	defer c.track(c.State())

	c.pointer = p
	c.held = false
	c.drag.active = false
	c.resize.active = false
}

// DoubleClick toggles fullscreen. Hosts that receive a native double-click
// event call it directly.
func (c *Controller) DoubleClick() {
	if c.unmounted {
		return
	}
	defer c.track(c.State())

	c.click.pending = 0
	c.click.count = 0
	c.toggle()
}

// Fire delivers a Deferred returned by HeaderDown. It reports whether the
// token was still current. If the pointer is still held the window leaves
// fullscreen under the pointer and keeps following it.
func (c *Controller) Fire(token uint64) bool {
	if c.unmounted || token == 0 || token != c.click.pending {
		return false
	}
	defer c.track(c.State())

	c.click.pending = 0
	c.click.count = 0
	if !c.held || !c.fullscreen {
		return true
	}

	c.fullscreen = false
	c.click.lastHeader = time.Time{}
	if c.previous == nil {
		return true
	}

	c.size = c.previous.Size
	width := c.previous.Size.Width.Resolve(c.viewport.Width, c.limits.DefaultWidth)
	p := c.pointer
	fraction := 0.0
	if c.viewport.Width > 0 {
		fraction = p.X / c.viewport.Width
	}
	c.position = geometry.Pt(p.X-width*fraction, p.Y-c.limits.GrabOffset)
	c.drag = dragState{active: true, offset: p.Sub(c.position)}
	return true
}

// Cancel retires the pending Deferred, if any.
func (c *Controller) Cancel() {
	defer c.track(c.State())
	c.click.pending = 0
	c.click.count = 0
}

// Unmount cancels any pending Deferred and turns every later call into a
// no-op.
func (c *Controller) Unmount() {
	c.Cancel()
	c.held = false
	c.drag.active = false
	c.resize.active = false
	c.unmounted = true
}

// Unmounted reports whether Unmount was called.
func (c *Controller) Unmounted() bool { return c.unmounted }

func (c *Controller) toggle() {
	c.click.lastHeader = time.Time{}
	c.drag.active = false
	c.resize.active = false

	if c.fullscreen {
		c.fullscreen = false
		if c.previous != nil {
			c.position = c.previous.Position
			c.size = c.previous.Size
		}
		return
	}

	c.previous = &geometry.Geometry{Position: c.position, Size: c.size}
	c.fullscreen = true
	c.position = geometry.Pt(0, 0)
	c.size = c.viewport.Size()
}

func (c *Controller) track(from State) {
	if c.onChange == nil {
		return
	}
	if to := c.State(); to != from {
		c.onChange(from, to)
	}
}
