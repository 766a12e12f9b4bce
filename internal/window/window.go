// Package window implements the floating window component: a gesture
// controller plus the header and body renderers supplied by the caller.
package window

import (
	"math"
	"time"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
)

// Props is the opaque property bag handed to a content renderer.
type Props map[string]any

// Renderer draws the body of a window.
type Renderer interface {
	Render(props Props, width, height int) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(props Props, width, height int) string

// Render calls f.
func (f RendererFunc) Render(props Props, width, height int) string {
	return f(props, width, height)
}

// DragHandle carries the handlers a header wires to its drag handle.
type DragHandle struct {
	OnPointerDown func(p geometry.Point)
	OnDoubleClick func()
}

// HeaderProps is what a header renderer receives.
type HeaderProps struct {
	Title         string
	IsFullscreen  bool
	Focused       bool
	OnPointerDown func(p geometry.Point)
	OnDoubleClick func()
	OnClose       func()
	DragHandle    DragHandle
}

// HeaderRenderer draws the header row(s) of a window.
type HeaderRenderer interface {
	RenderHeader(props HeaderProps, width int) string
}

// HeaderRendererFunc adapts a function to HeaderRenderer.
type HeaderRendererFunc func(props HeaderProps, width int) string

// RenderHeader calls f.
func (f HeaderRendererFunc) RenderHeader(props HeaderProps, width int) string {
	return f(props, width)
}

// Hotspots are column ranges inside the header, half open. An empty
// range disables that hotspot.
type Hotspots struct {
	DragFrom, DragTo   int
	CloseFrom, CloseTo int
}

// HeaderLayout is implemented by headers that only accept drags or close
// clicks on part of their width. Headers without it are draggable
// everywhere and have no close hotspot.
type HeaderLayout interface {
	Hotspots(width int) Hotspots
}

// Handlers are the callbacks the owner binds to a window.
type Handlers struct {
	PointerDown func(p geometry.Point)
	DoubleClick func()
	Close       func()
}

// Options configures a Window.
type Options struct {
	ID           string
	Title        string
	Content      Renderer
	Header       HeaderRenderer
	Props        Props
	HeaderHeight int
	Handlers     Handlers
}

// Window is one mounted floating window.
type Window struct {
	ID    string
	Title string

	content      Renderer
	header       HeaderRenderer
	props        Props
	headerHeight int
	handlers     Handlers

	ctl    *gesture.Controller
	scroll int
}

// New mounts a window around ctl.
func New(ctl *gesture.Controller, opts Options) *Window {
	w := &Window{
		ID:           opts.ID,
		Title:        opts.Title,
		content:      opts.Content,
		header:       opts.Header,
		props:        opts.Props,
		headerHeight: max(opts.HeaderHeight, 1),
		handlers:     opts.Handlers,
		ctl:          ctl,
	}
	if w.header == nil {
		w.header = DefaultHeader{}
	}
	return w
}

// Controller returns the gesture controller of the window.
func (w *Window) Controller() *gesture.Controller { return w.ctl }

// HeaderHeight returns the number of header rows.
func (w *Window) HeaderHeight() int { return w.headerHeight }

// HeaderDown forwards a press on the drag affordance to the controller.
func (w *Window) HeaderDown(p geometry.Point, now time.Time) gesture.Deferred {
	return w.ctl.HeaderDown(p, now)
}

// Bounds returns the window rectangle snapped to whole cells.
func (w *Window) Bounds() (x, y, width, height int) {
	r := w.ctl.Rect()
	return int(math.Round(r.X)), int(math.Round(r.Y)),
		max(int(math.Round(r.W)), 2), max(int(math.Round(r.H)), 2)
}

// BodySize returns the size of the scrollable body region.
func (w *Window) BodySize() (width, height int) {
	_, _, ww, wh := w.Bounds()
	return max(ww-2, 0), max(wh-2-w.headerHeight, 0)
}

// ScrollBy scrolls the body by delta lines. The upper bound is applied on
// the next render, once the content height is known.
func (w *Window) ScrollBy(delta int) {
	w.scroll = max(w.scroll+delta, 0)
}

// Scroll returns the body scroll offset.
func (w *Window) Scroll() int { return w.scroll }

// HeaderProps builds the props handed to the header renderer.
func (w *Window) HeaderProps(focused bool) HeaderProps {
	down := w.handlers.PointerDown
	dbl := w.handlers.DoubleClick
	return HeaderProps{
		Title:         w.Title,
		IsFullscreen:  w.ctl.Fullscreen(),
		Focused:       focused,
		OnPointerDown: down,
		OnDoubleClick: dbl,
		OnClose:       w.handlers.Close,
		DragHandle: DragHandle{
			OnPointerDown: down,
			OnDoubleClick: dbl,
		},
	}
}
