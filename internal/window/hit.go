package window

import (
	"fmt"
	"math"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
)

// RegionKind classifies a point inside a window.
type RegionKind uint8

const (
	// RegionNone is outside the window.
	RegionNone RegionKind = iota
	// RegionFrame is window surface without a gesture: borders of a
	// fullscreen window or the inert part of a custom header.
	RegionFrame
	// RegionBody is the content area.
	RegionBody
	// RegionHeader is the drag affordance.
	RegionHeader
	// RegionClose is the close button.
	RegionClose
	// RegionResize is one of the eight resize strips.
	RegionResize
)

// Region is the result of a hit test.
type Region struct {
	Kind      RegionKind
	Direction gesture.Direction
}

// ResizeRegion returns the region of the resize strip for d.
func ResizeRegion(d gesture.Direction) Region {
	return Region{Kind: RegionResize, Direction: d}
}

func (r Region) String() string {
	switch r.Kind {
	case RegionFrame:
		return "frame"
	case RegionBody:
		return "body"
	case RegionHeader:
		return "header"
	case RegionClose:
		return "close"
	case RegionResize:
		return fmt.Sprintf("resize-%s", r.Direction)
	default:
		return "none"
	}
}

// Rect returns the window rectangle as drawn, in whole cells.
func (w *Window) Rect() geometry.Rect {
	x, y, width, height := w.Bounds()
	return geometry.Rect{X: float64(x), Y: float64(y), W: float64(width), H: float64(height)}
}

// HitTest reports what lies under p. Resize strips are tested against
// the drawn rectangle so they line up with the border cells.
func (w *Window) HitTest(p geometry.Point) Region {
	if w.ctl.Unmounted() {
		return Region{}
	}
	r := w.Rect()
	if !r.Contains(p) {
		return Region{}
	}
	if !w.ctl.Fullscreen() {
		if d, ok := gesture.AffordanceIn(r, p, w.ctl.Limits()); ok {
			return ResizeRegion(d)
		}
	}

	col := int(math.Floor(p.X - r.X))
	row := int(math.Floor(p.Y - r.Y))
	innerW := int(r.W) - 2
	if col < 1 || col > innerW {
		return Region{Kind: RegionFrame}
	}

	if row >= 1 && row <= w.headerHeight {
		hs := Hotspots{DragTo: innerW}
		if l, ok := w.header.(HeaderLayout); ok {
			hs = l.Hotspots(w.layoutWidth(int(w.ctl.Viewport().Width)))
		}
		ix := col - 1
		switch {
		case ix >= hs.CloseFrom && ix < hs.CloseTo:
			return Region{Kind: RegionClose}
		case ix >= hs.DragFrom && ix < hs.DragTo:
			return Region{Kind: RegionHeader}
		}
		return Region{Kind: RegionFrame}
	}

	if row > w.headerHeight && row < int(r.H)-1 {
		return Region{Kind: RegionBody}
	}
	return Region{Kind: RegionFrame}
}
