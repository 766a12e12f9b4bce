package gesture

import "github.com/Gaurav-Gosain/floatwin/internal/geometry"

// HandleRect returns the invisible strip of window r that starts a resize
// in direction d. Corners are CornerHandle squares; edges are
// EdgeThickness thick and stop EdgeInset short of each end.
func HandleRect(r geometry.Rect, d Direction, l Limits) geometry.Rect {
	c := l.CornerHandle
	t := l.EdgeThickness
	in := l.EdgeInset

	switch d {
	case NorthWest:
		return geometry.Rect{X: r.X, Y: r.Y, W: c, H: c}
	case NorthEast:
		return geometry.Rect{X: r.Right() - c, Y: r.Y, W: c, H: c}
	case SouthWest:
		return geometry.Rect{X: r.X, Y: r.Bottom() - c, W: c, H: c}
	case SouthEast:
		return geometry.Rect{X: r.Right() - c, Y: r.Bottom() - c, W: c, H: c}
	case North:
		return geometry.Rect{X: r.X + in, Y: r.Y, W: max(r.W-2*in, 0), H: t}
	case South:
		return geometry.Rect{X: r.X + in, Y: r.Bottom() - t, W: max(r.W-2*in, 0), H: t}
	case West:
		return geometry.Rect{X: r.X, Y: r.Y + in, W: t, H: max(r.H-2*in, 0)}
	case East:
		return geometry.Rect{X: r.Right() - t, Y: r.Y + in, W: t, H: max(r.H-2*in, 0)}
	default:
		return geometry.Rect{}
	}
}

// Affordance returns the resize direction under p, if any. Fullscreen
// windows have no affordances.
func (c *Controller) Affordance(p geometry.Point) (Direction, bool) {
	if c.unmounted || c.fullscreen {
		return 0, false
	}
	return AffordanceIn(c.Rect(), p, c.limits)
}

// AffordanceIn hit tests the resize strips of window r. Corners win over
// edges.
func AffordanceIn(r geometry.Rect, p geometry.Point, l Limits) (Direction, bool) {
	if !r.Contains(p) {
		return 0, false
	}
	for i := len(Directions) - 1; i >= 0; i-- {
		d := Directions[i]
		if HandleRect(r, d, l).Contains(p) {
			return d, true
		}
	}
	return 0, false
}
