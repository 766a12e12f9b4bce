package gesture

import (
	"time"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
)

// Limits holds the tunables of the gesture state machine. All lengths are
// in the same unit as pointer coordinates (pixels or terminal cells).
type Limits struct {
	// MinWidth and MinHeight clamp every resize.
	MinWidth  float64
	MinHeight float64

	// DefaultWidth and DefaultHeight are used when a window is opened
	// without a size, or when a string length cannot be parsed.
	DefaultWidth  float64
	DefaultHeight float64

	// GrabOffset is the distance between the window top and the pointer
	// when a window is dragged out of fullscreen.
	GrabOffset float64

	// DoubleClick is how long the controller waits for a second press.
	DoubleClick time.Duration

	// CornerHandle is the side of the square corner affordances.
	CornerHandle float64
	// EdgeThickness is the thickness of the edge affordances.
	EdgeThickness float64
	// EdgeInset is how far each edge affordance stops short of a corner.
	EdgeInset float64
}

// DefaultLimits returns pixel limits.
func DefaultLimits() Limits {
	return Limits{
		MinWidth:      200,
		MinHeight:     100,
		DefaultWidth:  300,
		DefaultHeight: 200,
		GrabOffset:    20,
		DoubleClick:   200 * time.Millisecond,
		CornerHandle:  10,
		EdgeThickness: 6,
		EdgeInset:     10,
	}
}

// DefaultDims returns the default window size.
func (l Limits) DefaultDims() geometry.Dims {
	return geometry.Dims{Width: l.DefaultWidth, Height: l.DefaultHeight}
}

// Initial builds the starting geometry of a window. A missing position
// falls back to the origin and a missing size falls back to the default
// size. A given size is kept as is, zero dimensions included.
func (l Limits) Initial(position *geometry.Point, size *geometry.Size) geometry.Geometry {
	g := geometry.Geometry{Size: l.DefaultDims().Size()}
	if position != nil {
		g.Position = *position
	}
	if size != nil {
		g.Size = *size
	}
	return g
}
