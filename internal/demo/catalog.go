package demo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/registry"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

// TestWindowID is the fixed id of the grip header demo window, so opening
// it twice reports a duplicate.
const TestWindowID = "test-window"

func ptr[T any](v T) *T { return &v }

// TestWindow is a small window with a GripHeader.
func TestWindow() registry.Descriptor {
	return registry.Descriptor{
		ID:       TestWindowID,
		Title:    "Custom Header",
		Content:  Text("Test window content.\n\nDrag the grip on the left, double click it to toggle fullscreen."),
		Header:   GripHeader{},
		Position: ptr(geometry.Pt(10, 5)),
		Size:     ptr(geometry.Sz(36, 10)),
	}
}

// PropsWindow shows its property bag. Its size is given as CSS lengths.
func PropsWindow(n int) registry.Descriptor {
	return registry.Descriptor{
		ID:      uuid.NewString(),
		Title:   fmt.Sprintf("Props #%d", n),
		Content: PropsView,
		Props: window.Props{
			"n":     n,
			"color": []string{"red", "green", "blue"}[n%3],
		},
		Position: ptr(geometry.Pt(float64(4+3*n), float64(2+2*n))),
		Size:     ptr(geometry.Size{Width: geometry.CSS("40%"), Height: geometry.CSS("10")}),
	}
}

// ScrollWindow holds more lines than fit, for wheel scrolling.
func ScrollWindow(n int) registry.Descriptor {
	return registry.Descriptor{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Scroll #%d", n),
		Content:  Lines(50),
		Position: ptr(geometry.Pt(float64(30+2*n), float64(3+n))),
	}
}

// StatsWindow shows stats from s.
func StatsWindow(s *Stats) registry.Descriptor {
	return registry.Descriptor{
		ID:       uuid.NewString(),
		Title:    "System",
		Content:  s,
		Position: ptr(geometry.Pt(2, 1)),
		Size:     ptr(geometry.Sz(40, 8)),
	}
}

// Window returns the i-th window of the demo rotation: props, scroll and
// text windows in turn.
func Window(i int) registry.Descriptor {
	switch i % 3 {
	case 0:
		return PropsWindow(i)
	case 1:
		return ScrollWindow(i)
	}
	return registry.Descriptor{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Text #%d", i),
		Content:  Text("Press a window to raise it. Drag a border or corner to resize."),
		Position: ptr(geometry.Pt(float64(6+4*i), float64(4+i))),
	}
}
