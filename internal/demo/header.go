package demo

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/theme"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

const closeLabel = "[Close]"

// GripHeader is a header whose only drag area is a grip glyph on the left.
// The title fills the middle and a labelled close button sits on the
// right. Presses on the title do nothing.
type GripHeader struct {
	// Title replaces the window title when set.
	Title string
}

// segments returns the widths of the padded grip and close parts, or zero
// for parts that do not fit.
func (h GripHeader) segments(width int) (gripW, closeW int) {
	gripW = ansi.StringWidth(config.GetDragHandle()) + 2
	closeW = len(closeLabel) + 1
	if gripW+closeW > width {
		closeW = 0
	}
	if gripW > width {
		gripW = 0
	}
	return gripW, closeW
}

// RenderHeader implements window.HeaderRenderer.
func (h GripHeader) RenderHeader(props window.HeaderProps, width int) string {
	bar := lipgloss.NewStyle().
		Foreground(theme.HeaderFg(props.Focused)).
		Background(theme.HeaderBg(props.Focused))

	gripW, closeW := h.segments(width)

	var b strings.Builder
	if gripW > 0 {
		b.WriteString(bar.Foreground(theme.Accent()).Render(" " + config.GetDragHandle() + " "))
	}

	title := h.Title
	if title == "" {
		title = props.Title
	}
	if props.IsFullscreen {
		title += " (fullscreen)"
	}
	titleW := max(width-gripW-closeW, 0)
	title = ansi.Truncate(title, titleW, "…")
	title += strings.Repeat(" ", titleW-ansi.StringWidth(title))
	b.WriteString(bar.Bold(true).Render(title))

	if closeW > 0 {
		b.WriteString(bar.Foreground(theme.CloseButton()).Render(closeLabel))
		b.WriteString(bar.Render(" "))
	}
	return b.String()
}

// Hotspots implements window.HeaderLayout.
func (h GripHeader) Hotspots(width int) window.Hotspots {
	gripW, closeW := h.segments(width)
	spots := window.Hotspots{DragTo: gripW}
	if closeW > 0 {
		spots.CloseFrom = width - closeW
		spots.CloseTo = width - 1
	}
	return spots
}
