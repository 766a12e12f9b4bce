package window

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/theme"
)

// DefaultHeader is the title bar used when a descriptor has no header of
// its own: the title on the left and a close button on the right. The
// whole bar except the button is a drag handle.
type DefaultHeader struct{}

func closeButton() string {
	if config.HideCloseButton {
		return ""
	}
	return config.GetWindowButtonClose()
}

// RenderHeader implements HeaderRenderer.
func (DefaultHeader) RenderHeader(props HeaderProps, width int) string {
	bar := lipgloss.NewStyle().
		Foreground(theme.HeaderFg(props.Focused)).
		Background(theme.HeaderBg(props.Focused))

	button := closeButton()
	buttonW := ansi.StringWidth(button)
	if buttonW >= width {
		button, buttonW = "", 0
	}

	titleW := width - buttonW
	title := " " + props.Title
	if ansi.StringWidth(title) > titleW {
		title = ansi.Truncate(title, titleW, "…")
	}
	title += strings.Repeat(" ", max(titleW-ansi.StringWidth(title), 0))

	out := bar.Bold(props.Focused).Render(title)
	if button != "" {
		out += bar.Foreground(theme.CloseButton()).Render(button)
	}
	return out
}

// Hotspots implements HeaderLayout.
func (DefaultHeader) Hotspots(width int) Hotspots {
	buttonW := ansi.StringWidth(closeButton())
	if buttonW == 0 || buttonW >= width {
		return Hotspots{DragTo: width}
	}
	return Hotspots{
		DragTo:    width - buttonW,
		CloseFrom: width - buttonW,
		CloseTo:   width,
	}
}
