package window

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/theme"
)

func frameBorder(fullscreen bool) lipgloss.Border {
	b := config.GetBorderForStyle()
	if !fullscreen || b.TopLeft != lipgloss.RoundedBorder().TopLeft {
		return b
	}
	// Fullscreen windows drop their rounded corners.
	n := lipgloss.NormalBorder()
	b.TopLeft, b.TopRight = n.TopLeft, n.TopRight
	b.BottomLeft, b.BottomRight = n.BottomLeft, n.BottomRight
	return b
}

// View renders the part of the window frame that lies inside the
// viewport: border, header rows and the visible part of the body.
func (w *Window) View(focused bool) string {
	vp := w.ctl.Viewport()
	content, _, _ := w.render(focused, int(vp.Width), int(vp.Height))
	return content
}

// Layer renders the window as a canvas layer clipped to the viewport.
func (w *Window) Layer(focused bool, z, viewportWidth, viewportHeight int) *lipgloss.Layer {
	content, x, y := w.render(focused, viewportWidth, viewportHeight)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(z).ID(w.ID)
}

// layoutWidth is the width handed to the header and body renderers. A
// window wider than the viewport is laid out only up to the right edge of
// the viewport, so its close button stays on screen.
func (w *Window) layoutWidth(viewportWidth int) int {
	x, _, width, _ := w.Bounds()
	innerW := width - 2
	if innerW <= viewportWidth {
		return innerW
	}
	return min(innerW, max(viewportWidth-x-1, 0))
}

// render builds only the rows and columns of the window that fall inside
// the viewport and returns them with their on-screen origin.
func (w *Window) render(focused bool, viewportWidth, viewportHeight int) (string, int, int) {
	x, y, width, height := w.Bounds()

	colFrom, colTo := max(-x, 0), min(width, viewportWidth-x)
	rowFrom, rowTo := max(-y, 0), min(height, viewportHeight-y)
	if colFrom >= colTo || rowFrom >= rowTo {
		return "", max(x, 0), max(y, 0)
	}

	innerW := width - 2
	innerFrom := max(colFrom-1, 0)
	innerTo := max(min(colTo-1, innerW), innerFrom)
	span := innerTo - innerFrom
	clipped := colFrom > 0 || colTo < width
	layoutW := w.layoutWidth(viewportWidth)

	border := frameBorder(w.ctl.Fullscreen())
	color := theme.BorderUnfocused()
	if focused {
		color = theme.BorderFocused()
	}
	edge := lipgloss.NewStyle().Foreground(color).Render

	row := func(left, mid, right string) string {
		var b strings.Builder
		if colFrom == 0 {
			b.WriteString(left)
		}
		b.WriteString(mid)
		if colTo == width {
			b.WriteString(right)
		}
		return b.String()
	}
	inner := func(line string) string {
		line = ansi.Truncate(line, innerTo, "")
		if innerFrom > 0 {
			line = ansi.TruncateLeft(line, innerFrom, "")
		}
		return fitLine(line, span)
	}

	headerRows := min(w.headerHeight, height-2)
	var header []string
	if rowFrom <= headerRows && rowTo > 1 {
		header = strings.Split(w.header.RenderHeader(w.HeaderProps(focused), layoutW), "\n")
	}

	_, bodyH := w.BodySize()
	var body []string
	if bodyH > 0 && w.content != nil {
		body = strings.Split(w.content.Render(w.props, layoutW, bodyH), "\n")
	}
	w.scroll = min(w.scroll, max(len(body)-bodyH, 0))

	left, right := edge(border.Left), edge(border.Right)
	lines := make([]string, 0, rowTo-rowFrom)
	for r := rowFrom; r < rowTo; r++ {
		switch {
		case r == 0:
			lines = append(lines, edge(row(border.TopLeft, strings.Repeat(border.Top, span), border.TopRight)))
		case r == height-1:
			lines = append(lines, edge(row(border.BottomLeft, strings.Repeat(border.Bottom, span), border.BottomRight)))
		case r <= headerRows:
			lines = append(lines, row(left, inner(lineAt(header, r-1)), right))
		default:
			lines = append(lines, row(left, inner(lineAt(body, w.scroll+r-1-headerRows)), right))
		}
		if clipped {
			lines[len(lines)-1] += ansi.ResetStyle
		}
	}
	return strings.Join(lines, "\n"), x + colFrom, y + rowFrom
}

func lineAt(lines []string, i int) string {
	if i >= 0 && i < len(lines) {
		return strings.TrimSuffix(lines[i], "\r")
	}
	return ""
}

func fitLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
