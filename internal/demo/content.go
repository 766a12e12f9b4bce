// Package demo holds the window contents and headers opened by the
// floatwin demo program.
package demo

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/floatwin/internal/theme"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

// Text renders a fixed text, word wrapped to the body width. A "text"
// prop overrides it.
type Text string

// Render implements window.Renderer.
func (t Text) Render(props window.Props, width, _ int) string {
	s := string(t)
	if v, ok := props["text"].(string); ok {
		s = v
	}
	return lipgloss.NewStyle().Width(max(width, 1)).Render(s)
}

// PropsView lists the property bag it is given along with the body size,
// so the demo can show props flowing from the descriptor to the content.
var PropsView = window.RendererFunc(func(props window.Props, width, height int) string {
	key := lipgloss.NewStyle().Foreground(theme.Accent())
	muted := lipgloss.NewStyle().Foreground(theme.Muted())

	lines := []string{muted.Render(fmt.Sprintf("body %dx%d", width, height))}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		line := key.Render(k) + " = " + fmt.Sprint(props[k])
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
})

// Lines renders n numbered lines, enough to scroll a small window.
func Lines(n int) window.Renderer {
	return window.RendererFunc(func(_ window.Props, width, _ int) string {
		muted := lipgloss.NewStyle().Foreground(theme.Muted())
		lines := make([]string, n)
		for i := range lines {
			lines[i] = ansi.Truncate(muted.Render(fmt.Sprintf("%3d ", i+1))+"scroll me", width, "")
		}
		return strings.Join(lines, "\n")
	})
}
