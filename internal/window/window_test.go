package window

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
)

var viewport = geometry.Dims{Width: 80, Height: 24}

var lines = RendererFunc(func(_ Props, _, _ int) string {
	return "alpha\nbeta\ngamma\ndelta\nepsilon"
})

// newWindow places a 20x6 window at (2, 1): border row 1, header row 2,
// body rows 3 to 5, border row 6.
func newWindow(t *testing.T, opts Options) *Window {
	t.Helper()
	pos := geometry.Pt(2, 1)
	size := geometry.Sz(20, 6)
	l := config.DefaultLimits()
	ctl := gesture.New(l.Initial(&pos, &size), viewport, l)
	if opts.ID == "" {
		opts.ID = "notes"
	}
	return New(ctl, opts)
}

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestViewFrame(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes", Content: lines})

	got := plain(w.View(true))
	require.Len(t, got, 6)
	for _, l := range got {
		assert.Equal(t, 20, ansi.StringWidth(l), "line %q", l)
	}

	assert.Equal(t, "╭"+strings.Repeat("─", 18)+"╮", got[0])
	assert.True(t, strings.HasPrefix(got[1], "│ Notes "))
	assert.Contains(t, got[1], strings.TrimSpace(config.WindowButtonClose))
	assert.Equal(t, "│alpha"+strings.Repeat(" ", 13)+"│", got[2])
	assert.Equal(t, "│gamma"+strings.Repeat(" ", 13)+"│", got[4])
	assert.Equal(t, "╰"+strings.Repeat("─", 18)+"╯", got[5])
}

func TestViewScrollsBody(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes", Content: lines})

	w.ScrollBy(1)
	got := plain(w.View(false))
	assert.True(t, strings.HasPrefix(got[2], "│beta"))
	assert.True(t, strings.HasPrefix(got[4], "│delta"))

	w.ScrollBy(10)
	got = plain(w.View(false))
	assert.Equal(t, 2, w.Scroll())
	assert.True(t, strings.HasPrefix(got[4], "│epsilon"))

	w.ScrollBy(-5)
	assert.Equal(t, 0, w.Scroll())
}

func TestViewFullscreenSquareCorners(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes"})
	w.Controller().DoubleClick()

	got := plain(w.View(true))
	require.Len(t, got, 24)
	assert.True(t, strings.HasPrefix(got[0], "┌"))
	assert.True(t, strings.HasSuffix(got[23], "┘"))
	assert.Equal(t, 80, ansi.StringWidth(got[0]))
}

func TestHitTest(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes", Content: lines})

	tests := []struct {
		name string
		p    geometry.Point
		want Region
	}{
		{name: "nw corner", p: geometry.Pt(2, 1), want: ResizeRegion(gesture.NorthWest)},
		{name: "se corner", p: geometry.Pt(21, 6), want: ResizeRegion(gesture.SouthEast)},
		{name: "top border", p: geometry.Pt(10, 1), want: ResizeRegion(gesture.North)},
		{name: "bottom border", p: geometry.Pt(10, 6), want: ResizeRegion(gesture.South)},
		{name: "left border", p: geometry.Pt(2, 3), want: ResizeRegion(gesture.West)},
		{name: "right border", p: geometry.Pt(21, 3), want: ResizeRegion(gesture.East)},
		{name: "header", p: geometry.Pt(10, 2), want: Region{Kind: RegionHeader}},
		{name: "close button", p: geometry.Pt(19, 2), want: Region{Kind: RegionClose}},
		{name: "body", p: geometry.Pt(10, 4), want: Region{Kind: RegionBody}},
		{name: "left of window", p: geometry.Pt(1, 3), want: Region{}},
		{name: "right of window", p: geometry.Pt(22, 3), want: Region{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.HitTest(tt.p)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestHitTestFullscreenHasNoResize(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes"})
	w.Controller().DoubleClick()

	assert.Equal(t, RegionFrame, w.HitTest(geometry.Pt(0, 0)).Kind)
	assert.Equal(t, RegionFrame, w.HitTest(geometry.Pt(79, 10)).Kind)
	assert.Equal(t, RegionHeader, w.HitTest(geometry.Pt(5, 1)).Kind)
	assert.Equal(t, RegionBody, w.HitTest(geometry.Pt(5, 5)).Kind)
}

func TestHitTestCustomHeaderWithoutLayout(t *testing.T) {
	w := newWindow(t, Options{
		Header: HeaderRendererFunc(func(p HeaderProps, width int) string {
			return p.Title
		}),
	})
	assert.Equal(t, RegionHeader, w.HitTest(geometry.Pt(19, 2)).Kind)

	w.Controller().Unmount()
	assert.Equal(t, RegionNone, w.HitTest(geometry.Pt(10, 4)).Kind)
}

func TestHiddenCloseButton(t *testing.T) {
	config.HideCloseButton = true
	t.Cleanup(func() { config.HideCloseButton = false })

	assert.Equal(t, Hotspots{DragTo: 18}, DefaultHeader{}.Hotspots(18))

	w := newWindow(t, Options{Title: "Notes"})
	assert.Equal(t, RegionHeader, w.HitTest(geometry.Pt(19, 2)).Kind)
	assert.NotContains(t, plain(w.View(true))[1], strings.TrimSpace(config.WindowButtonClose))
}

func TestHeaderPropsBindHandlers(t *testing.T) {
	var downs []geometry.Point
	var doubles, closes int
	w := newWindow(t, Options{
		Title: "Notes",
		Handlers: Handlers{
			PointerDown: func(p geometry.Point) { downs = append(downs, p) },
			DoubleClick: func() { doubles++ },
			Close:       func() { closes++ },
		},
	})

	hp := w.HeaderProps(true)
	assert.Equal(t, "Notes", hp.Title)
	assert.True(t, hp.Focused)
	assert.False(t, hp.IsFullscreen)

	hp.OnPointerDown(geometry.Pt(1, 2))
	hp.DragHandle.OnPointerDown(geometry.Pt(3, 4))
	hp.DragHandle.OnDoubleClick()
	hp.OnClose()

	assert.Equal(t, []geometry.Point{geometry.Pt(1, 2), geometry.Pt(3, 4)}, downs)
	assert.Equal(t, 1, doubles)
	assert.Equal(t, 1, closes)

	w.Controller().DoubleClick()
	assert.True(t, w.HeaderProps(false).IsFullscreen)
}

func newWindowAt(t *testing.T, x, y float64, size geometry.Size) *Window {
	t.Helper()
	pos := geometry.Pt(x, y)
	l := config.DefaultLimits()
	ctl := gesture.New(l.Initial(&pos, &size), viewport, l)
	return New(ctl, Options{ID: "notes", Title: "Notes", Content: lines})
}

func TestViewClipsTopLeft(t *testing.T) {
	w := newWindowAt(t, -1, -1, geometry.Sz(20, 6))

	content, x, y := w.render(true, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	got := plain(content)
	require.Len(t, got, 5)
	for _, l := range got {
		assert.Equal(t, 19, ansi.StringWidth(l), "line %q", l)
	}
	assert.True(t, strings.HasPrefix(got[0], " Notes"))
	assert.Equal(t, "alpha"+strings.Repeat(" ", 13)+"│", got[1])
	assert.Equal(t, strings.Repeat("─", 18)+"╯", got[4])
}

func TestViewClipsBottomRight(t *testing.T) {
	w := newWindowAt(t, 70, 20, geometry.Sz(20, 6))

	content, x, y := w.render(false, 80, 24)
	assert.Equal(t, 70, x)
	assert.Equal(t, 20, y)

	got := plain(content)
	require.Len(t, got, 4)
	assert.Equal(t, "╭"+strings.Repeat("─", 9), got[0])
	assert.Equal(t, "│alpha    ", got[2])
}

func TestViewOutsideViewport(t *testing.T) {
	w := newWindowAt(t, 90, 0, geometry.Sz(20, 6))

	content, x, _ := w.render(true, 80, 24)
	assert.Empty(t, content)
	assert.Equal(t, 90, x)
	assert.Empty(t, w.View(true))
}

func TestViewOversizedWindow(t *testing.T) {
	w := newWindowAt(t, 2, 1, geometry.Sz(2000000, 6))
	_, _, width, _ := w.Bounds()
	require.Equal(t, 2000000, width)

	got := plain(w.View(true))
	require.Len(t, got, 6)
	for _, l := range got {
		assert.Equal(t, 78, ansi.StringWidth(l), "line %q", l)
	}
	assert.Equal(t, "╭"+strings.Repeat("─", 77), got[0])
	assert.Contains(t, got[1], strings.TrimSpace(config.WindowButtonClose))
	assert.Equal(t, RegionClose, w.HitTest(geometry.Pt(79, 2)).Kind)

	tall := newWindowAt(t, 0, 0, geometry.Sz(30, 2000000))
	got = plain(tall.View(false))
	assert.Len(t, got, 24)
}

func TestLayerPosition(t *testing.T) {
	w := newWindow(t, Options{Title: "Notes"})
	l := w.Layer(true, 3, 80, 24)
	assert.Equal(t, 2, l.GetX())
	assert.Equal(t, 1, l.GetY())
	assert.Equal(t, 3, l.GetZ())
}
