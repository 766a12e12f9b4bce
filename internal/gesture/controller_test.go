package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
)

var viewport = geometry.Dims{Width: 1000, Height: 800}

func newController(x, y, w, h float64) *Controller {
	pos := geometry.Pt(x, y)
	size := geometry.Sz(w, h)
	return New(DefaultLimits().Initial(&pos, &size), viewport, DefaultLimits())
}

func dims(c *Controller) (float64, float64) {
	d := c.ResolvedSize()
	return d.Width, d.Height
}

func TestInitialDefaults(t *testing.T) {
	c := New(DefaultLimits().Initial(nil, nil), viewport, DefaultLimits())

	assert.Equal(t, geometry.Pt(0, 0), c.Position())
	w, h := dims(c)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
	assert.Equal(t, Idle, c.State())

	_, ok := c.Previous()
	assert.False(t, ok)
}

func TestInitialKeepsGivenSize(t *testing.T) {
	size := geometry.Size{Width: geometry.Px(500)}
	g := DefaultLimits().Initial(nil, &size)
	assert.Equal(t, size, g.Size)

	c := New(g, viewport, DefaultLimits())
	w, h := dims(c)
	assert.Equal(t, 500.0, w)
	assert.Equal(t, 0.0, h)

	// An unset size still takes the default.
	c = New(geometry.Geometry{}, viewport, DefaultLimits())
	w, h = dims(c)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
}

func TestInitialInvalidLengthsUseDefaults(t *testing.T) {
	size := geometry.Size{Width: geometry.CSS("Inf%"), Height: geometry.Px(-40)}
	c := New(DefaultLimits().Initial(nil, &size), viewport, DefaultLimits())
	w, h := dims(c)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 300, H: 200}, c.Rect())
}

func TestDragScenario(t *testing.T) {
	c := newController(100, 100, 300, 200)
	now := time.Now()

	d := c.HeaderDown(geometry.Pt(110, 110), now)
	assert.False(t, d.Pending())
	assert.Equal(t, Dragging, c.State())

	c.Move(geometry.Pt(160, 140))
	assert.Equal(t, geometry.Pt(150, 140), c.Position())

	c.Up(geometry.Pt(160, 140))
	assert.Equal(t, Idle, c.State())

	c.Move(geometry.Pt(500, 500))
	assert.Equal(t, geometry.Pt(150, 140), c.Position(), "moves after release must not drag")
}

func TestDragTranslationInvariance(t *testing.T) {
	c := newController(40, 60, 300, 200)
	start := geometry.Pt(55, 70)
	offset := start.Sub(c.Position())

	c.HeaderDown(start, time.Now())
	for _, p := range []geometry.Point{
		{X: 0, Y: 0},
		{X: -300, Y: 900},
		{X: 999, Y: 12},
		{X: 55.5, Y: 70.25},
	} {
		c.Move(p)
		assert.Equal(t, p.Sub(offset), c.Position())
	}
}

func TestResizeFormulas(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		dx, dy  float64
		wantPos geometry.Point
		wantW   float64
		wantH   float64
	}{
		{name: "se grows", dir: SouthEast, dx: 50, dy: 30, wantPos: geometry.Pt(100, 100), wantW: 350, wantH: 230},
		{name: "e grows, left anchored", dir: East, dx: 40, dy: 99, wantPos: geometry.Pt(100, 100), wantW: 340, wantH: 200},
		{name: "e clamps", dir: East, dx: -1000, wantPos: geometry.Pt(100, 100), wantW: 200, wantH: 200},
		{name: "w grows, right anchored", dir: West, dx: -50, wantPos: geometry.Pt(50, 100), wantW: 350, wantH: 200},
		{name: "w clamps, right anchored", dir: West, dx: 500, wantPos: geometry.Pt(200, 100), wantW: 200, wantH: 200},
		{name: "s grows", dir: South, dx: 10, dy: 25, wantPos: geometry.Pt(100, 100), wantW: 300, wantH: 225},
		{name: "s clamps", dir: South, dy: -5000, wantPos: geometry.Pt(100, 100), wantW: 300, wantH: 100},
		{name: "n grows, bottom anchored", dir: North, dy: -20, wantPos: geometry.Pt(100, 80), wantW: 300, wantH: 220},
		{name: "n clamps, bottom anchored", dir: North, dy: 400, wantPos: geometry.Pt(100, 200), wantW: 300, wantH: 100},
		{name: "nw both axes", dir: NorthWest, dx: -10, dy: -10, wantPos: geometry.Pt(90, 90), wantW: 310, wantH: 210},
		{name: "ne both axes", dir: NorthEast, dx: 10, dy: 10, wantPos: geometry.Pt(100, 110), wantW: 310, wantH: 190},
		{name: "sw both axes", dir: SouthWest, dx: 10, dy: 10, wantPos: geometry.Pt(110, 100), wantW: 290, wantH: 210},
		{name: "sw clamps both", dir: SouthWest, dx: 900, dy: -900, wantPos: geometry.Pt(200, 100), wantW: 200, wantH: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(100, 100, 300, 200)
			start := geometry.Pt(250, 250)

			c.ResizeDown(tt.dir, start)
			require.Equal(t, Resizing, c.State())

			c.Move(geometry.Pt(start.X+tt.dx, start.Y+tt.dy))
			w, h := dims(c)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantPos, c.Position())

			c.Up(geometry.Point{})
			assert.Equal(t, Idle, c.State())
		})
	}
}

func TestResizeIsRelativeToGestureStart(t *testing.T) {
	c := newController(100, 100, 300, 200)
	c.ResizeDown(East, geometry.Pt(400, 150))

	c.Move(geometry.Pt(450, 150))
	c.Move(geometry.Pt(420, 150))

	w, _ := dims(c)
	assert.Equal(t, 320.0, w)
}

func TestResizeFromStringSize(t *testing.T) {
	size := geometry.Size{Width: geometry.CSS("50%"), Height: geometry.CSS("250px")}
	c := New(geometry.Geometry{Size: size}, viewport, DefaultLimits())

	c.ResizeDown(SouthEast, geometry.Pt(0, 0))
	c.Move(geometry.Pt(10, 10))

	w, h := dims(c)
	assert.Equal(t, 510.0, w)
	assert.Equal(t, 260.0, h)
}

func TestNoResizeWhileFullscreen(t *testing.T) {
	c := newController(100, 100, 300, 200)
	c.DoubleClick()
	require.True(t, c.Fullscreen())

	c.ResizeDown(SouthEast, geometry.Pt(999, 799))
	c.Move(geometry.Pt(500, 500))

	w, h := dims(c)
	assert.Equal(t, viewport.Width, w)
	assert.Equal(t, viewport.Height, h)
}

func TestDoubleClickRoundTrip(t *testing.T) {
	c := newController(120, 80, 320, 240)
	before := c.Geometry()

	c.DoubleClick()
	assert.Equal(t, Fullscreen, c.State())
	assert.Equal(t, geometry.Pt(0, 0), c.Position())
	w, h := dims(c)
	assert.Equal(t, viewport.Width, w)
	assert.Equal(t, viewport.Height, h)

	prev, ok := c.Previous()
	require.True(t, ok)
	assert.Equal(t, before, prev)

	c.DoubleClick()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, before, c.Geometry())
}

func TestDoubleClickKeepsStringSize(t *testing.T) {
	size := geometry.Size{Width: geometry.CSS("40%"), Height: geometry.CSS("300px")}
	c := New(geometry.Geometry{Position: geometry.Pt(5, 5), Size: size}, viewport, DefaultLimits())

	c.DoubleClick()
	c.DoubleClick()

	assert.Equal(t, size, c.Size())
}

func TestHeaderDoublePressTogglesFullscreen(t *testing.T) {
	c := newController(100, 100, 300, 200)
	now := time.Now()

	c.HeaderDown(geometry.Pt(150, 110), now)
	c.Up(geometry.Pt(150, 110))
	c.HeaderDown(geometry.Pt(150, 110), now.Add(120*time.Millisecond))

	assert.Equal(t, Fullscreen, c.State())
	prev, ok := c.Previous()
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(100, 100), prev.Position)
}

func TestHeaderSlowPressesDrag(t *testing.T) {
	c := newController(100, 100, 300, 200)
	now := time.Now()

	c.HeaderDown(geometry.Pt(150, 110), now)
	c.Up(geometry.Pt(150, 110))
	c.HeaderDown(geometry.Pt(150, 110), now.Add(500*time.Millisecond))

	assert.Equal(t, Dragging, c.State())
	assert.False(t, c.Fullscreen())
}

func TestFullscreenDoublePressRestores(t *testing.T) {
	c := newController(100, 100, 300, 200)
	before := c.Geometry()
	c.DoubleClick()
	now := time.Now()

	first := c.HeaderDown(geometry.Pt(500, 10), now)
	require.True(t, first.Pending())
	assert.Equal(t, 200*time.Millisecond, first.Delay)
	assert.Equal(t, now.Add(200*time.Millisecond), first.Deadline)
	assert.Equal(t, FullscreenPendingExit, c.State())
	c.Up(geometry.Pt(500, 10))

	second := c.HeaderDown(geometry.Pt(500, 10), now.Add(80*time.Millisecond))
	assert.False(t, second.Pending())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, before, c.Geometry())

	assert.False(t, c.Fire(first.Token), "cancelled deferred must not fire")
	assert.Equal(t, before, c.Geometry())
}

func TestFullscreenHoldDragsOut(t *testing.T) {
	c := newController(100, 100, 300, 200)
	c.DoubleClick()

	d := c.HeaderDown(geometry.Pt(500, 10), time.Now())
	require.True(t, d.Pending())

	require.True(t, c.Fire(d.Token))
	assert.False(t, c.Fullscreen())
	assert.Equal(t, Dragging, c.State())

	w, h := dims(c)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)
	// 500 - 300*(500/1000), 10 - 20
	assert.Equal(t, geometry.Pt(350, -10), c.Position())

	c.Move(geometry.Pt(600, 110))
	assert.Equal(t, geometry.Pt(450, 90), c.Position())

	c.Up(geometry.Pt(600, 110))
	assert.Equal(t, Idle, c.State())
}

func TestFullscreenDragOutUsesLatestPointer(t *testing.T) {
	c := newController(100, 100, 400, 200)
	c.DoubleClick()

	d := c.HeaderDown(geometry.Pt(100, 10), time.Now())
	c.Move(geometry.Pt(250, 40))
	require.True(t, c.Fire(d.Token))

	// 250 - 400*(250/1000), 40 - 20
	assert.Equal(t, geometry.Pt(150, 20), c.Position())
}

func TestFullscreenReleasedBeforeTimerStays(t *testing.T) {
	c := newController(100, 100, 300, 200)
	c.DoubleClick()

	d := c.HeaderDown(geometry.Pt(500, 10), time.Now())
	c.Up(geometry.Pt(500, 10))

	assert.True(t, c.Fire(d.Token))
	assert.Equal(t, Fullscreen, c.State())
	assert.False(t, c.Fire(d.Token), "a token fires once")

	// the click counter was reset, so the next press starts a new deferred
	next := c.HeaderDown(geometry.Pt(500, 10), time.Now())
	assert.True(t, next.Pending())
	assert.NotEqual(t, d.Token, next.Token)
}

func TestUnmountCancelsDeferred(t *testing.T) {
	c := newController(100, 100, 300, 200)
	c.DoubleClick()
	d := c.HeaderDown(geometry.Pt(500, 10), time.Now())
	before := c.Geometry()

	c.Unmount()

	assert.False(t, c.Fire(d.Token))
	assert.Equal(t, before, c.Geometry())
	assert.True(t, c.Unmounted())

	c.Move(geometry.Pt(1, 1))
	c.DoubleClick()
	assert.Equal(t, before, c.Geometry())
}

func TestSetViewportTracksFullscreen(t *testing.T) {
	c := newController(10, 10, 300, 200)
	c.SetViewport(geometry.Dims{Width: 640, Height: 480})
	w, _ := dims(c)
	assert.Equal(t, 300.0, w)

	c.DoubleClick()
	c.SetViewport(geometry.Dims{Width: 1280, Height: 720})
	w, h := dims(c)
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)

	c.DoubleClick()
	assert.Equal(t, geometry.Sz(300, 200), c.Size())
}

func TestStateObserver(t *testing.T) {
	var seen []State
	pos := geometry.Pt(0, 0)
	c := New(DefaultLimits().Initial(&pos, nil), viewport, DefaultLimits(),
		WithStateObserver(func(_, to State) { seen = append(seen, to) }))

	c.HeaderDown(geometry.Pt(10, 10), time.Now())
	c.Move(geometry.Pt(20, 20))
	c.Up(geometry.Pt(20, 20))
	c.DoubleClick()

	assert.Equal(t, []State{Dragging, Idle, Fullscreen}, seen)
}
