package floatwin

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
)

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	opts = append([]Option{WithUserConfig(config.DefaultConfig()), WithSize(60, 20)}, opts...)
	m := New(opts...)
	t.Cleanup(m.Shutdown)
	return m
}

func hello(Props, int, int) string { return "hello" }

func TestOpenAndView(t *testing.T) {
	m := newTestModel(t)
	pos := Pt(1, 1)
	size := Sz(20, 6)
	require.NoError(t, m.Open(Descriptor{
		ID:       "notes",
		Title:    "Notes",
		Content:  RendererFunc(hello),
		Position: &pos,
		Size:     &size,
	}))

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, tea.MouseModeAllMotion, view.MouseMode)

	screen := ansi.Strip(m.mgr.Render())
	assert.Contains(t, screen, "Notes")
	assert.Contains(t, screen, "hello")
	assert.Equal(t, "notes", m.Focused())
}

func TestOpenErrors(t *testing.T) {
	m := newTestModel(t)
	assert.ErrorIs(t, m.Open(Descriptor{}), ErrMissingID)

	require.NoError(t, m.Open(Descriptor{ID: "a", Content: RendererFunc(hello)}))
	assert.ErrorIs(t, m.Open(Descriptor{ID: "a", Content: RendererFunc(hello)}), ErrDuplicateID)

	assert.True(t, m.Close("a"))
	assert.False(t, m.Close("a"))
	assert.Empty(t, m.Focused())
}

func TestUpdateRoutesMouse(t *testing.T) {
	m := newTestModel(t)
	pos := Pt(1, 1)
	size := Sz(20, 6)
	require.NoError(t, m.Open(Descriptor{ID: "a", Title: "A", Content: RendererFunc(hello), Position: &pos, Size: &size}))

	m.Update(tea.MouseClickMsg{X: 5, Y: 2, Button: tea.MouseLeft})
	assert.True(t, m.Interacting())

	// Motion passes the filter while dragging.
	motion := tea.MouseMotionMsg{X: 10, Y: 6, Button: tea.MouseLeft}
	assert.Equal(t, tea.Msg(motion), FilterMouseMotion(m, motion))
	m.Update(motion)

	m.Update(tea.MouseReleaseMsg{X: 10, Y: 6, Button: tea.MouseLeft})
	assert.False(t, m.Interacting())
	assert.Nil(t, FilterMouseMotion(m, motion))

	layers := m.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, 6, layers[0].GetX())
	assert.Equal(t, 5, layers[0].GetY())
}

func TestFilterPassesOtherMessages(t *testing.T) {
	m := newTestModel(t)
	size := tea.WindowSizeMsg{Width: 10, Height: 10}
	assert.Equal(t, tea.Msg(size), FilterMouseMotion(m, size))
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestContextCarriesRegistry(t *testing.T) {
	m := newTestModel(t)
	ctx := m.Context(context.Background())

	reg, err := RegistryFromContext(ctx)
	require.NoError(t, err)
	require.NoError(t, reg.Open(Descriptor{ID: "from-ctx", Content: RendererFunc(hello)}))
	assert.Equal(t, "from-ctx", m.Focused())

	_, err = RegistryFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoRegistry)
}

func TestOpenCmd(t *testing.T) {
	m := newTestModel(t)
	msg := OpenCmd(m.Registry(), Descriptor{ID: "x", Content: RendererFunc(hello)})()
	assert.Equal(t, OpenedMsg{ID: "x"}, msg)

	msg = OpenCmd(m.Registry(), Descriptor{ID: "x", Content: RendererFunc(hello)})()
	opened, ok := msg.(OpenedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, opened.Err, ErrDuplicateID)
}

func TestSharedRegistry(t *testing.T) {
	first := newTestModel(t)
	second := newTestModel(t, WithRegistry(first.Registry()))

	require.NoError(t, first.Open(Descriptor{ID: "shared", Content: RendererFunc(hello)}))
	assert.Equal(t, "shared", second.Focused())
}

func TestWithLimitsOverridesConfig(t *testing.T) {
	limits := config.DefaultLimits()
	limits.DefaultWidth = 30
	limits.DefaultHeight = 8
	m := newTestModel(t, WithLimits(limits))

	require.NoError(t, m.Open(Descriptor{ID: "sized", Content: RendererFunc(hello)}))
	lines := strings.Split(ansi.Strip(m.mgr.Render()), "\n")
	top := strings.TrimRight(lines[0], " ")
	assert.Equal(t, 30, ansi.StringWidth(strings.TrimLeft(top, " ")))
}
