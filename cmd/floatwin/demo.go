package main

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/floatwin/internal/demo"
	"github.com/Gaurav-Gosain/floatwin/internal/theme"
	"github.com/Gaurav-Gosain/floatwin/pkg/floatwin"
)

const statsInterval = time.Second

// statsMsg is delivered after each stats refresh.
type statsMsg struct{ err error }

// demoModel puts a key driven launcher and a status bar around the
// floating windows.
type demoModel struct {
	fw     *floatwin.Model
	stats  *demo.Stats
	logger *log.Logger

	width, height int
	opened        int
	status        string
}

func newDemoModel(fw *floatwin.Model, stats *demo.Stats, logger *log.Logger, width, height, windows int) *demoModel {
	m := &demoModel{fw: fw, stats: stats, logger: logger, width: width, height: height}
	for range windows {
		m.openNext()
	}
	return m
}

func (m *demoModel) openNext() {
	d := demo.Window(m.opened)
	m.opened++
	if err := m.fw.Open(d); err != nil {
		m.setStatus("open failed: %v", err)
	}
}

func (m *demoModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.logger.Debug("status", "msg", m.status)
}

func (m *demoModel) refreshStats() tea.Cmd {
	return tea.Tick(statsInterval, func(time.Time) tea.Msg {
		return statsMsg{err: m.stats.Refresh()}
	})
}

// Interacting lets floatwin.FilterMouseMotion see through the wrapper.
func (m *demoModel) Interacting() bool { return m.fw.Interacting() }

func (m *demoModel) Init() tea.Cmd {
	return tea.Batch(m.fw.Init(), m.refreshStats())
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case statsMsg:
		if msg.err != nil {
			m.logger.Warn("stats refresh failed", "err", msg.err)
		}
		return m, m.refreshStats()
	case floatwin.OpenedMsg:
		if msg.Err != nil {
			m.setStatus("open %s: %v", msg.ID, msg.Err)
		} else {
			m.setStatus("opened %s", msg.ID)
		}
	}

	_, cmd := m.fw.Update(msg)
	return m, cmd
}

func (m *demoModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "n":
		d := demo.Window(m.opened)
		m.opened++
		return floatwin.OpenCmd(m.fw.Registry(), d)
	case "o":
		err := m.fw.Open(demo.TestWindow())
		if errors.Is(err, floatwin.ErrDuplicateID) {
			m.fw.Focus(demo.TestWindowID)
			m.setStatus("%s is already open", demo.TestWindowID)
		}
	case "s":
		if err := m.fw.Open(demo.StatsWindow(m.stats)); err != nil {
			m.setStatus("open failed: %v", err)
		}
	case "x":
		if id := m.fw.Focused(); id != "" {
			m.fw.Close(id)
			m.setStatus("closed %s", id)
		}
	}
	return nil
}

func (m *demoModel) statusBar() string {
	help := " n new  o custom header  s stats  x close  q quit"
	if m.status != "" {
		help += "  |  " + m.status
	}
	if name := floatwin.CurrentTheme(); name != "" {
		help += "  |  theme " + name
	}
	help = ansi.Truncate(help, m.width, "…")
	return lipgloss.NewStyle().
		Foreground(theme.Muted()).
		Width(m.width).
		Render(help)
}

func (m *demoModel) View() tea.View {
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(lipgloss.NewLayer(m.statusBar()).X(0).Y(max(m.height-1, 0)))
	for _, layer := range m.fw.Layers() {
		canvas.Compose(layer)
	}

	view := m.fw.View()
	view.SetContent(lipgloss.Sprint(canvas.Render()))
	return view
}
