package demo

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Gaurav-Gosain/floatwin/internal/theme"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

// Sample is one reading of the host's load.
type Sample struct {
	CPUPercent float64
	MemPercent float64
	MemUsed    uint64
	MemTotal   uint64
	Uptime     time.Duration
}

// Sampler takes a Sample.
type Sampler func() (Sample, error)

// HostSampler reads CPU, memory and uptime with gopsutil. CPU usage is
// measured since the previous call, so the first reading may be zero.
func HostSampler() (Sample, error) {
	var s Sample

	percents, err := cpu.Percent(0, false)
	if err != nil {
		return s, fmt.Errorf("cpu usage: %w", err)
	}
	if len(percents) > 0 {
		s.CPUPercent = percents[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return s, fmt.Errorf("memory usage: %w", err)
	}
	s.MemPercent = vm.UsedPercent
	s.MemUsed = vm.Used
	s.MemTotal = vm.Total

	uptime, err := host.Uptime()
	if err != nil {
		return s, fmt.Errorf("uptime: %w", err)
	}
	s.Uptime = time.Duration(uptime) * time.Second
	return s, nil
}

// Stats is a window.Renderer showing the latest sample. Rendering never
// samples; call Refresh on a timer.
type Stats struct {
	sample Sampler

	mu   sync.RWMutex
	last Sample
	err  error
}

// NewStats returns a Stats fed by sample. A nil sampler uses HostSampler.
func NewStats(sample Sampler) *Stats {
	if sample == nil {
		sample = HostSampler
	}
	return &Stats{sample: sample}
}

// Refresh takes a new sample.
func (s *Stats) Refresh() error {
	sample, err := s.sample()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	if err == nil {
		s.last = sample
	}
	return err
}

// Last returns the latest sample and the error of the latest refresh.
func (s *Stats) Last() (Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.err
}

// Render implements window.Renderer.
func (s *Stats) Render(_ window.Props, width, _ int) string {
	sample, err := s.Last()
	if err != nil {
		return lipgloss.NewStyle().Foreground(theme.CloseButton()).Width(max(width, 1)).Render(err.Error())
	}

	muted := lipgloss.NewStyle().Foreground(theme.Muted())
	lines := []string{
		gauge("cpu", sample.CPUPercent, width),
		gauge("mem", sample.MemPercent, width),
		muted.Render(fmt.Sprintf("    %s / %s", formatBytes(sample.MemUsed), formatBytes(sample.MemTotal))),
		muted.Render("up  " + sample.Uptime.Truncate(time.Minute).String()),
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// gauge draws "label [#####     ]  42%" colored by level.
func gauge(label string, percent float64, width int) string {
	percent = min(max(percent, 0), 100)
	suffix := fmt.Sprintf(" %3.0f%%", percent)
	barW := max(width-len(label)-len(suffix)-3, 0)
	filled := int(float64(barW) * percent / 100)

	c := theme.Success()
	switch {
	case percent >= 80:
		c = theme.CloseButton()
	case percent >= 50:
		c = theme.Warning()
	}

	bar := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", filled)) +
		strings.Repeat(" ", barW-filled)
	return label + " [" + bar + "]" + suffix
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
