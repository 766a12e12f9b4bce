// Package floatwin provides draggable, resizable floating windows for
// Bubble Tea programs.
//
// A Model owns a window registry. Opening a descriptor mounts a window;
// the user can drag it by its header, resize it from any border cell, and
// double click the header to toggle fullscreen. Holding the header of a
// fullscreen window drags it back out at its previous size.
//
// # Basic Usage
//
//	model := floatwin.New()
//	_ = model.Open(floatwin.Descriptor{
//		ID:      "notes",
//		Title:   "Notes",
//		Content: floatwin.RendererFunc(func(_ floatwin.Props, w, h int) string {
//			return "hello"
//		}),
//	})
//	p := tea.NewProgram(model, floatwin.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Embedding
//
// Hosts with their own model forward messages to Model.Update and draw
// Model.Layers on their canvas. Code that only has a context can reach
// the registry through RegistryFromContext after Model.Context.
package floatwin

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/gesture"
	"github.com/Gaurav-Gosain/floatwin/internal/manager"
	"github.com/Gaurav-Gosain/floatwin/internal/registry"
	"github.com/Gaurav-Gosain/floatwin/internal/theme"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

type (
	// Descriptor describes a window to open.
	Descriptor = registry.Descriptor
	// Registry is the collection of open windows.
	Registry = registry.Registry
	// Props is the property bag handed to a content renderer.
	Props = window.Props
	// Renderer draws a window body.
	Renderer = window.Renderer
	// RendererFunc adapts a function to Renderer.
	RendererFunc = window.RendererFunc
	// HeaderRenderer draws a window header.
	HeaderRenderer = window.HeaderRenderer
	// HeaderRendererFunc adapts a function to HeaderRenderer.
	HeaderRendererFunc = window.HeaderRendererFunc
	// HeaderProps is what a header renderer receives.
	HeaderProps = window.HeaderProps
	// Hotspots restrict the drag and close areas of a header.
	Hotspots = window.Hotspots
	// HeaderLayout is implemented by headers with hotspots.
	HeaderLayout = window.HeaderLayout
	// DefaultHeader is the header used when a descriptor has none.
	DefaultHeader = window.DefaultHeader
	// Point is a position in cells.
	Point = geometry.Point
	// Size is a window size; each dimension is a number or a CSS-like string.
	Size = geometry.Size
	// Length is one dimension of a Size.
	Length = geometry.Length
	// Limits tune window sizes and gestures.
	Limits = gesture.Limits
	// ClickTimeoutMsg drives the fullscreen drag-out timer. Hosts must
	// forward it to Update.
	ClickTimeoutMsg = manager.ClickTimeoutMsg
)

var (
	// ErrMissingID is returned by Open for a descriptor without an id.
	ErrMissingID = registry.ErrMissingID
	// ErrDuplicateID is returned by Open when the id is already open.
	ErrDuplicateID = registry.ErrDuplicateID
	// ErrNoRegistry is returned by RegistryFromContext outside a Model
	// context.
	ErrNoRegistry = registry.ErrNoRegistry
)

// Pt returns a Point.
func Pt(x, y float64) Point { return geometry.Pt(x, y) }

// Sz returns a numeric Size.
func Sz(width, height float64) Size { return geometry.Sz(width, height) }

// Cells returns a numeric Length.
func Cells(v float64) Length { return geometry.Px(v) }

// CSS returns a string Length such as "50%" or "40".
func CSS(s string) Length { return geometry.CSS(s) }

// Options configures a Model.
type Options struct {
	// Theme is the color theme name. Empty uses standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Unicode glyphs.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	BorderStyle string

	// HideCloseButton hides the close button of the default header.
	HideCloseButton bool

	// Limits overrides the geometry limits. Nil uses the user config.
	Limits *Limits

	// Width and Height are the initial viewport, used until the first
	// tea.WindowSizeMsg.
	Width, Height int

	// Logger receives window lifecycle logs. Nil discards them.
	Logger *log.Logger

	// Registry lets several models share one registry. Nil creates one.
	Registry *Registry

	// UserConfig is a custom user configuration. If nil, the user's config
	// file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring a Model.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) { o.Theme = name }
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) { o.ASCIIOnly = enabled }
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) { o.BorderStyle = style }
}

// WithHideCloseButton hides the close button of the default header.
func WithHideCloseButton(hide bool) Option {
	return func(o *Options) { o.HideCloseButton = hide }
}

// WithLimits sets the geometry limits.
func WithLimits(l Limits) Option {
	return func(o *Options) { o.Limits = &l }
}

// WithSize sets the initial viewport size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRegistry makes the model manage an existing registry.
func WithRegistry(r *Registry) Option {
	return func(o *Options) { o.Registry = r }
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) { o.UserConfig = cfg }
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Width: 80, Height: 24}
}

// Model is a tea.Model that shows the windows of its registry.
type Model struct {
	reg *registry.Registry
	mgr *manager.Manager
}

// New creates a Model with the given options.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		if userConfig, err = config.LoadUserConfig(); err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       options.ASCIIOnly,
		BorderStyle:     options.BorderStyle,
		HideCloseButton: options.HideCloseButton,
		ThemeName:       options.Theme,
	}, userConfig)

	limits := userConfig.Limits()
	if options.Limits != nil {
		limits = *options.Limits
	}

	reg := options.Registry
	if reg == nil {
		reg = registry.New()
	}

	mopts := manager.DefaultOptions(options.Width, options.Height)
	mopts.Limits = limits
	mopts.Logger = options.Logger
	return &Model{reg: reg, mgr: manager.New(reg, mopts)}
}

// Open opens a window.
func (m *Model) Open(d Descriptor) error { return m.reg.Open(d) }

// Close closes the window with the given id and reports whether it was
// open.
func (m *Model) Close(id string) bool { return m.reg.Close(id) }

// Registry returns the registry behind the model.
func (m *Model) Registry() *Registry { return m.reg }

// Context returns a copy of ctx that carries the model's registry.
func (m *Model) Context(ctx context.Context) context.Context {
	return registry.WithRegistry(ctx, m.reg)
}

// RegistryFromContext returns the registry carried by ctx.
func RegistryFromContext(ctx context.Context) (*Registry, error) {
	return registry.FromContext(ctx)
}

// Focused returns the id of the focused window.
func (m *Model) Focused() string { return m.mgr.Focused() }

// Focus raises the window with the given id.
func (m *Model) Focus(id string) bool { return m.mgr.Focus(id) }

// Interacting reports whether a drag or resize is in progress.
func (m *Model) Interacting() bool { return m.mgr.Interacting() }

// Layers returns the windows as canvas layers, bottom to top.
func (m *Model) Layers() []*lipgloss.Layer { return m.mgr.Layers() }

// Shutdown unmounts every window and stops listening to the registry.
func (m *Model) Shutdown() { m.mgr.Close() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, m.mgr.Update(msg)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.mgr.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// OpenCmd returns a command that opens d. Its message is an OpenedMsg.
func OpenCmd(r *Registry, d Descriptor) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{ID: d.ID, Err: r.Open(d)}
	}
}

// OpenedMsg reports the outcome of OpenCmd.
type OpenedMsg struct {
	ID  string
	Err error
}

// CurrentTheme returns the name of the active theme, or "" when theming
// is disabled.
func CurrentTheme() string {
	if t := theme.Current(); t != nil {
		return t.ID
	}
	return ""
}

// Themes lists the available theme names.
func Themes() []string { return theme.Names() }

// ProgramOptions returns recommended tea.ProgramOption values:
//
//	p := tea.NewProgram(model, floatwin.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// Interactor is implemented by models that know whether a pointer gesture
// is in progress. *Model implements it; hosts embedding a Model can too.
type Interactor interface {
	Interacting() bool
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// unless a window is being dragged or resized.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	if i, ok := model.(Interactor); ok && !i.Interacting() {
		return nil
	}
	return msg
}
