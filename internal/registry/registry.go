// Package registry tracks the floating windows that are currently open.
//
// A Registry is an ordered list of descriptors with open and close
// operations. Every change is broadcast to subscribers, which is how the
// window manager learns that it has to mount or unmount a window.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Gaurav-Gosain/floatwin/internal/geometry"
	"github.com/Gaurav-Gosain/floatwin/internal/window"
)

var (
	// ErrMissingID is returned when a descriptor has no identifier.
	ErrMissingID = errors.New("window descriptor has no id")
	// ErrDuplicateID is returned when a window with the same identifier is
	// already open.
	ErrDuplicateID = errors.New("window id already open")
)

// Descriptor describes a window to open.
type Descriptor struct {
	// ID identifies the window. Required and unique among open windows.
	ID string
	// Title is shown by the default header.
	Title string
	// Content renders the window body.
	Content window.Renderer
	// Props is handed to Content unchanged.
	Props window.Props
	// Position is the initial top-left corner. Defaults to the origin.
	Position *geometry.Point
	// Size is the initial size. Defaults to the configured default size.
	Size *geometry.Size
	// Header renders the header row. Defaults to a title bar with a close
	// button.
	Header window.HeaderRenderer
}

// EventKind says what happened to a window.
type EventKind int

const (
	// Opened is sent after a descriptor was appended.
	Opened EventKind = iota
	// Closed is sent after a descriptor was removed.
	Closed
)

func (k EventKind) String() string {
	if k == Opened {
		return "opened"
	}
	return "closed"
}

// Event is broadcast to subscribers on every change.
type Event struct {
	Kind       EventKind
	ID         string
	Descriptor Descriptor
}

// Registry is the ordered collection of open windows. It is safe for
// concurrent use; subscribers are called without the lock held.
type Registry struct {
	mu          sync.Mutex
	descriptors []Descriptor
	subscribers map[int]func(Event)
	nextSub     int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{subscribers: make(map[int]func(Event))}
}

// Open appends d.
func (r *Registry) Open(d Descriptor) error {
	if d.ID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	if slices.ContainsFunc(r.descriptors, func(e Descriptor) bool { return e.ID == d.ID }) {
		r.mu.Unlock()
		return fmt.Errorf("open %q: %w", d.ID, ErrDuplicateID)
	}
	r.descriptors = append(r.descriptors, d)
	subs := r.snapshotSubscribers()
	r.mu.Unlock()

	notify(subs, Event{Kind: Opened, ID: d.ID, Descriptor: d})
	return nil
}

// Close removes every descriptor with the given id and reports whether
// anything was removed. Unknown ids are a no-op.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	var removed []Descriptor
	r.descriptors = slices.DeleteFunc(r.descriptors, func(d Descriptor) bool {
		if d.ID == id {
			removed = append(removed, d)
			return true
		}
		return false
	})
	subs := r.snapshotSubscribers()
	r.mu.Unlock()

	for _, d := range removed {
		notify(subs, Event{Kind: Closed, ID: d.ID, Descriptor: d})
	}
	return len(removed) > 0
}

// Clear closes every window, newest first.
func (r *Registry) Clear() {
	r.mu.Lock()
	removed := r.descriptors
	r.descriptors = nil
	subs := r.snapshotSubscribers()
	r.mu.Unlock()

	for i := len(removed) - 1; i >= 0; i-- {
		notify(subs, Event{Kind: Closed, ID: removed[i].ID, Descriptor: removed[i]})
	}
}

// Descriptors returns the open windows in opening order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.descriptors)
}

// Get returns the descriptor with the given id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.descriptors)
}

// Subscribe registers fn for change events and returns a function that
// removes it.
func (r *Registry) Subscribe(fn func(Event)) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, id)
			r.mu.Unlock()
		})
	}
}

// snapshotSubscribers must be called with mu held.
func (r *Registry) snapshotSubscribers() []func(Event) {
	ids := make([]int, 0, len(r.subscribers))
	for id := range r.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, r.subscribers[id])
	}
	return subs
}

func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
