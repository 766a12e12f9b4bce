package registry

import (
	"context"
	"errors"
)

// ErrNoRegistry is returned when window operations are requested outside
// the scope of a registry.
var ErrNoRegistry = errors.New("window registry accessed outside of a registry scope")

type contextKey struct{}

// WithRegistry returns a context that carries r. Code running with the
// returned context can open and close windows through FromContext.
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the registry carried by ctx.
func FromContext(ctx context.Context) (*Registry, error) {
	if ctx == nil {
		return nil, ErrNoRegistry
	}
	r, ok := ctx.Value(contextKey{}).(*Registry)
	if !ok || r == nil {
		return nil, ErrNoRegistry
	}
	return r, nil
}

// MustFromContext is like FromContext but panics outside a registry
// scope. The panic is a composition bug in the caller.
func MustFromContext(ctx context.Context) *Registry {
	r, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return r
}
