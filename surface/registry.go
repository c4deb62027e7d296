// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Factory allocates a canvas of opts.Width by opts.Height pixels.
type Factory func(opts Options) (Surface, error)

// Backend describes one way of allocating render canvases.
type Backend struct {
	Name string

	// Priority orders backends for NewSurface, highest first.
	// The builtin "image" backend has priority 10.
	Priority int

	Factory Factory

	// Available is consulted on every lookup; nil means always.
	Available func() bool
}

func (b *Backend) usable() bool {
	return b.Available == nil || b.Available()
}

// Registry is a set of named canvas backends. A textfx Renderer picks its
// backend by name from the package-level registry:
//
//	surface.Register("tiled", 20, newTiledSurface, nil)
//	r := textfx.NewRenderer(font, textfx.WithBackend("tiled"))
type Registry struct {
	mu sync.RWMutex
	// sorted by descending priority, then name
	backends []*Backend
}

var defaultRegistry = NewRegistry()

// NewRegistry returns a registry with no backends.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds or replaces a backend in the package registry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister drops a backend from the package registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// Available lists the usable backends of the package registry.
func Available() []string {
	return defaultRegistry.Available()
}

// NewSurface allocates a canvas from the preferred package backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName allocates a canvas from the named package backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Register adds a backend, replacing any backend with the same name.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	b := &Backend{Name: name, Priority: priority, Factory: factory, Available: available}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends = slices.DeleteFunc(r.backends, func(o *Backend) bool { return o.Name == name })
	i, _ := slices.BinarySearchFunc(r.backends, b, compareBackends)
	r.backends = slices.Insert(r.backends, i, b)
}

func compareBackends(a, b *Backend) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Unregister drops the named backend. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends = slices.DeleteFunc(r.backends, func(b *Backend) bool { return b.Name == name })
}

// Available lists usable backend names in preference order.
func (r *Registry) Available() []string {
	var names []string
	for _, b := range r.snapshot() {
		if b.usable() {
			names = append(names, b.Name)
		}
	}
	return names
}

func (r *Registry) snapshot() []*Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.backends)
}

func (r *Registry) lookup(name string) *Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.IndexFunc(r.backends, func(b *Backend) bool { return b.Name == name })
	if i < 0 {
		return nil
	}
	return r.backends[i]
}

// NewSurface tries usable backends in preference order and returns the
// first canvas allocated. If every factory fails the errors are joined.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	var errs []error
	for _, b := range r.snapshot() {
		if !b.usable() {
			continue
		}
		s, err := b.Factory(opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("surface: backend %s: %w", b.Name, err))
	}
	if len(errs) == 0 {
		return nil, ErrNoBackendAvailable
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName allocates a canvas from one backend without fallback.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b := r.lookup(name)
	switch {
	case b == nil:
		return nil, &BackendNotFoundError{Name: name}
	case !b.usable():
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts)
}

var (
	// ErrNoBackendAvailable means the registry holds no usable backend.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrSurfaceClosed is returned when a closed surface is resized or written.
	ErrSurfaceClosed = errors.New("surface: closed")

	// ErrNilImage is returned by WritePixels for a nil image.
	ErrNilImage = errors.New("surface: nil image")
)

// BackendNotFoundError reports a backend name nobody registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("surface: unknown backend %q", e.Name)
}

// BackendUnavailableError reports a registered backend whose Available
// check failed.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("surface: backend %q is not available", e.Name)
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
