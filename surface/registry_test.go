// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func TestRegistryBuiltin(t *testing.T) {
	s, err := NewSurfaceByName("image", 12, 8)
	if err != nil {
		t.Fatalf("NewSurfaceByName(image) error = %v", err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("surface type = %T, want *ImageSurface", s)
	}
	if s.Width() != 12 || s.Height() != 8 {
		t.Errorf("size = %dx%d, want 12x8", s.Width(), s.Height())
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 1, func(o Options) (Surface, error) { return NewImageSurface(1, 1), nil }, nil)
	r.Register("high", 50, func(o Options) (Surface, error) { return NewImageSurface(2, 2), nil }, nil)
	r.Register("off", 100, nil, func() bool { return false })

	got := r.Available()
	if len(got) != 2 || got[0] != "high" || got[1] != "low" {
		t.Fatalf("Available() = %v, want [high low]", got)
	}

	s, err := r.NewSurface(Options{})
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s.Width() != 2 {
		t.Errorf("NewSurface picked width %d, want the high priority backend", s.Width())
	}
}

func TestRegistryFallback(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register("broken", 50, func(Options) (Surface, error) { return nil, boom }, nil)
	r.Register("soft", 10, func(o Options) (Surface, error) { return NewImageSurface(o.Width, o.Height), nil }, nil)

	s, err := r.NewSurface(Options{Width: 3, Height: 3})
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s.Width() != 3 {
		t.Errorf("width = %d, want 3", s.Width())
	}

	r.Unregister("soft")
	if _, err := r.NewSurface(Options{}); !errors.Is(err, boom) {
		t.Errorf("NewSurface() error = %v, want boom", err)
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(Options{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry error = %v, want ErrNoBackendAvailable", err)
	}

	var nf *BackendNotFoundError
	if _, err := r.NewSurfaceByName("nope", Options{}); !errors.As(err, &nf) {
		t.Errorf("error = %v, want BackendNotFoundError", err)
	}

	r.Register("off", 1, nil, func() bool { return false })
	var un *BackendUnavailableError
	if _, err := r.NewSurfaceByName("off", Options{}); !errors.As(err, &un) {
		t.Errorf("error = %v, want BackendUnavailableError", err)
	}
}
