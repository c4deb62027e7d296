// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster target the layer compositor draws on.
//
// A Surface exposes exactly the host primitives the compositor needs: fill,
// stroke and shadow a block of text, composite another surface with a
// blend mode, and read or write raw pixels. Keeping the primitive set small
// lets the same compositing code run on the software ImageSurface or on any
// third-party backend registered at runtime.
//
// # Registry
//
// Backends register a factory under a name:
//
//	func init() {
//	    surface.Register("tiled", 20, newTiledSurface, nil)
//	}
//
//	s, err := surface.NewSurfaceByName("tiled", 800, 600)
//
// The software backend is registered as "image" with priority 10.
//
// # Usage
//
//	s := surface.NewImageSurface(400, 200)
//	defer s.Close()
//
//	face := text.NewFace(font, 96)
//	s.FillText(surface.Text{
//	    Face:   face,
//	    Lines:  []string{"Hello"},
//	    X:      200,
//	    Y:      130,
//	    ScaleX: 1,
//	    ScaleY: 1,
//	}, surface.FillStyle{Color: color.Black})
//
//	img := s.Snapshot()
//
// Pixels are premultiplied RGBA as in image.RGBA.
package surface
