// Package textfx renders styled text: a block of text drawn through an
// ordered stack of effect layers and optionally bent along an arc.
//
// # Overview
//
// A layer stack holds solid and gradient fills, drop shadows, outer glows,
// strokes and extrusions. Rendering turns the stack into a fixed draw
// sequence (effects, one base fill, strokes), sizes the canvas so that no
// blur, offset or trail is clipped, composites every layer onto a surface
// and finally applies the arc warp.
//
// # Quick Start
//
//	r := textfx.NewRenderer()
//	stack := textfx.NewDefaultStack("#FFFFFF")
//	stack.Add(textfx.TypeDropShadow)
//	stack.Add(textfx.TypeStroke)
//
//	dst := surface.NewImageSurface(1, 1)
//	size, err := r.Render(ctx, dst, textfx.Request{
//	    Text:     "Hello\nWorld",
//	    FontSize: 143,
//	    Padding:  24,
//	    ArcPct:   20,
//	}, stack.Layers())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(w, dst.Image())
//
// # Coordinates
//
// Request values are in user pixels. Scale multiplies all of them for
// high-resolution export, while ScaleX and ScaleY stretch glyphs and effects
// horizontally and vertically. Layout values are device pixels.
//
// # Logging
//
// textfx is silent by default. Use SetLogger or WithLogger to receive
// structured logs through log/slog.
package textfx
