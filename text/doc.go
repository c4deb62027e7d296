// Package text measures and outlines lines of text for the layer renderer.
//
// The pipeline separates the heavyweight font from the per-size face:
//
//   - Font: parsed font data shared across renders (see ParseFont, LoadFile, Lookup)
//   - Face: a font at one pixel size, owned by a single render call
//   - Line: one shaped line with its advance, ink bounds and glyph outline
//
// Shaping uses the HarfBuzz port from github.com/go-text/typesetting, so
// kerning and ligatures match what a browser would produce. Glyph outlines
// come from golang.org/x/image/font/sfnt in pixel units with the y axis
// pointing down and the origin at the pen start on the baseline.
//
// # Example usage
//
//	f, err := text.Lookup("Go", 900)
//	if err != nil {
//	    return err
//	}
//	face := text.NewFace(f, 143)
//	ext := face.Measure("Hello")
//	fmt.Println(ext.Advance, ext.Ascent, ext.Descent)
package text
