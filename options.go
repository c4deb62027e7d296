package textfx

import (
	"context"
	"log/slog"

	"github.com/gogpu/textfx/text"
)

// DefaultMaxCanvasDimension is the default limit for each canvas side.
const DefaultMaxCanvasDimension = 16384

// FontLoader loads the renderer's font. It runs once, in the background.
type FontLoader func(ctx context.Context) (*text.Font, error)

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := textfx.NewRenderer(
//	    textfx.WithStyle(textfx.Style{FontFamily: "Go Mono", FontWeight: 700}),
//	    textfx.WithMaxCanvasDimension(8192),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	style   Style
	font    *text.Font
	loader  FontLoader
	backend string
	logger  *slog.Logger
	maxDim  int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		style:   DefaultStyle(),
		backend: "image",
		maxDim:  DefaultMaxCanvasDimension,
	}
}

// WithStyle sets the text style. Zero fields take their defaults.
func WithStyle(s Style) RendererOption {
	return func(o *rendererOptions) {
		o.style = s
	}
}

// WithFont uses f instead of looking up the style's font family.
func WithFont(f *text.Font) RendererOption {
	return func(o *rendererOptions) {
		o.font = f
		o.loader = nil
	}
}

// WithFontLoader loads the font in the background. Renders wait until the
// loader returns; if it fails they return ErrNotReady.
//
// Example:
//
//	r := textfx.NewRenderer(textfx.WithFontLoader(func(ctx context.Context) (*text.Font, error) {
//	    return text.LoadFile("fonts/Display-Black.ttf")
//	}))
func WithFontLoader(fn FontLoader) RendererOption {
	return func(o *rendererOptions) {
		o.loader = fn
		o.font = nil
	}
}

// WithBackend selects the surface backend by registry name. The default is
// the software backend "image".
func WithBackend(name string) RendererOption {
	return func(o *rendererOptions) {
		o.backend = name
	}
}

// WithLogger sets the logger of one Renderer. Without it the package logger
// (see SetLogger) is used.
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// WithMaxCanvasDimension limits the canvas width and height. Renders that
// need a larger canvas fail with ErrCanvasTooLarge. Values below 1 mean no
// limit.
func WithMaxCanvasDimension(n int) RendererOption {
	return func(o *rendererOptions) {
		o.maxDim = n
	}
}
