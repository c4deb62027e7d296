package textfx

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gogpu/textfx/internal/cache"
	"github.com/gogpu/textfx/surface"
	"github.com/gogpu/textfx/text"
)

// maxCachedFaces bounds the font sizes a Renderer keeps shaped text for.
const maxCachedFaces = 8

// Size is the pixel size of a rendered image.
type Size struct {
	Width, Height int
}

// Renderer renders layer stacks onto surfaces.
//
// A Renderer holds immutable configuration, its font and a small cache of
// faces by pixel size. Every render allocates its own scratch surfaces, so
// one Renderer may be used from several goroutines at once.
type Renderer struct {
	style   Style
	backend string
	maxDim  int
	logger  *slog.Logger

	ready   chan struct{}
	font    *text.Font
	fontErr error

	faces *cache.Cache[float64, *text.Face]
}

// NewRenderer creates a renderer. Without WithFont or WithFontLoader the
// built-in family named by the style is used; an unknown family falls back
// to the Go font.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		style:   o.style.normalized(),
		backend: o.backend,
		maxDim:  o.maxDim,
		logger:  o.logger,
		ready:   make(chan struct{}),
		faces:   cache.New[float64, *text.Face](maxCachedFaces),
	}

	switch {
	case o.font != nil:
		r.font = o.font
		close(r.ready)
	case o.loader != nil:
		go r.load(o.loader)
	default:
		r.font, r.fontErr = r.lookupFont()
		close(r.ready)
	}
	return r
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

func (r *Renderer) load(fn FontLoader) {
	defer close(r.ready)
	start := time.Now()
	f, err := fn(context.Background())
	if err == nil && f == nil {
		err = errors.New("loader returned no font")
	}
	if err != nil {
		r.fontErr = err
		r.log().Warn("textfx: font loading failed", "err", err)
		return
	}
	r.font = f
	r.log().Info("textfx: font loaded", "name", f.Name(), "elapsed", time.Since(start))
}

func (r *Renderer) lookupFont() (*text.Font, error) {
	f, err := text.Lookup(r.style.FontFamily, r.style.FontWeight)
	if errors.Is(err, text.ErrUnknownFamily) {
		r.log().Warn("textfx: unknown font family, using default",
			"family", r.style.FontFamily, "default", text.DefaultFamily)
		f, err = text.Lookup(text.DefaultFamily, r.style.FontWeight)
	}
	return f, err
}

// Style returns the renderer's normalized style.
func (r *Renderer) Style() Style { return r.style }

// Ready reports whether the font is loaded and usable.
func (r *Renderer) Ready() bool {
	select {
	case <-r.ready:
		return r.fontErr == nil
	default:
		return false
	}
}

// Wait blocks until the font is loaded or ctx is done.
func (r *Renderer) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		if r.fontErr != nil {
			return fmt.Errorf("%w: %w", ErrNotReady, r.fontErr)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// Layout waits for the font and returns the geometry Render would use for
// req and layers.
func (r *Renderer) Layout(ctx context.Context, req Request, layers []Layer) (Layout, error) {
	if err := r.Wait(ctx); err != nil {
		return Layout{}, err
	}
	req = req.normalized()
	face := r.face(req.FontSize * req.Scale)
	return layoutBlock(face, r.style, req, BuildRenderStack(layers).Draw), nil
}

// face returns the face of the renderer's font at px pixels per em. The
// font must be ready.
func (r *Renderer) face(px float64) *text.Face {
	return r.faces.GetOrCreate(px, func() *text.Face { return text.NewFace(r.font, px) })
}

func (r *Renderer) checkSize(w, h int) error {
	if r.maxDim > 0 && (w > r.maxDim || h > r.maxDim) {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrCanvasTooLarge, w, h, r.maxDim)
	}
	return nil
}

func (r *Renderer) newSurface(w, h int) (surface.Surface, error) {
	return surface.NewSurfaceByName(r.backend, w, h)
}

// Render draws layers over the text of req and writes the result to dst,
// resizing it. It returns the final image size.
//
// The canvas is sized so that no effect is clipped, unless req fixes the
// size. Nothing is written to dst unless the whole render succeeds; a nil
// dst or an unusable backend fails with ErrSurfaceUnavailable.
func (r *Renderer) Render(ctx context.Context, dst surface.Surface, req Request, layers []Layer) (Size, error) {
	if dst == nil {
		return Size{}, fmt.Errorf("%w: nil destination", ErrSurfaceUnavailable)
	}
	if err := r.Wait(ctx); err != nil {
		return Size{}, err
	}
	start := time.Now()
	log := r.log()

	req = req.normalized()
	face := r.face(req.FontSize * req.Scale)
	stack := BuildRenderStack(layers)
	lay := layoutBlock(face, r.style, req, stack.Draw)
	if err := r.checkSize(lay.Width, lay.Height); err != nil {
		return Size{}, err
	}
	log.Debug("textfx: layout",
		"width", lay.Width, "height", lay.Height,
		"lines", len(lay.Lines), "layers", len(stack.Draw),
		"margins", lay.Margins)

	work, err := r.newSurface(lay.Width, lay.Height)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	defer work.Close()

	var bg color.Color
	if req.ShowBackground {
		bg = hexColor(req.Background, DefaultBackground, 1)
		work.Clear(bg)
	}

	c := &compositor{
		main:       work,
		lay:        lay,
		txt:        lay.Text(face),
		log:        log,
		newSurface: r.newSurface,
	}
	defer c.close()

	for _, l := range stack.Draw {
		if err := ctx.Err(); err != nil {
			return Size{}, err
		}
		t := time.Now()
		if err := c.draw(l); err != nil {
			return Size{}, &LayerError{ID: l.ID, Op: "draw", Err: err}
		}
		log.Debug("textfx: layer drawn", "id", l.ID, "type", l.Type(), "elapsed", time.Since(t))
	}

	if req.ArcPct > 0 {
		if err := r.arc(work, req.ArcPct, bg); err != nil {
			return Size{}, err
		}
	}

	if err := dst.WritePixels(work.Snapshot()); err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	size := Size{Width: dst.Width(), Height: dst.Height()}
	fc := r.faces.Stats()
	log.Debug("textfx: rendered", "width", size.Width, "height", size.Height, "elapsed", time.Since(start),
		slog.Group("faces", "cached", fc.Len, "hits", fc.Hits, "misses", fc.Misses))
	return size, nil
}

// arc warps the work surface in place. The background, if any, is laid
// under the warped image so the area the arc uncovers is filled too.
func (r *Renderer) arc(work surface.Surface, arcPct float64, bg color.Color) error {
	warped := ArcWarp(work.Snapshot(), arcPct)
	if err := r.checkSize(warped.Rect.Dx(), warped.Rect.Dy()); err != nil {
		return err
	}
	if err := work.WritePixels(warped); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	if bg == nil {
		return nil
	}
	under, err := r.newSurface(work.Width(), work.Height())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	defer under.Close()
	under.Clear(bg)
	work.DrawSurface(under, surface.BlendDestinationOver)
	return nil
}
