package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/surface"
)

// renderImage renders one request into a new image.
func renderImage(ctx context.Context, r *textfx.Renderer, req textfx.Request, layers []textfx.Layer) (*image.RGBA, error) {
	dst := surface.NewImageSurface(1, 1)
	defer dst.Close()
	if _, err := r.Render(ctx, dst, req, layers); err != nil {
		return nil, err
	}
	return dst.Image(), nil
}

// encoderFor returns the image encoder for the extension of path.
func encoderFor(path string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
}

func saveImage(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	return imgio.Save(path, img, enc)
}

// thumbnail scales img to width, keeping the aspect ratio.
func thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	h := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	return transform.Resize(img, width, max(1, h), transform.Linear)
}
