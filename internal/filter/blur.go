package filter

import (
	"image"
	"sync"
)

// Blur applies a separable Gaussian blur in place.
//
// Pixels outside the image are treated as transparent, so content near an
// edge fades instead of smearing the border. The horizontal pass writes to a
// pooled float32 buffer, the vertical pass writes back into the image.
type Blur struct {
	// SigmaX is the horizontal standard deviation in pixels.
	SigmaX float64

	// SigmaY is the vertical standard deviation in pixels.
	SigmaY float64
}

// NewBlur creates a blur with independent horizontal and vertical sigma.
func NewBlur(sigmaX, sigmaY float64) Blur {
	return Blur{SigmaX: sigmaX, SigmaY: sigmaY}
}

// Identity reports whether the blur leaves images unchanged.
func (b Blur) Identity() bool {
	return Extent(b.SigmaX) == 0 && Extent(b.SigmaY) == 0
}

// Alpha blurs an 8-bit coverage mask.
func (b Blur) Alpha(img *image.Alpha) {
	if img == nil || b.Identity() {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	b.run(img.Pix, img.Stride, w, h, 1)
}

// RGBA blurs a premultiplied image. Premultiplied channels blur without
// fringing, so every channel uses the same kernel.
func (b Blur) RGBA(img *image.RGBA) {
	if img == nil || b.Identity() {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	b.run(img.Pix, img.Stride, w, h, 4)
}

func (b Blur) run(pix []byte, stride, w, h, channels int) {
	temp := getTempBuffer(w * h * channels)
	defer putTempBuffer(temp)

	blurHorizontal(pix, stride, temp, w, h, channels, CachedGaussianKernel(b.SigmaX))
	blurVertical(temp, pix, stride, w, h, channels, CachedGaussianKernel(b.SigmaY))
}

// blurHorizontal convolves each row of pix into temp.
func blurHorizontal(pix []byte, stride int, temp []float32, w, h, channels int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			k0 := 0
			if x-half < 0 {
				k0 = half - x
			}
			k1 := len(kernel)
			if x-half+k1 > w {
				k1 = w - x + half
			}
			out := temp[(y*w+x)*channels:]
			for c := 0; c < channels; c++ {
				var sum float32
				for k := k0; k < k1; k++ {
					sum += float32(row[(x+k-half)*channels+c]) * kernel[k]
				}
				out[c] = sum
			}
		}
	}
}

// blurVertical convolves each column of temp back into pix.
func blurVertical(temp []float32, pix []byte, stride, w, h, channels int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		k0 := 0
		if y-half < 0 {
			k0 = half - y
		}
		k1 := len(kernel)
		if y-half+k1 > h {
			k1 = h - y + half
		}
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				var sum float32
				for k := k0; k < k1; k++ {
					sum += temp[((y+k-half)*w+x)*channels+c] * kernel[k]
				}
				row[x*channels+c] = clampUint8(sum)
			}
		}
	}
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

var tempPool sync.Pool

func getTempBuffer(size int) []float32 {
	if v := tempPool.Get(); v != nil {
		buf := *(v.(*[]float32))
		if cap(buf) >= size {
			return buf[:size]
		}
	}
	return make([]float32, size)
}

func putTempBuffer(buf []float32) {
	tempPool.Put(&buf)
}
