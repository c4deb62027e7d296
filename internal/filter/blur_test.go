package filter

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		name     string
		sigma    float64
		wantSize int
	}{
		{"zero is identity", 0, 1},
		{"negative is identity", -2, 1},
		{"NaN is identity", math.NaN(), 1},
		{"sigma 1", 1, 7},
		{"sigma 2.5", 2.5, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.sigma)
			if len(k) != tt.wantSize {
				t.Fatalf("len = %d, want %d", len(k), tt.wantSize)
			}
			var sum float64
			for _, v := range k {
				sum += float64(v)
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Errorf("sum = %v, want 1", sum)
			}
			if k[0] > k[len(k)/2] {
				t.Errorf("edge weight %v exceeds center %v", k[0], k[len(k)/2])
			}
		})
	}
}

func TestCachedGaussianKernelShared(t *testing.T) {
	a := CachedGaussianKernel(3)
	b := CachedGaussianKernel(3)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel returned distinct kernels for the same sigma")
	}
}

func TestBlurAlphaPreservesMass(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 41, 41))
	img.SetAlpha(20, 20, color.Alpha{A: 255})

	NewBlur(2, 2).Alpha(img)

	var sum int
	for _, v := range img.Pix {
		sum += int(v)
	}
	// Rounding per pixel loses or gains a little; the point stays well inside.
	if sum < 200 || sum > 310 {
		t.Errorf("total coverage = %d, want close to 255", sum)
	}
	if img.AlphaAt(20, 20).A == 0 || img.AlphaAt(22, 20).A == 0 {
		t.Error("blur did not spread coverage around the source pixel")
	}
	if img.AlphaAt(0, 0).A != 0 {
		t.Errorf("far corner = %d, want 0", img.AlphaAt(0, 0).A)
	}
}

func TestBlurEdgesFadeToTransparent(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 20, 1))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	NewBlur(3, 0).Alpha(img)

	if img.Pix[0] >= 255 {
		t.Errorf("edge pixel = %d, want faded below 255", img.Pix[0])
	}
	if img.Pix[10] != 255 {
		t.Errorf("center pixel = %d, want 255", img.Pix[10])
	}
}

func TestBlurIdentity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	NewBlur(0, 0).RGBA(img)

	if got := img.RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v, want unchanged", got)
	}
}

func TestBlurRGBAAnisotropic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})

	NewBlur(3, 0).RGBA(img)

	if img.RGBAAt(12, 10).A == 0 {
		t.Error("horizontal spread missing")
	}
	if img.RGBAAt(10, 12).A != 0 {
		t.Errorf("vertical spread = %d, want 0", img.RGBAAt(10, 12).A)
	}
}

func TestReachMatchesCachedKernel(t *testing.T) {
	for _, sigma := range []float64{0, 0.004, 1, 2.5, 2.6666, 10, 60} {
		k := CachedGaussianKernel(sigma)
		if got, want := Reach(sigma), len(k)/2; got != want {
			t.Errorf("Reach(%v) = %d, want kernel radius %d", sigma, got, want)
		}
	}
}
