package filter

import (
	"math"

	"github.com/gogpu/textfx/internal/cache"
)

// sigmaSteps quantizes sigma for kernel reuse: 0.01px is below what an
// 8-bit blur can show.
const sigmaSteps = 100

// GaussianKernel returns a normalized 1D kernel of 2·Extent(sigma)+1 taps.
// A sigma that is not positive and finite yields the identity kernel.
func GaussianKernel(sigma float64) []float32 {
	half := Extent(sigma)
	if half == 0 {
		return []float32{1}
	}

	k := make([]float32, 2*half+1)
	inv := -1 / (2 * sigma * sigma)
	var total float64
	for i := range k {
		d := float64(i - half)
		w := math.Exp(d * d * inv)
		k[i] = float32(w)
		total += w
	}
	norm := float32(1 / total)
	for i := range k {
		k[i] *= norm
	}
	return k
}

var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared kernel for sigma. Callers must not
// modify it.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * sigmaSteps))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / sigmaSteps)
	})
}

// Reach is the radius of the kernel CachedGaussianKernel returns for sigma.
// It can exceed Extent(sigma) by one when quantizing rounds sigma up.
func Reach(sigma float64) int {
	return Extent(math.Round(sigma*sigmaSteps) / sigmaSteps)
}

// Extent is the blur radius in whole pixels, three sigmas rounded up.
func Extent(sigma float64) int {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return 0
	}
	return int(math.Ceil(3 * sigma))
}
