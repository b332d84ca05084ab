package filter

import (
	"math"
	"sync"
)

// Sobel apertures above this are rejected.
const maxDerivAperture = 31

// gaussianSigmaForSize derives sigma from an odd kernel size.
func gaussianSigmaForSize(size int) float64 {
	return 0.3*((float64(size)-1)*0.5-1) + 0.8
}

// GaussianKernel generates a normalised 1D Gaussian kernel of the given
// (odd) size. Non-positive or NaN sigma is derived from the size. A sigma
// too small to square gives the delta kernel.
func GaussianKernel(size int, sigma float64) []float32 {
	if !(sigma > 0) {
		sigma = gaussianSigmaForSize(size)
	}

	kernel := make([]float32, size)
	scale2X := -0.5 / (sigma * sigma)
	if math.IsInf(scale2X, 0) {
		kernel[size/2] = 1
		return kernel
	}

	weights := make([]float64, size)
	sum := float64(0)
	for i := 0; i < size; i++ {
		x := float64(i) - float64(size-1)*0.5
		weights[i] = math.Exp(scale2X * x * x)
		sum += weights[i]
	}

	// Normalize so kernel sums to 1.0
	for i := range weights {
		kernel[i] = float32(weights[i] / sum)
	}
	return kernel
}

// BoxKernel is size copies of 1/size, or of 1 when not normalised.
func BoxKernel(size int, normalize bool) []float32 {
	kernel := make([]float32, size)
	val := float32(1)
	if normalize {
		val = float32(1.0) / float32(size)
	}
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

// DerivKernel is the 1D Sobel kernel of the given aperture and derivative
// order: repeated [1 1] smoothing followed by [-1 1] differencing.
// Aperture 3 uses the classic tables and aperture 1 the identity.
func DerivKernel(ksize int, order int) []float32 {
	ker := make([]int, ksize+1)
	switch {
	case ksize == 1:
		ker[0] = 1
	case ksize == 3:
		switch order {
		case 0:
			ker[0], ker[1], ker[2] = 1, 2, 1
		case 1:
			ker[0], ker[1], ker[2] = -1, 0, 1
		default:
			ker[0], ker[1], ker[2] = 1, -2, 1
		}
	default:
		ker[0] = 1
		for i := 0; i < ksize-order-1; i++ {
			oldval := ker[0]
			for j := 1; j <= ksize; j++ {
				newval := ker[j] + ker[j-1]
				ker[j-1] = oldval
				oldval = newval
			}
		}
		for i := 0; i < order; i++ {
			oldval := -ker[0]
			for j := 1; j <= ksize; j++ {
				newval := ker[j-1] - ker[j]
				ker[j-1] = oldval
				oldval = newval
			}
		}
	}

	kernel := make([]float32, ksize)
	for i := range kernel {
		kernel[i] = float32(ker[i])
	}
	return kernel
}

func scharrKernel(order int) []float32 {
	if order == 1 {
		return []float32{-1, 0, 1}
	}
	return []float32{3, 10, 3}
}

var (
	laplacian1 = [][]float32{{0, 1, 0}, {1, -4, 1}, {0, 1, 0}}
	laplacian3 = [][]float32{{2, 0, 2}, {0, -8, 0}, {2, 0, 2}}
)

func scaleKernel(kernel []float32, scale float64) []float32 {
	out := make([]float32, len(kernel))
	for i, v := range kernel {
		out[i] = float32(float64(v) * scale)
	}
	return out
}

type gaussianKey struct {
	size  int
	sigma float64
}

// kernelCache caches Gaussian kernels by (size, sigma). Cached slices are
// shared and must not be modified.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[gaussianKey][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[gaussianKey][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(size int, sigma float64) []float32 {
	// every non-positive or NaN sigma builds the same kernel, and NaN keys
	// would never match
	if !(sigma > 0) {
		sigma = 0
	}
	key := gaussianKey{size: size, sigma: sigma}

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(size, sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a shared Gaussian kernel for (size, sigma).
func CachedGaussianKernel(size int, sigma float64) []float32 {
	return defaultKernelCache.get(size, sigma)
}
