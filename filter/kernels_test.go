package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianKernel(t *testing.T) {
	k := GaussianKernel(3, 0)
	assert.Len(t, k, 3)
	assert.InDelta(t, 0.2390, k[0], 1e-3)
	assert.InDelta(t, 0.5220, k[1], 1e-3)
	assert.Equal(t, k[0], k[2])

	for _, size := range []int{1, 5, 9, 31} {
		sum := float32(0)
		for _, v := range GaussianKernel(size, 1.7) {
			sum += v
		}
		assert.InDelta(t, 1, sum, 1e-5, "size %d", size)
	}
}

func TestGaussianKernelDegenerateSigma(t *testing.T) {
	assert.Equal(t, []float32{0, 0, 1, 0, 0}, GaussianKernel(5, 1e-200))
	assert.Equal(t, GaussianKernel(3, 0), GaussianKernel(3, math.NaN()))

	c := newKernelCache(8)
	c.get(3, math.NaN())
	c.get(3, math.NaN())
	c.get(3, -2)
	assert.Equal(t, 1, c.len())
}

func TestGaussianSigmaForSize(t *testing.T) {
	assert.InDelta(t, 0.8, gaussianSigmaForSize(3), 1e-9)
	assert.InDelta(t, 1.1, gaussianSigmaForSize(5), 1e-9)
	assert.InDelta(t, 1.4, gaussianSigmaForSize(7), 1e-9)
}

func TestBoxKernel(t *testing.T) {
	assert.Equal(t, []float32{1, 1, 1}, BoxKernel(3, false))
	assert.Equal(t, []float32{0.25, 0.25, 0.25, 0.25}, BoxKernel(4, true))
}

func TestKernelCacheReuse(t *testing.T) {
	c := newKernelCache(8)
	a := c.get(5, 1.5)
	b := c.get(5, 1.5)
	assert.True(t, &a[0] == &b[0])
	assert.Equal(t, 1, c.len())

	other := c.get(5, 1.6)
	assert.False(t, &a[0] == &other[0])
	assert.Equal(t, 2, c.len())
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(4)
	for i := 0; i < 4; i++ {
		c.get(3, float64(i+1))
	}
	assert.Equal(t, 4, c.len())

	c.get(3, 10)
	assert.Equal(t, 3, c.len())
}

func TestCachedGaussianKernelMatches(t *testing.T) {
	assert.Equal(t, GaussianKernel(7, 2.5), CachedGaussianKernel(7, 2.5))
}
