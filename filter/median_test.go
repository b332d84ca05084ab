package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
	"github.com/kpfaulkner/imgfilter/testcommon"
)

func TestMedianBlurConstant(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_UINT8, 3, 9, 7, 42)

	for _, k := range []int{1, 2, 4} {
		out, err := e.MedianBlur(src, k)
		require.Nil(t, err)
		assert.True(t, src.Equals(out), "kSize %d", k)
	}
}

func TestMedianBlurRemovesSpike(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REPLICATE)
	src := testcommon.SpikeImage(t, image.TYPE_UINT8, 5, 5, 255)

	out, err := e.MedianBlur(src, 1)
	require.Nil(t, err)
	assertInterior(t, out, 0, 0, 0)
}

func TestMedianBlurSingleRow(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REPLICATE)
	src, err := image.NewImageBufferFromFloats([][][]float32{
		{{1, 5, 2, 8, 3}},
		{{7, 7, 7, 7, 7}},
	})
	require.Nil(t, err)

	out, err := e.MedianBlur(src, 1)
	require.Nil(t, err)
	assert.Equal(t, []float32{1, 2, 5, 3, 3}, out.Buffer[0][0])
	assert.Equal(t, []float32{7, 7, 7, 7, 7}, out.Buffer[1][0])
}

func TestMedianBlurConstantBorder(t *testing.T) {
	e, err := NewEngine(&options.FilterOptions{Border: image.BORDER_CONSTANT})
	require.Nil(t, err)
	defer e.Close()

	src := testcommon.ConstantImage(t, image.TYPE_FLOAT, 1, 3, 3, 10)

	// the corner window holds 4 image samples and 5 border zeros
	out, err := e.MedianBlur(src, 1)
	require.Nil(t, err)
	assert.Equal(t, float32(0), out.At(0, 0, 0))
	assert.Equal(t, float32(10), out.At(0, 1, 1))
	assert.Equal(t, float32(10), out.At(0, 0, 1))
}

func TestMedianBlurInvalid(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_UINT8, 1, 4, 4, 1)

	for _, k := range []int{0, -1} {
		_, err := e.MedianBlur(src, k)
		assert.True(t, errors.Is(err, image.ErrConfiguration), "kSize %d", k)
	}
}

func TestMedianBlurWindowTooLarge(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_UINT8, 1, 1, 1, 1)

	for _, k := range []int{1024, maxHalfSize} {
		_, err := e.MedianBlur(src, k)
		assert.True(t, errors.Is(err, image.ErrAllocation), "kSize %d", k)
	}

	out, err := e.MedianBlur(src, 40)
	require.Nil(t, err)
	assert.True(t, src.Equals(out))
}

func TestMedianBlurReflectBorder(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT)
	src, err := image.NewImageBufferFromFloats([][][]float32{{{9, 1, 5, 7}}})
	require.Nil(t, err)

	out, err := e.MedianBlur(src, 1)
	require.Nil(t, err)
	assert.Equal(t, []float32{9, 5, 5, 7}, out.Buffer[0][0])
}
