package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
	"github.com/kpfaulkner/imgfilter/testcommon"
)

func TestBlurZeroSizeIsIdentity(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)

	for _, bufferType := range []int{image.TYPE_UINT8, image.TYPE_FLOAT} {
		src := testcommon.RandomImage(t, 21, bufferType, 3, 13, 17)
		out, err := e.Blur(src, 0, 0)
		require.Nil(t, err)
		assert.True(t, src.Equals(out))
	}
}

func TestBoxFilterSpikeScenario(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REPLICATE)
	src := testcommon.SpikeImage(t, image.TYPE_FLOAT, 3, 3, 9)

	out, err := e.BoxFilter(src, 1, 1, true)
	require.Nil(t, err)

	assert.InDelta(t, 1.0, out.At(0, 1, 1), 1e-6)
	for y := int32(0); y < 3; y++ {
		for x := int32(0); x < 3; x++ {
			assert.Greater(t, out.At(0, y, x), float32(0), "pixel (%d,%d)", x, y)
		}
	}
}

func TestBoxFilterSpikeOutOfReach(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REPLICATE)
	src := testcommon.SpikeImage(t, image.TYPE_UINT8, 5, 5, 9)

	out, err := e.BoxFilter(src, 1, 1, true)
	require.Nil(t, err)

	assert.Equal(t, float32(1), out.At(0, 2, 2))
	assert.Equal(t, float32(1), out.At(0, 1, 1))
	assert.Equal(t, float32(1), out.At(0, 3, 2))
	for _, corner := range [][2]int32{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
		assert.Equal(t, float32(0), out.At(0, corner[0], corner[1]))
	}
}

func TestBoxFilterUnnormalised(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_FLOAT, 2, 6, 6, 2)

	out, err := e.BoxFilter(src, 1, 1, false)
	require.Nil(t, err)
	assert.True(t, testcommon.ConstantImage(t, image.TYPE_FLOAT, 2, 6, 6, 18).Equals(out))

	out, err = e.BoxFilter(src, 0, 2, false)
	require.Nil(t, err)
	assert.Equal(t, float32(10), out.At(1, 3, 3))
}

func TestBoxFilterInvalidSize(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_FLOAT, 1, 4, 4, 1)

	_, err := e.BoxFilter(src, -1, 1, true)
	assert.True(t, errors.Is(err, image.ErrConfiguration))
	_, err = e.Blur(src, 1, maxHalfSize+1)
	assert.True(t, errors.Is(err, image.ErrConfiguration))
}

func TestGaussianBlurTinySigmaIsIdentity(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.RandomImage(t, 4, image.TYPE_FLOAT, 3, 10, 12)

	out, err := e.GaussianBlur(src, 2, 3, 1e-3, 1e-3)
	require.Nil(t, err)
	assert.True(t, src.EqualsWithin(out, 1e-4))
}

func TestGaussianBlurUnderflowingSigmaIsIdentity(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)

	for _, bufferType := range []int{image.TYPE_UINT8, image.TYPE_FLOAT} {
		src := testcommon.RandomImage(t, 6, bufferType, 2, 5, 5)
		out, err := e.GaussianBlur(src, 1, 1, 1e-200, 1e-200)
		require.Nil(t, err)
		assert.True(t, src.Equals(out), "buffer type %d", bufferType)
	}
}

func TestGaussianBlurNaNSigmaIsDerived(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.RandomImage(t, 10, image.TYPE_UINT8, 1, 9, 9)

	want, err := e.GaussianBlur(src, 2, 1, 0, 0)
	require.Nil(t, err)
	got, err := e.GaussianBlur(src, 2, 1, math.NaN(), math.NaN())
	require.Nil(t, err)
	assert.True(t, want.Equals(got))
}

func TestBoxFilterReflectBorder(t *testing.T) {
	src, err := image.NewImageBufferFromFloats([][][]float32{{{1, 2, 3, 4}}})
	require.Nil(t, err)

	reflect := newTestEngine(t, image.BORDER_REFLECT)
	out, err := reflect.BoxFilter(src, 0, 1, false)
	require.Nil(t, err)
	assert.Equal(t, []float32{4, 6, 9, 11}, out.Buffer[0][0])

	reflect101 := newTestEngine(t, image.BORDER_REFLECT_101)
	out, err = reflect101.BoxFilter(src, 0, 1, false)
	require.Nil(t, err)
	assert.Equal(t, []float32{5, 6, 9, 10}, out.Buffer[0][0])
}

func TestGaussianBlurConstantImage(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_UINT8, 1, 9, 9, 100)

	out, err := e.GaussianBlur(src, 3, 3, 0, 0)
	require.Nil(t, err)
	assert.True(t, src.Equals(out))
}

func TestGaussianBlurSigmaYDefaultsToSigmaX(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.RandomImage(t, 8, image.TYPE_FLOAT, 1, 12, 12)

	a, err := e.GaussianBlur(src, 2, 2, 1.5, 0)
	require.Nil(t, err)
	b, err := e.GaussianBlur(src, 2, 2, 1.5, 1.5)
	require.Nil(t, err)
	assert.True(t, a.Equals(b))
}

func TestGaussianBlurSmoothsSpike(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.SpikeImage(t, image.TYPE_FLOAT, 7, 7, 100)

	out, err := e.GaussianBlur(src, 1, 1, 0, 0)
	require.Nil(t, err)

	// derived sigma for size 3 is 0.8: weights 0.239, 0.522, 0.239
	assert.InDelta(t, 100*0.522*0.522, out.At(0, 3, 3), 0.1)
	assert.InDelta(t, 100*0.239*0.522, out.At(0, 3, 4), 0.1)
	assert.InDelta(t, 100*0.239*0.239, out.At(0, 2, 2), 0.1)
	assert.Equal(t, float32(0), out.At(0, 0, 0))
}

func TestGaussianBlurInvalidSize(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_FLOAT, 1, 4, 4, 1)

	_, err := e.GaussianBlur(src, -1, 0, 1, 1)
	assert.True(t, errors.Is(err, image.ErrConfiguration))
}

func TestSqrBoxFilterConstant(t *testing.T) {
	e := newTestEngine(t, image.BORDER_REFLECT_101)
	src := testcommon.ConstantImage(t, image.TYPE_UINT8, 2, 8, 8, 10)

	out, err := e.SqrBoxFilter(src, 2, 2, true)
	require.Nil(t, err)
	assert.True(t, out.IsFloat())
	assert.True(t, testcommon.ConstantImage(t, image.TYPE_FLOAT, 2, 8, 8, 100).EqualsWithin(out, 1e-3))

	out, err = e.SqrBoxFilter(src, 1, 1, false)
	require.Nil(t, err)
	assert.InDelta(t, 900, out.At(1, 4, 4), 1e-3)
}

func TestSqrBoxFilterConstantBorder(t *testing.T) {
	e, err := NewEngine(&options.FilterOptions{Border: image.BORDER_CONSTANT, BorderValue: 3, MaxGoroutines: 1})
	require.Nil(t, err)
	defer e.Close()

	src := testcommon.ConstantImage(t, image.TYPE_FLOAT, 1, 1, 1, 0)
	out, err := e.SqrBoxFilter(src, 1, 1, false)
	require.Nil(t, err)
	assert.Equal(t, float32(72), out.At(0, 0, 0))
}
