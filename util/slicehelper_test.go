package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew2DMatrixWithContents(t *testing.T) {
	m := New2DMatrixWithContents[float32](2, 3, [][]float32{{1, 2, 3}, {4, 5, 6}})

	assert.Equal(t, int32(2), m.Height)
	assert.Equal(t, int32(3), m.Width)
	assert.Equal(t, float32(6), m.Get(1, 2))
	assert.Equal(t, []float32{4, 5, 6}, m.GetRow(1))
}

func TestMatrixTranspose(t *testing.T) {
	m := New2DMatrixWithContents[int32](2, 3, [][]int32{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()

	assert.Equal(t, int32(3), tr.Height)
	assert.Equal(t, int32(2), tr.Width)
	assert.Equal(t, [][]int32{{1, 4}, {2, 5}, {3, 6}}, tr.GetAs2DSlice())
}
