package util

import (
	"golang.org/x/exp/constraints"
)

// Make 1D slice appear as 2D slice and helper functions

type Matrix[T constraints.Float | constraints.Integer] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Float | constraints.Integer](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

func New2DMatrixWithContents[T constraints.Float | constraints.Integer](height int32, width int32, initialData [][]T) *Matrix[T] {
	matrix := New2DMatrix[T](height, width)
	for h := int32(0); h < height; h++ {
		copy(matrix.Data[h*width:(h+1)*width], initialData[h])
	}
	return matrix
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

// Transpose returns a new matrix with rows and columns swapped.
func (s *Matrix[T]) Transpose() *Matrix[T] {
	t := New2DMatrix[T](s.Width, s.Height)
	for y := int32(0); y < s.Height; y++ {
		for x := int32(0); x < s.Width; x++ {
			t.Set(x, y, s.Get(y, x))
		}
	}
	return t
}

func (s *Matrix[T]) GetAs2DSlice() [][]T {
	a := make([][]T, s.Height)
	for height := 0; height < int(s.Height); height++ {
		a[height] = s.GetRow(int32(height))
	}
	return a
}
