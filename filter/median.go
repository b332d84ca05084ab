package filter

import (
	"golang.org/x/exp/slices"

	"github.com/kpfaulkner/imgfilter/image"
)

// MedianBlur replaces every sample with the median of its (2*kSize+1)
// square window, channel by channel. kSize must be at least 1.
func (e *Engine) MedianBlur(src *image.ImageBuffer, kSize int) (*image.ImageBuffer, error) {
	const op = "MedianBlur"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if kSize < 1 {
		return nil, image.NewConfigurationError(op, "window must be at least 3x3, got kSize %d", kSize)
	}
	if err := checkHalfSize(op, "kSize", kSize); err != nil {
		return nil, err
	}
	if err := checkWindow(op, 2*kSize+1); err != nil {
		return nil, err
	}

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.medianPlane(in, out, kSize)
	})
}

func (e *Engine) medianPlane(src, dst [][]float32, radius int) {
	height := len(src)
	width := len(src[0])
	size := 2*radius + 1
	border := e.options.Border
	borderValue := e.options.BorderValue
	rows := border.IndexTable(height, radius, radius)
	cols := border.IndexTable(width, radius, radius)

	e.forRows(height, width, func(startY, endY int) {
		window := make([]float32, size*size)
		for y := startY; y < endY; y++ {
			for x := 0; x < width; x++ {
				n := 0
				for _, ri := range rows[y : y+size] {
					for _, ci := range cols[x : x+size] {
						if ri < 0 || ci < 0 {
							window[n] = borderValue
						} else {
							window[n] = src[ri][ci]
						}
						n++
					}
				}
				slices.Sort(window)
				dst[y][x] = window[len(window)/2]
			}
		}
	})
}
