package filter

import (
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// Sobel computes the (dx, dy) derivative with a separable Sobel kernel of
// aperture 2*kSize+1, multiplied by scale. Aperture 1 uses the unsmoothed
// 3 tap derivative along each differentiated axis. dx = dy = 0 gives the
// smoothing kernel alone.
func (e *Engine) Sobel(src *image.ImageBuffer, dx int, dy int, kSize int, scale float64) (*image.ImageBuffer, error) {
	const op = "Sobel"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	kx, ky, err := sobelKernels(op, dx, dy, kSize)
	if err != nil {
		return nil, err
	}
	kx = scaleKernel(kx, scale)

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.sepCorrelate(in, out, kx, ky, e.options.BorderValue)
	})
}

func sobelKernels(op string, dx int, dy int, kSize int) ([]float32, []float32, error) {
	if dx < 0 || dy < 0 {
		return nil, nil, image.NewConfigurationError(op, "derivative orders must be non-negative, got dx=%d dy=%d", dx, dy)
	}
	if kSize < 0 {
		return nil, nil, image.NewConfigurationError(op, "kSize must be non-negative, got %d", kSize)
	}
	aperture := 2*kSize + 1
	if aperture > maxDerivAperture {
		return nil, nil, image.NewConfigurationError(op, "aperture %d exceeds %d", aperture, maxDerivAperture)
	}

	ksizeX := util.IfThenElse(aperture == 1 && dx > 0, 3, aperture)
	ksizeY := util.IfThenElse(aperture == 1 && dy > 0, 3, aperture)
	if dx >= ksizeX || dy >= ksizeY {
		return nil, nil, image.NewConfigurationError(op, "aperture %d too small for derivative order dx=%d dy=%d", aperture, dx, dy)
	}
	return DerivKernel(ksizeX, dx), DerivKernel(ksizeY, dy), nil
}

// Scharr computes a first derivative with the 3x3 Scharr operator, which is
// more rotationally symmetric than a 3x3 Sobel. Exactly one of dx, dy is 1.
func (e *Engine) Scharr(src *image.ImageBuffer, dx int, dy int, scale float64) (*image.ImageBuffer, error) {
	const op = "Scharr"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if dx < 0 || dy < 0 || dx+dy != 1 {
		return nil, image.NewConfigurationError(op, "need dx+dy == 1 with non-negative orders, got dx=%d dy=%d", dx, dy)
	}

	kx := scaleKernel(scharrKernel(dx), scale)
	ky := scharrKernel(dy)

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.sepCorrelate(in, out, kx, ky, e.options.BorderValue)
	})
}

// Laplacian sums the second derivatives in x and y with aperture
// 2*kSize+1, multiplied by scale. Apertures 1 and 3 use fixed 3x3 kernels;
// larger apertures add the second order Sobel derivatives.
func (e *Engine) Laplacian(src *image.ImageBuffer, kSize int, scale float64) (*image.ImageBuffer, error) {
	const op = "Laplacian"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if kSize < 0 {
		return nil, image.NewConfigurationError(op, "kSize must be non-negative, got %d", kSize)
	}
	aperture := 2*kSize + 1
	if aperture > maxDerivAperture {
		return nil, image.NewConfigurationError(op, "aperture %d exceeds %d", aperture, maxDerivAperture)
	}

	if aperture <= 3 {
		weights := util.IfThenElse(aperture == 1, laplacian1, laplacian3)
		scaled := make([][]float32, len(weights))
		for i, row := range weights {
			scaled[i] = scaleKernel(row, scale)
		}
		kernel, err := NewKernel(scaled)
		if err != nil {
			return nil, err
		}
		return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
			e.correlate(in, out, kernel, kernel.Center(), e.options.BorderValue)
		})
	}

	d2 := scaleKernel(DerivKernel(aperture, 2), scale)
	smooth := DerivKernel(aperture, 0)

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		height := len(in)
		width := len(in[0])
		dyy := util.MakeMatrix2DPooled[float32](height, width)
		defer util.ReturnMatrix2DToPool(dyy)

		e.sepCorrelate(in, out, d2, smooth, e.options.BorderValue)
		e.sepCorrelate(in, dyy, smooth, d2, e.options.BorderValue)
		e.forRows(height, width, func(startY, endY int) {
			for y := startY; y < endY; y++ {
				for x, v := range dyy[y] {
					out[y][x] += v
				}
			}
		})
	})
}
