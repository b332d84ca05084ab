package filter

import (
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// GaussianBlur smooths src with a separable Gaussian of (2*kWidth+1) by
// (2*kHeight+1) taps. A non-positive sigmaY takes sigmaX; any sigma still
// non-positive is derived from its kernel size as
// 0.3*((size-1)*0.5 - 1) + 0.8.
func (e *Engine) GaussianBlur(src *image.ImageBuffer, kHeight int, kWidth int, sigmaX float64, sigmaY float64) (*image.ImageBuffer, error) {
	const op = "GaussianBlur"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kHeight", kHeight); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kWidth", kWidth); err != nil {
		return nil, err
	}

	sizeX := 2*kWidth + 1
	sizeY := 2*kHeight + 1
	// NaN sigmas are treated as unset
	if !(sigmaY > 0) {
		sigmaY = sigmaX
	}
	if !(sigmaX > 0) {
		sigmaX = gaussianSigmaForSize(sizeX)
		log.Debugf("%s: derived sigmaX %f from size %d", op, sigmaX, sizeX)
	}
	if !(sigmaY > 0) {
		sigmaY = gaussianSigmaForSize(sizeY)
		log.Debugf("%s: derived sigmaY %f from size %d", op, sigmaY, sizeY)
	}

	kx := CachedGaussianKernel(sizeX, sigmaX)
	ky := CachedGaussianKernel(sizeY, sigmaY)

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.sepCorrelate(in, out, kx, ky, e.options.BorderValue)
	})
}

// BoxFilter sums the (2*kWidth+1) by (2*kHeight+1) window around every pixel,
// dividing by the window area when normalize is set.
func (e *Engine) BoxFilter(src *image.ImageBuffer, kHeight int, kWidth int, normalize bool) (*image.ImageBuffer, error) {
	return e.boxFilter("BoxFilter", src, kHeight, kWidth, normalize)
}

// Blur is the normalised box filter.
func (e *Engine) Blur(src *image.ImageBuffer, kHeight int, kWidth int) (*image.ImageBuffer, error) {
	return e.boxFilter("Blur", src, kHeight, kWidth, true)
}

func (e *Engine) boxFilter(op string, src *image.ImageBuffer, kHeight int, kWidth int, normalize bool) (*image.ImageBuffer, error) {
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kHeight", kHeight); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kWidth", kWidth); err != nil {
		return nil, err
	}

	kx := BoxKernel(2*kWidth+1, normalize)
	ky := BoxKernel(2*kHeight+1, normalize)

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.sepCorrelate(in, out, kx, ky, e.options.BorderValue)
	})
}

// SqrBoxFilter sums (or averages, with normalize) the squared samples of each
// window. The result is always TYPE_FLOAT since squares overflow 8 bits.
func (e *Engine) SqrBoxFilter(src *image.ImageBuffer, kHeight int, kWidth int, normalize bool) (*image.ImageBuffer, error) {
	const op = "SqrBoxFilter"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kHeight", kHeight); err != nil {
		return nil, err
	}
	if err := checkHalfSize(op, "kWidth", kWidth); err != nil {
		return nil, err
	}

	kx := BoxKernel(2*kWidth+1, normalize)
	ky := BoxKernel(2*kHeight+1, normalize)
	borderValue := e.options.BorderValue * e.options.BorderValue

	return e.mapChannels(op, src, image.TYPE_FLOAT, func(in, out [][]float32) {
		sq := e.squarePlane(in)
		defer util.ReturnMatrix2DToPool(sq)
		e.sepCorrelate(sq, out, kx, ky, borderValue)
	})
}
