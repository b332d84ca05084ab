package filter

import (
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// Convolve2D correlates every channel of src with kernel (the kernel is not
// flipped). anchor is the kernel cell aligned with the output pixel;
// DefaultAnchor selects the centre.
func (e *Engine) Convolve2D(src *image.ImageBuffer, kernel *Kernel, anchor util.Point) (*image.ImageBuffer, error) {
	const op = "Convolve2D"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if err := kernel.validate(op); err != nil {
		return nil, err
	}
	anchor, err := kernel.resolveAnchor(op, anchor)
	if err != nil {
		return nil, err
	}

	return e.mapChannels(op, src, src.BufferType, func(in, out [][]float32) {
		e.correlate(in, out, kernel, anchor, e.options.BorderValue)
	})
}
