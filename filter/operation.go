package filter

import (
	"fmt"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// Operation is a filter with its parameters bound, so filters can be stored,
// composed and replayed uniformly.
type Operation interface {
	Name() string
	Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error)
}

type Convolve2DOp struct {
	Kernel *Kernel
	Anchor util.Point
}

func (o Convolve2DOp) Name() string { return "convolve2d" }
func (o Convolve2DOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.Convolve2D(src, o.Kernel, o.Anchor)
}

type GaussianBlurOp struct {
	KHeight int
	KWidth  int
	SigmaX  float64
	SigmaY  float64
}

func (o GaussianBlurOp) Name() string { return "gaussianblur" }
func (o GaussianBlurOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.GaussianBlur(src, o.KHeight, o.KWidth, o.SigmaX, o.SigmaY)
}

type BoxFilterOp struct {
	KHeight   int
	KWidth    int
	Normalize bool
}

func (o BoxFilterOp) Name() string { return "boxfilter" }
func (o BoxFilterOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.BoxFilter(src, o.KHeight, o.KWidth, o.Normalize)
}

type BlurOp struct {
	KHeight int
	KWidth  int
}

func (o BlurOp) Name() string { return "blur" }
func (o BlurOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.Blur(src, o.KHeight, o.KWidth)
}

type MedianBlurOp struct {
	KSize int
}

func (o MedianBlurOp) Name() string { return "medianblur" }
func (o MedianBlurOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.MedianBlur(src, o.KSize)
}

type SqrBoxFilterOp struct {
	KHeight   int
	KWidth    int
	Normalize bool
}

func (o SqrBoxFilterOp) Name() string { return "sqrboxfilter" }
func (o SqrBoxFilterOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.SqrBoxFilter(src, o.KHeight, o.KWidth, o.Normalize)
}

type SobelOp struct {
	Dx    int
	Dy    int
	KSize int
	Scale float64
}

func (o SobelOp) Name() string { return "sobel" }
func (o SobelOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.Sobel(src, o.Dx, o.Dy, o.KSize, o.Scale)
}

type ScharrOp struct {
	Dx    int
	Dy    int
	Scale float64
}

func (o ScharrOp) Name() string { return "scharr" }
func (o ScharrOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.Scharr(src, o.Dx, o.Dy, o.Scale)
}

type LaplacianOp struct {
	KSize int
	Scale float64
}

func (o LaplacianOp) Name() string { return "laplacian" }
func (o LaplacianOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.Laplacian(src, o.KSize, o.Scale)
}

type BilateralFilterOp struct {
	D          int
	SigmaColor float64
	SigmaSpace float64
}

func (o BilateralFilterOp) Name() string { return "bilateralfilter" }
func (o BilateralFilterOp) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	return e.BilateralFilter(src, o.D, o.SigmaColor, o.SigmaSpace)
}

// Pipeline runs operations in order, feeding each output to the next. A
// Pipeline is itself an Operation.
type Pipeline []Operation

func (p Pipeline) Name() string { return "pipeline" }

// Apply returns a copy of src for an empty pipeline.
func (p Pipeline) Apply(e *Engine, src *image.ImageBuffer) (*image.ImageBuffer, error) {
	if len(p) == 0 {
		if err := src.Validate("Pipeline"); err != nil {
			return nil, err
		}
		return src.Clone(), nil
	}
	current := src
	for i, op := range p {
		next, err := op.Apply(e, current)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d (%s): %w", i, op.Name(), err)
		}
		current = next
	}
	return current, nil
}
