package filter

import (
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// Kernel holds correlation weights, indexed [row][col].
type Kernel struct {
	util.Matrix[float32]
}

// NewKernel copies rows into a kernel. Every row must have the same length.
func NewKernel(rows [][]float32) (*Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, image.NewConfigurationError("NewKernel", "kernel must be at least 1x1")
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, image.NewConfigurationError("NewKernel", "row %d has %d weights, expected %d", i, len(r), width)
		}
	}
	m := util.New2DMatrixWithContents[float32](int32(len(rows)), int32(width), rows)
	return &Kernel{Matrix: *m}, nil
}

// NewKernelFromColumnMajor builds a kernel from weights stored column after
// column, so data[height*j+i] is the weight at row i, column j.
func NewKernelFromColumnMajor(height int32, width int32, data []float32) (*Kernel, error) {
	if height < 1 || width < 1 {
		return nil, image.NewConfigurationError("NewKernelFromColumnMajor", "kernel must be at least 1x1, got %dx%d", width, height)
	}
	if int64(len(data)) != int64(height)*int64(width) {
		return nil, image.NewConfigurationError("NewKernelFromColumnMajor", "expected %d weights, got %d", int64(height)*int64(width), len(data))
	}
	// read each column as a row, then transpose
	columns := util.New2DMatrix[float32](width, height)
	copy(columns.Data, data)
	return &Kernel{Matrix: *columns.Transpose()}, nil
}

// Center is the default anchor: (Width/2, Height/2).
func (k *Kernel) Center() util.Point {
	return util.Point{X: k.Width / 2, Y: k.Height / 2}
}

func (k *Kernel) validate(op string) error {
	if k == nil || k.Width < 1 || k.Height < 1 || int64(len(k.Data)) != int64(k.Width)*int64(k.Height) {
		return image.NewConfigurationError(op, "kernel must be at least 1x1")
	}
	return nil
}

// resolveAnchor turns (-1,-1) into the kernel centre and checks explicit anchors.
func (k *Kernel) resolveAnchor(op string, anchor util.Point) (util.Point, error) {
	if anchor.X == -1 && anchor.Y == -1 {
		return k.Center(), nil
	}
	if anchor.X < 0 || anchor.X >= k.Width || anchor.Y < 0 || anchor.Y >= k.Height {
		return util.Point{}, image.NewConfigurationError(op, "anchor (%d,%d) outside %dx%d kernel", anchor.X, anchor.Y, k.Width, k.Height)
	}
	return anchor, nil
}

// DefaultAnchor selects the kernel centre.
var DefaultAnchor = util.Point{X: -1, Y: -1}
