package options

import (
	"runtime"

	"github.com/kpfaulkner/imgfilter/image"
)

// DefaultParallelThreshold is the number of output samples below which an
// operation runs on the calling goroutine.
const DefaultParallelThreshold = 16384

type FilterOptions struct {
	// Border decides how samples outside the image are synthesised.
	Border image.BorderType

	// BorderValue is used for every out of range sample when Border is
	// image.BORDER_CONSTANT.
	BorderValue float32

	// MaxGoroutines bounds the number of workers rows are fanned out to.
	// Zero means runtime.NumCPU().
	MaxGoroutines int

	ParallelThreshold int
}

// NewFilterOptions copies options, filling in defaults. A nil options gives
// the default configuration: reflect-101 borders, one worker per CPU.
func NewFilterOptions(options *FilterOptions) *FilterOptions {

	opt := &FilterOptions{
		Border:            image.BORDER_DEFAULT,
		MaxGoroutines:     runtime.NumCPU(),
		ParallelThreshold: DefaultParallelThreshold,
	}
	if options != nil {
		opt.Border = options.Border
		opt.BorderValue = options.BorderValue
		if options.MaxGoroutines > 0 {
			opt.MaxGoroutines = options.MaxGoroutines
		}
		if options.ParallelThreshold > 0 {
			opt.ParallelThreshold = options.ParallelThreshold
		}
	}
	return opt
}
