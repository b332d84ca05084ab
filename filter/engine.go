package filter

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
)

// maxHalfSize bounds window half sizes so border tables stay small.
const maxHalfSize = 1 << 15

// maxWindowSamples bounds the per pixel working set of the nonlinear
// filters, which hold a whole window (median) or footprint (bilateral) per
// worker.
const maxWindowSamples = int64(1) << 22

type Engine struct {
	options *options.FilterOptions
	pool    *workerpool.Pool
}

// NewEngine creates an engine. A nil opts gives the defaults described in
// options.NewFilterOptions.
func NewEngine(opts *options.FilterOptions) (*Engine, error) {
	o := options.NewFilterOptions(opts)
	if !o.Border.Valid() {
		log.Errorf("Invalid border type %d", o.Border)
		return nil, image.NewConfigurationError("NewEngine", "unknown border type %d", o.Border)
	}

	e := &Engine{options: o}
	if o.MaxGoroutines > 1 {
		e.pool = workerpool.New(o.MaxGoroutines)
	}
	log.Debugf("filter engine: border %s, %d goroutines", o.Border, o.MaxGoroutines)
	return e, nil
}

// Close stops the worker pool. The engine keeps working afterwards but runs
// every row on the calling goroutine.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

func (e *Engine) Options() options.FilterOptions {
	return *e.options
}

// forRows runs fn over the row range [0, height). Work is split into
// contiguous bands when there are enough samples to pay for the hand off.
func (e *Engine) forRows(height int, width int, fn func(startY, endY int)) {
	if e.pool == nil || height*width < e.options.ParallelThreshold {
		fn(0, height)
		return
	}
	e.pool.ParallelFor(height, fn)
}

// mapChannels allocates the output and runs fn on each channel plane.
// TYPE_UINT8 output is rounded and saturated afterwards.
func (e *Engine) mapChannels(op string, src *image.ImageBuffer, outType int, fn func(src, dst [][]float32)) (*image.ImageBuffer, error) {
	out, err := image.NewImageBufferLike(src, outType)
	if err != nil {
		log.Errorf("%s: error creating output buffer %v", op, err)
		return nil, err
	}
	for c := range src.Buffer {
		fn(src.Buffer[c], out.Buffer[c])
	}
	out.ClampToType()
	return out, nil
}

// checkWindow rejects square windows of side size whose working set would
// exceed maxWindowSamples.
func checkWindow(op string, size int) error {
	samples := int64(size) * int64(size)
	if samples > maxWindowSamples {
		log.Errorf("%s: window %dx%d too large", op, size, size)
		return &image.AllocationError{Op: op, Samples: samples, Limit: maxWindowSamples}
	}
	return nil
}

func checkHalfSize(op string, name string, k int) error {
	if k < 0 {
		return image.NewConfigurationError(op, "%s must be non-negative, got %d", name, k)
	}
	if k > maxHalfSize {
		return image.NewConfigurationError(op, "%s %d exceeds maximum %d", name, k, maxHalfSize)
	}
	return nil
}
