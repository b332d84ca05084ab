package filter

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// BilateralFilter smooths src while keeping edges. Each neighbour inside a
// disc of radius r is weighted by exp(-dist^2/(2*sigmaSpace^2)) times
// exp(-diff^2/(2*sigmaColor^2)), where diff is the sum over channels of the
// absolute sample difference to the centre pixel.
//
// Non-positive or NaN sigmas are clamped to 1; an infinite sigmaSpace is
// rejected. d is the neighbourhood diameter; d <= 0 derives
// r = round(1.5*sigmaSpace), otherwise r = d/2. r is at least 1.
func (e *Engine) BilateralFilter(src *image.ImageBuffer, d int, sigmaColor float64, sigmaSpace float64) (*image.ImageBuffer, error) {
	const op = "BilateralFilter"
	if err := src.Validate(op); err != nil {
		return nil, err
	}
	if !(sigmaColor > 0) {
		log.Debugf("%s: sigmaColor %f clamped to 1", op, sigmaColor)
		sigmaColor = 1
	}
	if !(sigmaSpace > 0) {
		log.Debugf("%s: sigmaSpace %f clamped to 1", op, sigmaSpace)
		sigmaSpace = 1
	}

	if math.IsInf(sigmaSpace, 1) {
		return nil, image.NewConfigurationError(op, "sigmaSpace must be finite")
	}

	var radius int
	if d <= 0 {
		// range check before converting, out of range conversions are
		// implementation defined
		r := math.RoundToEven(sigmaSpace * 1.5)
		if r > maxHalfSize {
			return nil, image.NewConfigurationError(op, "radius %.0f derived from sigmaSpace %g exceeds maximum %d", r, sigmaSpace, maxHalfSize)
		}
		radius = int(r)
	} else {
		radius = d / 2
	}
	radius = util.Max(radius, 1)
	if err := checkHalfSize(op, "radius", radius); err != nil {
		return nil, err
	}
	if err := checkWindow(op, 2*radius+1); err != nil {
		return nil, err
	}

	out, err := image.NewImageBufferLike(src, src.BufferType)
	if err != nil {
		log.Errorf("%s: error creating output buffer %v", op, err)
		return nil, err
	}

	offsets, spaceWeights := bilateralFootprint(radius, sigmaSpace)
	colorCoeff := -0.5 / (sigmaColor * sigmaColor)
	e.bilateral(src, out, radius, offsets, spaceWeights, colorCoeff)
	out.ClampToType()
	return out, nil
}

// bilateralFootprint lists the offsets inside the disc of the given radius
// together with their spatial weights. The centre always weighs 1.
func bilateralFootprint(radius int, sigmaSpace float64) ([]util.Point, []float32) {
	spaceCoeff := -0.5 / (sigmaSpace * sigmaSpace)
	var offsets []util.Point
	var weights []float32
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			r := math.Sqrt(float64(i*i + j*j))
			if r > float64(radius) {
				continue
			}
			offsets = append(offsets, util.Point{X: int32(j), Y: int32(i)})
			weights = append(weights, expWeight(r*r, spaceCoeff))
		}
	}
	return offsets, weights
}

// expWeight is exp(d2*coeff) with a zero distance always weighing 1, even
// when coeff has overflowed to -Inf.
func expWeight(d2 float64, coeff float64) float32 {
	if d2 == 0 {
		return 1
	}
	return float32(math.Exp(d2 * coeff))
}

func (e *Engine) bilateral(src, dst *image.ImageBuffer, radius int, offsets []util.Point, spaceWeights []float32, colorCoeff float64) {
	height := int(src.Height)
	width := int(src.Width)
	channels := src.Channels()
	border := e.options.Border
	borderValue := e.options.BorderValue
	rows := border.IndexTable(height, radius, radius)
	cols := border.IndexTable(width, radius, radius)

	e.forRows(height, width, func(startY, endY int) {
		centre := make([]float32, channels)
		neighbour := make([]float32, channels)
		sums := make([]float32, channels)

		for y := startY; y < endY; y++ {
			for x := 0; x < width; x++ {
				for c := 0; c < channels; c++ {
					centre[c] = src.Buffer[c][y][x]
					sums[c] = 0
				}
				wsum := float32(0)

				for k, off := range offsets {
					ri := rows[y+radius+int(off.Y)]
					ci := cols[x+radius+int(off.X)]
					diff := float32(0)
					for c := 0; c < channels; c++ {
						if ri < 0 || ci < 0 {
							neighbour[c] = borderValue
						} else {
							neighbour[c] = src.Buffer[c][ri][ci]
						}
						diff += float32(math.Abs(float64(neighbour[c] - centre[c])))
					}
					d := float64(diff)
					w := spaceWeights[k] * expWeight(d*d, colorCoeff)
					for c := 0; c < channels; c++ {
						sums[c] += w * neighbour[c]
					}
					wsum += w
				}

				for c := 0; c < channels; c++ {
					dst.Buffer[c][y][x] = sums[c] / wsum
				}
			}
		}
	})
}
