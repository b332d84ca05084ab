package image

import (
	"math"

	"github.com/kpfaulkner/imgfilter/util"
)

const (
	TYPE_UINT8 = 0
	TYPE_FLOAT = 1
)

// MaxSamples caps the number of samples (channels * height * width) a single
// buffer may hold.
const MaxSamples = int64(1) << 30

// ImageBuffer is a planar multi channel image. Samples are always held as
// float32; for TYPE_UINT8 buffers they are integral values in [0,255].
type ImageBuffer struct {
	Width      int32
	Height     int32
	BufferType int

	// Buffer is indexed [channel][y][x].
	Buffer [][][]float32
}

func checkSize(op string, channels int, height int32, width int32) error {
	if channels < 1 {
		return NewConfigurationError(op, "channel count must be at least 1, got %d", channels)
	}
	if height < 1 || width < 1 {
		return NewConfigurationError(op, "image must be at least 1x1, got %dx%d", width, height)
	}
	samples := int64(channels) * int64(height) * int64(width)
	if samples > MaxSamples {
		return &AllocationError{Op: op, Samples: samples, Limit: MaxSamples}
	}
	return nil
}

// NewImageBuffer allocates a zeroed buffer.
func NewImageBuffer(t int, channels int, height int32, width int32) (*ImageBuffer, error) {
	if t != TYPE_UINT8 && t != TYPE_FLOAT {
		return nil, NewConfigurationError("NewImageBuffer", "unknown buffer type %d", t)
	}
	if err := checkSize("NewImageBuffer", channels, height, width); err != nil {
		return nil, err
	}
	return &ImageBuffer{
		Width:      width,
		Height:     height,
		BufferType: t,
		Buffer:     util.MakeMatrix3D[float32](channels, int(height), int(width)),
	}, nil
}

// NewImageBufferLike allocates a zeroed buffer with the same shape as ib.
func NewImageBufferLike(ib *ImageBuffer, t int) (*ImageBuffer, error) {
	return NewImageBuffer(t, ib.Channels(), ib.Height, ib.Width)
}

// NewImageBufferFromFloats copies buffer ([channel][y][x]) into a new
// TYPE_FLOAT image.
func NewImageBufferFromFloats(buffer [][][]float32) (*ImageBuffer, error) {
	if len(buffer) == 0 || len(buffer[0]) == 0 {
		return nil, NewConfigurationError("NewImageBufferFromFloats", "empty buffer")
	}
	height := int32(len(buffer[0]))
	width := int32(len(buffer[0][0]))
	ib, err := NewImageBuffer(TYPE_FLOAT, len(buffer), height, width)
	if err != nil {
		return nil, err
	}
	for c := range buffer {
		if int32(len(buffer[c])) != height {
			return nil, NewConfigurationError("NewImageBufferFromFloats", "channel %d has %d rows, expected %d", c, len(buffer[c]), height)
		}
		for y := range buffer[c] {
			if int32(len(buffer[c][y])) != width {
				return nil, NewConfigurationError("NewImageBufferFromFloats", "channel %d row %d has %d samples, expected %d", c, y, len(buffer[c][y]), width)
			}
			copy(ib.Buffer[c][y], buffer[c][y])
		}
	}
	return ib, nil
}

// NewImageBufferFromPlane builds a single channel image of type t.
func NewImageBufferFromPlane(t int, plane [][]float32) (*ImageBuffer, error) {
	ib, err := NewImageBufferFromFloats([][][]float32{plane})
	if err != nil {
		return nil, err
	}
	ib.BufferType = t
	if t == TYPE_UINT8 {
		ib.ClampToType()
	}
	return ib, nil
}

// NewImageBufferFromInterleaved builds a TYPE_UINT8 image from 8 bit samples
// stored pixel by pixel (c0 c1 c2 c0 c1 c2 ...), row after row.
func NewImageBufferFromInterleaved(height int32, width int32, channels int, data []uint8) (*ImageBuffer, error) {
	ib, err := NewImageBuffer(TYPE_UINT8, channels, height, width)
	if err != nil {
		return nil, err
	}
	expected := int(height) * int(width) * channels
	if len(data) != expected {
		return nil, NewConfigurationError("NewImageBufferFromInterleaved", "expected %d samples, got %d", expected, len(data))
	}
	i := 0
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			for c := 0; c < channels; c++ {
				ib.Buffer[c][y][x] = float32(data[i])
				i++
			}
		}
	}
	return ib, nil
}

func (ib *ImageBuffer) Channels() int {
	return len(ib.Buffer)
}

func (ib *ImageBuffer) IsFloat() bool {
	return ib.BufferType == TYPE_FLOAT
}

func (ib *ImageBuffer) IsUint8() bool {
	return ib.BufferType == TYPE_UINT8
}

// At returns the sample of channel c at (x, y).
func (ib *ImageBuffer) At(c int, y int32, x int32) float32 {
	return ib.Buffer[c][y][x]
}

func (ib *ImageBuffer) Channel(c int) [][]float32 {
	return ib.Buffer[c]
}

// Validate checks the shape invariants: at least one channel, at least 1x1,
// every channel and row the advertised size.
func (ib *ImageBuffer) Validate(op string) error {
	if ib == nil {
		return NewConfigurationError(op, "nil image")
	}
	if ib.BufferType != TYPE_UINT8 && ib.BufferType != TYPE_FLOAT {
		return NewConfigurationError(op, "unknown buffer type %d", ib.BufferType)
	}
	if err := checkSize(op, len(ib.Buffer), ib.Height, ib.Width); err != nil {
		return err
	}
	for c, plane := range ib.Buffer {
		if int32(len(plane)) != ib.Height {
			return NewConfigurationError(op, "channel %d has %d rows, expected %d", c, len(plane), ib.Height)
		}
		for y, row := range plane {
			if int32(len(row)) != ib.Width {
				return NewConfigurationError(op, "channel %d row %d has %d samples, expected %d", c, y, len(row), ib.Width)
			}
		}
	}
	return nil
}

// ClampToType rounds and saturates TYPE_UINT8 samples in place. Float
// buffers are left untouched.
func (ib *ImageBuffer) ClampToType() {
	if !ib.IsUint8() {
		return
	}
	for c := range ib.Buffer {
		for y := range ib.Buffer[c] {
			row := ib.Buffer[c][y]
			for x := range row {
				row[x] = util.SaturateUint8(row[x])
			}
		}
	}
}

// Clone makes a deep copy.
func (ib *ImageBuffer) Clone() *ImageBuffer {
	out := &ImageBuffer{
		Width:      ib.Width,
		Height:     ib.Height,
		BufferType: ib.BufferType,
		Buffer:     util.MakeMatrix3D[float32](len(ib.Buffer), int(ib.Height), int(ib.Width)),
	}
	for c := range ib.Buffer {
		for y := range ib.Buffer[c] {
			copy(out.Buffer[c][y], ib.Buffer[c][y])
		}
	}
	return out
}

// Interleaved returns the samples as 8 bit values, pixel by pixel.
func (ib *ImageBuffer) Interleaved() []uint8 {
	channels := ib.Channels()
	data := make([]uint8, int(ib.Height)*int(ib.Width)*channels)
	i := 0
	for y := int32(0); y < ib.Height; y++ {
		for x := int32(0); x < ib.Width; x++ {
			for c := 0; c < channels; c++ {
				data[i] = uint8(util.SaturateUint8(ib.Buffer[c][y][x]))
				i++
			}
		}
	}
	return data
}

// Equals compares shape, type and samples exactly.
func (ib *ImageBuffer) Equals(other *ImageBuffer) bool {
	return ib.EqualsWithin(other, 0)
}

// EqualsWithin compares shape and type exactly and samples within tolerance.
func (ib *ImageBuffer) EqualsWithin(other *ImageBuffer, tolerance float64) bool {
	if other == nil {
		return false
	}
	if ib.Width != other.Width || ib.Height != other.Height || ib.BufferType != other.BufferType {
		return false
	}
	if len(ib.Buffer) != len(other.Buffer) {
		return false
	}
	for c := range ib.Buffer {
		for y := range ib.Buffer[c] {
			for x := range ib.Buffer[c][y] {
				// written so a NaN on either side never matches
				if !(math.Abs(float64(ib.Buffer[c][y][x]-other.Buffer[c][y][x])) <= tolerance) {
					return false
				}
			}
		}
	}
	return true
}
