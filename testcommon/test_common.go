package testcommon

import (
	"math/rand"
	"testing"

	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/util"
)

// ConstantImage fills every channel with v.
func ConstantImage(t *testing.T, bufferType int, channels int, height int32, width int32, v float32) *image.ImageBuffer {
	ib, err := image.NewImageBuffer(bufferType, channels, height, width)
	if err != nil {
		t.Fatalf("error creating constant image : %v", err)
	}
	for c := range ib.Buffer {
		for _, row := range ib.Buffer[c] {
			util.FillFloat32(row, 0, len(row), v)
		}
	}
	return ib
}

// HorizontalRamp is a single channel float image whose value is x*step.
func HorizontalRamp(t *testing.T, height int32, width int32, step float32) *image.ImageBuffer {
	ib, err := image.NewImageBuffer(image.TYPE_FLOAT, 1, height, width)
	if err != nil {
		t.Fatalf("error creating ramp image : %v", err)
	}
	for y := range ib.Buffer[0] {
		for x := range ib.Buffer[0][y] {
			ib.Buffer[0][y][x] = float32(x) * step
		}
	}
	return ib
}

// VerticalRamp is a single channel float image whose value is y*step.
func VerticalRamp(t *testing.T, height int32, width int32, step float32) *image.ImageBuffer {
	ib, err := image.NewImageBuffer(image.TYPE_FLOAT, 1, height, width)
	if err != nil {
		t.Fatalf("error creating ramp image : %v", err)
	}
	for y := range ib.Buffer[0] {
		for x := range ib.Buffer[0][y] {
			ib.Buffer[0][y][x] = float32(y) * step
		}
	}
	return ib
}

// SpikeImage is zero apart from value at the centre pixel.
func SpikeImage(t *testing.T, bufferType int, height int32, width int32, value float32) *image.ImageBuffer {
	ib := ConstantImage(t, bufferType, 1, height, width, 0)
	ib.Buffer[0][height/2][width/2] = value
	return ib
}

// StepImage is low to the left of the middle column and high from it on.
func StepImage(t *testing.T, height int32, width int32, low float32, high float32) *image.ImageBuffer {
	ib := ConstantImage(t, image.TYPE_FLOAT, 1, height, width, low)
	for y := range ib.Buffer[0] {
		for x := int(width / 2); x < int(width); x++ {
			ib.Buffer[0][y][x] = high
		}
	}
	return ib
}

// RandomImage fills every sample with a reproducible value in [0,255],
// integral for TYPE_UINT8.
func RandomImage(t *testing.T, seed int64, bufferType int, channels int, height int32, width int32) *image.ImageBuffer {
	ib, err := image.NewImageBuffer(bufferType, channels, height, width)
	if err != nil {
		t.Fatalf("error creating random image : %v", err)
	}
	r := rand.New(rand.NewSource(seed))
	for c := range ib.Buffer {
		for y := range ib.Buffer[c] {
			for x := range ib.Buffer[c][y] {
				if bufferType == image.TYPE_UINT8 {
					ib.Buffer[c][y][x] = float32(r.Intn(256))
				} else {
					ib.Buffer[c][y][x] = r.Float32() * 255
				}
			}
		}
	}
	return ib
}
