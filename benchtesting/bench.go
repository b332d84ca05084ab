package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/imgfilter/filter"
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
	"github.com/kpfaulkner/imgfilter/util"
)

func syntheticImage(seed int64, channels int, height int32, width int32) (*image.ImageBuffer, error) {
	data := make([]uint8, int(height)*int(width)*channels)
	r := rand.New(rand.NewSource(seed))
	for i := range data {
		data[i] = uint8(r.Intn(256))
	}
	return image.NewImageBufferFromInterleaved(height, width, channels, data)
}

func main() {
	width := flag.Int("width", 1920, "image width")
	height := flag.Int("height", 1080, "image height")
	channels := flag.Int("channels", 3, "channel count")
	goroutines := flag.Int("goroutines", 0, "worker count, 0 for one per CPU")
	iterations := flag.Int("iterations", 3, "runs per filter")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *cpuProfile {
		//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	src, err := syntheticImage(1, *channels, int32(*height), int32(*width))
	if err != nil {
		log.Fatalf("unable to create image %v", err)
	}

	e, err := filter.NewEngine(&options.FilterOptions{MaxGoroutines: *goroutines})
	if err != nil {
		log.Fatalf("unable to create engine %v", err)
	}
	defer e.Close()

	sharpen, err := filter.NewKernel([][]float32{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}})
	if err != nil {
		log.Fatalf("unable to create kernel %v", err)
	}

	ops := []filter.Operation{
		filter.Convolve2DOp{Kernel: sharpen, Anchor: filter.DefaultAnchor},
		filter.GaussianBlurOp{KHeight: 3, KWidth: 3, SigmaX: 0, SigmaY: 0},
		filter.BoxFilterOp{KHeight: 2, KWidth: 2, Normalize: true},
		filter.BlurOp{KHeight: 4, KWidth: 4},
		filter.MedianBlurOp{KSize: 2},
		filter.SqrBoxFilterOp{KHeight: 2, KWidth: 2, Normalize: true},
		filter.SobelOp{Dx: 1, Dy: 0, KSize: 1, Scale: 1},
		filter.ScharrOp{Dx: 0, Dy: 1, Scale: 1},
		filter.LaplacianOp{KSize: 2, Scale: 1},
		filter.BilateralFilterOp{D: 9, SigmaColor: 50, SigmaSpace: 5},
	}

	sampleType := util.IfThenElse(src.IsFloat(), "float", "uint8")
	fmt.Printf("image %dx%d, %d %s channels, %d goroutines\n", *width, *height, *channels, sampleType, e.Options().MaxGoroutines)
	total := time.Now()
	for _, op := range ops {
		start := time.Now()
		for count := 0; count < *iterations; count++ {
			if _, err := op.Apply(e, src); err != nil {
				log.Errorf("%s failed: %v", op.Name(), err)
				return
			}
		}
		fmt.Printf("%-16s %6d ms per run\n", op.Name(), time.Since(start).Milliseconds()/int64(*iterations))
	}
	fmt.Printf("total time %d ms\n", time.Since(total).Milliseconds())

	for name, m := range util.GetPoolMetrics() {
		fmt.Printf("pool %s: %+v\n", name, m)
	}
}
