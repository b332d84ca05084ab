package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/imgfilter/filter"
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
)

func printPlane(title string, ib *image.ImageBuffer) {
	fmt.Printf("%s\n", title)
	for _, row := range ib.Channel(0) {
		for _, v := range row {
			fmt.Printf("%6.2f ", v)
		}
		fmt.Println()
	}
}

func main() {
	fmt.Printf("So it begins...\n")

	e, err := filter.NewEngine(&options.FilterOptions{Border: image.BORDER_REPLICATE})
	if err != nil {
		log.Fatalf("unable to create engine %v", err)
	}
	defer e.Close()

	for _, size := range []int32{3, 5} {
		src, err := image.NewImageBuffer(image.TYPE_FLOAT, 1, size, size)
		if err != nil {
			log.Fatalf("unable to create image %v", err)
		}
		src.Buffer[0][size/2][size/2] = 9

		out, err := e.BoxFilter(src, 1, 1, true)
		if err != nil {
			log.Fatalf("box filter failed %v", err)
		}
		printPlane(fmt.Sprintf("%dx%d spike", size, size), src)
		printPlane("box filtered", out)
	}
}
