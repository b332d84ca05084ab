package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/imgfilter/filter"
	"github.com/kpfaulkner/imgfilter/image"
	"github.com/kpfaulkner/imgfilter/options"
)

// displays sizes of main structs to determine any padding wasteage
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes\n", rType.Name(), rType.Size())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Printf("  Name %s\n", field.Name)
			fmt.Printf("    Offset of    : %d bytes\n", field.Offset)
			fmt.Printf("    Size of      : %d bytes\n", field.Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", field.Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(image.ImageBuffer{})
	memStats(filter.Kernel{})
	memStats(filter.Engine{})
	memStats(options.FilterOptions{})
}
