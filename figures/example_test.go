package figures_test

import (
	"fmt"

	"github.com/cwbudde/dsp-figures/figures"
)

func ExampleAll() {
	for _, e := range figures.All() {
		fmt.Printf("%s -> %s\n", e.Name, e.File)
	}
	// Output:
	// fir-vs-iir -> FIRvsIIR.jpg
	// signal -> signal.jpg
	// autocorrelation -> autoCorrelation.jpg
	// clipping-effect -> STFT_clip.jpg
	// median-filter -> MedianFilter.jpg
}

func ExampleMedianFilter() {
	data, err := figures.MedianFilter()
	if err != nil {
		panic(err)
	}
	fmt.Println(data.Median)
	// Output:
	// [0 0 0 0 0 0 0 0 0 0 1 1 1 1 1 1 1 1 1 1]
}
