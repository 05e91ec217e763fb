package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApplySegment() {
	buf := []float64{1, 1, 1, 1, 1, 1, 1}
	w, _ := Hann(5)
	_ = ApplySegment(buf, 1, w)
	fmt.Printf("%.2f\n", buf)
	// Output:
	// [1.00 0.00 0.50 1.00 0.50 0.00 1.00]
}
