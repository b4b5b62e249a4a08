package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/filter/biquad"
)

func ExampleChain_ProcessBlock() {
	// Two-tap averager followed by a pure gain section.
	chain := biquad.NewChain([]biquad.Coefficients{
		{B0: 0.5, B1: 0.5},
		{B0: 2},
	})

	buf := []float64{1, 1, 0, 0}
	chain.ProcessBlock(buf)
	fmt.Println(buf)
	// Output:
	// [1 2 1 0]
}
