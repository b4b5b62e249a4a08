package spectrum_test

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-psd/dsp/spectrum"
)

func ExamplePlanWelch() {
	// One day of 1 Hz data.
	p := spectrum.PlanWelch(86400)
	fmt.Println(p.SegmentLen, p.Stride, p.Segments, p.FFTSize, p.Bins)
	// Output:
	// 21600 5400 13 32768 16385
}

func ExampleSmooth() {
	// The window for bin iw spans [iw-5, iw+5), so a spike at bin 10
	// reaches bins 6 through 15.
	bins := make([]complex128, 20)
	bins[10] = 11
	out := spectrum.Smooth(bins, 5)
	fmt.Println(real(out[5]), real(out[6]), real(out[14]))
	// Output:
	// 0 1 1
}

func ExampleWelchCrossPower() {
	data := make([]float64, 1000)
	r, err := spectrum.WelchCrossPower(data, data, time.Second)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Len(), r.At(10), r.DeltaFreq())
	// Output:
	// 129 (0+0i) 0.00390625
}
