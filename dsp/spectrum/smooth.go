package spectrum

// Smooth averages each interior bin over the 2*nHalf bins starting nHalf
// below it and divides by the nominal window length 2*nHalf+1. The first
// and last nHalf bins are copied unchanged. The input is not modified.
func Smooth(bins []complex128, nHalf int) []complex128 {
	out := append([]complex128(nil), bins...)
	if nHalf <= 0 || len(bins) <= 2*nHalf {
		return out
	}

	div := complex(float64(2*nHalf+1), 0)
	for iw := nHalf; iw < len(bins)-nHalf; iw++ {
		var sum complex128
		for _, v := range bins[iw-nHalf : iw+nHalf] {
			sum += v
		}
		out[iw] = sum / div
	}
	return out
}
