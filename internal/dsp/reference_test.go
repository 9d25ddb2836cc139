package dsp

import "math"

// naiveRealSpectrum computes X[k] = sum_m a[m] * exp(-2*pi*i*k*m/n) for
// k = 0..n/2 by direct summation in float64, for use as a slow-but-obviously
// -correct reference in tests.
func naiveRealSpectrum(a []float32) (re, im []float64) {
	n := len(a)
	upper := n/2 + 1
	re = make([]float64, upper)
	im = make([]float64, upper)
	for k := 0; k < upper; k++ {
		var sr, si float64
		for m := 0; m < n; m++ {
			angle := -2 * math.Pi * float64(k) * float64(m) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			av := float64(a[m])
			sr += av * c
			si += av * s
		}
		re[k] = sr
		im[k] = si
	}
	return re, im
}

// unpackHalfSpectrum reads a packed half-spectrum buffer of length n back
// into (re, im) slices of length n/2+1, following spec's even/odd layout.
func unpackHalfSpectrum(a []float32, n int) (re, im []float64) {
	upper := n/2 + 1
	re = make([]float64, upper)
	im = make([]float64, upper)

	if n%2 == 0 {
		re[0] = float64(a[0])
		re[n/2] = float64(a[1])
		for k := 1; k < n/2; k++ {
			re[k] = float64(a[2*k])
			im[k] = float64(a[2*k+1])
		}
	} else {
		re[0] = float64(a[0])
		if n > 1 {
			im[(n-1)/2] = float64(a[1])
		}
		for k := 1; k <= (n-1)/2; k++ {
			re[k] = float64(a[2*k])
			if k != (n-1)/2 {
				im[k] = float64(a[2*k+1])
			}
		}
	}
	return re, im
}

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
