package dsp

import (
	"math"
	"math/cmplx"
	"testing"
)

func naiveComplexDFT(a []complex128, conjugate bool) []complex128 {
	n := len(a)
	out := make([]complex128, n)
	sign := -1.0
	if conjugate {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum complex128
		for m := 0; m < n; m++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(m) / float64(n)
			sum += a[m] * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}

func TestComplexFFTForwardMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		c := newComplexFFT(n)
		a := make([]complex128, n)
		for i := range a {
			a[i] = complex(float64(i)*0.5-1, float64(i)*0.25)
		}
		want := naiveComplexDFT(a, false)

		got := append([]complex128{}, a...)
		c.forward(got)

		for k := range want {
			if cmplx.Abs(want[k]-got[k]) > 1e-9 {
				t.Errorf("n=%d forward[%d] = %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestComplexFFTInverseMatchesNaiveConjugateDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		c := newComplexFFT(n)
		a := make([]complex128, n)
		for i := range a {
			a[i] = complex(float64(i)*0.5-1, float64(i)*0.25)
		}
		want := naiveComplexDFT(a, true)

		got := append([]complex128{}, a...)
		c.inverse(got)

		for k := range want {
			if cmplx.Abs(want[k]-got[k]) > 1e-9 {
				t.Errorf("n=%d inverse[%d] = %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestComplexFFTForwardThenScaledInverseRoundTrips(t *testing.T) {
	n := 16
	c := newComplexFFT(n)
	a := make([]complex128, n)
	for i := range a {
		a[i] = complex(float64(i), -float64(i)/3)
	}
	orig := append([]complex128{}, a...)

	c.forward(a)
	c.inverse(a)
	for i := range a {
		a[i] /= complex(float64(n), 0)
	}

	for i := range a {
		if cmplx.Abs(a[i]-orig[i]) > 1e-9 {
			t.Errorf("round trip[%d] = %v, want %v", i, a[i], orig[i])
		}
	}
}
