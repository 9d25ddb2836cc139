package dsp

import (
	"math"
	"testing"
)

func checkAgainstNaive(t *testing.T, n int, run func(a []float32)) {
	t.Helper()
	input := make([]float32, n)
	for i := range input {
		input[i] = float32(math.Sin(float64(i)*0.37) + 0.5*math.Cos(float64(i)*1.1))
	}
	wantRe, wantIm := naiveRealSpectrum(input)

	got := make([]float32, n)
	copy(got, input)
	run(got)
	gotRe, gotIm := unpackHalfSpectrum(got, n)

	const tol = 1e-2
	for k := range wantRe {
		if !almostEqual(wantRe[k], gotRe[k], tol) {
			t.Errorf("n=%d Re[%d] = %v, want %v", n, k, gotRe[k], wantRe[k])
		}
		if !almostEqual(wantIm[k], gotIm[k], tol) {
			t.Errorf("n=%d Im[%d] = %v, want %v", n, k, gotIm[k], wantIm[k])
		}
	}
}

func TestSplitRadixRealForward(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 256} {
		n := n
		t.Run("", func(t *testing.T) {
			tables := NewSplitRadixTables(n)
			checkAgainstNaive(t, n, func(a []float32) {
				scratch := make([]complex128, tables.ScratchLen())
				tables.RealForward(a, 0, scratch)
			})
		})
	}
}

func TestSplitRadixRealForwardWithOffset(t *testing.T) {
	n := 16
	tables := NewSplitRadixTables(n)
	buf := make([]float32, n+3)
	for i := 3; i < n+3; i++ {
		buf[i] = float32(i - 3)
	}
	scratch := make([]complex128, tables.ScratchLen())
	tables.RealForward(buf, 3, scratch)

	plain := make([]float32, n)
	for i := range plain {
		plain[i] = float32(i)
	}
	tables.RealForward(plain, 0, scratch)

	for i := 0; i < n; i++ {
		if buf[3+i] != plain[i] {
			t.Errorf("offset mismatch at %d: %v vs %v", i, buf[3+i], plain[i])
		}
	}
}
