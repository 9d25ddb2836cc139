package dsp

// SplitRadixTables holds the cached half-length complex transform used by
// the split-radix real forward driver. n must be a power of two.
type SplitRadixTables struct {
	n    int
	half *complexFFT
}

func NewSplitRadixTables(n int) *SplitRadixTables {
	t := &SplitRadixTables{n: n}
	if n > 1 {
		t.half = newComplexFFT(n / 2)
	}
	return t
}

// ScratchLen returns the length of the complex128 scratch buffer that
// RealForward needs for this table's half-length transform (0 for n <= 1).
func (t *SplitRadixTables) ScratchLen() int {
	if t.n <= 1 {
		return 0
	}
	return t.n / 2
}

// RealForward computes the packed half-spectrum of a[offa:offa+n] in
// place, for n a power of two. It packs consecutive real/imaginary pairs
// into a half-length complex sequence, runs the complex FFT, and recombines
// via the standard even/odd decomposition: X[k] = E[k] + W_n^k O[k], with
// E and O recovered from the half-length transform Z = E + i*O using
// Z's conjugate symmetry (real input). scratch must have length
// ScratchLen() and is used purely as working storage.
func (t *SplitRadixTables) RealForward(a []float32, offa int, scratch []complex128) {
	n := t.n
	if n == 1 {
		return
	}
	if n == 2 {
		a0, a1 := a[offa], a[offa+1]
		a[offa] = a0 + a1
		a[offa+1] = a0 - a1
		return
	}

	m := n / 2
	for j := 0; j < m; j++ {
		scratch[j] = complex(float64(a[offa+2*j]), float64(a[offa+2*j+1]))
	}
	t.half.forward(scratch)

	z0 := scratch[0]
	a[offa] = float32(real(z0) + imag(z0))
	a[offa+1] = float32(real(z0) - imag(z0))

	for k := 1; k < m; k++ {
		zk := scratch[k]
		zmk := scratch[m-k]
		ek := (zk + conjC(zmk)) * 0.5
		ok := (zk - conjC(zmk)) * complex(0, -0.5)
		wk := cisNegative(k, n)
		xk := ek + wk*ok
		a[offa+2*k] = float32(real(xk))
		a[offa+2*k+1] = float32(imag(xk))
	}
}

func conjC(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
