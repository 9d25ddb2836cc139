package dsp

import "math"

// BluesteinTables holds the chirp tables and padded complex transform used
// by the Bluestein driver for lengths whose largest remaining factor (after
// dividing out 2, 3, 4, 5) is too large for the mixed-radix general-radix
// pass to handle efficiently.
type BluesteinTables struct {
	N     int
	NBlue int
	Bk1   []float32
	Bk2   []float32

	padded *complexFFT
}

// NewBluesteinTables builds the chirp table bk1, its frequency-domain
// conjugate bk2, and the padded power-of-two complex transform of length
// NBlue = NextPowerOfTwo(2n-1).
func NewBluesteinTables(n int) *BluesteinTables {
	nBlue := NextPowerOfTwo(2*n - 1)
	t := &BluesteinTables{N: n, NBlue: nBlue, padded: newComplexFFT(nBlue)}
	t.Bk1 = make([]float32, 2*nBlue)
	t.Bk2 = make([]float32, 2*nBlue)

	piN := math.Pi / float64(n)
	k := 0
	t.Bk1[0] = 1
	t.Bk1[1] = 0
	for i := 1; i < n; i++ {
		k += 2*i - 1
		if k >= 2*n {
			k -= 2 * n
		}
		arg := piN * float64(k)
		t.Bk1[2*i] = float32(math.Cos(arg))
		t.Bk1[2*i+1] = float32(math.Sin(arg))
	}

	scale := float32(1.0 / float64(nBlue))
	t.Bk2[0] = t.Bk1[0] * scale
	t.Bk2[1] = t.Bk1[1] * scale
	for i := 2; i < 2*n; i += 2 {
		t.Bk2[i] = t.Bk1[i] * scale
		t.Bk2[i+1] = t.Bk1[i+1] * scale
		t.Bk2[2*nBlue-i] = t.Bk2[i]
		t.Bk2[2*nBlue-i+1] = t.Bk2[i+1]
	}

	buf := toComplex(t.Bk2)
	t.padded.inverse(buf)
	fromComplex(buf, t.Bk2)

	return t
}

func toComplex(flat []float32) []complex128 {
	m := len(flat) / 2
	out := make([]complex128, m)
	for i := 0; i < m; i++ {
		out[i] = complex(float64(flat[2*i]), float64(flat[2*i+1]))
	}
	return out
}

func fromComplex(buf []complex128, flat []float32) {
	for i, z := range buf {
		flat[2*i] = float32(real(z))
		flat[2*i+1] = float32(imag(z))
	}
}

// Chunker is the minimal interface this driver needs from
// internal/parallel.Chunker, so dsp does not have to import it directly.
type Chunker interface {
	Run(n int, fn func(lo, hi int)) error
}

// RealForward computes the packed half-spectrum of a[offa:offa+n] in
// place using the chirp-z transform. chunker drives the two embarrassingly
// parallel element-wise passes (pre-multiply and pointwise multiply); pass
// nil for a purely sequential run.
func (t *BluesteinTables) RealForward(a []float32, offa int, chunker Chunker) error {
	n := t.N
	nBlue := t.NBlue
	ak := make([]float32, 2*nBlue)

	premul := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			idx1 := 2 * i
			idx2 := idx1 + 1
			av := a[offa+i]
			ak[idx1] = av * t.Bk1[idx1]
			ak[idx2] = -av * t.Bk1[idx2]
		}
	}
	if chunker != nil {
		if err := chunker.Run(n, premul); err != nil {
			return err
		}
	} else {
		premul(0, n)
	}

	buf := toComplex(ak)
	t.padded.inverse(buf)
	fromComplex(buf, ak)

	pointwise := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			idx1 := 2 * i
			idx2 := idx1 + 1
			im := ak[idx1]*t.Bk2[idx2] + ak[idx2]*t.Bk2[idx1]
			ak[idx1] = ak[idx1]*t.Bk2[idx1] - ak[idx2]*t.Bk2[idx2]
			ak[idx2] = im
		}
	}
	if chunker != nil {
		if err := chunker.Run(nBlue, pointwise); err != nil {
			return err
		}
	} else {
		pointwise(0, nBlue)
	}

	buf = toComplex(ak)
	t.padded.forward(buf)
	fromComplex(buf, ak)

	if n%2 == 0 {
		a[offa] = t.Bk1[0]*ak[0] + t.Bk1[1]*ak[1]
		a[offa+1] = t.Bk1[n]*ak[n] + t.Bk1[n+1]*ak[n+1]
		for i := 1; i < n/2; i++ {
			idx1 := 2 * i
			idx2 := idx1 + 1
			a[offa+idx1] = t.Bk1[idx1]*ak[idx1] + t.Bk1[idx2]*ak[idx2]
			a[offa+idx2] = -t.Bk1[idx2]*ak[idx1] + t.Bk1[idx1]*ak[idx2]
		}
	} else {
		a[offa] = t.Bk1[0]*ak[0] + t.Bk1[1]*ak[1]
		a[offa+1] = -t.Bk1[n]*ak[n-1] + t.Bk1[n-1]*ak[n]
		for i := 1; i < (n-1)/2; i++ {
			idx1 := 2 * i
			idx2 := idx1 + 1
			a[offa+idx1] = t.Bk1[idx1]*ak[idx1] + t.Bk1[idx2]*ak[idx2]
			a[offa+idx2] = -t.Bk1[idx2]*ak[idx1] + t.Bk1[idx1]*ak[idx2]
		}
		a[offa+n-1] = t.Bk1[n-1]*ak[n-1] + t.Bk1[n]*ak[n]
	}
	return nil
}
