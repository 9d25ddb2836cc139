package rdft1d

import (
	"fmt"

	"github.com/cwbudde/rdft1d/internal/dsp"
	"github.com/cwbudde/rdft1d/internal/parallel"
)

// Plan is an immutable, precomputed real forward DFT engine for a single
// transform length. A Plan is safe for concurrent use by multiple
// goroutines as long as each RealForward call operates on its own buffer.
type Plan struct {
	n    int
	kind Kind

	split     *dsp.SplitRadixTables
	mixed     *dsp.MixedRadixTables
	bluestein *dsp.BluesteinTables

	chunker *parallel.Chunker
}

// maxBluesteinInput caps n so that NextPowerOfTwo(2n-1) cannot overflow a
// platform int.
const maxBluesteinInput = 1 << 28

// New builds a Plan for transform length n. n must be >= 1.
func New(n int, opts ...Option) (*Plan, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Plan{n: n}

	switch dsp.ClassifyLength(n) {
	case dsp.ClassSplitRadix:
		p.kind = SplitRadix
		p.split = dsp.NewSplitRadixTables(n)
	case dsp.ClassBluestein:
		p.kind = Bluestein
		if n > maxBluesteinInput {
			return nil, ErrNotRepresentable
		}
		p.bluestein = dsp.NewBluesteinTables(n)
		p.chunker = parallel.New(o.thresholds.Threshold2, o.thresholds.Threshold4, o.maxWorkers)
	default:
		p.kind = MixedRadix
		p.mixed = dsp.NewMixedRadixTables(n)
	}

	return p, nil
}

// Len returns the transform length this Plan was built for.
func (p *Plan) Len() int {
	return p.n
}

// Kind reports which algorithm this Plan dispatches to.
func (p *Plan) Kind() Kind {
	return p.kind
}

// SpectrumLen returns how many float32 slots RealForward writes starting
// at offset. This is n for both even and odd n, since the packed
// half-spectrum format always occupies exactly n real slots for a length-n
// real input.
func (p *Plan) SpectrumLen() int {
	return p.n
}

// RealForward computes the packed half-spectrum DFT of buffer[offset :
// offset+n] in place, using the unnormalized forward sign convention
// exp(-i*2*pi*k*m/n).
func (p *Plan) RealForward(buffer []float32, offset int) error {
	if buffer == nil {
		return ErrNilBuffer
	}
	if offset < 0 || len(buffer) < offset+p.n {
		return ErrLengthMismatch
	}
	if p.n == 1 {
		return nil
	}

	switch p.kind {
	case SplitRadix:
		scratch := make([]complex128, p.split.ScratchLen())
		p.split.RealForward(buffer, offset, scratch)
	case MixedRadix:
		p.mixed.RealForward(buffer, offset)
	case Bluestein:
		if err := p.bluestein.RealForward(buffer, offset, p.chunker); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return nil
}
