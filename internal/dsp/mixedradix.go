package dsp

import "math"

// MixedRadixTables holds the precomputed pass-factor list and twiddle table
// used by the mixed-radix real forward driver. It is built once at plan
// construction and read-only thereafter.
//
// wtableR mirrors the [0, 2n) slice of the original wtable_r layout: the
// first n entries are unused by the real kernels, the second n hold
// cos/sin twiddle pairs addressed by the same iw/i arithmetic as the
// radix kernels below. Keeping that offset (rather than collapsing it away)
// lets every radix function below read it with the same index expressions
// the algorithm is usually described with.
type MixedRadixTables struct {
	n       int
	factors []int
	wtableR []float32
}

func NewMixedRadixTables(n int) *MixedRadixTables {
	t := &MixedRadixTables{n: n, factors: Factorize(n)}
	if n == 1 {
		return t
	}

	t.wtableR = make([]float32, 2*n)
	nf := len(t.factors)
	if nf-1 == 0 {
		return t
	}

	argh := float32(2 * math.Pi / float64(n))
	is := 0
	l1 := 1
	for k1 := 1; k1 <= nf-1; k1++ {
		ipll := t.factors[k1-1]
		ld := 0
		l2 := l1 * ipll
		ido := n / l2
		ipm := ipll - 1
		for j := 1; j <= ipm; j++ {
			ld += l1
			i := is
			argld := float32(ld) * argh
			fi := float32(0)
			for ii := 3; ii <= ido; ii += 2 {
				i += 2
				fi++
				arg := fi * argld
				idx := i + n
				t.wtableR[idx-2] = float32(math.Cos(float64(arg)))
				t.wtableR[idx-1] = float32(math.Sin(float64(arg)))
			}
			is += ido
		}
		l1 = l2
	}
	return t
}

// RealForward runs the rfftf pass loop followed by the packed-layout
// reorder, writing n elements starting at a[offa:].
func (t *MixedRadixTables) RealForward(a []float32, offa int) {
	n := t.n
	if n == 1 {
		return
	}

	ch := make([]float32, n)
	nf := len(t.factors)
	na := 1
	l2 := n
	iw := 2*n - 1

	for k1 := 1; k1 <= nf; k1++ {
		kh := nf - k1
		ipll := t.factors[kh]
		l1 := l2 / ipll
		ido := n / l2
		idl1 := ido * l1
		iw -= (ipll - 1) * ido
		na = 1 - na

		switch ipll {
		case 2:
			if na == 0 {
				t.radf2(ido, l1, a, offa, ch, 0, iw)
			} else {
				t.radf2(ido, l1, ch, 0, a, offa, iw)
			}
		case 3:
			if na == 0 {
				t.radf3(ido, l1, a, offa, ch, 0, iw)
			} else {
				t.radf3(ido, l1, ch, 0, a, offa, iw)
			}
		case 4:
			if na == 0 {
				t.radf4(ido, l1, a, offa, ch, 0, iw)
			} else {
				t.radf4(ido, l1, ch, 0, a, offa, iw)
			}
		case 5:
			if na == 0 {
				t.radf5(ido, l1, a, offa, ch, 0, iw)
			} else {
				t.radf5(ido, l1, ch, 0, a, offa, iw)
			}
		default:
			if ido == 1 {
				na = 1 - na
			}
			if na == 0 {
				t.radfg(ido, ipll, l1, idl1, a, offa, ch, 0, iw)
				na = 1
			} else {
				t.radfg(ido, ipll, l1, idl1, ch, 0, a, offa, iw)
				na = 0
			}
		}
		l2 = l1
	}

	if na != 1 {
		copy(a[offa:offa+n], ch)
	}

	for k := n - 1; k >= 2; k-- {
		idx := offa + k
		a[idx], a[idx-1] = a[idx-1], a[idx]
	}
}

func (t *MixedRadixTables) radf2(ido, l1 int, in []float32, inOff int, out []float32, outOff int, offset int) {
	wr := t.wtableR
	iw1 := offset
	idx0 := l1 * ido

	for k := 0; k < l1; k++ {
		oidx1 := outOff + k*2*ido
		oidx2 := oidx1 + 2*ido - 1
		iidx1 := inOff + k*ido
		iidx2 := iidx1 + idx0

		i1r := in[iidx1]
		i2r := in[iidx2]
		out[oidx1] = i1r + i2r
		out[oidx2] = i1r - i2r
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := 2 * idx1
			idx3 := idx2 + ido
			idx4 := idx1 + idx0
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				widx1 := i - 1 + iw1
				oidx1 := outOff + i + idx2
				oidx2 := outOff + ic + idx3
				iidx1 := inOff + i + idx1
				iidx2 := inOff + i + idx4

				a1i := in[iidx1-1]
				a1r := in[iidx1]
				a2i := in[iidx2-1]
				a2r := in[iidx2]

				w1r := wr[widx1-1]
				w1i := wr[widx1]

				t1r := w1r*a2i + w1i*a2r
				t1i := w1r*a2r - w1i*a2i

				out[oidx1] = a1r + t1i
				out[oidx1-1] = a1i + t1r
				out[oidx2] = t1i - a1r
				out[oidx2-1] = a1i - t1r
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 2 * idx1
		oidx1 := outOff + idx2 + ido
		iidx1 := inOff + ido - 1 + idx1

		out[oidx1] = -in[iidx1+idx0]
		out[oidx1-1] = in[iidx1]
	}
}

func (t *MixedRadixTables) radf3(ido, l1 int, in []float32, inOff int, out []float32, outOff int, offset int) {
	const taur = -0.5
	const taui = 0.866025403784438707610604524234076962
	wr := t.wtableR
	iw1 := offset
	iw2 := iw1 + ido
	idx0 := l1 * ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx3 := 2 * idx0
		idx4 := (3*k + 1) * ido
		iidx1 := inOff + idx1
		iidx2 := iidx1 + idx0
		iidx3 := iidx1 + idx3

		i1r := in[iidx1]
		i2r := in[iidx2]
		i3r := in[iidx3]
		cr2 := i2r + i3r
		out[outOff+3*idx1] = i1r + cr2
		out[outOff+idx4+ido] = float32(taui) * (i3r - i2r)
		out[outOff+ido-1+idx4] = i1r + float32(taur)*cr2
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx3 := k * ido
		idx4 := 3 * idx3
		idx5 := idx3 + idx0
		idx6 := idx5 + idx0
		idx7 := idx4 + ido
		idx8 := idx7 + ido
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			widx1 := i - 1 + iw1
			widx2 := i - 1 + iw2

			w1r := wr[widx1-1]
			w1i := wr[widx1]
			w2r := wr[widx2-1]
			w2i := wr[widx2]

			idx9 := inOff + i
			idx10 := outOff + i
			idx11 := outOff + ic
			iidx1 := idx9 + idx3
			iidx2 := idx9 + idx5
			iidx3 := idx9 + idx6

			i1i := in[iidx1-1]
			i1r := in[iidx1]
			i2i := in[iidx2-1]
			i2r := in[iidx2]
			i3i := in[iidx3-1]
			i3r := in[iidx3]

			dr2 := w1r*i2i + w1i*i2r
			di2 := w1r*i2r - w1i*i2i
			dr3 := w2r*i3i + w2i*i3r
			di3 := w2r*i3r - w2i*i3i
			cr2 := dr2 + dr3
			ci2 := di2 + di3
			tr2 := i1i + float32(taur)*cr2
			ti2 := i1r + float32(taur)*ci2
			tr3 := float32(taui) * (di2 - di3)
			ti3 := float32(taui) * (dr3 - dr2)

			oidx1 := idx10 + idx4
			oidx2 := idx11 + idx7
			oidx3 := idx10 + idx8

			out[oidx1-1] = i1i + cr2
			out[oidx1] = i1r + ci2
			out[oidx2-1] = tr2 - tr3
			out[oidx2] = ti3 - ti2
			out[oidx3-1] = tr2 + tr3
			out[oidx3] = ti2 + ti3
		}
	}
}

func (t *MixedRadixTables) radf4(ido, l1 int, in []float32, inOff int, out []float32, outOff int, offset int) {
	const hsqt2 = 0.707106781186547572737310929369414225
	wr := t.wtableR
	iw1 := offset
	iw2 := offset + ido
	iw3 := iw2 + ido
	idx0 := l1 * ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := idx1 + idx0
		idx4 := idx3 + idx0
		idx5 := idx4 + idx0
		idx6 := idx2 + ido

		i1r := in[inOff+idx1]
		i2r := in[inOff+idx3]
		i3r := in[inOff+idx4]
		i4r := in[inOff+idx5]

		tr1 := i2r + i4r
		tr2 := i1r + i3r

		oidx1 := outOff + idx2
		oidx2 := outOff + idx6 + ido

		out[oidx1] = tr1 + tr2
		out[oidx2-1+ido+ido] = tr2 - tr1
		out[oidx2-1] = i1r - i3r
		out[oidx2] = i4r - i2r
	}
	if ido < 2 {
		return
	}
	if ido != 2 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := idx1 + idx0
			idx3 := idx2 + idx0
			idx4 := idx3 + idx0
			idx5 := 4 * idx1
			idx6 := idx5 + ido
			idx7 := idx6 + ido
			idx8 := idx7 + ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				widx1 := i - 1 + iw1
				widx2 := i - 1 + iw2
				widx3 := i - 1 + iw3
				w1r := wr[widx1-1]
				w1i := wr[widx1]
				w2r := wr[widx2-1]
				w2i := wr[widx2]
				w3r := wr[widx3-1]
				w3i := wr[widx3]

				idx9 := inOff + i
				idx10 := outOff + i
				idx11 := outOff + ic
				iidx1 := idx9 + idx1
				iidx2 := idx9 + idx2
				iidx3 := idx9 + idx3
				iidx4 := idx9 + idx4

				i1i := in[iidx1-1]
				i1r := in[iidx1]
				i2i := in[iidx2-1]
				i2r := in[iidx2]
				i3i := in[iidx3-1]
				i3r := in[iidx3]
				i4i := in[iidx4-1]
				i4r := in[iidx4]

				cr2 := w1r*i2i + w1i*i2r
				ci2 := w1r*i2r - w1i*i2i
				cr3 := w2r*i3i + w2i*i3r
				ci3 := w2r*i3r - w2i*i3i
				cr4 := w3r*i4i + w3i*i4r
				ci4 := w3r*i4r - w3i*i4i
				tr1 := cr2 + cr4
				tr4 := cr4 - cr2
				ti1 := ci2 + ci4
				ti4 := ci2 - ci4
				ti2 := i1r + ci3
				ti3 := i1r - ci3
				tr2 := i1i + cr3
				tr3 := i1i - cr3

				oidx1 := idx10 + idx5
				oidx2 := idx11 + idx6
				oidx3 := idx10 + idx7
				oidx4 := idx11 + idx8

				out[oidx1-1] = tr1 + tr2
				out[oidx4-1] = tr2 - tr1
				out[oidx1] = ti1 + ti2
				out[oidx4] = ti1 - ti2
				out[oidx3-1] = ti4 + tr3
				out[oidx2-1] = tr3 - ti4
				out[oidx3] = tr4 + ti3
				out[oidx2] = tr4 - ti3
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 4 * idx1
		idx3 := idx1 + idx0
		idx4 := idx3 + idx0
		idx5 := idx4 + idx0
		idx6 := idx2 + ido
		idx7 := idx6 + ido
		idx8 := idx7 + ido
		idx9 := inOff + ido
		idx10 := outOff + ido

		i1i := in[idx9-1+idx1]
		i2i := in[idx9-1+idx3]
		i3i := in[idx9-1+idx4]
		i4i := in[idx9-1+idx5]

		ti1 := float32(-hsqt2) * (i2i + i4i)
		tr1 := float32(hsqt2) * (i2i - i4i)

		out[idx10-1+idx2] = tr1 + i1i
		out[idx10-1+idx7] = i1i - tr1
		out[outOff+idx6] = ti1 - i3i
		out[outOff+idx8] = ti1 + i3i
	}
}

func (t *MixedRadixTables) radf5(ido, l1 int, in []float32, inOff int, out []float32, outOff int, offset int) {
	const tr11 = 0.309016994374947451262869435595348477
	const ti11 = 0.951056516295153531181938433292089030
	const tr12 = -0.809016994374947340240566973079694435
	const ti12 = 0.587785252292473248125759255344746634
	wr := t.wtableR
	iw1 := offset
	iw2 := iw1 + ido
	iw3 := iw2 + ido
	iw4 := iw3 + ido
	idx0 := l1 * ido

	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + idx0
		idx8 := idx7 + idx0
		idx9 := idx8 + idx0
		idx10 := idx9 + idx0
		idx11 := outOff + ido - 1

		i1r := in[inOff+idx1]
		i2r := in[inOff+idx7]
		i3r := in[inOff+idx8]
		i4r := in[inOff+idx9]
		i5r := in[inOff+idx10]

		cr2 := i5r + i2r
		ci5 := i5r - i2r
		cr3 := i4r + i3r
		ci4 := i4r - i3r

		out[outOff+idx2] = i1r + cr2 + cr3
		out[idx11+idx3] = i1r + float32(tr11)*cr2 + float32(tr12)*cr3
		out[outOff+idx4] = float32(ti11)*ci5 + float32(ti12)*ci4
		out[idx11+idx5] = i1r + float32(tr12)*cr2 + float32(tr11)*cr3
		out[outOff+idx6] = float32(ti12)*ci5 - float32(ti11)*ci4
	}
	if ido == 1 {
		return
	}
	for k := 0; k < l1; k++ {
		idx1 := k * ido
		idx2 := 5 * idx1
		idx3 := idx2 + ido
		idx4 := idx3 + ido
		idx5 := idx4 + ido
		idx6 := idx5 + ido
		idx7 := idx1 + idx0
		idx8 := idx7 + idx0
		idx9 := idx8 + idx0
		idx10 := idx9 + idx0
		for i := 2; i < ido; i += 2 {
			widx1 := i - 1 + iw1
			widx2 := i - 1 + iw2
			widx3 := i - 1 + iw3
			widx4 := i - 1 + iw4
			w1r := wr[widx1-1]
			w1i := wr[widx1]
			w2r := wr[widx2-1]
			w2i := wr[widx2]
			w3r := wr[widx3-1]
			w3i := wr[widx3]
			w4r := wr[widx4-1]
			w4i := wr[widx4]

			ic := ido - i
			idx15 := inOff + i
			idx16 := outOff + i
			idx17 := outOff + ic

			iidx1 := idx15 + idx1
			iidx2 := idx15 + idx7
			iidx3 := idx15 + idx8
			iidx4 := idx15 + idx9
			iidx5 := idx15 + idx10

			i1i := in[iidx1-1]
			i1r := in[iidx1]
			i2i := in[iidx2-1]
			i2r := in[iidx2]
			i3i := in[iidx3-1]
			i3r := in[iidx3]
			i4i := in[iidx4-1]
			i4r := in[iidx4]
			i5i := in[iidx5-1]
			i5r := in[iidx5]

			dr2 := w1r*i2i + w1i*i2r
			di2 := w1r*i2r - w1i*i2i
			dr3 := w2r*i3i + w2i*i3r
			di3 := w2r*i3r - w2i*i3i
			dr4 := w3r*i4i + w3i*i4r
			di4 := w3r*i4r - w3i*i4i
			dr5 := w4r*i5i + w4i*i5r
			di5 := w4r*i5r - w4i*i5i

			cr2 := dr2 + dr5
			ci5 := dr5 - dr2
			cr5 := di2 - di5
			ci2 := di2 + di5
			cr3 := dr3 + dr4
			ci4 := dr4 - dr3
			cr4 := di3 - di4
			ci3 := di3 + di4

			tr2 := i1i + float32(tr11)*cr2 + float32(tr12)*cr3
			ti2 := i1r + float32(tr11)*ci2 + float32(tr12)*ci3
			tr3 := i1i + float32(tr12)*cr2 + float32(tr11)*cr3
			ti3 := i1r + float32(tr12)*ci2 + float32(tr11)*ci3
			tr5 := float32(ti11)*cr5 + float32(ti12)*cr4
			ti5 := float32(ti11)*ci5 + float32(ti12)*ci4
			tr4 := float32(ti12)*cr5 - float32(ti11)*cr4
			ti4 := float32(ti12)*ci5 - float32(ti11)*ci4

			oidx1 := idx16 + idx2
			oidx2 := idx17 + idx3
			oidx3 := idx16 + idx4
			oidx4 := idx17 + idx5
			oidx5 := idx16 + idx6

			out[oidx1-1] = i1i + cr2 + cr3
			out[oidx1] = i1r + ci2 + ci3
			out[oidx3-1] = tr2 + tr5
			out[oidx2-1] = tr2 - tr5
			out[oidx3] = ti2 + ti5
			out[oidx2] = ti5 - ti2
			out[oidx5-1] = tr3 + tr4
			out[oidx4-1] = tr3 - tr4
			out[oidx5] = ti3 + ti4
			out[oidx4] = ti4 - ti3
		}
	}
}

func (t *MixedRadixTables) radfg(ido, ip, l1, idl1 int, in []float32, inOff int, out []float32, outOff int, offset int) {
	wr := t.wtableR
	arg := float32(2 * math.Pi / float64(ip))
	dcp := float32(math.Cos(float64(arg)))
	dsp := float32(math.Sin(float64(arg)))
	ipph := (ip + 1) / 2
	nbd := (ido - 1) / 2

	if ido != 1 {
		for ik := 0; ik < idl1; ik++ {
			out[outOff+ik] = in[inOff+ik]
		}
		for j := 1; j < ip; j++ {
			idx1 := j * l1 * ido
			for k := 0; k < l1; k++ {
				idx2 := k*ido + idx1
				out[outOff+idx2] = in[inOff+idx2]
			}
		}
		if nbd <= l1 {
			is := -ido
			for j := 1; j < ip; j++ {
				is += ido
				idij := is - 1
				idx1 := j * l1 * ido
				for i := 2; i < ido; i += 2 {
					idij += 2
					idx2 := idij + offset
					idx4 := inOff + i
					idx5 := outOff + i
					w1r := wr[idx2-1]
					w1i := wr[idx2]
					for k := 0; k < l1; k++ {
						idx3 := k*ido + idx1
						oidx1 := idx5 + idx3
						iidx1 := idx4 + idx3
						i1i := in[iidx1-1]
						i1r := in[iidx1]

						out[oidx1-1] = w1r*i1i + w1i*i1r
						out[oidx1] = w1r*i1r - w1i*i1i
					}
				}
			}
		} else {
			is := -ido
			for j := 1; j < ip; j++ {
				is += ido
				idx1 := j * l1 * ido
				for k := 0; k < l1; k++ {
					idij := is - 1
					idx3 := k*ido + idx1
					for i := 2; i < ido; i += 2 {
						idij += 2
						idx2 := idij + offset
						w1r := wr[idx2-1]
						w1i := wr[idx2]
						oidx1 := outOff + i + idx3
						iidx1 := inOff + i + idx3
						i1i := in[iidx1-1]
						i1r := in[iidx1]

						out[oidx1-1] = w1r*i1i + w1i*i1r
						out[oidx1] = w1r*i1r - w1i*i1i
					}
				}
			}
		}
		if nbd >= l1 {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				for k := 0; k < l1; k++ {
					idx3 := k*ido + idx1
					idx4 := k*ido + idx2
					for i := 2; i < ido; i += 2 {
						idx5 := inOff + i
						idx6 := outOff + i
						iidx1 := idx5 + idx3
						iidx2 := idx5 + idx4
						oidx1 := idx6 + idx3
						oidx2 := idx6 + idx4
						o1i := out[oidx1-1]
						o1r := out[oidx1]
						o2i := out[oidx2-1]
						o2r := out[oidx2]

						in[iidx1-1] = o1i + o2i
						in[iidx1] = o1r + o2r
						in[iidx2-1] = o1r - o2r
						in[iidx2] = o2i - o1i
					}
				}
			}
		} else {
			for j := 1; j < ipph; j++ {
				jc := ip - j
				idx1 := j * l1 * ido
				idx2 := jc * l1 * ido
				for i := 2; i < ido; i += 2 {
					idx5 := inOff + i
					idx6 := outOff + i
					for k := 0; k < l1; k++ {
						idx3 := k*ido + idx1
						idx4 := k*ido + idx2
						iidx1 := idx5 + idx3
						iidx2 := idx5 + idx4
						oidx1 := idx6 + idx3
						oidx2 := idx6 + idx4
						o1i := out[oidx1-1]
						o1r := out[oidx1]
						o2i := out[oidx2-1]
						o2r := out[oidx2]

						in[iidx1-1] = o1i + o2i
						in[iidx1] = o1r + o2r
						in[iidx2-1] = o1r - o2r
						in[iidx2] = o2i - o1i
					}
				}
			}
		}
	} else {
		copy(in[inOff:inOff+idl1], out[outOff:outOff+idl1])
	}

	for j := 1; j < ipph; j++ {
		jc := ip - j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		for k := 0; k < l1; k++ {
			idx3 := k*ido + idx1
			idx4 := k*ido + idx2
			oidx1 := outOff + idx3
			oidx2 := outOff + idx4
			o1r := out[oidx1]
			o2r := out[oidx2]

			in[inOff+idx3] = o1r + o2r
			in[inOff+idx4] = o2r - o1r
		}
	}

	ar1 := float32(1)
	ai1 := float32(0)
	idx0 := (ip - 1) * idl1
	for l := 1; l < ipph; l++ {
		lc := ip - l
		ar1h := dcp*ar1 - dsp*ai1
		ai1 = dcp*ai1 + dsp*ar1
		ar1 = ar1h
		idx1 := l * idl1
		idx2 := lc * idl1
		for ik := 0; ik < idl1; ik++ {
			idx3 := outOff + ik
			idx4 := inOff + ik
			out[idx3+idx1] = in[idx4] + ar1*in[idx4+idl1]
			out[idx3+idx2] = ai1 * in[idx4+idx0]
		}
		dc2 := ar1
		ds2 := ai1
		ar2 := ar1
		ai2 := ai1
		for j := 2; j < ipph; j++ {
			jc := ip - j
			ar2h := dc2*ar2 - ds2*ai2
			ai2 = dc2*ai2 + ds2*ar2
			ar2 = ar2h
			idx3 := j * idl1
			idx4 := jc * idl1
			for ik := 0; ik < idl1; ik++ {
				idx5 := outOff + ik
				idx6 := inOff + ik
				out[idx5+idx1] += ar2 * in[idx6+idx3]
				out[idx5+idx2] += ai2 * in[idx6+idx4]
			}
		}
	}
	for j := 1; j < ipph; j++ {
		idx1 := j * idl1
		for ik := 0; ik < idl1; ik++ {
			out[outOff+ik] += in[inOff+ik+idx1]
		}
	}

	if ido >= l1 {
		for k := 0; k < l1; k++ {
			idx1 := k * ido
			idx2 := idx1 * ip
			for i := 0; i < ido; i++ {
				in[inOff+i+idx2] = out[outOff+i+idx1]
			}
		}
	} else {
		for i := 0; i < ido; i++ {
			for k := 0; k < l1; k++ {
				idx1 := k * ido
				in[inOff+i+idx1*ip] = out[outOff+i+idx1]
			}
		}
	}

	idx01 := ip * ido
	for j := 1; j < ipph; j++ {
		jc := ip - j
		j2 := 2 * j
		idx1 := j * l1 * ido
		idx2 := jc * l1 * ido
		idx3 := j2 * ido
		for k := 0; k < l1; k++ {
			idx4 := k * ido
			idx5 := idx4 + idx1
			idx6 := idx4 + idx2
			idx7 := k * idx01
			in[inOff+ido-1+idx3-ido+idx7] = out[outOff+idx5]
			in[inOff+idx3+idx7] = out[outOff+idx6]
		}
	}
	if ido == 1 {
		return
	}
	if nbd >= l1 {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			j2 := 2 * j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			idx3 := j2 * ido
			for k := 0; k < l1; k++ {
				idx4 := k * idx01
				idx5 := k * ido
				for i := 2; i < ido; i += 2 {
					ic := ido - i
					idx6 := inOff + i
					idx7 := inOff + ic
					idx8 := outOff + i
					iidx1 := idx6 + idx3 + idx4
					iidx2 := idx7 + idx3 - ido + idx4
					oidx1 := idx8 + idx5 + idx1
					oidx2 := idx8 + idx5 + idx2
					o1i := out[oidx1-1]
					o1r := out[oidx1]
					o2i := out[oidx2-1]
					o2r := out[oidx2]

					in[iidx1-1] = o1i + o2i
					in[iidx2-1] = o1i - o2i
					in[iidx1] = o1r + o2r
					in[iidx2] = o2r - o1r
				}
			}
		}
	} else {
		for j := 1; j < ipph; j++ {
			jc := ip - j
			j2 := 2 * j
			idx1 := j * l1 * ido
			idx2 := jc * l1 * ido
			idx3 := j2 * ido
			for i := 2; i < ido; i += 2 {
				ic := ido - i
				idx6 := inOff + i
				idx7 := inOff + ic
				idx8 := outOff + i
				for k := 0; k < l1; k++ {
					idx4 := k * idx01
					idx5 := k * ido
					iidx1 := idx6 + idx3 + idx4
					iidx2 := idx7 + idx3 - ido + idx4
					oidx1 := idx8 + idx5 + idx1
					oidx2 := idx8 + idx5 + idx2
					o1i := out[oidx1-1]
					o1r := out[oidx1]
					o2i := out[oidx2-1]
					o2r := out[oidx2]

					in[iidx1-1] = o1i + o2i
					in[iidx2-1] = o1i - o2i
					in[iidx1] = o1r + o2r
					in[iidx2] = o2r - o1r
				}
			}
		}
	}
}
