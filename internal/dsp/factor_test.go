package dsp

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{
		0: false, 1: true, 2: true, 3: false, 4: true,
		5: false, 1024: true, 1023: false,
	}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 17: 32, 1024: 1024, 1025: 2048}
	for n, want := range cases {
		if got := NextPowerOfTwo(n); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestFactorizeProduct(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6, 8, 12, 15, 16, 24, 30, 60, 100, 210, 997} {
		factors := Factorize(n)
		product := 1
		for _, f := range factors {
			product *= f
		}
		if n == 1 {
			if len(factors) != 0 {
				t.Errorf("Factorize(1) = %v, want empty", factors)
			}
			continue
		}
		if product != n {
			t.Errorf("Factorize(%d) = %v, product = %d", n, factors, product)
		}
	}
}

func TestFactorizeTwosFirst(t *testing.T) {
	factors := Factorize(24)
	sawNonTwo := false
	for _, f := range factors {
		if f != 2 {
			sawNonTwo = true
			continue
		}
		if sawNonTwo {
			t.Fatalf("Factorize(24) = %v, a 2 appears after a non-2 factor", factors)
		}
	}
}

func TestLargestRemainingFactor(t *testing.T) {
	cases := map[int]int{
		60:  1,
		210: 7,
		211: 211,
		997: 997,
		32:  1,
	}
	for n, want := range cases {
		if got := LargestRemainingFactor(n); got != want {
			t.Errorf("LargestRemainingFactor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestClassifyLength(t *testing.T) {
	cases := map[int]Classification{
		1:   ClassSplitRadix,
		16:  ClassSplitRadix,
		60:  ClassMixedRadix,
		210: ClassMixedRadix,
		211: ClassBluestein,
		997: ClassBluestein,
	}
	for n, want := range cases {
		if got := ClassifyLength(n); got != want {
			t.Errorf("ClassifyLength(%d) = %v, want %v", n, got, want)
		}
	}
}
