package font

import "testing"

func TestVariantSizes(t *testing.T) {
	tests := []struct {
		base int
		minMult, maxMult float64
		out []int
	}{
		{25, 0.6, 1.4, []int{15, 20, 25, 30, 35}},
		{25, 1.0, 1.0, []int{25}},
		{10, 0.6, 1.4, []int{6, 8, 10, 12, 14}},
		{2, 0.6, 1.4, []int{1, 2, 3}},  // rounding collapses variants
		{1, 0.6, 1.4, []int{1}},        // never below 1px
	}

	for i, test := range tests {
		out := VariantSizes(test.base, test.minMult, test.maxMult)
		if len(out) != len(test.out) {
			str := "test #%d: expected sizes %v, but got %v"
			t.Fatalf(str, i, test.out, out)
		}
		for j := range out {
			if out[j] != test.out[j] {
				str := "test #%d: expected sizes %v, but got %v"
				t.Fatalf(str, i, test.out, out)
			}
		}
	}
}

func TestCandidatesNonEmpty(t *testing.T) {
	candidates := Candidates()
	if len(candidates) == 0 {
		t.Fatal("no font candidates for this platform")
	}
	for i, candidate := range candidates {
		if candidate.Path == "" {
			t.Fatalf("candidate #%d has an empty path", i)
		}
	}
}
