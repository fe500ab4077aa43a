package font

import "math"

// Number of discrete size variants generated for glyph size jitter.
// A handful of sizes spread over the configured range reads as organic
// as continuous sampling, while keeping glyph mask caches small.
const NumVariants = 5

// Returns the glyph pixel sizes used for size jitter: [NumVariants]
// sizes evenly distributed over [minMult, maxMult] multipliers of the
// base size, rounded, floored at 1px and deduplicated (small bases can
// collapse neighboring variants onto the same pixel size). The result
// always has at least one entry and is sorted ascending for ascending
// multiplier ranges.
func VariantSizes(baseSize int, minMult, maxMult float64) []int {
	if minMult == maxMult {
		return []int{scaledSize(baseSize, minMult)}
	}

	sizes := make([]int, 0, NumVariants)
	step := (maxMult - minMult)/float64(NumVariants - 1)
	for i := 0; i < NumVariants; i++ {
		size := scaledSize(baseSize, minMult + step*float64(i))
		if len(sizes) > 0 && sizes[len(sizes) - 1] == size { continue }
		sizes = append(sizes, size)
	}
	return sizes
}

func scaledSize(baseSize int, multiplier float64) int {
	size := int(math.Round(float64(baseSize)*multiplier))
	if size < 1 { return 1 }
	return size
}
