package report

import "sort"

// Reducers over numeric projections of a group. None of them defend
// against empty input beyond what is documented: no group produced by
// GroupBy is ever empty, so a zero count only occurs on misuse and
// propagates as a non-finite value instead of aborting the batch.

// Sum returns the arithmetic total; an empty projection sums to 0.
func Sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}

// Median sorts ascending and picks the element at index len/2, the
// upper-median convention for even-length input.
func Median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// Average is Sum over count. A zero count divides by zero and yields
// NaN, which flows into the report rather than stopping the run.
func Average(vals []float64) float64 {
	return Sum(vals) / float64(len(vals))
}

// PctWhere returns the percentage of values satisfying pred.
func PctWhere(vals []float64, pred func(float64) bool) float64 {
	var n int
	for _, v := range vals {
		if pred(v) {
			n++
		}
	}
	return float64(n) / float64(len(vals)) * 100
}

// EfficiencyScore relates median savings to average delay. The score is
// unbounded in both sign and magnitude; a near-zero average delay pushes
// it toward infinity, which the reports carry as-is.
func EfficiencyScore(medianSavings, avgDelay float64) float64 {
	return medianSavings / avgDelay * 100
}

// ReliabilityIndex combines delay performance against the baseline with
// the savings-to-cost ratio, clamped to [0, 100]. The absolute value is
// taken before clamping, so two negative factors cancel and can make a
// heavily delayed, overrunning contractor score high.
func ReliabilityIndex(avgDelay, totalSavings, totalCost, delayBaselineDays float64) float64 {
	raw := (1 - avgDelay/delayBaselineDays) * (totalSavings / totalCost) * 100
	if raw < 0 {
		raw = -raw
	}
	return clamp(raw, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
