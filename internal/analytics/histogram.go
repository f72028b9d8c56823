package analytics

import (
	"sales-insights/internal/model"
)

// Histogram partitions amount into bins equal-width buckets spanning the
// min and max of the input (DefaultBins when bins <= 0). The last bucket
// is closed on the right so the maximum lands in it. Zero records yield
// empty edges and counts, not an error; identical amounts collapse to a
// single bucket.
func Histogram(records []model.SalesRecord, bins int) *model.Histogram {
	hist := &model.Histogram{BucketEdges: []float64{}, Counts: []int{}}
	if len(records) == 0 {
		return hist
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	min := records[0].Amount.InexactFloat64()
	max := min
	for _, rec := range records[1:] {
		v := rec.Amount.InexactFloat64()
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		hist.BucketEdges = []float64{min, max}
		hist.Counts = []int{len(records)}
		return hist
	}

	width := (max - min) / float64(bins)
	hist.BucketEdges = make([]float64, bins+1)
	for i := range hist.BucketEdges {
		hist.BucketEdges[i] = min + width*float64(i)
	}
	hist.BucketEdges[bins] = max // guard against float drift on the last edge

	hist.Counts = make([]int, bins)
	for _, rec := range records {
		idx := int((rec.Amount.InexactFloat64() - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		hist.Counts[idx]++
	}
	return hist
}
