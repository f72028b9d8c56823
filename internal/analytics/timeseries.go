package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
)

// Bucket granularities accepted by SalesOverTime.
const (
	BucketDay   = "day"
	BucketMonth = "month"
)

// SalesOverTime sums amount per calendar bucket and emits the buckets in
// chronological order. Buckets with no records are omitted rather than
// zero-filled. An unknown bucket name falls back to monthly.
func SalesOverTime(records []model.SalesRecord, bucket string) *model.GroupedSeries {
	layout := "2006-01"
	truncate := monthStart
	if bucket == BucketDay {
		layout = "2006-01-02"
		truncate = dateOnly
	}

	totals := make(map[time.Time]decimal.Decimal)
	keys := make([]time.Time, 0)
	for _, rec := range records {
		k := truncate(rec.Date)
		if _, ok := totals[k]; !ok {
			keys = append(keys, k)
		}
		totals[k] = totals[k].Add(rec.Amount)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	series := &model.GroupedSeries{
		Labels: make([]string, 0, len(keys)),
		Values: make([]float64, 0, len(keys)),
	}
	for _, k := range keys {
		series.Labels = append(series.Labels, k.Format(layout))
		series.Values = append(series.Values, totals[k].InexactFloat64())
	}
	return series
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
