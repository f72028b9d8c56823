package analytics

import (
	"errors"
	"fmt"

	"sales-insights/internal/model"
)

// ErrUnsupportedAggregation is returned by Run for names outside the
// supported set.
var ErrUnsupportedAggregation = errors.New("unsupported aggregation")

// Defaults applied when a Query leaves the knob unset.
const (
	DefaultTopN  = 10
	DefaultBins  = 20
	DefaultLimit = 100
)

// Aggregation names accepted by Run.
const (
	AggKPIs            = "kpis"
	AggGroupByRegion   = "groupByRegion"
	AggGroupByCategory = "groupByCategory"
	AggGroupByChannel  = "groupByChannel"
	AggSalesOverTime   = "salesOverTime"
	AggTopSalespeople  = "topSalespeople"
	AggTopProducts     = "topProducts"
	AggTopCustomers    = "topCustomers"
	AggHistogram       = "histogram"
	AggPareto          = "pareto"
	AggRawPage         = "rawPage"
)

// Query names one aggregation over one filtered view of a dataset.
type Query struct {
	Aggregation    string
	Filter         model.FilterSpec
	Bucket         string   // salesOverTime: day or month
	TopN           int      // top* rankings
	Bins           int      // histogram
	Limit          int      // rawPage
	Offset         int      // rawPage
	ConversionRate *float64 // kpis: externally measured ratio
}

// Run validates q.Filter, applies it to records and reduces the survivors
// with the named aggregation. It is a pure function of its inputs:
// identical calls produce identical results, and an empty filtered set
// produces a well-formed zero-valued result.
func Run(records []model.SalesRecord, q Query) (model.AggregationResult, error) {
	if err := q.Filter.Validate(); err != nil {
		return model.AggregationResult{}, err
	}
	filtered := Apply(records, q.Filter)

	switch q.Aggregation {
	case AggKPIs:
		return model.AggregationResult{Kind: model.KindKPIs, KPIs: ComputeKPIs(filtered, q.ConversionRate)}, nil
	case AggGroupByRegion:
		return seriesResult(GroupSum(filtered, ByRegion)), nil
	case AggGroupByCategory:
		return seriesResult(GroupSum(filtered, ByCategory)), nil
	case AggGroupByChannel:
		return seriesResult(GroupSum(filtered, ByChannel)), nil
	case AggSalesOverTime:
		return seriesResult(SalesOverTime(filtered, q.Bucket)), nil
	case AggTopSalespeople:
		return tableResult(TopN(filtered, ByRep, q.TopN)), nil
	case AggTopProducts:
		return tableResult(TopN(filtered, ByProduct, q.TopN)), nil
	case AggTopCustomers:
		return tableResult(TopN(filtered, ByCustomer, q.TopN)), nil
	case AggHistogram:
		return model.AggregationResult{Kind: model.KindHistogram, Histogram: Histogram(filtered, q.Bins)}, nil
	case AggPareto:
		return tableResult(Pareto(filtered, ByProduct)), nil
	case AggRawPage:
		return model.AggregationResult{Kind: model.KindPage, Page: Page(filtered, q.Limit, q.Offset)}, nil
	default:
		return model.AggregationResult{}, fmt.Errorf("%w: %q", ErrUnsupportedAggregation, q.Aggregation)
	}
}

// Page slices the filtered records for table views. Offsets past the end
// return an empty page carrying the true total so a paging UI can clamp.
func Page(records []model.SalesRecord, limit, offset int) *model.RecordPage {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	total := len(records)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := make([]model.SalesRecord, end-start)
	copy(page, records[start:end])
	return &model.RecordPage{
		Records:         page,
		TotalRecords:    total,
		ReturnedRecords: len(page),
		Limit:           limit,
		Offset:          offset,
	}
}

func seriesResult(s *model.GroupedSeries) model.AggregationResult {
	return model.AggregationResult{Kind: model.KindSeries, Series: s}
}

func tableResult(t *model.RankedTable) model.AggregationResult {
	return model.AggregationResult{Kind: model.KindTable, Table: t}
}
