package model

// ResultKind names the payload shape carried by an AggregationResult.
type ResultKind string

const (
	KindKPIs      ResultKind = "kpis"
	KindSeries    ResultKind = "series"
	KindTable     ResultKind = "table"
	KindHistogram ResultKind = "histogram"
	KindPage      ResultKind = "page"
)

// AggregationResult is a tagged variant: Kind selects exactly one of the
// payload fields, the rest stay nil. Callers get a closed set of shapes
// instead of ad hoc per-endpoint JSON.
type AggregationResult struct {
	Kind      ResultKind     `json:"kind"`
	KPIs      *KPISet        `json:"kpis,omitempty"`
	Series    *GroupedSeries `json:"series,omitempty"`
	Table     *RankedTable   `json:"table,omitempty"`
	Histogram *Histogram     `json:"histogram,omitempty"`
	Page      *RecordPage    `json:"page,omitempty"`
}

// KPISet holds the dashboard scalar metrics. ConversionRate cannot be
// derived from sales records alone, so it is only present when supplied
// by the caller.
type KPISet struct {
	TotalRevenue   float64  `json:"totalRevenue"`
	TotalOrders    int      `json:"totalOrders"`
	AvgOrderValue  float64  `json:"avgOrderValue"`
	ConversionRate *float64 `json:"conversionRate,omitempty"`
}

// GroupedSeries is a chart-ready pairing of group labels and summed values.
type GroupedSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// RankedRow is one row of a ranked breakdown. Orders and Quantity are set
// by the top-N rankings; the cumulative fields by the pareto breakdown.
type RankedRow struct {
	Key               string  `json:"key"`
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders,omitempty"`
	Quantity          int     `json:"quantity,omitempty"`
	CumulativeRevenue float64 `json:"cumulativeRevenue,omitempty"`
	CumulativePercent float64 `json:"cumulativePercent,omitempty"`
}

// RankedTable is a ranked breakdown of groups.
type RankedTable struct {
	Rows                []RankedRow `json:"rows"`
	OrderedByDescending bool        `json:"orderedByDescending"`
}

// Histogram counts records per equal-width amount bucket. Edges has one
// more entry than Counts; both are empty for an empty input.
type Histogram struct {
	BucketEdges []float64 `json:"bucketEdges"`
	Counts      []int     `json:"counts"`
}

// RecordPage is one page of filtered, unaggregated records together with
// the totals a caller needs to build paging controls.
type RecordPage struct {
	Records         []SalesRecord `json:"records"`
	TotalRecords    int           `json:"totalRecords"`
	ReturnedRecords int           `json:"returnedRecords"`
	Limit           int           `json:"limit"`
	Offset          int           `json:"offset"`
}
