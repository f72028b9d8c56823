package analytics

import (
	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
)

// Dimension selects the grouping key of a record.
type Dimension func(model.SalesRecord) string

var (
	ByRegion   Dimension = func(r model.SalesRecord) string { return r.Region }
	ByCategory Dimension = func(r model.SalesRecord) string { return r.Category }
	ByChannel  Dimension = func(r model.SalesRecord) string { return r.Channel }
	ByRep      Dimension = func(r model.SalesRecord) string { return r.Rep }
	ByProduct  Dimension = func(r model.SalesRecord) string { return r.ProductID }
	ByCustomer Dimension = func(r model.SalesRecord) string { return r.CustomerID }
)

// groupTotal accumulates per-group running totals.
type groupTotal struct {
	Key      string
	Revenue  decimal.Decimal
	Quantity int
	Records  int
	OrderIDs map[string]struct{}
}

func (g *groupTotal) orders() int {
	if len(g.OrderIDs) == 0 {
		return g.Records
	}
	return len(g.OrderIDs)
}

// groupTotals folds records into one total per group key, in first-seen
// order.
func groupTotals(records []model.SalesRecord, dim Dimension) []*groupTotal {
	index := make(map[string]*groupTotal)
	order := make([]*groupTotal, 0)
	for _, rec := range records {
		key := dim(rec)
		g, ok := index[key]
		if !ok {
			g = &groupTotal{Key: key, Revenue: decimal.Zero, OrderIDs: make(map[string]struct{})}
			index[key] = g
			order = append(order, g)
		}
		g.Revenue = g.Revenue.Add(rec.Amount)
		g.Quantity += rec.Quantity
		g.Records++
		if rec.OrderID != "" {
			g.OrderIDs[rec.OrderID] = struct{}{}
		}
	}
	return order
}

// GroupSum sums amount per group of dim. Overview breakdowns keep
// first-seen group order, so a stable upload always produces the same
// chart.
func GroupSum(records []model.SalesRecord, dim Dimension) *model.GroupedSeries {
	groups := groupTotals(records, dim)
	series := &model.GroupedSeries{
		Labels: make([]string, 0, len(groups)),
		Values: make([]float64, 0, len(groups)),
	}
	for _, g := range groups {
		series.Labels = append(series.Labels, g.Key)
		series.Values = append(series.Values, g.Revenue.InexactFloat64())
	}
	return series
}
