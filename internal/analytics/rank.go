package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
)

// TopN ranks groups by summed amount descending and keeps the first n
// (DefaultTopN when n <= 0). The stable sort breaks ties by first-seen
// order, keeping rankings deterministic.
func TopN(records []model.SalesRecord, dim Dimension, n int) *model.RankedTable {
	if n <= 0 {
		n = DefaultTopN
	}
	groups := groupTotals(records, dim)
	sortByRevenueDesc(groups)
	if len(groups) > n {
		groups = groups[:n]
	}

	rows := make([]model.RankedRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, model.RankedRow{
			Key:      g.Key,
			Revenue:  g.Revenue.InexactFloat64(),
			Orders:   g.orders(),
			Quantity: g.Quantity,
		})
	}
	return &model.RankedTable{Rows: rows, OrderedByDescending: true}
}

// Pareto ranks groups descending and tracks the running cumulative sum
// and cumulative percentage of the grand total. A zero grand total yields
// zero percentages rather than dividing by zero.
func Pareto(records []model.SalesRecord, dim Dimension) *model.RankedTable {
	groups := groupTotals(records, dim)
	sortByRevenueDesc(groups)

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Revenue)
	}

	hundred := decimal.NewFromInt(100)
	running := decimal.Zero
	rows := make([]model.RankedRow, 0, len(groups))
	for _, g := range groups {
		running = running.Add(g.Revenue)
		row := model.RankedRow{
			Key:               g.Key,
			Revenue:           g.Revenue.InexactFloat64(),
			CumulativeRevenue: running.InexactFloat64(),
		}
		if total.IsPositive() {
			row.CumulativePercent = running.Div(total).Mul(hundred).InexactFloat64()
		}
		rows = append(rows, row)
	}
	return &model.RankedTable{Rows: rows, OrderedByDescending: true}
}

func sortByRevenueDesc(groups []*groupTotal) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue.GreaterThan(groups[j].Revenue)
	})
}
