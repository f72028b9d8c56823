package analytics

import (
	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
)

// ComputeKPIs reduces records to the dashboard scalars. Revenue is summed
// with exact decimal arithmetic and only converted to float64 at the
// boundary. An empty input yields zeros, never NaN.
func ComputeKPIs(records []model.SalesRecord, conversionRate *float64) *model.KPISet {
	revenue := decimal.Zero
	for _, rec := range records {
		revenue = revenue.Add(rec.Amount)
	}
	orders := DistinctOrders(records)

	kpis := &model.KPISet{
		TotalRevenue:   revenue.InexactFloat64(),
		TotalOrders:    orders,
		ConversionRate: conversionRate,
	}
	if orders > 0 {
		kpis.AvgOrderValue = revenue.Div(decimal.NewFromInt(int64(orders))).InexactFloat64()
	}
	return kpis
}

// DistinctOrders counts distinct non-empty order ids. Data sets without
// an order key fall back to the raw record count.
func DistinctOrders(records []model.SalesRecord) int {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.OrderID != "" {
			seen[rec.OrderID] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return len(records)
	}
	return len(seen)
}
