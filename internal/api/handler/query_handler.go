package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sales-insights/internal/analytics"
	"sales-insights/internal/model"
	"sales-insights/pkg/utils"
)

// QueryDataset runs one named aggregation over a filtered dataset
// @Summary Query a dataset
// @Description Run an aggregation (kpis, groupByRegion, groupByCategory, groupByChannel, salesOverTime, topSalespeople, topProducts, topCustomers, histogram, pareto, rawPage) over the filtered records
// @Tags queries
// @Produce json
// @Param id path string true "Dataset ID"
// @Param aggregation query string true "Aggregation name"
// @Param date_from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param regions query string false "Comma-separated regions"
// @Param reps query string false "Comma-separated sales reps"
// @Param categories query string false "Comma-separated categories"
// @Param bucket query string false "Time bucket for salesOverTime: day or month"
// @Param top_n query int false "Rows for top-N rankings"
// @Param bins query int false "Bucket count for histogram"
// @Param limit query int false "Page size for rawPage"
// @Param offset query int false "Page offset for rawPage"
// @Success 200 {object} model.AggregationResult "Aggregation result"
// @Failure 400 {object} map[string]interface{} "Unknown aggregation or invalid filter"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/query [get]
func (h *Handler) QueryDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "/query")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	q, err := parseQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}

	result, err := h.engine.Query(id, q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// dashboardPanels is the fixed bundle behind the overview dashboard.
var dashboardPanels = []string{
	analytics.AggKPIs,
	analytics.AggGroupByRegion,
	analytics.AggGroupByCategory,
	analytics.AggGroupByChannel,
	analytics.AggSalesOverTime,
	analytics.AggTopProducts,
	analytics.AggTopSalespeople,
}

// GetDashboard returns the standard dashboard bundle in one call
// @Summary Dashboard bundle
// @Description Run the fixed set of overview aggregations over one filtered view
// @Tags queries
// @Produce json
// @Param id path string true "Dataset ID"
// @Param date_from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param regions query string false "Comma-separated regions"
// @Param reps query string false "Comma-separated sales reps"
// @Param categories query string false "Comma-separated categories"
// @Success 200 {object} map[string]model.AggregationResult "Panels keyed by aggregation name"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "/dashboard")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	q, err := parseQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}

	panels := make(map[string]model.AggregationResult, len(dashboardPanels))
	for _, name := range dashboardPanels {
		q.Aggregation = name
		result, err := h.engine.Query(id, q)
		if err != nil {
			writeError(w, err)
			return
		}
		panels[name] = result
	}
	writeJSON(w, http.StatusOK, panels)
}

// GetRecords pages through the filtered, unaggregated records
// @Summary Page raw records
// @Description Return one page of filtered records with paging totals
// @Tags queries
// @Produce json
// @Param id path string true "Dataset ID"
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} model.AggregationResult "Record page"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/records [get]
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "/records")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	q, err := parseQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	q.Aggregation = analytics.AggRawPage

	result, err := h.engine.Query(id, q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ExportDataset downloads the filtered records as a CSV attachment
// @Summary Export filtered records
// @Description Stream the filtered records of a dataset as a CSV download
// @Tags queries
// @Produce text/csv
// @Param id path string true "Dataset ID"
// @Param date_from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param regions query string false "Comma-separated regions"
// @Param reps query string false "Comma-separated sales reps"
// @Param categories query string false "Comma-separated categories"
// @Success 200 {file} file "CSV download"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/export [get]
func (h *Handler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "/export")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	q, err := parseQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	if err := q.Filter.Validate(); err != nil {
		writeError(w, err)
		return
	}

	records, err := h.store.Records(id)
	if err != nil {
		writeError(w, err)
		return
	}
	filtered := analytics.Apply(records, q.Filter)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+"_filtered.csv"))
	w.Header().Set("Content-Type", "text/csv")

	cw := csv.NewWriter(w)
	cw.Write([]string{"date", "amount", "quantity", "order_id", "product_id", "customer_id", "region", "rep", "category", "channel"})
	for _, rec := range filtered {
		cw.Write([]string{
			rec.Date.Format("2006-01-02"),
			rec.Amount.String(),
			strconv.Itoa(rec.Quantity),
			rec.OrderID,
			rec.ProductID,
			rec.CustomerID,
			rec.Region,
			rec.Rep,
			rec.Category,
			rec.Channel,
		})
	}
	cw.Flush()
}

// parseQuery decodes the shared filter and option parameters. Date parse
// failures are caller errors; range validation happens in the façade.
func parseQuery(values url.Values) (analytics.Query, error) {
	q := analytics.Query{
		Aggregation: values.Get("aggregation"),
		Bucket:      values.Get("bucket"),
		TopN:        utils.AtoiDefault(values.Get("top_n"), 0),
		Bins:        utils.AtoiDefault(values.Get("bins"), 0),
		Limit:       utils.AtoiDefault(values.Get("limit"), 0),
		Offset:      utils.AtoiDefault(values.Get("offset"), 0),
	}

	spec := model.FilterSpec{
		Regions:    splitParam(values, "regions"),
		Reps:       splitParam(values, "reps"),
		Categories: splitParam(values, "categories"),
	}
	if v := values.Get("date_from"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			return q, fmt.Errorf("invalid date_from: %w", err)
		}
		spec.DateFrom = &t
	}
	if v := values.Get("date_to"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			return q, fmt.Errorf("invalid date_to: %w", err)
		}
		spec.DateTo = &t
	}
	q.Filter = spec

	if v := values.Get("conversion_rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("invalid conversion_rate: %w", err)
		}
		q.ConversionRate = &rate
	}
	return q, nil
}

// splitParam accepts both repeated query params and comma-separated
// values for the set filters.
func splitParam(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		out = append(out, utils.SplitList(v)...)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
