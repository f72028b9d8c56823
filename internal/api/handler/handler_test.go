package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-insights/internal/analytics"
	"sales-insights/internal/model"
	"sales-insights/internal/store"
)

const sampleCSV = `date,amount,quantity,order_id,product_id,customer_id,region,rep,category,channel
2024-01-05,100,1,ord-1,widget,cust-1,East,alice,Hardware,web
2024-02-01,200,2,ord-2,gadget,cust-2,West,bob,Software,retail
2024-02-20,50,1,ord-3,widget,cust-1,East,alice,Hardware,web
`

func testHandler(t *testing.T) *Handler {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "handler_test.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, analytics.NewEngine(s), 32<<20)
}

func uploadCSV(t *testing.T, h *Handler, csvData string) string {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "sample.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.UploadDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Dataset model.Dataset `json:"dataset"`
		Parsed  int           `json:"parsed"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Dataset.ID)
	return resp.Dataset.ID
}

func TestUploadAndQueryKPIs(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id+"/query?aggregation=kpis", nil)
	rr := httptest.NewRecorder()
	h.QueryDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result model.AggregationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, model.KindKPIs, result.Kind)
	assert.Equal(t, 350.0, result.KPIs.TotalRevenue)
	assert.Equal(t, 3, result.KPIs.TotalOrders)
}

func TestQueryWithFilters(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/datasets/"+id+"/query?aggregation=groupByRegion&regions=East,All&date_from=2024-01-01&date_to=2024-02-28", nil)
	rr := httptest.NewRecorder()
	h.QueryDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result model.AggregationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, model.KindSeries, result.Kind)
	assert.Equal(t, []string{"East"}, result.Series.Labels)
	assert.Equal(t, []float64{150}, result.Series.Values)
}

func TestQueryUnknownAggregationIs400(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id+"/query?aggregation=doesNotExist", nil)
	rr := httptest.NewRecorder()
	h.QueryDataset(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQueryInvalidDateRangeIs400(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/datasets/"+id+"/query?aggregation=kpis&date_from=2024-06-01&date_to=2024-01-01", nil)
	rr := httptest.NewRecorder()
	h.QueryDataset(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQueryMissingDatasetIs404(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/no-such-id/query?aggregation=kpis", nil)
	rr := httptest.NewRecorder()
	h.QueryDataset(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUploadRejectsUnusableCSV(t *testing.T) {
	h := testHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "junk.csv")
	require.NoError(t, err)
	part.Write([]byte("color,shape\nred,circle\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.UploadDataset(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDashboardBundle(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id+"/dashboard", nil)
	rr := httptest.NewRecorder()
	h.GetDashboard(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var panels map[string]model.AggregationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &panels))
	for _, name := range dashboardPanels {
		assert.Contains(t, panels, name)
	}
	assert.Equal(t, 350.0, panels[analytics.AggKPIs].KPIs.TotalRevenue)
	assert.Equal(t, model.KindSeries, panels[analytics.AggSalesOverTime].Kind)
}

func TestGetRecordsPaging(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id+"/records?limit=2&offset=2", nil)
	rr := httptest.NewRecorder()
	h.GetRecords(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result model.AggregationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Equal(t, model.KindPage, result.Kind)
	assert.Equal(t, 3, result.Page.TotalRecords)
	assert.Equal(t, 1, result.Page.ReturnedRecords)
}

func TestExportFilteredCSV(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id+"/export?regions=East", nil)
	rr := httptest.NewRecorder()
	h.ExportDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")

	body := rr.Body.String()
	assert.Contains(t, body, "ord-1")
	assert.Contains(t, body, "ord-3")
	assert.NotContains(t, body, "ord-2")
}

func TestDatasetLifecycle(t *testing.T) {
	h := testHandler(t)
	id := uploadCSV(t, h, sampleCSV)

	// List includes the new dataset.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil)
	rr := httptest.NewRecorder()
	h.ListDatasets(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), id)

	// Get returns metadata.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id, nil)
	rr = httptest.NewRecorder()
	h.GetDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var ds model.Dataset
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ds))
	assert.Equal(t, 3, ds.TotalRecords)

	// Delete, then the dataset is gone.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/datasets/"+id, nil)
	rr = httptest.NewRecorder()
	h.DeleteDataset(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+id, nil)
	rr = httptest.NewRecorder()
	h.GetDataset(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
