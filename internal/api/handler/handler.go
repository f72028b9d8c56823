package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sales-insights/internal/analytics"
	"sales-insights/internal/loader"
	"sales-insights/internal/model"
	"sales-insights/internal/store"
)

// Handler carries the injected dependencies shared by all endpoints.
type Handler struct {
	store          *store.DatasetStore
	engine         *analytics.Engine
	maxUploadBytes int64
}

// New builds a Handler around the dataset store and aggregation engine.
func New(s *store.DatasetStore, e *analytics.Engine, maxUploadBytes int64) *Handler {
	return &Handler{store: s, engine: e, maxUploadBytes: maxUploadBytes}
}

// datasetID extracts the dataset id between prefix and suffix of the URL
// path. suffix may be empty for the generic dataset routes.
func datasetID(r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/datasets/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}
	id := path[len(prefix) : len(path)-len(suffix)]
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses: caller errors
// (bad filter, unknown aggregation, unusable upload) are 4xx, missing
// datasets 404, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrDatasetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, analytics.ErrUnsupportedAggregation),
		errors.Is(err, model.ErrInvalidFilterSpec),
		errors.Is(err, loader.ErrUnusableHeader),
		errors.Is(err, loader.ErrNoParsableRows):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
