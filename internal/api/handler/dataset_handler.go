package handler

import (
	"net/http"
	"strings"

	"sales-insights/internal/loader"
)

// UploadDataset creates a dataset from an uploaded CSV
// @Summary Upload a sales CSV
// @Description Parse a CSV of sales transactions and store it as a new dataset
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param name query string false "Dataset name (defaults to the file name)"
// @Success 200 {object} map[string]interface{} "Dataset created"
// @Failure 400 {object} map[string]interface{} "Unusable CSV"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [post]
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A CSV file upload named 'file' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, report, err := loader.ReadCSV(file)
	if err != nil {
		writeError(w, err)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = strings.TrimSuffix(header.Filename, ".csv")
	}

	ds, err := h.store.Create(name, header.Filename, records)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dataset uploaded successfully!",
		"dataset": ds,
		"parsed":  report.Parsed,
		"skipped": report.Skipped,
	})
}

// ListDatasets lists all datasets
// @Summary List datasets
// @Description Get all uploaded datasets with their metadata
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Datasets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"datasets": datasets,
		"count":    len(datasets),
	})
}

// GetDataset returns one dataset's metadata
// @Summary Get dataset
// @Description Retrieve metadata of a specific dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	ds, err := h.store.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// DeleteDataset removes a dataset and its records
// @Summary Delete dataset
// @Description Delete a dataset, its persisted records and its cache entry
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset deleted"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [delete]
func (h *Handler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(r, "")
	if !ok {
		http.Error(w, "Dataset ID is required", http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dataset deleted successfully",
		"id":      id,
	})
}
