package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"sales-insights/internal/api/handler"
	"sales-insights/pkg/router"
)

// RegisterRoutes wires all dataset and query endpoints. More specific
// wildcard routes must come before the generic dataset route.
func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/datasets", h.UploadDataset)
	r.GET("/api/v1/datasets", h.ListDatasets)
	r.GET("/api/v1/datasets/*/query", h.QueryDataset)
	r.GET("/api/v1/datasets/*/dashboard", h.GetDashboard)
	r.GET("/api/v1/datasets/*/records", h.GetRecords)
	r.GET("/api/v1/datasets/*/export", h.ExportDataset)
	// Generic dataset routes last
	r.GET("/api/v1/datasets/*", h.GetDataset)
	r.DELETE("/api/v1/datasets/*", h.DeleteDataset)

	r.Mount("/swagger/", httpSwagger.WrapHandler)
}
