package main

import (
	"log"

	"github.com/rs/cors"

	_ "sales-insights/docs"
	"sales-insights/internal/analytics"
	"sales-insights/internal/api"
	"sales-insights/internal/api/handler"
	"sales-insights/internal/config"
	"sales-insights/internal/store"
	"sales-insights/pkg/router"
)

// @title Sales Insights API
// @version 1.0
// @description CSV upload and filterable sales aggregation service.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open dataset store: %v", err)
	}
	defer st.Close()

	engine := analytics.NewEngine(st)
	h := handler.New(st, engine, cfg.MaxUploadBytes)

	r := router.New()
	api.RegisterRoutes(r, h)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	})
	r.Use(c.Handler)

	r.Start(cfg.Addr)
}
