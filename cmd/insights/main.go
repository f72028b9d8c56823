package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"sales-insights/internal/analytics"
	"sales-insights/internal/loader"
	"sales-insights/internal/model"
	"sales-insights/pkg/utils"
)

// insights is the offline companion to the API server: load a CSV, apply
// the same filters as the dashboard and print a quick report.
func main() {
	file := flag.String("file", "", "path to a sales CSV (required)")
	from := flag.String("from", "", "start date (YYYY-MM-DD, inclusive)")
	to := flag.String("to", "", "end date (YYYY-MM-DD, inclusive)")
	regions := flag.String("regions", "", "comma-separated region filter")
	reps := flag.String("reps", "", "comma-separated sales rep filter")
	categories := flag.String("categories", "", "comma-separated category filter")
	topN := flag.Int("top", analytics.DefaultTopN, "rows in the top-products table")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	records, report, err := loader.ReadCSV(f)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *file, err)
	}
	log.Printf("Loaded %d records (%d skipped) from %s", report.Parsed, report.Skipped, *file)

	spec := model.FilterSpec{
		Regions:    utils.SplitList(*regions),
		Reps:       utils.SplitList(*reps),
		Categories: utils.SplitList(*categories),
	}
	if *from != "" {
		t, err := utils.ParseDate(*from)
		if err != nil {
			log.Fatalf("Invalid -from: %v", err)
		}
		spec.DateFrom = &t
	}
	if *to != "" {
		t, err := utils.ParseDate(*to)
		if err != nil {
			log.Fatalf("Invalid -to: %v", err)
		}
		spec.DateTo = &t
	}

	kpiResult, err := analytics.Run(records, analytics.Query{Aggregation: analytics.AggKPIs, Filter: spec})
	if err != nil {
		log.Fatalf("KPI aggregation failed: %v", err)
	}
	kpis := kpiResult.KPIs
	fmt.Printf("\nTotal revenue:   %.2f\n", kpis.TotalRevenue)
	fmt.Printf("Total orders:    %d\n", kpis.TotalOrders)
	fmt.Printf("Avg order value: %.2f\n", kpis.AvgOrderValue)

	topResult, err := analytics.Run(records, analytics.Query{
		Aggregation: analytics.AggTopProducts,
		Filter:      spec,
		TopN:        *topN,
	})
	if err != nil {
		log.Fatalf("Top-products aggregation failed: %v", err)
	}
	fmt.Printf("\nTop %d products by revenue:\n", *topN)
	for i, row := range topResult.Table.Rows {
		fmt.Printf("%2d. %-30s %12.2f  (%d orders, %d units)\n",
			i+1, row.Key, row.Revenue, row.Orders, row.Quantity)
	}
}
