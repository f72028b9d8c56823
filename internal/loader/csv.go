package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
	"sales-insights/pkg/utils"
)

// Loader error kinds. These are caller errors about the uploaded file,
// never conflated with aggregation errors.
var (
	ErrUnusableHeader = errors.New("csv header has no amount column")
	ErrNoParsableRows = errors.New("csv contains no parsable rows")
)

// columnAliases maps each canonical field to the loose header names seen
// in real exports.
var columnAliases = map[string][]string{
	"date":        {"date", "order_date", "order date", "orderdate"},
	"amount":      {"amount", "revenue", "sales", "total"},
	"quantity":    {"quantity", "units", "qty"},
	"order_id":    {"order_id", "order id", "orderid"},
	"product_id":  {"product_id", "product id", "product_name", "product name", "product"},
	"customer_id": {"customer_id", "customer id", "customer"},
	"region":      {"region"},
	"rep":         {"rep", "salesperson", "sales_rep", "sales rep"},
	"category":    {"category"},
	"channel":     {"channel"},
}

// syntheticDateStart seeds row dates for files without any date column,
// one day per row, so time-bucketed charts still render.
var syntheticDateStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Report summarizes one load.
type Report struct {
	Parsed  int `json:"parsed"`
	Skipped int `json:"skipped"`
}

// ReadCSV decodes a CSV stream into sales records. Header names are
// case-insensitive and may use any known alias. Rows with an unparsable
// date, amount or negative quantity are counted in Report.Skipped rather
// than failing the whole upload; a file with no amount column at all is
// rejected with ErrUnusableHeader.
func ReadCSV(r io.Reader) ([]model.SalesRecord, Report, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := mapColumns(header)
	if _, ok := cols["amount"]; !ok {
		return nil, Report{}, ErrUnusableHeader
	}
	_, hasDate := cols["date"]

	var report Report
	records := make([]model.SalesRecord, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Skipped++
			continue
		}
		rec, ok := parseRow(row, cols)
		if !ok {
			report.Skipped++
			continue
		}
		records = append(records, rec)
	}

	if !hasDate {
		for i := range records {
			records[i].Date = syntheticDateStart.AddDate(0, 0, i)
		}
	}

	report.Parsed = len(records)
	if report.Parsed == 0 && report.Skipped > 0 {
		return nil, report, fmt.Errorf("%w: %d rows skipped", ErrNoParsableRows, report.Skipped)
	}
	return records, report, nil
}

// mapColumns resolves header cells to canonical field indexes. The first
// alias match wins.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		clean := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
		for canon, aliases := range columnAliases {
			if _, taken := cols[canon]; taken {
				continue
			}
			for _, alias := range aliases {
				if clean == alias {
					cols[canon] = i
					break
				}
			}
		}
	}
	return cols
}

func parseRow(row []string, cols map[string]int) (model.SalesRecord, bool) {
	var rec model.SalesRecord

	amount, err := parseAmount(cell(row, cols, "amount"))
	if err != nil {
		return rec, false
	}
	rec.Amount = amount

	if _, ok := cols["date"]; ok {
		d, err := utils.ParseDate(cell(row, cols, "date"))
		if err != nil {
			return rec, false
		}
		rec.Date = d
	}

	if v := strings.TrimSpace(cell(row, cols, "quantity")); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 0 {
			return rec, false
		}
		rec.Quantity = q
	}

	rec.OrderID = strings.TrimSpace(cell(row, cols, "order_id"))
	rec.ProductID = categorical(cell(row, cols, "product_id"))
	rec.CustomerID = categorical(cell(row, cols, "customer_id"))
	rec.Region = categorical(cell(row, cols, "region"))
	rec.Rep = categorical(cell(row, cols, "rep"))
	rec.Category = categorical(cell(row, cols, "category"))
	rec.Channel = categorical(cell(row, cols, "channel"))
	return rec, true
}

func cell(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount accepts plain decimals plus the currency formatting common
// in exports ($ signs, thousands separators).
func parseAmount(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, "$", "")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(v)
}

// categorical fills missing dimension values the way the dashboards
// expect, so filters and group-bys never see empty keys.
func categorical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "Unknown"
	}
	return v
}
