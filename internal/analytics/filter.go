package analytics

import (
	"time"

	"sales-insights/internal/model"
)

// Matches reports whether rec satisfies every constraint present in spec.
// Date bounds are inclusive and compared on the calendar day; identifier
// sets use exact equality, with an empty set matching everything.
func Matches(rec model.SalesRecord, spec model.FilterSpec) bool {
	if spec.DateFrom != nil && dateOnly(rec.Date).Before(dateOnly(*spec.DateFrom)) {
		return false
	}
	if spec.DateTo != nil && dateOnly(rec.Date).After(dateOnly(*spec.DateTo)) {
		return false
	}
	if !inSet(rec.Region, spec.Regions) {
		return false
	}
	if !inSet(rec.Rep, spec.Reps) {
		return false
	}
	if !inSet(rec.Category, spec.Categories) {
		return false
	}
	return true
}

// Apply returns the records matching spec, preserving input order. The
// source slice is never mutated.
func Apply(records []model.SalesRecord, spec model.FilterSpec) []model.SalesRecord {
	filtered := make([]model.SalesRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, spec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func inSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
