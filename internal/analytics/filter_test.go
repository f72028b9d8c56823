package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-insights/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func rec(date time.Time, amount string, region, rep, category string) model.SalesRecord {
	return model.SalesRecord{
		Date:     date,
		Amount:   decimal.RequireFromString(amount),
		Quantity: 1,
		Region:   region,
		Rep:      rep,
		Category: category,
	}
}

func sampleRecords() []model.SalesRecord {
	return []model.SalesRecord{
		rec(day(2024, 1, 5), "100", "East", "alice", "Hardware"),
		rec(day(2024, 1, 20), "250.50", "West", "bob", "Software"),
		rec(day(2024, 2, 3), "75", "East", "carol", "Hardware"),
		rec(day(2024, 3, 14), "500", "North", "alice", "Services"),
	}
}

func TestMatchesDateBoundsInclusive(t *testing.T) {
	r := rec(day(2024, 1, 15), "10", "East", "alice", "Hardware")

	assert.True(t, Matches(r, model.FilterSpec{
		DateFrom: datePtr(day(2024, 1, 15)),
		DateTo:   datePtr(day(2024, 1, 15)),
	}))
	assert.False(t, Matches(r, model.FilterSpec{DateFrom: datePtr(day(2024, 1, 16))}))
	assert.False(t, Matches(r, model.FilterSpec{DateTo: datePtr(day(2024, 1, 14))}))
	assert.True(t, Matches(r, model.FilterSpec{DateFrom: datePtr(day(2024, 1, 1))}))
}

func TestMatchesEmptySetsAreUnconstrained(t *testing.T) {
	r := rec(day(2024, 1, 15), "10", "East", "alice", "Hardware")
	assert.True(t, Matches(r, model.FilterSpec{}))
}

func TestMatchesIsConjunction(t *testing.T) {
	r := rec(day(2024, 1, 15), "10", "East", "alice", "Hardware")

	assert.True(t, Matches(r, model.FilterSpec{
		Regions: []string{"East"},
		Reps:    []string{"alice", "bob"},
	}))
	// One failing constraint rejects the record even when others match.
	assert.False(t, Matches(r, model.FilterSpec{
		Regions: []string{"East"},
		Reps:    []string{"bob"},
	}))
}

func TestApplyPreservesOrderAndSource(t *testing.T) {
	records := sampleRecords()
	filtered := Apply(records, model.FilterSpec{Regions: []string{"East", "North"}})

	require.Len(t, filtered, 3)
	assert.Equal(t, "alice", filtered[0].Rep)
	assert.Equal(t, "carol", filtered[1].Rep)
	assert.Equal(t, "alice", filtered[2].Rep)
	// Source slice untouched.
	assert.Len(t, records, 4)
	assert.Equal(t, "West", records[1].Region)
}

func TestApplyEverySurvivorMatches(t *testing.T) {
	records := sampleRecords()
	specs := []model.FilterSpec{
		{},
		{Regions: []string{"East"}},
		{DateFrom: datePtr(day(2024, 1, 10)), DateTo: datePtr(day(2024, 2, 28))},
		{Regions: []string{"East"}, Reps: []string{"alice"}, Categories: []string{"Hardware"}},
		{Regions: []string{"Nowhere"}},
	}
	for _, spec := range specs {
		filtered := Apply(records, spec)
		assert.LessOrEqual(t, len(filtered), len(records))
		for _, r := range filtered {
			assert.True(t, Matches(r, spec))
		}
	}
}

func TestApplyEmptyResultIsValid(t *testing.T) {
	filtered := Apply(sampleRecords(), model.FilterSpec{Regions: []string{"Nowhere"}})
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	spec := model.FilterSpec{
		DateFrom: datePtr(day(2024, 3, 1)),
		DateTo:   datePtr(day(2024, 1, 1)),
	}
	assert.ErrorIs(t, spec.Validate(), model.ErrInvalidFilterSpec)
	assert.NoError(t, model.FilterSpec{}.Validate())
}
