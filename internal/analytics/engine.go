package analytics

import (
	"sales-insights/internal/model"
	"sales-insights/internal/store"
)

// Engine binds the aggregation façade to a dataset store. Each query
// reads an immutable record snapshot, so concurrent queries against the
// same dataset need no coordination.
type Engine struct {
	store *store.DatasetStore
}

// NewEngine returns an Engine backed by s.
func NewEngine(s *store.DatasetStore) *Engine {
	return &Engine{store: s}
}

// Query runs q against the named dataset's record snapshot.
func (e *Engine) Query(datasetID string, q Query) (model.AggregationResult, error) {
	records, err := e.store.Records(datasetID)
	if err != nil {
		return model.AggregationResult{}, err
	}
	return Run(records, q)
}
