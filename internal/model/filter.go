package model

import (
	"errors"
	"time"
)

// ErrInvalidFilterSpec is returned when a filter's date range is inverted.
var ErrInvalidFilterSpec = errors.New("invalid filter spec: date_from is after date_to")

// FilterSpec is a conjunction of optional constraints. A nil bound or an
// empty set leaves that dimension unconstrained ("All").
type FilterSpec struct {
	DateFrom   *time.Time `json:"dateFrom,omitempty"`
	DateTo     *time.Time `json:"dateTo,omitempty"`
	Regions    []string   `json:"regions,omitempty"`
	Reps       []string   `json:"reps,omitempty"`
	Categories []string   `json:"categories,omitempty"`
}

// Validate rejects specs whose date bounds cannot match any record.
func (f FilterSpec) Validate() error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return ErrInvalidFilterSpec
	}
	return nil
}
