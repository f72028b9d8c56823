package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one flat sales transaction. Records are immutable once
// loaded; the store owns a read-only ordered sequence of them for the
// lifetime of a dataset.
type SalesRecord struct {
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   int             `json:"quantity"`
	OrderID    string          `json:"orderId,omitempty"`
	ProductID  string          `json:"productId"`
	CustomerID string          `json:"customerId"`
	Region     string          `json:"region"`
	Rep        string          `json:"rep"`
	Category   string          `json:"category"`
	Channel    string          `json:"channel"`
}

// Dataset describes one uploaded record set.
type Dataset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Filename     string    `json:"filename"`
	TotalRecords int       `json:"totalRecords"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
