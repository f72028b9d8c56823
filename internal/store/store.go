package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"sales-insights/internal/model"
)

// ErrDatasetNotFound is returned for unknown dataset ids. It is a store
// error, distinct from the aggregation error kinds.
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetStore persists uploaded datasets in sqlite and serves decoded
// records from an in-memory cache. Records are read-only after load;
// the write lock around load, reload and delete guarantees an in-flight
// aggregation never observes a half-loaded record set.
type DatasetStore struct {
	db    *sql.DB
	mu    sync.RWMutex
	cache map[string][]model.SalesRecord
}

// Open opens the sqlite database at dbPath, creating tables as needed.
func Open(dbPath string) (*DatasetStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DatasetStore{
		db:    db,
		cache: make(map[string][]model.SalesRecord),
	}, nil
}

func createTables(db *sql.DB) error {
	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT,
		filename TEXT,
		total_records INTEGER,
		uploaded_at DATETIME
	);
	`
	recordTable := `
	CREATE TABLE IF NOT EXISTS sales_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT REFERENCES datasets(id),
		order_date DATETIME,
		amount TEXT,
		quantity INTEGER,
		order_id TEXT,
		product_id TEXT,
		customer_id TEXT,
		region TEXT,
		rep TEXT,
		category TEXT,
		channel TEXT
	);
	`
	recordIndex := `CREATE INDEX IF NOT EXISTS idx_sales_records_dataset ON sales_records(dataset_id);`

	for _, stmt := range []string{datasetTable, recordTable, recordIndex} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a new dataset and its records in one transaction and
// caches the decoded slice. Amounts are stored as decimal strings so no
// precision is lost on the roundtrip.
func (s *DatasetStore) Create(name, filename string, records []model.SalesRecord) (model.Dataset, error) {
	ds := model.Dataset{
		ID:           uuid.New().String(),
		Name:         name,
		Filename:     filename,
		TotalRecords: len(records),
		UploadedAt:   time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return model.Dataset{}, err
	}
	if _, err := tx.Exec(
		`INSERT INTO datasets (id, name, filename, total_records, uploaded_at) VALUES (?, ?, ?, ?, ?)`,
		ds.ID, ds.Name, ds.Filename, ds.TotalRecords, ds.UploadedAt,
	); err != nil {
		tx.Rollback()
		return model.Dataset{}, fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sales_records
		(dataset_id, order_date, amount, quantity, order_id, product_id, customer_id, region, rep, category, channel)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return model.Dataset{}, err
	}
	for _, rec := range records {
		if _, err := stmt.Exec(
			ds.ID, rec.Date, rec.Amount.String(), rec.Quantity, rec.OrderID,
			rec.ProductID, rec.CustomerID, rec.Region, rec.Rep, rec.Category, rec.Channel,
		); err != nil {
			stmt.Close()
			tx.Rollback()
			return model.Dataset{}, fmt.Errorf("failed to insert record: %w", err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return model.Dataset{}, err
	}

	s.mu.Lock()
	s.cache[ds.ID] = records
	s.mu.Unlock()

	return ds, nil
}

// Records returns the read-only record snapshot for a dataset, loading it
// from sqlite on a cache miss (e.g. after a restart).
func (s *DatasetStore) Records(id string) ([]model.SalesRecord, error) {
	s.mu.RLock()
	records, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return records, nil
	}

	records, err := s.loadRecords(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[id] = records
	s.mu.Unlock()
	return records, nil
}

func (s *DatasetStore) loadRecords(id string) ([]model.SalesRecord, error) {
	// Telling a missing dataset apart from an empty one needs the catalog.
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT order_date, amount, quantity, order_id, product_id, customer_id, region, rep, category, channel
		FROM sales_records WHERE dataset_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.SalesRecord, 0)
	for rows.Next() {
		var rec model.SalesRecord
		var amount string
		if err := rows.Scan(
			&rec.Date, &amount, &rec.Quantity, &rec.OrderID,
			&rec.ProductID, &rec.CustomerID, &rec.Region, &rec.Rep, &rec.Category, &rec.Channel,
		); err != nil {
			return nil, err
		}
		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount in dataset %s: %w", id, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns dataset metadata.
func (s *DatasetStore) Get(id string) (model.Dataset, error) {
	var ds model.Dataset
	err := s.db.QueryRow(`SELECT id, name, filename, total_records, uploaded_at FROM datasets WHERE id = ?`, id).
		Scan(&ds.ID, &ds.Name, &ds.Filename, &ds.TotalRecords, &ds.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Dataset{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}
	if err != nil {
		return model.Dataset{}, err
	}
	return ds, nil
}

// List returns all datasets, newest first.
func (s *DatasetStore) List() ([]model.Dataset, error) {
	rows, err := s.db.Query(`SELECT id, name, filename, total_records, uploaded_at FROM datasets ORDER BY uploaded_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	datasets := make([]model.Dataset, 0)
	for rows.Next() {
		var ds model.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Filename, &ds.TotalRecords, &ds.UploadedAt); err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// Delete removes a dataset, its rows and its cache entry.
func (s *DatasetStore) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM sales_records WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM datasets WHERE id = ?`, id); err != nil {
		return err
	}
	delete(s.cache, id)
	return nil
}

// Close closes the underlying database.
func (s *DatasetStore) Close() error {
	return s.db.Close()
}
