package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// DatasetRepository provides data access methods for the dataset and
// dataset_record tables. Each uploaded CSV becomes one dataset row plus
// one dataset_record row per parsed fund, with the optional raw CSV
// blob stored encrypted by the service layer.
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new DatasetRepository with the provided
// database connection.
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create stores a dataset and its records in a single transaction.
// rawCSV may be nil when raw retention is disabled.
func (r *DatasetRepository) Create(dataset model.Dataset, rawCSV []byte) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin dataset transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`
		INSERT INTO dataset (id, name, record_count, raw_csv, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		dataset.ID, dataset.Name, dataset.RecordCount, rawCSV, dataset.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	for i, record := range dataset.Records {
		sectors, err := marshalOptional(record.Sectors)
		if err != nil {
			return fmt.Errorf("failed to encode sectors: %w", err)
		}
		holdings, err := marshalOptional(record.Holdings)
		if err != nil {
			return fmt.Errorf("failed to encode holdings: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO dataset_record (
				dataset_id, position, fund_id, name, category, aum, nav,
				expense_ratio, returns_1yr, returns_3yr, returns_5yr,
				risk_level, inception_date, fund_manager, sub_category,
				rating, benchmark, sectors, holdings
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			dataset.ID, i, record.ID, record.Name, record.Category,
			record.AUM, record.Nav, record.ExpenseRatio,
			record.Returns.OneYear, record.Returns.ThreeYear, record.Returns.FiveYear,
			string(record.RiskLevel), record.InceptionDate, record.FundManager,
			record.SubCategory, record.Rating, nullableString(record.Benchmark),
			sectors, holdings,
		)
		if err != nil {
			return fmt.Errorf("failed to insert dataset record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset transaction: %w", err)
	}
	return nil
}

// List retrieves all datasets, newest first, without their records.
// Returns an empty slice if no datasets exist.
func (r *DatasetRepository) List() ([]model.Dataset, error) {
	rows, err := r.db.Query(`
		SELECT id, name, record_count, created_at
		FROM dataset
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table: %w", err)
	}
	defer rows.Close()

	datasets := []model.Dataset{}
	for rows.Next() {
		var d model.Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.RecordCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset table results: %w", err)
		}
		datasets = append(datasets, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dataset table: %w", err)
	}

	return datasets, nil
}

// Get retrieves a dataset and its records by ID.
func (r *DatasetRepository) Get(datasetID string) (model.Dataset, error) {
	var d model.Dataset
	var createdAt time.Time

	err := r.db.QueryRow(`
		SELECT id, name, record_count, created_at
		FROM dataset
		WHERE id = ?`, datasetID,
	).Scan(&d.ID, &d.Name, &d.RecordCount, &createdAt)
	if err == sql.ErrNoRows {
		return model.Dataset{}, apperrors.ErrDatasetNotFound
	}
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to query dataset: %w", err)
	}
	d.CreatedAt = createdAt

	rows, err := r.db.Query(`
		SELECT fund_id, name, category, aum, nav, expense_ratio,
			returns_1yr, returns_3yr, returns_5yr, risk_level,
			inception_date, fund_manager, sub_category, rating,
			benchmark, sectors, holdings
		FROM dataset_record
		WHERE dataset_id = ?
		ORDER BY position`, datasetID)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to query dataset records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record model.FundRecord
		var riskLevel string
		var benchmark sql.NullString
		var sectors, holdings sql.NullString

		err := rows.Scan(
			&record.ID, &record.Name, &record.Category,
			&record.AUM, &record.Nav, &record.ExpenseRatio,
			&record.Returns.OneYear, &record.Returns.ThreeYear, &record.Returns.FiveYear,
			&riskLevel, &record.InceptionDate, &record.FundManager,
			&record.SubCategory, &record.Rating, &benchmark, &sectors, &holdings,
		)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("failed to scan dataset record: %w", err)
		}

		record.RiskLevel = model.RiskLevel(riskLevel)
		record.Benchmark = benchmark.String
		if err := unmarshalOptional(sectors, &record.Sectors); err != nil {
			return model.Dataset{}, fmt.Errorf("failed to decode sectors: %w", err)
		}
		if err := unmarshalOptional(holdings, &record.Holdings); err != nil {
			return model.Dataset{}, fmt.Errorf("failed to decode holdings: %w", err)
		}

		d.Records = append(d.Records, record)
	}
	if err = rows.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("error iterating dataset records: %w", err)
	}

	return d, nil
}

// GetRawCSV retrieves the stored raw CSV blob for a dataset. The blob is
// nil when raw retention was disabled at upload time.
func (r *DatasetRepository) GetRawCSV(datasetID string) ([]byte, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT raw_csv FROM dataset WHERE id = ?`, datasetID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset raw CSV: %w", err)
	}
	return raw, nil
}

// marshalOptional JSON-encodes a slice, mapping empty to NULL.
func marshalOptional(v any) (any, error) {
	switch s := v.(type) {
	case []model.SectorAllocation:
		if len(s) == 0 {
			return nil, nil
		}
	case []model.Holding:
		if len(s) == 0 {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// unmarshalOptional decodes a nullable JSON column into dest, leaving
// dest untouched for NULL.
func unmarshalOptional(column sql.NullString, dest any) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(column.String), dest)
}

// nullableString maps empty strings to NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
