package service

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/ingest"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
	"github.com/fundsight/Fund-Analytics-Backend/internal/repository"
)

// UploadService turns user-supplied CSV uploads into persisted datasets.
//
// A dataset is a caller-local working copy: it never feeds back into the
// shared provider cache. When an encryption key is configured, the raw
// CSV text is also retained, fernet-encrypted at rest; without a key the
// raw text is discarded after parsing.
type UploadService struct {
	datasetRepo *repository.DatasetRepository
	keys        []*fernet.Key
}

// NewUploadService creates a new UploadService. encryptionKey is an
// optional base64 fernet key; pass "" to disable raw retention.
func NewUploadService(datasetRepo *repository.DatasetRepository, encryptionKey string) (*UploadService, error) {
	s := &UploadService{datasetRepo: datasetRepo}

	if encryptionKey != "" {
		key, err := fernet.DecodeKey(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidEncryptionKey, err)
		}
		s.keys = []*fernet.Key{key}
	}

	return s, nil
}

// CreateDataset parses the uploaded CSV and persists it as a named
// dataset. The parsed records come back in the canonical fund shape.
func (s *UploadService) CreateDataset(name, csvText string) (model.Dataset, error) {
	records, err := ingest.ParseUpload(csvText)
	if err != nil {
		return model.Dataset{}, err
	}

	var rawCSV []byte
	if s.keys != nil {
		rawCSV, err = fernet.EncryptAndSign([]byte(csvText), s.keys[0])
		if err != nil {
			return model.Dataset{}, fmt.Errorf("failed to encrypt uploaded CSV: %w", err)
		}
	}

	dataset := model.Dataset{
		ID:          uuid.NewString(),
		Name:        name,
		RecordCount: len(records),
		CreatedAt:   time.Now().UTC(),
		Records:     records,
	}

	if err := s.datasetRepo.Create(dataset, rawCSV); err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreDataset, err)
	}

	return dataset, nil
}

// ListDatasets returns all stored datasets without their records.
func (s *UploadService) ListDatasets() ([]model.Dataset, error) {
	datasets, err := s.datasetRepo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveDatasets, err)
	}
	return datasets, nil
}

// GetDataset returns a stored dataset with its records.
func (s *UploadService) GetDataset(datasetID string) (model.Dataset, error) {
	dataset, err := s.datasetRepo.Get(datasetID)
	if err != nil {
		return model.Dataset{}, err
	}
	return dataset, nil
}

// GetRawCSV returns the decrypted original CSV for a dataset, or nil
// when raw retention was disabled at upload time.
func (s *UploadService) GetRawCSV(datasetID string) ([]byte, error) {
	raw, err := s.datasetRepo.GetRawCSV(datasetID)
	if err != nil {
		return nil, err
	}
	if raw == nil || s.keys == nil {
		return nil, nil
	}

	plain := fernet.VerifyAndDecrypt(raw, 0, s.keys)
	if plain == nil {
		return nil, fmt.Errorf("failed to decrypt stored CSV for dataset %s", datasetID)
	}
	return plain, nil
}
