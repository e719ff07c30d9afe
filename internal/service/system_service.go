package service

import (
	"database/sql"

	"github.com/fundsight/Fund-Analytics-Backend/internal/database"
	"github.com/fundsight/Fund-Analytics-Backend/internal/provider"
	"github.com/fundsight/Fund-Analytics-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	provider *provider.Provider
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, p *provider.Provider) *SystemService {
	return &SystemService{
		db:       db,
		provider: p,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// FeedStatus describes the fund cache state: "loaded" once the feed has
// been ingested, "empty" before the first successful load.
func (s *SystemService) FeedStatus() (string, error) {
	if s.provider.Loaded() {
		return "loaded", nil
	}
	return "empty", s.provider.LastError()
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}
