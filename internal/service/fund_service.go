package service

import (
	"context"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
	"github.com/fundsight/Fund-Analytics-Backend/internal/provider"
)

// FundService handles fund-related business logic operations. All fund
// data comes from the provider's process-wide cached collection.
type FundService struct {
	provider *provider.Provider
}

// NewFundService creates a new FundService over the given provider.
func NewFundService(p *provider.Provider) *FundService {
	return &FundService{provider: p}
}

// GetAllFunds returns the canonical fund collection, triggering the
// one-time feed ingestion if it has not happened yet. An empty slice
// means the data is not yet available, not that no funds exist.
func (s *FundService) GetAllFunds(ctx context.Context) []model.FundRecord {
	return s.provider.Load(ctx)
}

// GetFund returns a single fund by its collection ID.
func (s *FundService) GetFund(ctx context.Context, fundID string) (model.FundRecord, error) {
	if fundID == "" {
		return model.FundRecord{}, apperrors.ErrEmptyID
	}
	for _, fund := range s.provider.Load(ctx) {
		if fund.ID == fundID {
			return fund, nil
		}
	}
	return model.FundRecord{}, apperrors.ErrFundNotFound
}
