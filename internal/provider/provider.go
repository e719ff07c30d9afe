// Package provider owns the process-wide fund collection: a one-time
// CSV ingestion whose result is cached for the process lifetime with no
// expiry and no invalidation.
package provider

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/fundfeed"
	"github.com/fundsight/Fund-Analytics-Backend/internal/ingest"
	"github.com/fundsight/Fund-Analytics-Backend/internal/model"
)

// Provider fetches, normalizes and caches the canonical fund collection.
//
// The collection is populated by the first successful Load and is
// read-only afterwards; every later call returns the same slice without
// re-fetching. Concurrent callers before the first load completes share
// a single in-flight fetch. Construct with New and inject into callers;
// there is no ambient global state.
type Provider struct {
	feed  fundfeed.Client
	group singleflight.Group

	mu      sync.RWMutex
	cache   []model.FundRecord
	lastErr error
}

// New creates a Provider over the given feed client.
func New(feed fundfeed.Client) *Provider {
	return &Provider{feed: feed}
}

// Load returns the canonical fund collection, fetching and parsing the
// feed CSV on first use.
//
// Load never fails: an unreachable or unparseable feed is logged,
// recorded as the last ingestion error, and surfaced as an empty
// collection. The cache stays empty in that case and the next call
// retries the fetch. Callers must treat an empty result as "not yet
// available", not as a guaranteed absence of data.
func (p *Provider) Load(ctx context.Context) []model.FundRecord {
	p.mu.RLock()
	cache := p.cache
	p.mu.RUnlock()
	if cache != nil {
		return cache
	}

	// Single-flight guard: concurrent callers before this resolves
	// await one fetch+parse rather than each issuing their own.
	value, err, _ := p.group.Do("funds", func() (interface{}, error) {
		p.mu.RLock()
		cached := p.cache
		p.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		csvText, err := p.feed.FetchCSV(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
		}

		records, err := ingest.ParseFeed(csvText)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.cache = records
		p.lastErr = nil
		p.mu.Unlock()

		log.Printf("provider: ingested %d funds from feed", len(records))
		return records, nil
	})
	if err != nil {
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()

		log.Printf("provider: ingestion failed: %v", err)
		return []model.FundRecord{}
	}

	return value.([]model.FundRecord)
}

// Loaded reports whether the collection has been populated.
func (p *Provider) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cache != nil
}

// LastError returns the most recent ingestion failure, or nil. It is the
// diagnostic side-channel for load failures, which Load itself never
// surfaces as an error.
func (p *Provider) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}
