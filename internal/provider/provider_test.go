package provider_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fundsight/Fund-Analytics-Backend/internal/provider"
	"github.com/fundsight/Fund-Analytics-Backend/internal/testutil"
)

func TestProviderLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches and parses the feed on first use", func(t *testing.T) {
		feed := testutil.NewMockFeedClient(testutil.NewFeedCSV().
			AddFund("Alpha Fund", 3).
			AddFund("Beta Fund", 5).
			Build())
		p := provider.New(feed)

		funds := p.Load(ctx)
		if len(funds) != 2 {
			t.Fatalf("Expected 2 funds, got %d", len(funds))
		}
		if !p.Loaded() {
			t.Error("Expected provider to report loaded")
		}
		if p.LastError() != nil {
			t.Errorf("Expected no ingestion error, got %v", p.LastError())
		}
	})

	t.Run("serves the cached collection without re-fetching", func(t *testing.T) {
		feed := testutil.NewMockFeedClient(testutil.NewFeedCSV().
			AddFund("Alpha Fund", 3).
			Build())
		p := provider.New(feed)

		first := p.Load(ctx)
		second := p.Load(ctx)
		third := p.Load(ctx)

		if feed.FetchCount() != 1 {
			t.Errorf("Expected exactly 1 fetch, got %d", feed.FetchCount())
		}
		if len(first) != 1 || len(second) != 1 || len(third) != 1 {
			t.Fatalf("Expected 1 fund from every call, got %d/%d/%d",
				len(first), len(second), len(third))
		}
		if &first[0] != &second[0] || &second[0] != &third[0] {
			t.Error("Expected every call to return the same cached slice")
		}
	})

	t.Run("concurrent first loads share one fetch", func(t *testing.T) {
		feed := testutil.NewMockFeedClient(testutil.NewFeedCSV().
			AddFund("Alpha Fund", 3).
			AddFund("Beta Fund", 4).
			AddFund("Gamma Fund", 5).
			Build())
		feed.Block = make(chan struct{})
		p := provider.New(feed)

		const callers = 10
		var wg sync.WaitGroup
		results := make([]int, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = len(p.Load(ctx))
			}(i)
		}

		// Let the callers pile up behind the held fetch, then release it.
		time.Sleep(50 * time.Millisecond)
		close(feed.Block)
		wg.Wait()

		if feed.FetchCount() != 1 {
			t.Errorf("Expected exactly 1 fetch for %d concurrent callers, got %d",
				callers, feed.FetchCount())
		}
		for i, n := range results {
			if n != 3 {
				t.Errorf("Caller %d: expected 3 funds, got %d", i, n)
			}
		}
	})

	t.Run("returns an empty collection when the feed is unreachable", func(t *testing.T) {
		feed := &testutil.MockFeedClient{MockError: errors.New("connection refused")}
		p := provider.New(feed)

		funds := p.Load(ctx)
		if funds == nil {
			t.Fatal("Expected a non-nil empty slice")
		}
		if len(funds) != 0 {
			t.Fatalf("Expected 0 funds, got %d", len(funds))
		}
		if p.Loaded() {
			t.Error("Expected provider to stay unloaded after a failed fetch")
		}
		if p.LastError() == nil {
			t.Error("Expected the ingestion failure to be recorded")
		}
	})

	t.Run("retries the fetch after a failure", func(t *testing.T) {
		feed := &testutil.MockFeedClient{MockError: errors.New("connection refused")}
		p := provider.New(feed)

		if funds := p.Load(ctx); len(funds) != 0 {
			t.Fatalf("Expected 0 funds from the failed load, got %d", len(funds))
		}

		// Feed comes back up.
		feed.MockError = nil
		feed.MockCSV = testutil.NewFeedCSV().AddFund("Alpha Fund", 3).Build()

		funds := p.Load(ctx)
		if len(funds) != 1 {
			t.Fatalf("Expected 1 fund after recovery, got %d", len(funds))
		}
		if feed.FetchCount() != 2 {
			t.Errorf("Expected 2 fetches, got %d", feed.FetchCount())
		}
		if p.LastError() != nil {
			t.Errorf("Expected the recorded error to clear on success, got %v", p.LastError())
		}
	})
}
