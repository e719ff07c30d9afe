package service

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
)

// Result is the tagged outcome of a dispatch. Handled distinguishes a
// genuine (possibly empty) result from missing backend wiring, so
// callers are not forced to conflate the two.
type Result struct {
	Handled bool
	Value   any
}

// Dispatcher is the uniform request function the dashboard calls for
// every backend interaction. Known endpoints delegate to the fund and
// research services after an artificial latency that mimics network
// behavior for UI testing; unknown endpoints resolve to an empty object
// with a diagnostic instead of failing, so the UI never crashes on an
// unimplemented route.
type Dispatcher struct {
	funds         *FundService
	research      *ResearchService
	fundsLatency  time.Duration
	searchLatency time.Duration
}

// NewDispatcher creates a Dispatcher over the fund and research
// services. The latencies apply to the intercepted endpoints; pass zero
// to disable the artificial delay.
func NewDispatcher(funds *FundService, research *ResearchService, fundsLatency, searchLatency time.Duration) *Dispatcher {
	return &Dispatcher{
		funds:         funds,
		research:      research,
		fundsLatency:  fundsLatency,
		searchLatency: searchLatency,
	}
}

// Dispatch routes one logical backend request.
//
// Contract:
//   - "funds" + GET: the canonical fund collection.
//   - endpoints starting with "search": an LLM-backed query over the
//     "q" query parameter.
//   - anything else: Handled=false with an empty object value and a
//     logged diagnostic.
//
// Dispatch always resolves; no input makes it panic or error.
func (d *Dispatcher) Dispatch(ctx context.Context, endpoint, method string, _ any, queryParams map[string]string) Result {
	if endpoint == "funds" && method == http.MethodGet {
		d.wait(ctx, d.fundsLatency)
		return Result{Handled: true, Value: d.funds.GetAllFunds(ctx)}
	}

	if strings.HasPrefix(endpoint, "search") {
		d.wait(ctx, d.searchLatency)
		return Result{Handled: true, Value: d.research.Search(ctx, queryParams["q"])}
	}

	log.Printf("dispatch: no handler for %s %s, returning empty object", method, endpoint)
	return Result{Handled: false, Value: map[string]any{}}
}

// wait sleeps for the artificial latency, returning early if the caller
// goes away.
func (d *Dispatcher) wait(ctx context.Context, latency time.Duration) {
	if latency <= 0 {
		return
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
