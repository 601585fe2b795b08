package core

import (
	"context"
	"sync"
	"time"

	"github.com/kwabo/benintour/internal/booking"
)

const defaultTimeout = 15 * time.Second

type Orchestrator struct {
	router *Router
}

func NewOrchestrator(router *Router) *Orchestrator {
	return &Orchestrator{router: router}
}

// Search fans out to every active adapter, collects their offers, then runs
// the whole batch through dedupe, scoring, ranking, and highlight
// selection. Scoring is batch-relative, so it must run after all adapters
// have reported back.
func (o *Orchestrator) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	adapters := o.router.ActiveAdapters()
	if len(adapters) == 0 {
		return &SearchResult{
			Query:     req,
			Mode:      o.router.cfg.Mode,
			Nights:    booking.StayNights(req.CheckIn, req.CheckOut),
			Errors:    []ProviderError{{Provider: "none", Reason: "no active providers for current mode"}},
			FetchedAt: time.Now().UTC(),
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		offers   []booking.Offer
		provUsed []string
		errs     []ProviderError
	)

	for _, a := range adapters {
		wg.Add(1)
		go func(adapter ProviderAdapter) {
			defer wg.Done()

			done := make(chan struct{})
			var results []booking.Offer
			var err error

			go func() {
				results, err = adapter.SearchOffers(req)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				mu.Lock()
				errs = append(errs, ProviderError{
					Provider: adapter.Name(),
					Reason:   "timeout",
					Fallback: "results from other providers may still be available",
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, ProviderError{
					Provider: adapter.Name(),
					Reason:   err.Error(),
				})
			} else {
				offers = append(offers, results...)
				provUsed = append(provUsed, adapter.Name())
			}
		}(a)
	}

	wg.Wait()

	offers = DedupeOffers(offers)
	booking.Score(offers)
	booking.Rank(offers)

	if req.MaxResults > 0 && len(offers) > req.MaxResults {
		offers = offers[:req.MaxResults]
	}

	return &SearchResult{
		Query:      req,
		Mode:       o.router.cfg.Mode,
		Providers:  provUsed,
		Offers:     offers,
		Highlights: booking.SelectHighlights(offers),
		Nights:     booking.StayNights(req.CheckIn, req.CheckOut),
		TotalFound: len(offers),
		Errors:     errs,
		FetchedAt:  time.Now().UTC(),
	}, nil
}
