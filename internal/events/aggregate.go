package events

import (
	"context"
	"fmt"
	"log"

	"github.com/amokewustl/belong-chivent/internal/providers/ticketmaster"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// PageFetcher fetches one upstream page of raw events.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*ticketmaster.PageResponse, error)
}

// Aggregator walks upstream pages until enough qualifying events are collected
// or the page budget runs out. Pages are fetched sequentially: whether page
// N+1 is needed depends on how many qualifying events page N contributed.
type Aggregator struct {
	fetcher PageFetcher
}

// NewAggregator creates an aggregator over the given fetcher.
func NewAggregator(fetcher PageFetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// Aggregate collects up to targetCount qualifying events starting at startPage,
// fetching at most maxPages pages. FilteredCount in the result counts every
// qualifying event seen, including those beyond targetCount that were dropped.
//
// Any fetch failure aborts the whole call: no partial result is returned and
// nothing gets cached. A page with zero upstream events means end-of-results
// and stops the loop normally. Non-positive targetCount or maxPages yields an
// empty result without touching the network.
func (a *Aggregator) Aggregate(ctx context.Context, targetCount, maxPages, startPage int) (models.EventsResult, error) {
	capacity := targetCount
	if capacity < 0 {
		capacity = 0
	}
	collected := make([]models.Event, 0, capacity)
	filteredCount := 0

	for page := startPage; page < startPage+maxPages && len(collected) < targetCount; page++ {
		resp, err := a.fetcher.FetchPage(ctx, page)
		if err != nil {
			return models.EventsResult{}, fmt.Errorf("fetching page %d: %w", page, err)
		}

		raw := resp.Events()
		if len(raw) == 0 {
			log.Printf("[aggregator] no more events at page %d", page)
			break
		}

		processed := make([]models.Event, 0, len(raw))
		for _, r := range raw {
			processed = append(processed, Normalize(r))
		}

		qualifying := FilterQualifying(processed)
		pageQualifying := len(qualifying)
		filteredCount += pageQualifying

		remaining := targetCount - len(collected)
		if len(qualifying) > remaining {
			qualifying = qualifying[:remaining]
		}
		collected = append(collected, qualifying...)

		log.Printf("[aggregator] page %d: %d raw, %d qualifying, %d collected", page, len(raw), pageQualifying, len(collected))
	}

	return models.EventsResult{Events: collected, FilteredCount: filteredCount}, nil
}
