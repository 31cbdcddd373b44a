package events

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/amokewustl/belong-chivent/internal/cache"
	"github.com/amokewustl/belong-chivent/internal/providers/ticketmaster"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// Default request parameters, matching what the front end asks for.
const (
	DefaultTargetCount = 20
	DefaultMaxPages    = 5
	DefaultPage        = 0
)

// Service is the boundary the UI and admin layers call for aggregated events.
// It wraps the aggregator with the result cache and converts failures into
// empty results.
type Service struct {
	aggregator *Aggregator
	cache      *cache.Cache
}

// NewService creates the facade over fetcher and resultCache. The cache is
// constructed once at startup and injected, so all requests share one memo.
func NewService(fetcher PageFetcher, resultCache *cache.Cache) *Service {
	return &Service{
		aggregator: NewAggregator(fetcher),
		cache:      resultCache,
	}
}

// FetchEvents returns up to targetCount qualifying Chicago events, fetching at
// most maxPages upstream pages starting at page. Identical parameter triples
// within the cache window are served from the cache without hitting upstream.
//
// FetchEvents never fails: any underlying error is logged and replaced with an
// empty result. The UI depends on this boundary never surfacing an error.
func (s *Service) FetchEvents(ctx context.Context, targetCount, maxPages, page int) models.EventsResult {
	key := cacheKey(targetCount, maxPages, page)

	result, err := s.cache.GetOrCompute(key, func() (models.EventsResult, error) {
		return s.aggregator.Aggregate(ctx, targetCount, maxPages, page)
	})
	if err != nil {
		var statusErr *ticketmaster.StatusError
		if errors.As(err, &statusErr) && statusErr.IsAuthError() {
			log.Printf("[events] upstream rejected API key: %v", err)
		} else {
			log.Printf("[events] aggregation failed: %v", err)
		}
		return models.EmptyEventsResult()
	}

	return result
}

// cacheKey derives the memo key from the request shape. Identical parameters
// collide on purpose.
func cacheKey(targetCount, maxPages, page int) string {
	return fmt.Sprintf("events_%d_%d_%d", targetCount, maxPages, page)
}
