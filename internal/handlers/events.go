package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amokewustl/belong-chivent/internal/events"
	"github.com/amokewustl/belong-chivent/internal/store"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// EventsProvider serves aggregated Ticketmaster events. It never fails: a
// degenerate or failing request comes back as an empty result.
type EventsProvider interface {
	FetchEvents(ctx context.Context, targetCount, maxPages, page int) models.EventsResult
}

// EventsHandler serves the public events API.
type EventsHandler struct {
	provider EventsProvider
	store    store.EventStore
}

// NewEventsHandler creates a handler over the aggregation facade and the
// curated event store.
func NewEventsHandler(provider EventsProvider, eventStore store.EventStore) *EventsHandler {
	return &EventsHandler{
		provider: provider,
		store:    eventStore,
	}
}

// HandleGetEvents serves GET /api/events.
// Query params: targetCount, maxPages, page (defaults 20, 5, 0).
// The response is always 200 with {events, filteredCount}; upstream failures
// surface as an empty list, never as an error status.
func (h *EventsHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	targetCount := parseIntParam(r, "targetCount", events.DefaultTargetCount)
	maxPages := parseIntParam(r, "maxPages", events.DefaultMaxPages)
	page := parseIntParam(r, "page", events.DefaultPage)

	result := h.provider.FetchEvents(r.Context(), targetCount, maxPages, page)

	respondJSON(w, http.StatusOK, result)
}

// HandleGetEvent serves GET /api/events/{eventID} from the curated store.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		respondError(w, http.StatusBadRequest, "event id is required", nil)
		return
	}

	event, err := h.store.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "event not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to retrieve event", err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}
