package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amokewustl/belong-chivent/internal/events"
	"github.com/amokewustl/belong-chivent/internal/store"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// AdminEventsHandler manages curated events for the admin panel.
type AdminEventsHandler struct {
	store store.EventStore
}

// NewAdminEventsHandler creates a handler over the curated event store.
func NewAdminEventsHandler(eventStore store.EventStore) *AdminEventsHandler {
	return &AdminEventsHandler{store: eventStore}
}

// eventRequest is the mutable subset the panel submits.
type eventRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	Price          string  `json:"price"`
	PriceValue     float64 `json:"price_value"`
	Location       string  `json:"location"`
	StartDate      string  `json:"startDate"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	URL            string  `json:"url"`
	HasPrice       bool    `json:"has_price"`
	HasDescription bool    `json:"has_description"`
	HasImage       bool    `json:"has_image"`
}

func (req *eventRequest) validate() error {
	if req.Title == "" || req.StartDate == "" || req.StartTime == "" {
		return errors.New("missing required fields: title, startDate, and startTime are required")
	}
	return nil
}

// apply merges the request into event, filling absent fields with the same
// fallbacks the admin panel has always relied on.
func (req *eventRequest) apply(event *models.Event) {
	event.Title = req.Title
	event.StartDate = req.StartDate
	event.StartTime = req.StartTime

	event.Description = req.Description
	if event.Description == "" {
		event.Description = events.FallbackDescription
	}
	if req.Image != "" {
		event.Image = req.Image
	}
	event.Price = req.Price
	if event.Price == "" {
		event.Price = events.FallbackPrice
	}
	event.PriceValue = req.PriceValue
	event.Location = req.Location
	if event.Location == "" {
		event.Location = "Location TBA"
	}
	event.EndTime = req.EndTime
	if event.EndTime == "" {
		event.EndTime = req.StartTime
	}
	if req.URL != "" {
		event.URL = req.URL
	}
	event.HasPrice = req.HasPrice
	event.HasDescription = req.HasDescription
	event.HasImage = req.HasImage
}

// HandleListEvents serves GET /api/admin/events.
func (h *AdminEventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := parseIntParam(r, "limit", 100)
	if limit > 500 {
		limit = 500
	}
	offset := parseIntParam(r, "offset", 0)

	list, err := h.store.ListEvents(ctx, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve events", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": list,
		"count":  len(list),
	})
}

// HandleGetEvent serves GET /api/admin/events/{eventID}.
func (h *AdminEventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	event, err := h.store.GetEvent(ctx, chi.URLParam(r, "eventID"))
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

// HandleCreateEvent serves POST /api/admin/events.
func (h *AdminEventsHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	event := models.Event{
		ID:    uuid.NewString(),
		Image: events.FallbackImageURL,
	}
	req.apply(&event)

	if err := h.store.CreateEvent(ctx, &event); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "event already exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create event", err)
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// HandleUpdateEvent serves PUT /api/admin/events/{eventID}.
func (h *AdminEventsHandler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	eventID := chi.URLParam(r, "eventID")

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
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

	req.apply(event)

	if err := h.store.UpdateEvent(ctx, event); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update event", err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// HandleDeleteEvent serves DELETE /api/admin/events/{eventID}.
func (h *AdminEventsHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	eventID := chi.URLParam(r, "eventID")

	if err := h.store.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "event not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete event", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Event deleted successfully",
	})
}
