package events

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amokewustl/belong-chivent/internal/providers/ticketmaster"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

// Fallback values used when upstream data is missing.
const (
	FallbackPrice       = "N/A"
	FallbackImageURL    = "https://via.placeholder.com/800x600?text=Event+Image"
	FallbackDescription = "No description available for this event."
	FallbackLocation    = "Chicago, IL"
	FallbackTBA         = "TBA"

	// minDescriptionLength is the bar a trimmed text field must exceed to count
	// as a real description.
	minDescriptionLength = 10

	// minImageWidth is the preferred minimum width when picking an image.
	minImageWidth = 400

	// eventDurationHours is assumed when upstream gives no end time.
	eventDurationHours = 3
)

// Normalize maps one raw Ticketmaster record into the internal event shape.
// It never fails: every missing upstream field gets a fallback, and the
// presence flags record which fields were real.
func Normalize(raw ticketmaster.RawEvent) models.Event {
	event := models.Event{
		ID:    raw.ID,
		Title: raw.Name,
		URL:   raw.URL,
	}

	event.Price, event.PriceValue, event.HasPrice = normalizePrice(raw.PriceRanges)
	event.Image, event.HasImage = pickImage(raw.Images)
	event.Description, event.HasDescription = pickDescription(raw)
	event.Location = composeLocation(raw.Embedded)
	event.StartDate, event.StartTime, event.EndTime = normalizeSchedule(raw.Dates)

	return event
}

// normalizePrice uses the minimum of the first price range when present.
func normalizePrice(ranges []ticketmaster.PriceRange) (string, float64, bool) {
	if len(ranges) == 0 || ranges[0].Min == nil {
		return FallbackPrice, 0, false
	}
	value := *ranges[0].Min
	return fmt.Sprintf("$%.2f", value), value, true
}

// pickImage prefers the first image at least minImageWidth wide, falling back
// to the first image of any size. No images at all yields the placeholder.
func pickImage(images []ticketmaster.Image) (string, bool) {
	if len(images) == 0 {
		return FallbackImageURL, false
	}
	for _, img := range images {
		if img.Width >= minImageWidth {
			return img.URL, true
		}
	}
	return images[0].URL, true
}

// pickDescription checks info, pleaseNote, then description, taking the first
// whose trimmed length exceeds the minimum.
func pickDescription(raw ticketmaster.RawEvent) (string, bool) {
	for _, candidate := range []string{raw.Info, raw.PleaseNote, raw.Description} {
		if len(strings.TrimSpace(candidate)) > minDescriptionLength {
			return candidate, true
		}
	}
	return FallbackDescription, false
}

// composeLocation builds "{venue}, {city}, {state}" when a venue name exists,
// "{city}, {state}" otherwise. City and state fall back to Chicago, IL.
func composeLocation(embedded *ticketmaster.RawEmbedded) string {
	if embedded == nil || len(embedded.Venues) == 0 {
		return FallbackLocation
	}

	venue := embedded.Venues[0]

	city := "Chicago"
	if venue.City != nil && venue.City.Name != "" {
		city = venue.City.Name
	}
	state := "IL"
	if venue.State != nil && venue.State.StateCode != "" {
		state = venue.State.StateCode
	}

	if venue.Name != "" {
		return fmt.Sprintf("%s, %s, %s", venue.Name, city, state)
	}
	return fmt.Sprintf("%s, %s", city, state)
}

// normalizeSchedule derives the display date, start time, and a synthetic end
// time three hours after the start, wrapping past midnight.
func normalizeSchedule(dates *ticketmaster.Dates) (startDate, startTime, endTime string) {
	startDate, startTime, endTime = FallbackTBA, FallbackTBA, FallbackTBA

	if dates == nil || dates.Start == nil {
		return
	}

	if dates.Start.LocalDate != "" {
		if parsed, err := time.Parse("2006-01-02", dates.Start.LocalDate); err == nil {
			startDate = parsed.Format("2006-01-02")
		} else {
			startDate = dates.Start.LocalDate
		}
	}

	if dates.Start.LocalTime != "" {
		startTime = dates.Start.LocalTime
		endTime = addHours(startTime, eventDurationHours)
	}

	return
}

// addHours shifts an HH:MM[:SS] time forward, modulo 24 hours. Seconds are
// zeroed in the result. An unparseable time comes back unchanged.
func addHours(localTime string, hours int) string {
	parts := strings.Split(localTime, ":")
	if len(parts) < 2 {
		return localTime
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return localTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return localTime
	}

	return fmt.Sprintf("%02d:%02d:00", (hour+hours)%24, minute)
}
