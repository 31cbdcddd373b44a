package models

// Event is the uniform internal shape served to the UI and admin panel.
// Every field is populated at normalization time; missing upstream data is
// replaced with a fallback value, never left empty.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       string  `json:"price"`
	PriceValue  float64 `json:"price_value"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	URL         string  `json:"url"`

	HasPrice       bool `json:"has_price"`
	HasDescription bool `json:"has_description"`
	HasImage       bool `json:"has_image"`
}

// EventsResult is the aggregation payload returned to callers.
// FilteredCount counts every qualifying event seen across the fetched pages,
// including those beyond the target count that were not kept.
type EventsResult struct {
	Events        []Event `json:"events"`
	FilteredCount int     `json:"filteredCount"`
}

// EmptyEventsResult returns the result served when aggregation fails or the
// request is degenerate. Events is non-nil so it encodes as [] rather than null.
func EmptyEventsResult() EventsResult {
	return EventsResult{Events: []Event{}, FilteredCount: 0}
}
