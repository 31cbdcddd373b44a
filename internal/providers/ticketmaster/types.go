package ticketmaster

// PageResponse is the decoded Discovery API payload for one page.
// An absent _embedded block means there are no more events, not an error.
type PageResponse struct {
	Embedded *EmbeddedEvents `json:"_embedded,omitempty"`
	Page     *PageInfo       `json:"page,omitempty"`
}

// EmbeddedEvents carries the event list inside the _embedded envelope.
type EmbeddedEvents struct {
	Events []RawEvent `json:"events"`
}

// PageInfo is the upstream pagination block.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// RawEvent is one Ticketmaster event as the upstream returns it. Fields may be
// absent; normalization fills in fallbacks.
type RawEvent struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Info        string       `json:"info,omitempty"`
	PleaseNote  string       `json:"pleaseNote,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Dates       *Dates       `json:"dates,omitempty"`
	PriceRanges []PriceRange `json:"priceRanges,omitempty"`
	Images      []Image      `json:"images,omitempty"`
	Embedded    *RawEmbedded `json:"_embedded,omitempty"`
}

// Dates holds the event schedule block.
type Dates struct {
	Start *StartDate `json:"start,omitempty"`
}

// StartDate holds the local start date and time strings.
type StartDate struct {
	LocalDate string `json:"localDate,omitempty"`
	LocalTime string `json:"localTime,omitempty"`
}

// PriceRange is one upstream price band. Min is a pointer so a present-but-zero
// minimum is distinguishable from an absent one.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Image is one upstream image entry.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// RawEmbedded carries venue details nested under the event.
type RawEmbedded struct {
	Venues []Venue `json:"venues,omitempty"`
}

// Venue is one upstream venue entry.
type Venue struct {
	Name  string     `json:"name,omitempty"`
	City  *CityRef   `json:"city,omitempty"`
	State *StateInfo `json:"state,omitempty"`
}

// CityRef holds the venue city name.
type CityRef struct {
	Name string `json:"name,omitempty"`
}

// StateInfo holds the venue state code.
type StateInfo struct {
	StateCode string `json:"stateCode,omitempty"`
}
