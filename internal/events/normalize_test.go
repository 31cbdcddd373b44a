package events_test

import (
	"testing"

	"github.com/amokewustl/belong-chivent/internal/events"
	"github.com/amokewustl/belong-chivent/internal/providers/ticketmaster"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalize_PriceMissing(t *testing.T) {
	raw := ticketmaster.RawEvent{ID: "ev1", Name: "Concert"}

	got := events.Normalize(raw)

	if got.HasPrice {
		t.Error("HasPrice = true, want false for event without price ranges")
	}
	if got.Price != "N/A" {
		t.Errorf("Price = %q, want %q", got.Price, "N/A")
	}
	if got.PriceValue != 0 {
		t.Errorf("PriceValue = %v, want 0", got.PriceValue)
	}
}

func TestNormalize_PriceFormatting(t *testing.T) {
	raw := ticketmaster.RawEvent{
		ID:          "ev1",
		PriceRanges: []ticketmaster.PriceRange{{Min: floatPtr(42.5)}},
	}

	got := events.Normalize(raw)

	if !got.HasPrice {
		t.Error("HasPrice = false, want true")
	}
	if got.Price != "$42.50" {
		t.Errorf("Price = %q, want %q", got.Price, "$42.50")
	}
	if got.PriceValue != 42.5 {
		t.Errorf("PriceValue = %v, want 42.5", got.PriceValue)
	}
}

func TestNormalize_PriceZeroMinimumStillCounts(t *testing.T) {
	raw := ticketmaster.RawEvent{
		PriceRanges: []ticketmaster.PriceRange{{Min: floatPtr(0)}},
	}

	got := events.Normalize(raw)

	if !got.HasPrice {
		t.Error("HasPrice = false, want true for present-but-zero minimum")
	}
	if got.Price != "$0.00" {
		t.Errorf("Price = %q, want %q", got.Price, "$0.00")
	}
}

func TestNormalize_ImageSelection(t *testing.T) {
	tests := []struct {
		name     string
		images   []ticketmaster.Image
		wantURL  string
		wantFlag bool
	}{
		{
			name:     "no images uses placeholder",
			images:   nil,
			wantURL:  events.FallbackImageURL,
			wantFlag: false,
		},
		{
			name: "prefers first image at least 400px wide",
			images: []ticketmaster.Image{
				{URL: "small.jpg", Width: 200},
				{URL: "large.jpg", Width: 500},
			},
			wantURL:  "large.jpg",
			wantFlag: true,
		},
		{
			name: "falls back to first image when none qualify",
			images: []ticketmaster.Image{
				{URL: "first.jpg", Width: 200},
				{URL: "second.jpg", Width: 300},
			},
			wantURL:  "first.jpg",
			wantFlag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.Normalize(ticketmaster.RawEvent{Images: tt.images})
			if got.Image != tt.wantURL {
				t.Errorf("Image = %q, want %q", got.Image, tt.wantURL)
			}
			if got.HasImage != tt.wantFlag {
				t.Errorf("HasImage = %v, want %v", got.HasImage, tt.wantFlag)
			}
		})
	}
}

func TestNormalize_DescriptionPriority(t *testing.T) {
	tests := []struct {
		name     string
		raw      ticketmaster.RawEvent
		want     string
		wantFlag bool
	}{
		{
			name:     "info wins when long enough",
			raw:      ticketmaster.RawEvent{Info: "A very detailed description", PleaseNote: "Please arrive early today"},
			want:     "A very detailed description",
			wantFlag: true,
		},
		{
			name:     "short info falls through to pleaseNote",
			raw:      ticketmaster.RawEvent{Info: "too short", PleaseNote: "Please arrive early today"},
			want:     "Please arrive early today",
			wantFlag: true,
		},
		{
			name:     "description is the last resort",
			raw:      ticketmaster.RawEvent{Description: "A standalone description text"},
			want:     "A standalone description text",
			wantFlag: true,
		},
		{
			name:     "whitespace does not count toward the bar",
			raw:      ticketmaster.RawEvent{Info: "   hello      "},
			want:     events.FallbackDescription,
			wantFlag: false,
		},
		{
			name:     "exactly ten trimmed characters is not enough",
			raw:      ticketmaster.RawEvent{Info: "1234567890"},
			want:     events.FallbackDescription,
			wantFlag: false,
		},
		{
			name:     "nothing supplied",
			raw:      ticketmaster.RawEvent{},
			want:     events.FallbackDescription,
			wantFlag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.Normalize(tt.raw)
			if got.Description != tt.want {
				t.Errorf("Description = %q, want %q", got.Description, tt.want)
			}
			if got.HasDescription != tt.wantFlag {
				t.Errorf("HasDescription = %v, want %v", got.HasDescription, tt.wantFlag)
			}
		})
	}
}

func TestNormalize_Location(t *testing.T) {
	tests := []struct {
		name     string
		embedded *ticketmaster.RawEmbedded
		want     string
	}{
		{
			name:     "no venue data",
			embedded: nil,
			want:     "Chicago, IL",
		},
		{
			name: "venue with full details",
			embedded: &ticketmaster.RawEmbedded{Venues: []ticketmaster.Venue{{
				Name:  "United Center",
				City:  &ticketmaster.CityRef{Name: "Chicago"},
				State: &ticketmaster.StateInfo{StateCode: "IL"},
			}}},
			want: "United Center, Chicago, IL",
		},
		{
			name: "unnamed venue drops the name segment",
			embedded: &ticketmaster.RawEmbedded{Venues: []ticketmaster.Venue{{
				City:  &ticketmaster.CityRef{Name: "Evanston"},
				State: &ticketmaster.StateInfo{StateCode: "IL"},
			}}},
			want: "Evanston, IL",
		},
		{
			name: "missing city and state fall back to Chicago IL",
			embedded: &ticketmaster.RawEmbedded{Venues: []ticketmaster.Venue{{
				Name: "Mystery Hall",
			}}},
			want: "Mystery Hall, Chicago, IL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.Normalize(ticketmaster.RawEvent{Embedded: tt.embedded})
			if got.Location != tt.want {
				t.Errorf("Location = %q, want %q", got.Location, tt.want)
			}
		})
	}
}

func TestNormalize_Schedule(t *testing.T) {
	tests := []struct {
		name          string
		dates         *ticketmaster.Dates
		wantStartDate string
		wantStartTime string
		wantEndTime   string
	}{
		{
			name:          "no dates at all",
			dates:         nil,
			wantStartDate: "TBA",
			wantStartTime: "TBA",
			wantEndTime:   "TBA",
		},
		{
			name:          "date without time",
			dates:         &ticketmaster.Dates{Start: &ticketmaster.StartDate{LocalDate: "2025-06-15"}},
			wantStartDate: "2025-06-15",
			wantStartTime: "TBA",
			wantEndTime:   "TBA",
		},
		{
			name: "end time is start plus three hours",
			dates: &ticketmaster.Dates{Start: &ticketmaster.StartDate{
				LocalDate: "2025-06-15",
				LocalTime: "19:30:00",
			}},
			wantStartDate: "2025-06-15",
			wantStartTime: "19:30:00",
			wantEndTime:   "22:30:00",
		},
		{
			name: "end time wraps past midnight",
			dates: &ticketmaster.Dates{Start: &ticketmaster.StartDate{
				LocalDate: "2025-06-15",
				LocalTime: "22:00:00",
			}},
			wantStartDate: "2025-06-15",
			wantStartTime: "22:00:00",
			wantEndTime:   "01:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.Normalize(ticketmaster.RawEvent{Dates: tt.dates})
			if got.StartDate != tt.wantStartDate {
				t.Errorf("StartDate = %q, want %q", got.StartDate, tt.wantStartDate)
			}
			if got.StartTime != tt.wantStartTime {
				t.Errorf("StartTime = %q, want %q", got.StartTime, tt.wantStartTime)
			}
			if got.EndTime != tt.wantEndTime {
				t.Errorf("EndTime = %q, want %q", got.EndTime, tt.wantEndTime)
			}
		})
	}
}

func TestNormalize_Passthrough(t *testing.T) {
	raw := ticketmaster.RawEvent{
		ID:   "ev123",
		Name: "Jazz Night",
		URL:  "https://example.com/ev123",
	}

	got := events.Normalize(raw)

	if got.ID != "ev123" {
		t.Errorf("ID = %q, want %q", got.ID, "ev123")
	}
	if got.Title != "Jazz Night" {
		t.Errorf("Title = %q, want %q", got.Title, "Jazz Night")
	}
	if got.URL != "https://example.com/ev123" {
		t.Errorf("URL = %q, want %q", got.URL, "https://example.com/ev123")
	}

	// URL defaults to empty when absent
	if got := events.Normalize(ticketmaster.RawEvent{ID: "ev124"}); got.URL != "" {
		t.Errorf("URL = %q, want empty string", got.URL)
	}
}
