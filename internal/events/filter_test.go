package events_test

import (
	"testing"

	"github.com/amokewustl/belong-chivent/internal/events"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

func TestQualifies(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  bool
	}{
		{"price and image", models.Event{HasPrice: true, HasImage: true}, true},
		{"price without image", models.Event{HasPrice: true, HasImage: false}, false},
		{"image without price", models.Event{HasPrice: false, HasImage: true}, false},
		{"neither", models.Event{}, false},
		{"description is not part of the bar", models.Event{HasPrice: true, HasImage: true, HasDescription: false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := events.Qualifies(tt.event); got != tt.want {
				t.Errorf("Qualifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterQualifying(t *testing.T) {
	all := []models.Event{
		{ID: "a", HasPrice: true, HasImage: true},
		{ID: "b", HasPrice: true, HasImage: false},
		{ID: "c", HasPrice: false, HasImage: true},
		{ID: "d", HasPrice: true, HasImage: true},
	}

	got := events.FilterQualifying(all)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "d" {
		t.Errorf("kept IDs = %s, %s; want a, d", got[0].ID, got[1].ID)
	}
}
