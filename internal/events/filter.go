package events

import "github.com/amokewustl/belong-chivent/pkg/models"

// Qualifies reports whether an event meets the completeness bar for display:
// a known price and a real image. Description completeness is deliberately
// not part of the bar.
func Qualifies(e models.Event) bool {
	return e.HasPrice && e.HasImage
}

// FilterQualifying keeps only events that pass the completeness bar.
func FilterQualifying(all []models.Event) []models.Event {
	var filtered []models.Event
	for _, e := range all {
		if Qualifies(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
