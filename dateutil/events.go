package dateutil

import "github.com/iljeong-app/iljeong/event"

// EventsForDay returns the events whose date falls on the given day of month,
// preserving input order. Days outside 1..31 match nothing, as do events with
// unparseable dates.
func EventsForDay(events []event.Event, day int) []event.Event {
	matched := []event.Event{}
	for _, ev := range events {
		date := event.ParseDate(ev.Date)
		if !event.IsValid(date) {
			continue
		}
		if date.Day() == day {
			matched = append(matched, ev)
		}
	}
	return matched
}
