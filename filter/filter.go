// Package filter composes the free-text event search with the week/month view
// window. Both predicates are exported so the search box and the calendar
// grid can use them independently.
package filter

import (
	"strings"
	"time"

	"github.com/iljeong-app/iljeong/dateutil"
	"github.com/iljeong-app/iljeong/event"
)

// Search returns the events matching term, preserving input order. Matching
// is a case-insensitive substring test against title, description and
// location; an empty term matches everything.
func Search(events []event.Event, term string) []event.Event {
	matched := []event.Event{}
	for _, ev := range events {
		if Matches(ev, term) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// Matches reports whether a single event matches the search term.
func Matches(ev event.Event, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range []string{ev.Title, ev.Description, ev.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// InView reports whether the event's date falls inside the view window anchored
// at ref: the ref's Sunday-to-Saturday week, or its calendar month. Events
// with unparseable dates are never in view.
func InView(ev event.Event, ref time.Time, view dateutil.View) bool {
	date := event.ParseDate(ev.Date)
	if !event.IsValid(date) {
		return false
	}
	switch view {
	case dateutil.ViewWeek:
		week := dateutil.WeekDates(ref)
		return dateutil.IsDateInRange(date, week[0], week[6])
	case dateutil.ViewMonth:
		return date.Year() == ref.Year() && date.Month() == ref.Month()
	}
	return false
}

// FilteredEvents intersects Search with InView, preserving input order. This
// is the composed entry point the calendar views depend on.
func FilteredEvents(events []event.Event, term string, ref time.Time, view dateutil.View) []event.Event {
	filtered := []event.Event{}
	for _, ev := range events {
		if Matches(ev, term) && InView(ev, ref, view) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
