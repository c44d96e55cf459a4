// Package overlap detects scheduling conflicts between events. It only
// detects: the save flow decides what to do with a conflict.
package overlap

import "github.com/iljeong-app/iljeong/event"

// Overlapping reports whether two ranges intersect. Ranges are half-open, so
// back-to-back ranges sharing only an endpoint do not overlap. The invalid
// instant sorts after every real one, so a range containing it can never
// overlap anything.
func Overlapping(a, b event.DateRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FindOverlapping returns the events in existing whose time range overlaps
// the candidate's, preserving input order. An existing event sharing the
// candidate's id is skipped so that editing an event never conflicts with
// itself.
func FindOverlapping(candidate event.Event, existing []event.Event) []event.Event {
	target := event.ToDateRange(candidate)

	overlapping := []event.Event{}
	for _, ev := range existing {
		if ev.ID == candidate.ID {
			continue
		}
		if Overlapping(target, event.ToDateRange(ev)) {
			overlapping = append(overlapping, ev)
		}
	}
	return overlapping
}
