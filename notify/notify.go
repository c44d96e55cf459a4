// Package notify decides when in-app reminders fire. The check itself is a
// pure function over an explicit current time and a caller-held set of
// already-notified ids; Scheduler is the host-side loop that drives it.
package notify

import (
	"fmt"
	"time"

	"github.com/iljeong-app/iljeong/event"
)

// Notification is the plain record handed to whatever displays reminders.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpcomingEvents returns the events whose notification window contains now
// and whose id has not been notified yet, preserving input order. The window
// is half-open: it opens notificationTime minutes before the event start and
// closes at the start itself, so a reminder never fires once the event has
// begun.
func UpcomingEvents(events []event.Event, now time.Time, notified map[string]bool) []event.Event {
	upcoming := []event.Event{}
	for _, ev := range events {
		if notified[ev.ID] {
			continue
		}
		start := event.ParseDateTime(ev.Date, ev.StartTime)
		if !event.IsValid(start) {
			continue
		}
		opens := start.Add(-time.Duration(ev.NotificationTime) * time.Minute)
		if !now.Before(opens) && now.Before(start) {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming
}

// Message renders the reminder text for an event.
func Message(ev event.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", ev.NotificationTime, ev.Title)
}
