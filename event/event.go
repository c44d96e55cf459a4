// Package event defines the calendar event record and the conversion of its
// date and time strings into concrete instants.
package event

// RepeatType tags how an event recurs. The tag is descriptive: it is carried
// on the record and serialized, but never expanded into instances.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// Repeat describes an event's recurrence tag.
type Repeat struct {
	Type     RepeatType `json:"type"`
	Interval int        `json:"interval"`
}

// Event is a single timed calendar entry. Date is a YYYY-MM-DD string and the
// time fields are HH:MM, 24-hour; malformed values degrade to the invalid
// instant wherever they are parsed rather than failing.
type Event struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	Repeat           Repeat `json:"repeat"`
	NotificationTime int    `json:"notificationTime"` // minutes before StartTime
}
