package event

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

const productID = "-//iljeong//Calendar Core//KO"

var repeatFrequencies = map[RepeatType]rrule.Frequency{
	RepeatDaily:   rrule.DAILY,
	RepeatWeekly:  rrule.WEEKLY,
	RepeatMonthly: rrule.MONTHLY,
	RepeatYearly:  rrule.YEARLY,
}

// ToICS renders an event as a single-VEVENT iCalendar document. The repeat
// tag becomes an RRULE; events whose date or times do not parse cannot be
// exported and return an error.
func ToICS(ev Event) (string, error) {
	rng := ToDateRange(ev)
	if !IsValid(rng.Start) {
		return "", fmt.Errorf("event %q has no valid time range", ev.ID)
	}

	ie := ical.NewEvent()
	ie.Props.SetText(ical.PropUID, ev.ID)
	ie.Props.SetText(ical.PropSummary, ev.Title)
	if ev.Description != "" {
		ie.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		ie.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Category != "" {
		ie.Props.SetText(ical.PropCategories, ev.Category)
	}
	ie.Props.SetDateTime(ical.PropDateTimeStamp, rng.Start.UTC())
	ie.Props.SetDateTime(ical.PropDateTimeStart, rng.Start.UTC())
	ie.Props.SetDateTime(ical.PropDateTimeEnd, rng.End.UTC())
	if rule := repeatRule(ev.Repeat); rule != "" {
		ie.Props.Set(&ical.Prop{Name: ical.PropRecurrenceRule, Value: rule})
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, ie.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}

// FromICS parses an iCalendar document holding exactly one VEVENT back into
// an event record.
func FromICS(ics string) (Event, error) {
	cal, err := ical.NewDecoder(strings.NewReader(ics)).Decode()
	if err != nil {
		return Event{}, fmt.Errorf("failed to decode calendar: %w", err)
	}

	events := cal.Events()
	if len(events) == 0 {
		return Event{}, fmt.Errorf("no events found in calendar")
	}
	if len(events) > 1 {
		return Event{}, fmt.Errorf("multiple events found in calendar")
	}
	ie := events[0]

	start, err := ie.DateTimeStart(time.Local)
	if err != nil {
		return Event{}, fmt.Errorf("failed to read event start: %w", err)
	}
	end, err := ie.DateTimeEnd(time.Local)
	if err != nil {
		return Event{}, fmt.Errorf("failed to read event end: %w", err)
	}
	start, end = start.In(time.Local), end.In(time.Local)

	ev := Event{
		ID:          textProp(ie, ical.PropUID),
		Title:       textProp(ie, ical.PropSummary),
		Date:        start.Format("2006-01-02"),
		StartTime:   start.Format("15:04"),
		EndTime:     end.Format("15:04"),
		Description: textProp(ie, ical.PropDescription),
		Location:    textProp(ie, ical.PropLocation),
		Category:    textProp(ie, ical.PropCategories),
		Repeat:      Repeat{Type: RepeatNone, Interval: 0},
	}
	if rule := textProp(ie, ical.PropRecurrenceRule); rule != "" {
		repeat, err := parseRepeatRule(rule)
		if err != nil {
			return Event{}, err
		}
		ev.Repeat = repeat
	}
	return ev, nil
}

func repeatRule(r Repeat) string {
	freq, ok := repeatFrequencies[r.Type]
	if !ok {
		return ""
	}
	opt := rrule.ROption{Freq: freq}
	if r.Interval > 0 {
		opt.Interval = r.Interval
	}
	return opt.RRuleString()
}

func parseRepeatRule(rule string) (Repeat, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return Repeat{}, fmt.Errorf("failed to parse RRULE %q: %w", rule, err)
	}
	for repeatType, freq := range repeatFrequencies {
		if freq == opt.Freq {
			interval := opt.Interval
			if interval == 0 {
				interval = 1
			}
			return Repeat{Type: repeatType, Interval: interval}, nil
		}
	}
	return Repeat{}, fmt.Errorf("unsupported RRULE frequency in %q", rule)
}

func textProp(ie ical.Event, name string) string {
	p := ie.Props.Get(name)
	if p == nil {
		return ""
	}
	return p.Value
}
