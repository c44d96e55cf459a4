// Package dateutil provides the pure calendar arithmetic behind the week and
// month views: grid construction, week spans, range membership and the Korean
// date labels used by the UI layer.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// View is the active calendar granularity.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Direction moves a reference date backward or forward through a view.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// DaysInMonth returns the number of days in the given 1-indexed month.
// Out-of-range months roll over by date arithmetic, so the result is
// always a valid day count.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// WeekDates returns the Sunday-to-Saturday span containing ref, inclusive.
// Each entry is midnight local time.
func WeekDates(ref time.Time) []time.Time {
	sunday := startOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeeksInMonth partitions the month containing ref into week rows of 7 cells.
// Cells before day 1 and after the last day hold no value.
func WeeksInMonth(ref time.Time) [][7]mo.Option[int] {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	days := DaysInMonth(ref.Year(), int(ref.Month()))
	lead := int(first.Weekday())

	weeks := make([][7]mo.Option[int], (lead+days+6)/7)
	for day := 1; day <= days; day++ {
		cell := lead + day - 1
		weeks[cell/7][cell%7] = mo.Some(day)
	}
	return weeks
}

// IsDateInRange reports whether date falls within [start, end], inclusive on
// both ends. A range with start after end contains nothing.
func IsDateInRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// Navigate moves ref one step through the given view: a week view shifts by
// seven days, a month view lands on the first day of the adjacent month.
func Navigate(ref time.Time, view View, dir Direction) time.Time {
	step := 1
	if dir == Prev {
		step = -1
	}
	if view == ViewWeek {
		return ref.AddDate(0, 0, 7*step)
	}
	return time.Date(ref.Year(), ref.Month()+time.Month(step), 1, 0, 0, 0, 0, ref.Location())
}

// FillZero left-pads value with zeros to the given width (default 2). Values
// already at or beyond the width are returned unchanged; fractional digits
// count toward the width but are never padded themselves.
func FillZero(value float64, size ...int) string {
	width := 2
	if len(size) > 0 {
		width = size[0]
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// FormatDate renders t as YYYY-MM-DD. An explicit day replaces t's day of
// month.
func FormatDate(t time.Time, day ...int) string {
	d := t.Day()
	if len(day) > 0 {
		d = day[0]
	}
	return fmt.Sprintf("%d-%s-%s", t.Year(), FillZero(float64(t.Month())), FillZero(float64(d)))
}

// FormatMonth renders t's month as "<year>년 <month>월".
func FormatMonth(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), t.Month())
}

// FormatWeek renders t's week as "<year>년 <month>월 <n>주". A week crossing a
// month boundary is attributed to the month holding most of its days, which
// for a Sunday-start week is the month containing its Thursday.
func FormatWeek(t time.Time) string {
	thursday := startOfDay(t).AddDate(0, 0, int(time.Thursday)-int(t.Weekday()))
	week := (thursday.Day()-1)/7 + 1
	return fmt.Sprintf("%d년 %d월 %d주", thursday.Year(), thursday.Month(), week)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
