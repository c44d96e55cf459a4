package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTime(t *testing.T) {
	t.Run("valid date and time", func(t *testing.T) {
		got := ParseDateTime("2025-07-01", "14:30")
		want := time.Date(2025, time.July, 1, 14, 30, 0, 0, time.Local)
		assert.True(t, got.Equal(want), "got %v, want %v", got, want)
	})

	tests := []struct {
		name    string
		dateStr string
		timeStr string
	}{
		{"out-of-range month", "2025-50-01", "14:30"},
		{"out-of-range hour", "2025-07-01", "25:30"},
		{"out-of-range day", "2025-02-30", "14:30"},
		{"empty date", "", "14:30"},
		{"empty time", "2025-07-01", ""},
		{"garbage date", "not-a-date", "14:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, InvalidTime, ParseDateTime(tt.dateStr, tt.timeStr))
		})
	}
}

func TestInvalidTimeSentinel(t *testing.T) {
	// The sentinel is stable, equality-comparable and later than any parsed
	// instant, so interval logic rejects it without special cases.
	assert.Equal(t, InvalidTime, ParseDateTime("", ""))
	assert.False(t, IsValid(InvalidTime))
	assert.True(t, IsValid(ParseDateTime("2025-07-01", "14:30")))
	assert.True(t, InvalidTime.After(time.Date(9999, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestToDateRange(t *testing.T) {
	base := Event{
		ID:        "1",
		Title:     "기존 회의",
		Date:      "2025-10-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}

	t.Run("well-formed event", func(t *testing.T) {
		got := ToDateRange(base)
		assert.True(t, got.Start.Equal(time.Date(2025, time.October, 1, 9, 0, 0, 0, time.Local)))
		assert.True(t, got.End.Equal(time.Date(2025, time.October, 1, 10, 0, 0, 0, time.Local)))
	})

	t.Run("malformed date invalidates both endpoints", func(t *testing.T) {
		ev := base
		ev.Date = "2025-50-01"
		assert.Equal(t, DateRange{Start: InvalidTime, End: InvalidTime}, ToDateRange(ev))
	})

	t.Run("malformed end time invalidates both endpoints", func(t *testing.T) {
		ev := base
		ev.EndTime = "59:00"
		assert.Equal(t, DateRange{Start: InvalidTime, End: InvalidTime}, ToDateRange(ev))
	})
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2025-07-01")
	assert.True(t, got.Equal(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, InvalidTime, ParseDate(""))
	assert.Equal(t, InvalidTime, ParseDate("2025-13-01"))
}
