package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iljeong-app/iljeong/event"
	"github.com/iljeong-app/iljeong/internal/clock"
)

func fixture() []event.Event {
	return []event.Event{
		{
			ID:               "1",
			Title:            "기존 회의",
			Date:             "2025-10-01",
			StartTime:        "09:00",
			EndTime:          "10:00",
			Description:      "기존 팀 미팅",
			Location:         "회의실 B",
			Category:         "업무",
			Repeat:           event.Repeat{Type: event.RepeatNone, Interval: 0},
			NotificationTime: 10,
		},
		{
			ID:               "2",
			Title:            "점심 약속",
			Date:             "2025-10-15",
			StartTime:        "12:00",
			EndTime:          "13:00",
			Repeat:           event.Repeat{Type: event.RepeatNone, Interval: 0},
			NotificationTime: 10,
		},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.October, 1, hour, min, 0, 0, time.Local)
}

func TestUpcomingEvents(t *testing.T) {
	events := fixture()

	t.Run("event inside its window is returned", func(t *testing.T) {
		got := UpcomingEvents(events, at(8, 50), nil)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("already notified events are suppressed", func(t *testing.T) {
		got := UpcomingEvents(events, at(8, 50), map[string]bool{"1": true})
		assert.Empty(t, got)
	})

	t.Run("before the window opens nothing fires", func(t *testing.T) {
		assert.Empty(t, UpcomingEvents(events, at(8, 40), nil))
	})

	t.Run("after the event starts nothing fires", func(t *testing.T) {
		assert.Empty(t, UpcomingEvents(events, at(9, 10), nil))
	})

	t.Run("the event start instant itself is excluded", func(t *testing.T) {
		assert.Empty(t, UpcomingEvents(events, at(9, 0), nil))
	})

	t.Run("unparseable events never fire", func(t *testing.T) {
		broken := []event.Event{{ID: "x", Date: "2025-50-01", StartTime: "09:00", NotificationTime: 10}}
		assert.Empty(t, UpcomingEvents(broken, at(8, 50), nil))
	})
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "10분 후 기존 회의 일정이 시작됩니다.", Message(fixture()[0]))
}

func TestSchedulerCheck(t *testing.T) {
	var emitted []Notification
	source := func(context.Context) ([]event.Event, error) { return fixture(), nil }
	sink := func(n Notification) { emitted = append(emitted, n) }
	clk := clock.Fixed{T: at(8, 50)}

	s := NewScheduler(source, sink, clk, time.Second, nil)

	s.Check()
	require.Len(t, emitted, 1)
	assert.Equal(t, Notification{ID: "1", Message: "10분 후 기존 회의 일정이 시작됩니다."}, emitted[0])

	// Rechecking the same instant must not fire again.
	s.Check()
	assert.Len(t, emitted, 1)

	// Reset re-arms every reminder, as a fresh session would.
	s.Reset()
	s.Check()
	assert.Len(t, emitted, 2)
}

func TestSchedulerSourceError(t *testing.T) {
	calls := 0
	source := func(context.Context) ([]event.Event, error) { return nil, errors.New("store down") }
	sink := func(Notification) { calls++ }

	s := NewScheduler(source, sink, clock.Fixed{T: at(8, 50)}, time.Second, nil)
	s.Check()
	assert.Zero(t, calls)
}
