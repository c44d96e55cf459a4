package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iljeong-app/iljeong/event"
	"github.com/iljeong-app/iljeong/internal/clock"
)

// Source supplies the current event collection on each check.
type Source func(ctx context.Context) ([]event.Event, error)

// Sink receives one reminder per qualifying event.
type Sink func(Notification)

// Scheduler runs the recurring notification check. It owns the notified set
// per the caller contract: an id is marked immediately after its reminder is
// emitted and stays suppressed until Reset. The check logic itself stays in
// UpcomingEvents; the scheduler only supplies events, the clock and the set.
type Scheduler struct {
	source Source
	sink   Sink
	clock  clock.Clock
	tick   time.Duration
	logger *slog.Logger

	cron *cron.Cron

	mu       sync.Mutex
	notified map[string]bool
}

// NewScheduler builds a scheduler. A nil clock falls back to the system
// clock, a nil logger to slog's default, and a non-positive tick to one
// second.
func NewScheduler(source Source, sink Sink, clk clock.Clock, tick time.Duration, logger *slog.Logger) *Scheduler {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if tick <= 0 {
		tick = time.Second
	}
	return &Scheduler{
		source:   source,
		sink:     sink,
		clock:    clk,
		tick:     tick,
		logger:   logger,
		notified: make(map[string]bool),
	}
}

// Start begins checking every tick until Stop is called.
func (s *Scheduler) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.tick), s.Check); err != nil {
		return fmt.Errorf("failed to schedule notification check: %w", err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("notification scheduler started", "tick", s.tick)
	return nil
}

// Stop halts the check loop, waiting for an in-flight check to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Check runs a single notification cycle: fetch events, emit a reminder for
// each event inside its window, mark it notified. Safe to call directly; the
// cron loop does nothing else.
func (s *Scheduler) Check() {
	events, err := s.source(context.Background())
	if err != nil {
		s.logger.Error("failed to fetch events for notification check", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range UpcomingEvents(events, s.clock.Now(), s.notified) {
		s.sink(Notification{ID: ev.ID, Message: Message(ev)})
		s.notified[ev.ID] = true
	}
}

// Reset clears the notified set, re-arming every reminder.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = make(map[string]bool)
}
