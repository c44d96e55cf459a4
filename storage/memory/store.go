// memory based implementation for testing and single-process serving
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iljeong-app/iljeong/event"
	"github.com/iljeong-app/iljeong/filter"
	"github.com/iljeong-app/iljeong/storage"
)

// Store implements storage.EventStore using in-memory maps, preserving
// insertion order across listings.
type Store struct {
	mu     sync.RWMutex
	events map[string]event.Event
	order  []string
}

// New creates a new in-memory event store.
func New() *Store {
	return &Store{
		events: make(map[string]event.Event),
	}
}

func (s *Store) List(_ context.Context, opts *storage.ListOptions) ([]event.Event, error) {
	s.mu.RLock()
	events := make([]event.Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	s.mu.RUnlock()

	if opts == nil {
		return events, nil
	}
	if opts.View != "" {
		return filter.FilteredEvents(events, opts.Search, opts.Reference, opts.View), nil
	}
	if opts.Search != "" {
		return filter.Search(events, opts.Search), nil
	}
	return events, nil
}

func (s *Store) Get(_ context.Context, id string) (event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	if !ok {
		return event.Event{}, &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "event not found",
		}
	}
	return ev, nil
}

func (s *Store) Create(_ context.Context, ev event.Event) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if _, exists := s.events[ev.ID]; exists {
		return event.Event{}, &storage.Error{
			Type:    storage.ErrAlreadyExists,
			Message: "event already exists",
		}
	}

	s.events[ev.ID] = ev
	s.order = append(s.order, ev.ID)
	return ev, nil
}

func (s *Store) Update(_ context.Context, ev event.Event) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[ev.ID]; !exists {
		return event.Event{}, &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "event not found",
		}
	}

	s.events[ev.ID] = ev
	return ev, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[id]; !exists {
		return &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "event not found",
		}
	}

	delete(s.events, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Replace(_ context.Context, events []event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make(map[string]event.Event, len(events))
	s.order = s.order[:0]
	for _, ev := range events {
		if _, exists := s.events[ev.ID]; !exists {
			s.order = append(s.order, ev.ID)
		}
		s.events[ev.ID] = ev
	}
	return nil
}
