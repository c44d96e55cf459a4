// Package storage defines the event store contract and its error model. The
// core packages never touch a store; only the transport and host layers do.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/iljeong-app/iljeong/dateutil"
	"github.com/iljeong-app/iljeong/event"
)

// Error types
type ErrorType string

const (
	ErrNotFound      ErrorType = "not_found"
	ErrAlreadyExists ErrorType = "already_exists"
	ErrInvalidInput  ErrorType = "invalid_input"
)

// Error represents a storage-related error
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ListOptions narrows a listing. The zero value lists every event in
// insertion order. Setting View applies the composed search/view filter
// anchored at Reference; setting only Search applies the text filter.
type ListOptions struct {
	Search    string
	Reference time.Time
	View      dateutil.View
}

// EventStore is the interface implemented by event storage backends.
type EventStore interface {
	List(ctx context.Context, opts *ListOptions) ([]event.Event, error)
	Get(ctx context.Context, id string) (event.Event, error)
	Create(ctx context.Context, ev event.Event) (event.Event, error)
	Update(ctx context.Context, ev event.Event) (event.Event, error)
	Delete(ctx context.Context, id string) error

	// Replace swaps the whole collection, preserving the given order. Used
	// by seed loading and live reload.
	Replace(ctx context.Context, events []event.Event) error
}
