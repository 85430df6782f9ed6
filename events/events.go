// Package events provides the roster-change feed: every successful signup
// or unregister is published as an Event for downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type represents the kind of roster change
type Type string

const (
	TypeSignup     Type = "signup"
	TypeUnregister Type = "unregister"
)

// Event records a single roster change
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates an event with a generated ID
func New(t Type, activity, email string) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      t,
		Activity:  activity,
		Email:     email,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher defines the interface for emitting roster events
type Publisher interface {
	// Publish emits an event. Delivery is best effort; roster mutations
	// never roll back on publish failure.
	Publish(ctx context.Context, e *Event) error

	// Close releases publisher resources
	Close() error
}

// Subscriber is implemented by publishers that support local fan-out. The
// returned cancel func must be called when the subscription is done.
type Subscriber interface {
	Subscribe() (<-chan *Event, func())
}
