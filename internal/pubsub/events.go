// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"

	// Rotation lifecycle events bridged into the Bubble Tea loop.
	TransitionStartedEvent EventType = "transition_started"
	ImageCommittedEvent    EventType = "image_committed"
	TransitionSettledEvent EventType = "transition_settled"

	// CatalogReloadedEvent fires when the watcher detects an external
	// change to the catalog database.
	CatalogReloadedEvent EventType = "catalog_reloaded"

	// Carousel loop events bridged into the Bubble Tea loop.
	CarouselFrameEvent EventType = "carousel_frame"
	CarouselSnapEvent  EventType = "carousel_snap"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// RotationUpdate is the payload carried by rotation lifecycle events.
// Index and Total are only meaningful for ImageCommittedEvent; started and
// settled events carry just the entity id.
type RotationUpdate struct {
	EntityID string
	Index    int
	Total    int
	Ref      string
}

// CarouselFrame is the payload carried by carousel loop events. Slide and
// Total are only meaningful for CarouselSnapEvent.
type CarouselFrame struct {
	Position float64
	Slide    int
	Total    int
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
