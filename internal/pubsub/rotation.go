package pubsub

import (
	"github.com/zjrosen/vitrine/internal/rotation"
)

// RotationSink bridges rotation scheduler callbacks onto a broker so the
// Bubble Tea loop can observe commits without polling. The rotator invokes
// sinks with its lock held; Publish is non-blocking, which satisfies the
// return-quickly contract.
type RotationSink struct {
	broker *Broker[RotationUpdate]
}

// NewRotationSink wraps a broker as a rotation.Sink.
func NewRotationSink(broker *Broker[RotationUpdate]) *RotationSink {
	return &RotationSink{broker: broker}
}

var _ rotation.Sink = (*RotationSink)(nil)

// TransitionStarted publishes the fade-out start for an entity.
func (s *RotationSink) TransitionStarted(entityID string) {
	s.broker.Publish(TransitionStartedEvent, RotationUpdate{EntityID: entityID})
}

// ImageCommitted publishes the committed index at the crossfade midpoint.
func (s *RotationSink) ImageCommitted(ev rotation.CommitEvent) {
	s.broker.Publish(ImageCommittedEvent, RotationUpdate{
		EntityID: ev.EntityID,
		Index:    ev.Index,
		Total:    ev.Indicator.Total,
		Ref:      string(ev.Ref),
	})
}

// TransitionSettled publishes the fade-in completion for an entity.
func (s *RotationSink) TransitionSettled(entityID string) {
	s.broker.Publish(TransitionSettledEvent, RotationUpdate{EntityID: entityID})
}
