package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vitrine/internal/rotation"
)

// RotationSink decorates another rotation.Sink with trace spans so exports
// show when fades start, images commit, and transitions settle. The rotator
// invokes sinks with its lock held; span creation is cheap and the batch
// exporter does its work off this path.
type RotationSink struct {
	inner  rotation.Sink
	tracer trace.Tracer
}

// NewRotationSink wraps inner, recording each lifecycle callback on tracer.
func NewRotationSink(inner rotation.Sink, tracer trace.Tracer) *RotationSink {
	return &RotationSink{inner: inner, tracer: tracer}
}

var _ rotation.Sink = (*RotationSink)(nil)

func (s *RotationSink) TransitionStarted(entityID string) {
	_, span := s.tracer.Start(context.Background(), SpanPrefixRotation+"transition",
		trace.WithAttributes(attribute.String(AttrEntityID, entityID)))
	span.AddEvent(EventTransitionStarted)
	span.End()

	s.inner.TransitionStarted(entityID)
}

func (s *RotationSink) ImageCommitted(ev rotation.CommitEvent) {
	_, span := s.tracer.Start(context.Background(), SpanPrefixRotation+"commit",
		trace.WithAttributes(
			attribute.String(AttrEntityID, ev.EntityID),
			attribute.Int(AttrCommittedIdx, ev.Index),
			attribute.String(AttrImageRef, string(ev.Ref)),
		))
	span.AddEvent(EventImageCommitted)
	span.End()

	s.inner.ImageCommitted(ev)
}

func (s *RotationSink) TransitionSettled(entityID string) {
	_, span := s.tracer.Start(context.Background(), SpanPrefixRotation+"transition",
		trace.WithAttributes(attribute.String(AttrEntityID, entityID)))
	span.AddEvent(EventTransitionSettled)
	span.End()

	s.inner.TransitionSettled(entityID)
}
