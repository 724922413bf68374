package tracing

// Span attribute keys used across vitrine's traces.
const (
	// Catalog attributes
	AttrProductID   = "product.id"
	AttrProductSlug = "product.slug"
	AttrOrderID     = "order.id"
	AttrUserID      = "user.id"
	AttrImageRef    = "image.ref"

	// Rotation attributes
	AttrEntityID      = "rotation.entity.id"
	AttrCommittedIdx  = "rotation.committed_index"
	AttrRotationPhase = "rotation.phase"

	// Query attributes
	AttrQueryKind  = "query.kind"
	AttrResultSize = "query.result_size"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixRepo     = "repo."
	SpanPrefixRotation = "rotation."
	SpanPrefixMode     = "mode."
)

// Event names for span events.
const (
	EventImageCommitted    = "rotation.image_committed"
	EventTransitionStarted = "rotation.transition_started"
	EventTransitionSettled = "rotation.transition_settled"
	EventCacheFlushed      = "cache.flushed"
	EventCatalogReloaded   = "catalog.reloaded"
	EventErrorOccurred     = "error.occurred"
)
