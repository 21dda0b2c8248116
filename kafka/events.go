package kafka

import "time"

// Topics
const (
	TopicCatalogEvents = "catalog.events"
)

// Event types
const (
	EventTypeProductCreated  = "catalog.product.created"
	EventTypeProductUpdated  = "catalog.product.updated"
	EventTypeProductDeleted  = "catalog.product.deleted"
	EventTypeCategoryChanged = "catalog.category.changed"
)

// CatalogEvent is published after every successful administrative write to
// the catalog. The gateway consumes it to invalidate cached responses.
type CatalogEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductID  string    `json:"product_id,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
