package entities

import "time"

// ProcessedEvent is the idempotency record of one provider event.
//
// Storage model (DynamoDB):
//   - PK: provider_event_id
//
// The record is created when the event is first claimed and flipped to
// processed once its handler finishes.
type ProcessedEvent struct {
	ProviderEventID string     `json:"provider_event_id"`
	EventType       string     `json:"event_type"`
	Processed       bool       `json:"processed"`
	CreatedAt       time.Time  `json:"created_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}
