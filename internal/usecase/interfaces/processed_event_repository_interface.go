package interfaces

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
)

// IProcessedEventRepository stores one idempotency record per provider event.
//
// Insert is an atomic insert-if-absent and fails with ErrEventAlreadyClaimed
// when the id exists. DeleteUnprocessed only removes records that were never
// marked processed and fails with ErrEventNotFound when there is no such
// record.

type IProcessedEventRepository interface {
	Get(ctx context.Context, eventID string) (entities.ProcessedEvent, error)
	Insert(ctx context.Context, e entities.ProcessedEvent) error
	MarkProcessed(ctx context.Context, eventID string) error
	DeleteUnprocessed(ctx context.Context, eventID string) error
}
