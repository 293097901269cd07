package usecase

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidEventID = errors.New("invalid event id")

// IEventGuard keeps provider deliveries idempotent.
//
// MarkSeen is the claim: it inserts the event id atomically and reports
// false when another delivery already holds it. ShouldProcess is a read-only
// probe for callers that only need to know.

type IEventGuard interface {
	ShouldProcess(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID, eventType string) (claimed bool, err error)
	MarkProcessed(ctx context.Context, eventID string) error
	Release(ctx context.Context, eventID string) error
}

type EventGuard struct {
	repo interfaces.IProcessedEventRepository
	now  func() time.Time
}

var _ IEventGuard = (*EventGuard)(nil)

func NewEventGuard(repo interfaces.IProcessedEventRepository) *EventGuard {
	return &EventGuard{repo: repo, now: time.Now}
}

func (g *EventGuard) ShouldProcess(ctx context.Context, eventID string) (bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return false, ErrInvalidEventID
	}
	_, err := g.repo.Get(ctx, eventID)
	if errors.Is(err, entities.ErrEventNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup event %s: %w", eventID, err)
	}
	return false, nil
}

func (g *EventGuard) MarkSeen(ctx context.Context, eventID, eventType string) (bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return false, ErrInvalidEventID
	}
	err := g.repo.Insert(ctx, entities.ProcessedEvent{
		ProviderEventID: eventID,
		EventType:       eventType,
		CreatedAt:       g.now().UTC(),
	})
	if errors.Is(err, entities.ErrEventAlreadyClaimed) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("claim event %s: %w", eventID, err)
	}
	return true, nil
}

func (g *EventGuard) MarkProcessed(ctx context.Context, eventID string) error {
	if err := g.repo.MarkProcessed(ctx, eventID); err != nil {
		return fmt.Errorf("mark event %s processed: %w", eventID, err)
	}
	return nil
}

// Release drops a claim whose processing failed, so that the provider's
// retry is handled again. Processed claims are kept.
func (g *EventGuard) Release(ctx context.Context, eventID string) error {
	err := g.repo.DeleteUnprocessed(ctx, eventID)
	if err != nil && !errors.Is(err, entities.ErrEventNotFound) {
		return fmt.Errorf("release event %s: %w", eventID, err)
	}
	return nil
}
