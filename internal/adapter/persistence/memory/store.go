// Package memory keeps purchases, customers and processed events in process
// memory. It backs STORE_DRIVER=memory and the end-to-end tests, with the
// same conditional-write semantics as the DynamoDB repositories.
package memory

import (
	"context"
	"sync"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	purchases map[string]entities.Purchase // by session id
	tokens    map[string]string            // access token -> session id
	customers map[string]entities.Customer // by id
	events    map[string]entities.ProcessedEvent

	now func() time.Time
}

var (
	_ interfaces.IPurchaseRepository       = (*Store)(nil)
	_ interfaces.ICustomerRepository       = (*Store)(nil)
	_ interfaces.IProcessedEventRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		purchases: map[string]entities.Purchase{},
		tokens:    map[string]string{},
		customers: map[string]entities.Customer{},
		events:    map[string]entities.ProcessedEvent{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Purchases returns a snapshot of every stored purchase.
func (s *Store) Purchases() []entities.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	return out
}

// Counts reports how many rows each collection holds.
func (s *Store) Counts() (purchases, customers, events int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.purchases), len(s.customers), len(s.events)
}

func (s *Store) Create(_ context.Context, sessionID, customerID string, amountCents int64, currency string) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchases[sessionID]; ok {
		return entities.Purchase{}, entities.ErrPurchaseAlreadyExists
	}
	p := entities.Purchase{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		CustomerID:  customerID,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      entities.PurchaseStatusPending,
		CreatedAt:   s.now(),
	}
	s.purchases[sessionID] = p
	return p, nil
}

func (s *Store) FindBySessionID(_ context.Context, sessionID string) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[sessionID]
	if !ok {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}
	return p, nil
}

func (s *Store) FindByAccessToken(_ context.Context, token string) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchaseForToken(token)
	if !ok || p.Status != entities.PurchaseStatusCompleted {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}
	return p, nil
}

func (s *Store) FindByPaymentIntentID(_ context.Context, paymentIntentID string) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.purchases {
		if paymentIntentID != "" && p.PaymentIntentID == paymentIntentID {
			return p, nil
		}
	}
	return entities.Purchase{}, entities.ErrPurchaseNotFound
}

func (s *Store) CompleteWithToken(_ context.Context, sessionID, accessToken, paymentIntentID string) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[sessionID]
	switch {
	case !ok:
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	case p.Status == entities.PurchaseStatusCompleted || p.AccessToken != "":
		return p, entities.ErrPurchaseAlreadyCompleted
	case !p.Status.CanTransitionTo(entities.PurchaseStatusCompleted):
		return p, entities.ErrInvalidStatusTransition
	}
	if _, taken := s.tokens[accessToken]; taken {
		return entities.Purchase{}, entities.ErrAccessTokenConflict
	}

	now := s.now()
	p.Status = entities.PurchaseStatusCompleted
	p.AccessToken = accessToken
	p.CompletedAt = &now
	if paymentIntentID != "" {
		p.PaymentIntentID = paymentIntentID
	}
	s.purchases[sessionID] = p
	s.tokens[accessToken] = sessionID
	return p, nil
}

func (s *Store) MarkFailed(_ context.Context, sessionID string) (entities.Purchase, error) {
	return s.transition(sessionID, func(p *entities.Purchase) { p.Status = entities.PurchaseStatusFailed })
}

func (s *Store) MarkExpired(_ context.Context, sessionID string) (entities.Purchase, error) {
	return s.transition(sessionID, func(p *entities.Purchase) { p.Status = entities.PurchaseStatusExpired })
}

func (s *Store) AttachPaymentIntent(_ context.Context, sessionID, paymentIntentID string) (entities.Purchase, error) {
	return s.transition(sessionID, func(p *entities.Purchase) { p.PaymentIntentID = paymentIntentID })
}

func (s *Store) transition(sessionID string, apply func(*entities.Purchase)) (entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[sessionID]
	if !ok {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}
	if p.Status != entities.PurchaseStatusPending {
		return p, entities.ErrInvalidStatusTransition
	}
	apply(&p)
	s.purchases[sessionID] = p
	return p, nil
}

func (s *Store) TouchLastAccessed(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchaseForToken(token)
	if !ok || p.Status != entities.PurchaseStatusCompleted {
		return entities.ErrPurchaseNotFound
	}
	now := s.now()
	p.LastAccessedAt = &now
	s.purchases[p.SessionID] = p
	return nil
}

// purchaseForToken must be called with mu held.
func (s *Store) purchaseForToken(token string) (entities.Purchase, bool) {
	sessionID, ok := s.tokens[token]
	if !ok {
		return entities.Purchase{}, false
	}
	p, ok := s.purchases[sessionID]
	return p, ok && p.AccessToken == token
}

func (s *Store) FindOrCreate(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Email = entities.NormalizeEmail(c.Email)
	c.ID = entities.CustomerIDForEmail(c.Email)
	if existing, ok := s.customers[c.ID]; ok {
		return existing, false, nil
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.customers[c.ID] = c
	return c, true, nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return c, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (entities.Customer, error) {
	return s.GetByID(ctx, entities.CustomerIDForEmail(email))
}

func (s *Store) BackfillIdentity(_ context.Context, id string, identity entities.Customer) (entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if c.FirstName == "" {
		c.FirstName = identity.FirstName
	}
	if c.LastName == "" {
		c.LastName = identity.LastName
	}
	if c.ProviderCustomerID == "" {
		c.ProviderCustomerID = identity.ProviderCustomerID
	}
	s.customers[id] = c
	return c, nil
}

func (s *Store) Get(_ context.Context, eventID string) (entities.ProcessedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return entities.ProcessedEvent{}, entities.ErrEventNotFound
	}
	return e, nil
}

func (s *Store) Insert(_ context.Context, e entities.ProcessedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ProviderEventID]; ok {
		return entities.ErrEventAlreadyClaimed
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.Processed = false
	e.ProcessedAt = nil
	s.events[e.ProviderEventID] = e
	return nil
}

func (s *Store) MarkProcessed(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return entities.ErrEventNotFound
	}
	now := s.now()
	e.Processed = true
	e.ProcessedAt = &now
	s.events[eventID] = e
	return nil
}

func (s *Store) DeleteUnprocessed(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok || e.Processed {
		return entities.ErrEventNotFound
	}
	delete(s.events, eventID)
	return nil
}
