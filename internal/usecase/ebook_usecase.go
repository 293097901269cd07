package usecase

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidCustomerEmail        = errors.New("invalid customer email")
	ErrMissingSessionID            = errors.New("session_id is required")
	ErrMissingAccessToken          = errors.New("token is required")
	ErrPaymentNotCompleted         = errors.New("payment not completed")
	ErrAccessNotReady              = errors.New("access not yet granted")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// StatusError carries the provider or purchase status that blocked a request.
type StatusError struct {
	Err    error
	Status string
}

func (e *StatusError) Error() string { return fmt.Sprintf("%v (status=%s)", e.Err, e.Status) }

func (e *StatusError) Unwrap() error { return e.Err }

// EbookCatalog is the single digital good sold through the e-book checkout.
type EbookCatalog struct {
	Name        string
	Description string
	ImageURL    string
	PriceCents  int64
	Currency    string
	AppURL      string
	SessionTTL  time.Duration
	Source      string
}

func (c EbookCatalog) successURL() string {
	return strings.TrimRight(c.AppURL, "/") + "/sucesso.html?session_id={CHECKOUT_SESSION_ID}"
}

func (c EbookCatalog) cancelURL() string {
	return strings.TrimRight(c.AppURL, "/") + "/"
}

type EbookCheckout struct {
	SessionID  string
	URL        string
	CustomerID string
}

// AccessGrant is what a purchaser receives to open the e-book.
type AccessGrant struct {
	AccessToken   string
	CustomerEmail string
	CustomerName  string
	PurchaseDate  *time.Time
	// Existing is set when the token had been issued before this call.
	Existing bool
}

type AccessVerification struct {
	HasAccess     bool
	CustomerEmail string
	CustomerName  string
	PurchaseDate  *time.Time
}

// IEbookUseCase covers the purchaser-facing side of the e-book flow.
//
// Requested behavior:
//   - CreateCheckout registers the customer, opens a provider session and
//     pre-creates the pending purchase keyed by that session.
//   - VerifyAccess resolves a token; unknown tokens are not an error.
//   - GetAccessBySession returns the token after the success redirect.
//   - GrantManualAccess recovers access for a paid session the webhook
//     never completed.

type IEbookUseCase interface {
	CreateCheckout(ctx context.Context, email, name string) (EbookCheckout, error)
	VerifyAccess(ctx context.Context, token string) (AccessVerification, error)
	GetAccessBySession(ctx context.Context, sessionID string) (AccessGrant, error)
	GrantManualAccess(ctx context.Context, sessionID string) (AccessGrant, error)
}

type EbookUseCase struct {
	purchases interfaces.IPurchaseRepository
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	tokens    interfaces.ITokenIssuer
	catalog   EbookCatalog
	logger    *zap.Logger
}

var _ IEbookUseCase = (*EbookUseCase)(nil)

func NewEbookUseCase(purchases interfaces.IPurchaseRepository, customers interfaces.ICustomerRepository, gateway interfaces.IPaymentGateway, tokens interfaces.ITokenIssuer, catalog EbookCatalog, logger *zap.Logger) *EbookUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EbookUseCase{
		purchases: purchases,
		customers: customers,
		gateway:   gateway,
		tokens:    tokens,
		catalog:   catalog,
		logger:    logger.Named("ebook"),
	}
}

func (u *EbookUseCase) CreateCheckout(ctx context.Context, email, name string) (EbookCheckout, error) {
	email = entities.NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return EbookCheckout{}, ErrInvalidCustomerEmail
	}
	if u.gateway == nil {
		return EbookCheckout{}, ErrPaymentGatewayNotConfigured
	}

	customer, created, err := u.customers.FindOrCreate(ctx, entities.NewCustomer(email, name, nowUTC()))
	if err != nil {
		return EbookCheckout{}, fmt.Errorf("find or create customer: %w", err)
	}
	if created {
		u.logger.Info("customer created", zap.String("customer_id", customer.ID))
	}

	ttl := u.catalog.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
		Currency: u.catalog.Currency,
		LineItems: []entities.CheckoutLineItem{{
			Name:            u.catalog.Name,
			Description:     u.catalog.Description,
			ImageURL:        u.catalog.ImageURL,
			UnitAmountCents: u.catalog.PriceCents,
			Quantity:        1,
			Metadata:        map[string]string{"product_type": "digital_ebook", "category": "curso_digital"},
		}},
		CustomerEmail: email,
		SuccessURL:    u.catalog.successURL(),
		CancelURL:     u.catalog.cancelURL(),
		ExpiresAt:     nowUTC().Add(ttl),
		Metadata: map[string]string{
			entities.MetadataCustomerID:  customer.ID,
			entities.MetadataProductType: entities.ProductTypeEbook,
			entities.MetadataSource:      u.catalog.Source,
		},
	})
	if err != nil {
		u.logger.Error("checkout session creation failed", zap.String("customer_id", customer.ID), zap.Error(err))
		return EbookCheckout{}, err
	}

	// Without the pending row the webhook would treat the session as untracked.
	if _, err := u.purchases.Create(ctx, session.ID, customer.ID, u.catalog.PriceCents, u.catalog.Currency); err != nil {
		u.logger.Error("pending purchase not stored", zap.String("session_id", session.ID), zap.Error(err))
		return EbookCheckout{}, fmt.Errorf("create pending purchase: %w", err)
	}
	u.logger.Info("ebook checkout created", zap.String("session_id", session.ID), zap.String("customer_id", customer.ID))

	return EbookCheckout{SessionID: session.ID, URL: session.URL, CustomerID: customer.ID}, nil
}

func (u *EbookUseCase) VerifyAccess(ctx context.Context, token string) (AccessVerification, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AccessVerification{}, ErrMissingAccessToken
	}
	p, err := u.purchases.FindByAccessToken(ctx, token)
	if errors.Is(err, entities.ErrPurchaseNotFound) {
		return AccessVerification{HasAccess: false}, nil
	}
	if err != nil {
		return AccessVerification{}, err
	}
	if err := u.purchases.TouchLastAccessed(ctx, token); err != nil {
		u.logger.Warn("last access not recorded", zap.String("token_prefix", tokenPrefix(token)), zap.Error(err))
	}
	email, name := u.customerIdentity(ctx, p.CustomerID)
	return AccessVerification{
		HasAccess:     true,
		CustomerEmail: email,
		CustomerName:  name,
		PurchaseDate:  p.CompletedAt,
	}, nil
}

func (u *EbookUseCase) GetAccessBySession(ctx context.Context, sessionID string) (AccessGrant, error) {
	session, err := u.paidSession(ctx, sessionID)
	if err != nil {
		return AccessGrant{}, err
	}
	p, err := u.purchases.FindBySessionID(ctx, session.ID)
	if err != nil {
		return AccessGrant{}, err
	}
	if !p.HasAccess() {
		return AccessGrant{}, &StatusError{Err: ErrAccessNotReady, Status: string(p.Status)}
	}
	email, name := u.customerIdentity(ctx, p.CustomerID)
	return AccessGrant{
		AccessToken:   p.AccessToken,
		CustomerEmail: email,
		CustomerName:  name,
		PurchaseDate:  p.CompletedAt,
		Existing:      true,
	}, nil
}

func (u *EbookUseCase) GrantManualAccess(ctx context.Context, sessionID string) (AccessGrant, error) {
	session, err := u.paidSession(ctx, sessionID)
	if err != nil {
		return AccessGrant{}, err
	}
	log := u.logger.With(zap.String("session_id", session.ID))

	existing, err := u.purchases.FindBySessionID(ctx, session.ID)
	switch {
	case err == nil && existing.HasAccess():
		log.Info("manual access requested for completed purchase")
		return u.grantFor(ctx, existing, session, true), nil
	case err != nil && !errors.Is(err, entities.ErrPurchaseNotFound):
		return AccessGrant{}, err
	}

	if errors.Is(err, entities.ErrPurchaseNotFound) {
		customerID, cErr := u.customerForSession(ctx, session)
		if cErr != nil {
			return AccessGrant{}, cErr
		}
		_, cErr = u.purchases.Create(ctx, session.ID, customerID, session.AmountTotal, session.Currency)
		if cErr != nil && !errors.Is(cErr, entities.ErrPurchaseAlreadyExists) {
			return AccessGrant{}, fmt.Errorf("create purchase: %w", cErr)
		}
		log.Info("purchase recorded for manual access", zap.String("customer_id", customerID))
	}

	p, err := completeWithFreshToken(ctx, u.purchases, u.tokens, log, session.ID, session.PaymentIntentID)
	if errors.Is(err, entities.ErrPurchaseAlreadyCompleted) {
		return u.grantFor(ctx, p, session, true), nil
	}
	if err != nil {
		return AccessGrant{}, err
	}
	log.Info("manual access granted", zap.String("token_prefix", tokenPrefix(p.AccessToken)))
	return u.grantFor(ctx, p, session, false), nil
}

func (u *EbookUseCase) paidSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrMissingSessionID
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrPaymentGatewayNotConfigured
	}
	session, err := u.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if !session.IsPaid() {
		return entities.CheckoutSession{}, &StatusError{Err: ErrPaymentNotCompleted, Status: session.PaymentStatus}
	}
	return session, nil
}

func (u *EbookUseCase) customerForSession(ctx context.Context, session entities.CheckoutSession) (string, error) {
	if id := session.Metadata[entities.MetadataCustomerID]; id != "" {
		if c, err := u.customers.GetByID(ctx, id); err == nil {
			return c.ID, nil
		}
	}
	if session.CustomerEmail == "" {
		return "", ErrInvalidCustomerEmail
	}
	c, _, err := u.customers.FindOrCreate(ctx, entities.NewCustomer(session.CustomerEmail, session.CustomerName, nowUTC()))
	if err != nil {
		return "", fmt.Errorf("find or create customer: %w", err)
	}
	return c.ID, nil
}

func (u *EbookUseCase) grantFor(ctx context.Context, p entities.Purchase, session entities.CheckoutSession, existing bool) AccessGrant {
	email, name := u.customerIdentity(ctx, p.CustomerID)
	if email == "" {
		email = session.CustomerEmail
	}
	if name == "" {
		name = session.CustomerName
	}
	return AccessGrant{
		AccessToken:   p.AccessToken,
		CustomerEmail: email,
		CustomerName:  name,
		PurchaseDate:  p.CompletedAt,
		Existing:      existing,
	}
}

func (u *EbookUseCase) customerIdentity(ctx context.Context, customerID string) (email, name string) {
	if customerID == "" {
		return "", ""
	}
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, entities.ErrCustomerNotFound) {
			u.logger.Warn("customer lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		}
		return "", ""
	}
	return c.Email, c.FullName()
}
