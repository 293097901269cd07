package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

type StripeGatewayConfig struct {
	SecretKey string
	// Mock skips the Stripe API and serves sessions from memory.
	Mock bool
}

type StripeGateway struct {
	api      *client.API
	mockMode bool
	logger   *zap.Logger

	mu           sync.Mutex
	mockSessions map[string]entities.CheckoutSession
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeGatewayConfig, logger *zap.Logger) (*StripeGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("gateway")
	if cfg.Mock {
		logger.Info("mock mode enabled")
		return &StripeGateway{mockMode: true, logger: logger, mockSessions: map[string]entities.CheckoutSession{}}, nil
	}
	if cfg.SecretKey == "" {
		logger.Warn("missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	logger.Info("stripe client initialized")
	return &StripeGateway{api: client.New(cfg.SecretKey, nil), logger: logger}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
	if g.mockMode {
		return g.mockCreate(req), nil
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:               stripe.String(req.SuccessURL),
		CancelURL:                stripe.String(req.CancelURL),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	if len(req.ShippingCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.ShippingCountries),
		}
	}
	for _, li := range req.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(li.Name),
			Metadata: li.Metadata,
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}
		if li.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{li.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(li.UnitAmountCents),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("create checkout session failed", zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Info("checkout session created", zap.String("session_id", s.ID))
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	if g.mockMode {
		return g.mockGet(sessionID)
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	params.AddExpand("payment_intent")

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if isStripeNotFound(err) {
			return entities.CheckoutSession{}, entities.ErrCheckoutSessionNotFound
		}
		g.logger.Error("retrieve checkout session failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	return toCheckoutSession(s), nil
}

func isStripeNotFound(err error) bool {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.HTTPStatusCode == http.StatusNotFound || se.Code == stripe.ErrorCodeResourceMissing
}

// mockCreate records a session that is immediately complete and paid.
func (g *StripeGateway) mockCreate(req entities.CheckoutSessionRequest) entities.CheckoutSession {
	id := "cs_test_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	var total int64
	lines := make([]entities.CheckoutSessionLine, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		amount := li.UnitAmountCents * li.Quantity
		total += amount
		lines = append(lines, entities.CheckoutSessionLine{
			Description: li.Name,
			Quantity:    li.Quantity,
			AmountTotal: amount,
			Currency:    req.Currency,
		})
	}
	s := entities.CheckoutSession{
		ID:                  id,
		URL:                 strings.ReplaceAll(req.SuccessURL, "{CHECKOUT_SESSION_ID}", id),
		Status:              string(stripe.CheckoutSessionStatusComplete),
		PaymentStatus:       entities.CheckoutPaymentStatusPaid,
		Mode:                string(stripe.CheckoutSessionModePayment),
		PaymentIntentID:     "pi_test_mock_" + id[len("cs_test_mock_"):],
		PaymentIntentStatus: string(stripe.PaymentIntentStatusSucceeded),
		PaymentMethodTypes:  []string{"card"},
		AmountTotal:         total,
		Currency:            req.Currency,
		CustomerEmail:       req.CustomerEmail,
		Created:             time.Now().UTC(),
		Metadata:            req.Metadata,
		LineItems:           lines,
	}

	g.mu.Lock()
	g.mockSessions[id] = s
	g.mu.Unlock()
	g.logger.Info("mock checkout session created", zap.String("session_id", id))
	return s
}

func (g *StripeGateway) mockGet(sessionID string) (entities.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.mockSessions[sessionID]
	if !ok {
		return entities.CheckoutSession{}, entities.ErrCheckoutSessionNotFound
	}
	return s, nil
}
