package usecase

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase/interfaces"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart              = errors.New("items are required")
	ErrInvalidCartItem        = errors.New("invalid cart item")
	ErrInvalidCheckoutSession = errors.New("valid session id is required")
)

const checkoutSessionPrefix = "cs_"

// CartItem is one storefront cart line. Price is in major currency units.
type CartItem struct {
	ProductID   string
	Name        string
	Description string
	ImageURL    string
	Category    string
	WeightGrams int
	Price       float64
	Quantity    int64
}

type CartCheckoutSettings struct {
	AppURL            string
	Currency          string
	SessionTTL        time.Duration
	ShippingCountries []string
	Source            string
}

type CartSession struct {
	SessionID string
	URL       string
}

// ICheckoutUseCase serves the physical-goods storefront checkout.
type ICheckoutUseCase interface {
	CreateCartSession(ctx context.Context, items []CartItem, customerEmail string, metadata map[string]string) (CartSession, error)
	VerifySession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	gateway  interfaces.IPaymentGateway
	settings CartCheckoutSettings
	logger   *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, settings CartCheckoutSettings, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{gateway: gateway, settings: settings, logger: logger.Named("checkout")}
}

func (u *CheckoutUseCase) CreateCartSession(ctx context.Context, items []CartItem, customerEmail string, metadata map[string]string) (CartSession, error) {
	if len(items) == 0 {
		return CartSession{}, ErrEmptyCart
	}
	if u.gateway == nil {
		return CartSession{}, ErrPaymentGatewayNotConfigured
	}

	lines := make([]entities.CheckoutLineItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Price <= 0 || it.Quantity <= 0 {
			return CartSession{}, ErrInvalidCartItem
		}
		weight := ""
		if it.WeightGrams > 0 {
			weight = strconv.Itoa(it.WeightGrams)
		}
		lines = append(lines, entities.CheckoutLineItem{
			Name:            it.Name,
			Description:     it.Description,
			ImageURL:        it.ImageURL,
			UnitAmountCents: int64(math.Round(it.Price * 100)),
			Quantity:        it.Quantity,
			Metadata: map[string]string{
				"product_id":   it.ProductID,
				"category":     it.Category,
				"weight_grams": weight,
			},
		})
	}

	md := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		md[k] = v
	}
	md[entities.MetadataSource] = u.settings.Source

	ttl := u.settings.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	base := strings.TrimRight(u.settings.AppURL, "/")
	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
		Currency:          u.settings.Currency,
		LineItems:         lines,
		CustomerEmail:     entities.NormalizeEmail(customerEmail),
		SuccessURL:        base + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         base + "/cancel",
		ExpiresAt:         nowUTC().Add(ttl),
		ShippingCountries: u.settings.ShippingCountries,
		Metadata:          md,
	})
	if err != nil {
		u.logger.Error("cart checkout session creation failed", zap.Int("items", len(items)), zap.Error(err))
		return CartSession{}, err
	}
	u.logger.Info("cart checkout created", zap.String("session_id", session.ID), zap.Int("items", len(items)))
	return CartSession{SessionID: session.ID, URL: session.URL}, nil
}

func (u *CheckoutUseCase) VerifySession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !strings.HasPrefix(sessionID, checkoutSessionPrefix) {
		return entities.CheckoutSession{}, ErrInvalidCheckoutSession
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrPaymentGatewayNotConfigured
	}
	session, err := u.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, entities.ErrCheckoutSessionNotFound) {
			u.logger.Error("session lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		}
		return entities.CheckoutSession{}, err
	}
	return session, nil
}
