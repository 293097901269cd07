package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"erdbeergourmet/internal/domain/entities"
	mock_interfaces "erdbeergourmet/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCartSettings = CartCheckoutSettings{
	AppURL:            "https://erdbeergourmet.ch",
	Currency:          "chf",
	SessionTTL:        30 * time.Minute,
	ShippingCountries: []string{"CH", "DE", "AT", "FR", "IT"},
	Source:            "erdbeergourmet_website",
}

func TestCheckoutUseCase_CreateCartSession(t *testing.T) {
	items := []CartItem{
		{ProductID: "p-1", Name: "Erdbeerkonfitüre", Category: "jam", WeightGrams: 250, Price: 8.9, Quantity: 2},
		{ProductID: "p-2", Name: "Schokoerdbeeren", Price: 14.95, Quantity: 1},
	}

	t.Run("empty cart", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, testCartSettings, nil)
		if _, err := uc.CreateCartSession(context.Background(), nil, "", nil); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, testCartSettings, nil)

		bad := []CartItem{{Name: "x", Price: 0, Quantity: 1}}
		if _, err := uc.CreateCartSession(context.Background(), bad, "", nil); !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, testCartSettings, nil)

		gw.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.AssignableToTypeOf(entities.CheckoutSessionRequest{})).DoAndReturn(
			func(_ context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
				if req.Currency != "chf" || len(req.LineItems) != 2 {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.LineItems[0].UnitAmountCents != 890 || req.LineItems[1].UnitAmountCents != 1495 {
					t.Fatalf("unexpected amounts: %+v", req.LineItems)
				}
				if req.LineItems[0].Metadata["weight_grams"] != "250" || req.LineItems[0].Metadata["product_id"] != "p-1" {
					t.Fatalf("unexpected line metadata: %+v", req.LineItems[0].Metadata)
				}
				if req.Metadata["source"] != "erdbeergourmet_website" || req.Metadata["order_ref"] != "A-17" {
					t.Fatalf("unexpected metadata: %+v", req.Metadata)
				}
				if req.SuccessURL != "https://erdbeergourmet.ch/success?session_id={CHECKOUT_SESSION_ID}" || req.CancelURL != "https://erdbeergourmet.ch/cancel" {
					t.Fatalf("unexpected urls: %s %s", req.SuccessURL, req.CancelURL)
				}
				if len(req.ShippingCountries) != 5 || req.CustomerEmail != "ana@example.com" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.CheckoutSession{ID: "cs_test_9", URL: "https://checkout.stripe.com/c/pay/cs_test_9"}, nil
			},
		)

		out, err := uc.CreateCartSession(context.Background(), items, "Ana@Example.com", map[string]string{"order_ref": "A-17", "source": "spoofed"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.SessionID != "cs_test_9" || out.URL == "" {
			t.Fatalf("unexpected session: %+v", out)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, testCartSettings, nil)

		gw.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("stripe down"))

		if _, err := uc.CreateCartSession(context.Background(), items, "", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCheckoutUseCase_VerifySession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, testCartSettings, nil)
		for _, id := range []string{"", "pi_123", "abc"} {
			if _, err := uc.VerifySession(context.Background(), id); !errors.Is(err, ErrInvalidCheckoutSession) {
				t.Fatalf("expected ErrInvalidCheckoutSession for %q, got %v", id, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, testCartSettings, nil)

		gw.EXPECT().GetCheckoutSession(gomock.Any(), "cs_missing").Return(entities.CheckoutSession{}, entities.ErrCheckoutSessionNotFound)

		if _, err := uc.VerifySession(context.Background(), "cs_missing"); !errors.Is(err, entities.ErrCheckoutSessionNotFound) {
			t.Fatalf("expected ErrCheckoutSessionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, testCartSettings, nil)

		gw.EXPECT().GetCheckoutSession(gomock.Any(), "cs_test_9").Return(entities.CheckoutSession{ID: "cs_test_9", PaymentStatus: "paid"}, nil)

		s, err := uc.VerifySession(context.Background(), " cs_test_9 ")
		if err != nil || s.ID != "cs_test_9" {
			t.Fatalf("unexpected session: %+v %v", s, err)
		}
	})
}
