package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "erdbeergourmet/internal/adapter/http/dto/response"
	"erdbeergourmet/internal/adapter/http/handlers/mocks"
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(uc usecase.ICheckoutUseCase) *gin.Engine {
	h := NewCheckoutHandler(uc)
	r := gin.New()
	r.POST("/v1/checkout/sessions", h.CreateSession)
	r.GET("/v1/checkout/sessions/:session_id", h.VerifySession)
	return r
}

func TestCheckoutHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/v1/checkout/sessions", `{"customerEmail":"ana@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid item from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().CreateCartSession(gomock.Any(), gomock.Any(), "", gomock.Any()).Return(usecase.CartSession{}, usecase.ErrInvalidCartItem)

		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/sessions", `{"items":[{"name":"Jam","price":8.9,"quantity":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().CreateCartSession(gomock.Any(), gomock.Any(), "ana@example.com", map[string]string{"order_ref": "o-1"}).
			DoAndReturn(func(_ context.Context, items []usecase.CartItem, _ string, _ map[string]string) (usecase.CartSession, error) {
				if len(items) != 2 || items[1].WeightGrams != 500 {
					t.Fatalf("unexpected items: %+v", items)
				}
				return usecase.CartSession{SessionID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil
			})

		body := `{"customerEmail":"ana@example.com","metadata":{"order_ref":"o-1"},"items":[` +
			`{"id":"p1","name":"Erdbeerkonfitüre","price":8.9,"quantity":2},` +
			`{"id":"p2","name":"Erdbeersirup","price":14.95,"quantity":1,"weight":500}]}`
		w := doJSON(newCheckoutRouter(uc), http.MethodPost, "/v1/checkout/sessions", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.CartSessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.SessionID != "cs_1" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestCheckoutHandler_VerifySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().VerifySession(gomock.Any(), "pi_1").Return(entities.CheckoutSession{}, usecase.ErrInvalidCheckoutSession)

		w := doJSON(newCheckoutRouter(uc), http.MethodGet, "/v1/checkout/sessions/pi_1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().VerifySession(gomock.Any(), "cs_404").Return(entities.CheckoutSession{}, entities.ErrCheckoutSessionNotFound)

		w := doJSON(newCheckoutRouter(uc), http.MethodGet, "/v1/checkout/sessions/cs_404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		uc.EXPECT().VerifySession(gomock.Any(), "cs_1").Return(entities.CheckoutSession{
			ID: "cs_1", Status: "complete", PaymentStatus: "paid", AmountTotal: 2275, Currency: "chf",
			Created: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		w := doJSON(newCheckoutRouter(uc), http.MethodGet, "/v1/checkout/sessions/cs_1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.CheckoutSessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.PaymentStatus != "paid" || res.AmountTotal != 2275 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}
