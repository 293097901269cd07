package response

import (
	"erdbeergourmet/internal/domain/entities"
	"erdbeergourmet/internal/usecase"
	"time"
)

type CartSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

func FromCartSession(s usecase.CartSession) CartSessionResponse {
	return CartSessionResponse{SessionID: s.SessionID, URL: s.URL}
}

type CheckoutLineResponse struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	AmountTotal int64  `json:"amount_total"`
	Currency    string `json:"currency"`
}

// CheckoutSessionResponse is the session summary shown on the shop's
// success page.
type CheckoutSessionResponse struct {
	ID                  string                 `json:"id"`
	Status              string                 `json:"status"`
	PaymentStatus       string                 `json:"payment_status"`
	AmountTotal         int64                  `json:"amount_total"`
	Currency            string                 `json:"currency"`
	CustomerEmail       string                 `json:"customer_email,omitempty"`
	CustomerName        string                 `json:"customer_name,omitempty"`
	PaymentIntentStatus string                 `json:"payment_intent_status,omitempty"`
	PaymentMethodTypes  []string               `json:"payment_method_types,omitempty"`
	Created             time.Time              `json:"created"`
	Metadata            map[string]string      `json:"metadata,omitempty"`
	LineItems           []CheckoutLineResponse `json:"line_items,omitempty"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	out := CheckoutSessionResponse{
		ID:                  s.ID,
		Status:              s.Status,
		PaymentStatus:       s.PaymentStatus,
		AmountTotal:         s.AmountTotal,
		Currency:            s.Currency,
		CustomerEmail:       s.CustomerEmail,
		CustomerName:        s.CustomerName,
		PaymentIntentStatus: s.PaymentIntentStatus,
		PaymentMethodTypes:  s.PaymentMethodTypes,
		Created:             s.Created,
		Metadata:            s.Metadata,
	}
	for _, li := range s.LineItems {
		out.LineItems = append(out.LineItems, CheckoutLineResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			AmountTotal: li.AmountTotal,
			Currency:    li.Currency,
		})
	}
	return out
}
