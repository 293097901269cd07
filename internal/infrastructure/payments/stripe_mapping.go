package payments

import (
	"time"

	"erdbeergourmet/internal/domain/entities"

	"github.com/stripe/stripe-go/v79"
)

func toCheckoutPayload(s *stripe.CheckoutSession) *entities.CheckoutSessionPayload {
	out := &entities.CheckoutSessionPayload{
		ID:            s.ID,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	if d := s.CustomerDetails; d != nil {
		if d.Email != "" {
			out.CustomerEmail = d.Email
		}
		out.CustomerName = d.Name
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}

func toPaymentIntentPayload(pi *stripe.PaymentIntent) *entities.PaymentIntentPayload {
	out := &entities.PaymentIntentPayload{ID: pi.ID, Status: string(pi.Status)}
	if e := pi.LastPaymentError; e != nil {
		out.LastErrorCode = string(e.Code)
		out.LastErrorMessage = e.Msg
	}
	return out
}

func toCheckoutSession(s *stripe.CheckoutSession) entities.CheckoutSession {
	p := toCheckoutPayload(s)
	out := entities.CheckoutSession{
		ID:              s.ID,
		URL:             s.URL,
		Status:          p.Status,
		PaymentStatus:   p.PaymentStatus,
		Mode:            string(s.Mode),
		PaymentIntentID: p.PaymentIntentID,
		AmountTotal:     p.AmountTotal,
		Currency:        p.Currency,
		CustomerEmail:   p.CustomerEmail,
		CustomerName:    p.CustomerName,
		Metadata:        p.Metadata,
	}
	if s.Created > 0 {
		out.Created = time.Unix(s.Created, 0).UTC()
	}
	if pi := s.PaymentIntent; pi != nil {
		out.PaymentIntentStatus = string(pi.Status)
		out.PaymentMethodTypes = pi.PaymentMethodTypes
	}
	if s.LineItems != nil {
		for _, li := range s.LineItems.Data {
			if li == nil {
				continue
			}
			out.LineItems = append(out.LineItems, entities.CheckoutSessionLine{
				Description: li.Description,
				Quantity:    li.Quantity,
				AmountTotal: li.AmountTotal,
				Currency:    string(li.Currency),
			})
		}
	}
	return out
}
