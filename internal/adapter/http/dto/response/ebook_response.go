package response

import (
	"erdbeergourmet/internal/usecase"
	"time"
)

type EbookCheckoutResponse struct {
	SessionID  string `json:"sessionId"`
	URL        string `json:"url"`
	CustomerID string `json:"customerId"`
}

func FromEbookCheckout(c usecase.EbookCheckout) EbookCheckoutResponse {
	return EbookCheckoutResponse{SessionID: c.SessionID, URL: c.URL, CustomerID: c.CustomerID}
}

type AccessVerificationResponse struct {
	HasAccess     bool       `json:"hasAccess"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
}

func FromAccessVerification(v usecase.AccessVerification) AccessVerificationResponse {
	return AccessVerificationResponse{
		HasAccess:     v.HasAccess,
		CustomerEmail: v.CustomerEmail,
		CustomerName:  v.CustomerName,
		PurchaseDate:  v.PurchaseDate,
	}
}

type AccessGrantResponse struct {
	Success       bool       `json:"success"`
	AccessToken   string     `json:"accessToken"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerName  string     `json:"customerName"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
	Existing      bool       `json:"existing"`
}

func FromAccessGrant(g usecase.AccessGrant) AccessGrantResponse {
	return AccessGrantResponse{
		Success:       true,
		AccessToken:   g.AccessToken,
		CustomerEmail: g.CustomerEmail,
		CustomerName:  g.CustomerName,
		PurchaseDate:  g.PurchaseDate,
		Existing:      g.Existing,
	}
}
