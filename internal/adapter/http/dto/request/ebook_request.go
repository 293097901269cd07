package request

import "strings"

// EbookCheckoutRequest starts an e-book purchase from the landing page.
type EbookCheckoutRequest struct {
	CustomerEmail string `json:"customerEmail" binding:"required"`
	CustomerName  string `json:"customerName"`
}

// ManualAccessRequest recovers access for a paid session. The session id may
// also be passed as sessionId, the casing used by the landing page.
type ManualAccessRequest struct {
	SessionID      string `json:"session_id"`
	SessionIDCamel string `json:"sessionId"`
}

func (r ManualAccessRequest) ResolveSessionID() string {
	if v := strings.TrimSpace(r.SessionID); v != "" {
		return v
	}
	return strings.TrimSpace(r.SessionIDCamel)
}
