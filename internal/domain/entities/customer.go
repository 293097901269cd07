package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// customerNamespace scopes the name-based customer ids.
var customerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://erdbeergourmet.ch/customers"))

// Customer is a purchaser identity. Email is the natural key.
type Customer struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	ProviderCustomerID string    `json:"provider_customer_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewCustomer builds a customer from an email and a display name.
// The id is derived from the normalized email so that two concurrent
// find-or-create calls for the same address collide on the same key.
func NewCustomer(email, fullName string, now time.Time) Customer {
	first, last := SplitName(fullName)
	email = NormalizeEmail(email)
	return Customer{
		ID:        CustomerIDForEmail(email),
		Email:     email,
		FirstName: first,
		LastName:  last,
		CreatedAt: now.UTC(),
	}
}

// FullName joins first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CustomerIDForEmail returns the deterministic customer id for an email.
func CustomerIDForEmail(email string) string {
	return uuid.NewSHA1(customerNamespace, []byte(NormalizeEmail(email))).String()
}

// SplitName splits "Maria da Silva" into ("Maria", "da Silva").
func SplitName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
