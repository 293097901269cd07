package request

import (
	"erdbeergourmet/internal/usecase"
	"strings"
)

type CartItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Weight      int     `json:"weight"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int64   `json:"quantity" binding:"required"`
}

// CartCheckoutRequest is the storefront cart as posted by the shop frontend.
type CartCheckoutRequest struct {
	Items         []CartItemRequest `json:"items" binding:"required"`
	CustomerEmail string            `json:"customerEmail"`
	Metadata      map[string]string `json:"metadata"`
}

func (r CartCheckoutRequest) ToCartItems() []usecase.CartItem {
	out := make([]usecase.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, usecase.CartItem{
			ProductID:   strings.TrimSpace(it.ID),
			Name:        strings.TrimSpace(it.Name),
			Description: it.Description,
			ImageURL:    it.Image,
			Category:    it.Category,
			WeightGrams: it.Weight,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return out
}
