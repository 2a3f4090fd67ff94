package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem pairs a product with a positive quantity. Quantities below 1
// never reach the store: the cart service removes the item instead.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Cart is the per-session aggregate, stored as a JSON blob in Redis.
// Items keep insertion order for display; product ids are unique.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Find returns the index of the item holding productID, or -1.
func (c *Cart) Find(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalItems is the sum of quantities across the cart.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
