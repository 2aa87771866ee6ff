package models

import "time"

// CartItem is a cart line holding a snapshot of the product's name, price and
// image taken when the item was added. Later catalog changes do not touch it.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is per-user working state, not a system of record. It lives in the
// configured cart store (in-memory or redis) and is cleared on checkout.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Total sums price times quantity over the snapshotted lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
