package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at checkout.
const (
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentCash       = "cash"
	PaymentPix        = "pix"
)

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCreditCard, PaymentDebitCard, PaymentCash, PaymentPix:
		return true
	}
	return false
}

// OrderItem is a frozen copy of a cart line taken at checkout. Orders keep
// these snapshots even after the underlying product changes or is deactivated.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	ImageURL  string  `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID            uuid.UUID   `json:"id" bson:"_id"`
	UserID        uuid.UUID   `json:"userId" bson:"user_id"`
	Items         []OrderItem `json:"items" bson:"items"`
	Total         float64     `json:"total" bson:"total"`
	Status        OrderStatus `json:"status" bson:"status"`
	Address       string      `json:"address" bson:"address"`
	PaymentMethod string      `json:"paymentMethod" bson:"payment_method"`
	DeliveryFee   float64     `json:"deliveryFee" bson:"delivery_fee"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updated_at"`
}
