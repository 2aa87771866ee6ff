package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64   `json:"price" bson:"price"`
	Category       string    `json:"category" bson:"category"`
	ImageURL       string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Stock          int       `json:"stock" bson:"stock"`
	Brand          string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Volume         string    `json:"volume,omitempty" bson:"volume,omitempty"`
	AlcoholContent *float64  `json:"alcoholContent,omitempty" bson:"alcohol_content,omitempty"`
	IsActive       bool      `json:"isActive" bson:"is_active"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}
