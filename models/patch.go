package models

// ProductFilter narrows catalog listings. Search is matched case-insensitively
// against the product name.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string
	Description    *string
	Price          *float64
	Category       *string
	ImageURL       *string
	Stock          *int
	Brand          *string
	Volume         *string
	AlcoholContent *float64
}

// OrderPatch is the administrative order edit surface. Line items and total
// are frozen at checkout and cannot be patched.
type OrderPatch struct {
	Address       *string
	PaymentMethod *string
	Notes         *string
}
