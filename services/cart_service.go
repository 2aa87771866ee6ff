package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

// IProductFinder is what the cart needs from the catalog: active-product
// resolution at add time.
type IProductFinder interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type CartService struct {
	store    repository.CartStore
	products IProductFinder
}

func NewCartService(store repository.CartStore, products IProductFinder) *CartService {
	return &CartService{
		store:    store,
		products: products,
	}
}

// Get returns the user's cart, empty when the user has none.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	return cart, nil
}

// Add puts a product in the cart or increments the existing line. The line
// snapshots the product's current name, price and image; later catalog
// changes do not alter it.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.Validation("Quantity must be a positive integer")
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.NotFound("Product not found")
	}
	product, err := s.products.FindActiveByID(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal("Failed to fetch product", err)
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID.String(),
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  quantity,
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, apperrors.Internal("Failed to save cart", err)
	}
	return cart, nil
}

// Remove drops the line for the product. Removing an absent line is a no-op,
// not an error.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, apperrors.Internal("Failed to save cart", err)
	}
	return cart, nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return apperrors.Internal("Failed to clear cart", err)
	}
	return nil
}
