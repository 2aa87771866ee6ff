package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

type IProductRepository interface {
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type ICategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type CreateProductRequest struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	ImageURL       string
	Stock          int
	Brand          string
	Volume         string
	AlcoholContent *float64
}

type CreateCategoryRequest struct {
	Name        string
	Description string
	ImageURL    string
}

// CatalogService owns products and categories. In degraded mode it runs over
// the in-memory stand-in instead of mongo; Degraded reports which.
type CatalogService struct {
	products   IProductRepository
	categories ICategoryRepository
	degraded   bool
}

func NewCatalogService(products IProductRepository, categories ICategoryRepository, degraded bool) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		degraded:   degraded,
	}
}

func (s *CatalogService) Degraded() bool {
	return s.degraded
}

func (s *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch products", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.Validation("Name and category are required")
	}
	if req.Price < 0 {
		return nil, apperrors.Validation("Price must be non-negative")
	}
	if req.Stock < 0 {
		return nil, apperrors.Validation("Stock must be non-negative")
	}
	if req.AlcoholContent != nil && (*req.AlcoholContent < 0 || *req.AlcoholContent > 100) {
		return nil, apperrors.Validation("Alcohol content must be between 0 and 100")
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Stock:          req.Stock,
		Brand:          req.Brand,
		Volume:         req.Volume,
		AlcoholContent: req.AlcoholContent,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, s.storeErr("Failed to create product", err)
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, apperrors.Validation("Price must be non-negative")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, apperrors.Validation("Stock must be non-negative")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.Validation("Name must not be empty")
	}
	if patch.AlcoholContent != nil && (*patch.AlcoholContent < 0 || *patch.AlcoholContent > 100) {
		return nil, apperrors.Validation("Alcohol content must be between 0 and 100")
	}

	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, s.storeErr("Failed to update product", err)
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return s.storeErr("Failed to delete product", err)
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch categories", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("Name is required")
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, s.storeErr("Failed to create category", err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Category not found")
		}
		return s.storeErr("Failed to delete category", err)
	}
	return nil
}

func (s *CatalogService) storeErr(message string, err error) error {
	if errors.Is(err, repository.ErrDegraded) {
		return apperrors.Unavailable("Catalog is read-only while the database is unavailable")
	}
	return apperrors.Internal(message, err)
}
