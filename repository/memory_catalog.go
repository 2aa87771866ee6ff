package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/models"
)

// MemoryCatalog is the degraded-mode catalog stand-in: when MongoDB is
// unreachable at startup and degraded mode is allowed, reads are served from
// this seeded snapshot and every write fails with ErrDegraded. Responses built
// from it are labeled so clients can tell stand-in data from real data.
type MemoryCatalog struct {
	products   []models.Product
	categories []models.Category
}

func NewMemoryCatalog() *MemoryCatalog {
	now := time.Now().UTC()

	categories := []models.Category{
		{ID: uuid.New(), Name: "Cervejas", Description: "Pilsen, lager e artesanais", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Refrigerantes", Description: "Refrigerantes e energéticos", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Águas", Description: "Com e sem gás", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	alcohol := func(v float64) *float64 { return &v }
	products := []models.Product{
		{ID: uuid.New(), Name: "Cerveja Pilsen Lata", Price: 4.50, Category: "Cervejas", Brand: "Brahma", Volume: "350ml", AlcoholContent: alcohol(4.8), Stock: 120, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Cerveja IPA Artesanal", Price: 14.90, Category: "Cervejas", Volume: "500ml", AlcoholContent: alcohol(6.2), Stock: 30, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Refrigerante Cola", Price: 8.00, Category: "Refrigerantes", Volume: "2L", Stock: 60, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Água Mineral sem Gás", Price: 2.50, Category: "Águas", Volume: "500ml", Stock: 200, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}

	return &MemoryCatalog{
		products:   products,
		categories: categories,
	}
}

func (m *MemoryCatalog) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryCatalog) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id && m.products[i].IsActive {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCatalog) Create(ctx context.Context, product *models.Product) error {
	return ErrDegraded
}

func (m *MemoryCatalog) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	return nil, ErrDegraded
}

func (m *MemoryCatalog) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return ErrDegraded
}

// Categories exposes the category half of the stand-in through the same
// reader/writer shape the mongo repository has.
func (m *MemoryCatalog) Categories() *MemoryCategoryCatalog {
	return &MemoryCategoryCatalog{parent: m}
}

type MemoryCategoryCatalog struct {
	parent *MemoryCatalog
}

func (m *MemoryCategoryCatalog) List(ctx context.Context) ([]models.Category, error) {
	out := append([]models.Category(nil), m.parent.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryCategoryCatalog) Create(ctx context.Context, category *models.Category) error {
	return ErrDegraded
}

func (m *MemoryCategoryCatalog) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return ErrDegraded
}
