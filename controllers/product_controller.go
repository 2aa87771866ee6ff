package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

type createProductRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	ImageURL       string   `json:"imageUrl"`
	Stock          int      `json:"stock"`
	Brand          string   `json:"brand"`
	Volume         string   `json:"volume"`
	AlcoholContent *float64 `json:"alcoholContent"`
}

type updateProductRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	Category       *string  `json:"category"`
	ImageURL       *string  `json:"imageUrl"`
	Stock          *int     `json:"stock"`
	Brand          *string  `json:"brand"`
	Volume         *string  `json:"volume"`
	AlcoholContent *float64 `json:"alcoholContent"`
}

// List returns active products, optionally filtered by category and a
// case-insensitive name search.
func (pc *ProductController) List(c *gin.Context) {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := pc.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	payload := gin.H{
		"count": len(products),
		"data":  products,
	}
	if pc.catalog.Degraded() {
		payload["source"] = "memory"
	}
	respond(c, http.StatusOK, payload)
}

func (pc *ProductController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Product not found"))
		return
	}

	product, err := pc.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{"data": product}
	if pc.catalog.Degraded() {
		payload["source"] = "memory"
	}
	respond(c, http.StatusOK, payload)
}

func (pc *ProductController) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Name, price and category are required"))
		return
	}

	product, err := pc.catalog.CreateProduct(c.Request.Context(), services.CreateProductRequest{
		Name:           req.Name,
		Description:    req.Description,
		Price:          *req.Price,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Stock:          req.Stock,
		Brand:          req.Brand,
		Volume:         req.Volume,
		AlcoholContent: req.AlcoholContent,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{
		"message": "Product created",
		"data":    product,
	})
}

func (pc *ProductController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Product not found"))
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	product, err := pc.catalog.UpdateProduct(c.Request.Context(), id, models.ProductPatch{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Stock:          req.Stock,
		Brand:          req.Brand,
		Volume:         req.Volume,
		AlcoholContent: req.AlcoholContent,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"data": product})
}

// Delete soft-deletes: the product disappears from the catalog but existing
// order snapshots keep their frozen copy.
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Product not found"))
		return
	}

	if err := pc.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Product deactivated"})
}
