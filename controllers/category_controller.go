package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/services"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	payload := gin.H{
		"count": len(categories),
		"data":  categories,
	}
	if cc.catalog.Degraded() {
		payload["source"] = "memory"
	}
	respond(c, http.StatusOK, payload)
}

func (cc *CategoryController) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Name is required"))
		return
	}

	category, err := cc.catalog.CreateCategory(c.Request.Context(), services.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{
		"message": "Category created",
		"data":    category,
	})
}

func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Category not found"))
		return
	}

	if err := cc.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Category deactivated"})
}
