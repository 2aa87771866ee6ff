package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/middleware"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"data":  cart.Items,
		"total": cart.Total(),
		"count": len(cart.Items),
	}
}

// Get returns the current cart with its derived total and line count.
func (cc *CartController) Get(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	cart, err := cc.carts.Get(c.Request.Context(), user.ID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, cartPayload(cart))
}

// Add puts a product in the cart; adding an already-present product
// increments its line instead of duplicating it.
func (cc *CartController) Add(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Product id is required"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := cc.carts.Add(c.Request.Context(), user.ID.String(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := cartPayload(cart)
	payload["message"] = "Product added to cart"
	respond(c, http.StatusOK, payload)
}

func (cc *CartController) Remove(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	cart, err := cc.carts.Remove(c.Request.Context(), user.ID.String(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}

	payload := cartPayload(cart)
	payload["message"] = "Product removed from cart"
	respond(c, http.StatusOK, payload)
}

func (cc *CartController) Clear(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	if err := cc.carts.Clear(c.Request.Context(), user.ID.String()); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}
