package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/middleware"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type checkoutRequest struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateOrderRequest struct {
	Address       *string `json:"address"`
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

// Create converts the authenticated user's cart into an order.
func (oc *OrderController) Create(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Delivery address is required"))
		return
	}

	order, err := oc.orders.Checkout(c.Request.Context(), user, services.CheckoutRequest{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"message": "Order created",
		"data":    order,
	})
}

// List returns the authenticated user's orders, newest first.
func (oc *OrderController) List(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	orders, err := oc.orders.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	respond(c, http.StatusOK, gin.H{
		"count": len(orders),
		"data":  orders,
	})
}

// ListAll returns every order. Admin surface.
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	respond(c, http.StatusOK, gin.H{
		"count": len(orders),
		"data":  orders,
	})
}

// Get returns one order; only the owner or an admin may read it.
func (oc *OrderController) Get(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, apperrors.Unauthenticated("Access token required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Order not found"))
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"data": order})
}

// UpdateStatus moves the order along the delivery pipeline. Illegal
// transitions are rejected.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Order not found"))
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Status is required"))
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, apperrors.Validation("Unknown order status"))
		return
	}

	order, err := oc.orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"data": order})
}

// Update edits address, payment method or notes. Items and total are frozen.
func (oc *OrderController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Order not found"))
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	order, err := oc.orders.Update(c.Request.Context(), id, models.OrderPatch{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"data": order})
}

// Delete physically removes an order. Admin surface.
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NotFound("Order not found"))
		return
	}

	if err := oc.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Order deleted"})
}
