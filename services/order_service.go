package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	Update(ctx context.Context, id uuid.UUID, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IOrderEvents publishes order lifecycle events. Publishing is best effort
// and never fails the request.
type IOrderEvents interface {
	OrderCreated(ctx context.Context, order *models.Order) error
}

type CheckoutRequest struct {
	Address       string
	PaymentMethod string
	Notes         string
}

type OrderService struct {
	orders      IOrderRepository
	carts       repository.CartStore
	events      IOrderEvents
	deliveryFee float64
	log         *zap.Logger
}

func NewOrderService(orders IOrderRepository, carts repository.CartStore, events IOrderEvents, deliveryFee float64, log *zap.Logger) *OrderService {
	return &OrderService{
		orders:      orders,
		carts:       carts,
		events:      events,
		deliveryFee: deliveryFee,
		log:         log,
	}
}

// Checkout converts the user's cart into a persisted order. The order is
// written first and the cart cleared only after the write succeeds, so a
// failed persist leaves the cart intact. Totals come from the cart's
// snapshotted prices, never from the live catalog, and stock is not
// decremented (inventory management is out of scope).
func (s *OrderService) Checkout(ctx context.Context, user *models.User, req CheckoutRequest) (*models.Order, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, apperrors.Validation("Delivery address is required")
	}
	payment := req.PaymentMethod
	if payment == "" {
		payment = models.PaymentCash
	}
	if !models.ValidPaymentMethod(payment) {
		return nil, apperrors.Validation("Invalid payment method")
	}

	cart, err := s.carts.Get(ctx, user.ID.String())
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperrors.InvalidState("Cart is empty")
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:            uuid.New(),
		UserID:        user.ID,
		Items:         items,
		Total:         total,
		Status:        models.StatusPending,
		Address:       req.Address,
		PaymentMethod: payment,
		DeliveryFee:   s.deliveryFee,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Internal("Failed to create order", err)
	}

	// The order is committed; the cart clear must not undo that. A failed
	// clear is retried once and then logged, the order stands.
	if err := s.carts.Delete(ctx, user.ID.String()); err != nil {
		if err := s.carts.Delete(ctx, user.ID.String()); err != nil {
			s.log.Error("failed to clear cart after checkout",
				zap.String("user_id", user.ID.String()),
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
		}
	}

	if s.events != nil {
		if err := s.events.OrderCreated(ctx, order); err != nil {
			s.log.Warn("order event publish failed",
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	return orders, nil
}

// ListAll returns every order, newest first. Admin surface.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	return orders, nil
}

// Get returns the order if the requester owns it or is an admin.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID, requester *models.User) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal("Failed to fetch order", err)
	}
	if order.UserID != requester.ID && !requester.IsAdmin() {
		return nil, apperrors.Forbidden("Access denied")
	}
	return order, nil
}

// UpdateStatus applies a status transition, rejecting any move not in the
// transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal("Failed to fetch order", err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperrors.InvalidTransition("Cannot transition order from " + string(order.Status) + " to " + string(next))
	}

	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, apperrors.Internal("Failed to update order status", err)
	}
	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	return order, nil
}

// Update applies the administrative patch (address, payment method, notes).
// Items and total are frozen at checkout.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, patch models.OrderPatch) (*models.Order, error) {
	if patch.PaymentMethod != nil && !models.ValidPaymentMethod(*patch.PaymentMethod) {
		return nil, apperrors.Validation("Invalid payment method")
	}
	if patch.Address != nil && strings.TrimSpace(*patch.Address) == "" {
		return nil, apperrors.Validation("Delivery address must not be empty")
	}

	order, err := s.orders.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal("Failed to update order", err)
	}
	return order, nil
}

// Delete physically removes the order. Admin surface.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Order not found")
		}
		return apperrors.Internal("Failed to delete order", err)
	}
	return nil
}
