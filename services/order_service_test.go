package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
	"github.com/Natanjhon7/delivery-backend-v2/models"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
)

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleCustomer}
}

func twoLineCart(userID string) *models.Cart {
	return &models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Cerveja", Price: 5.00, Quantity: 2},
			{ProductID: "p2", Name: "Refrigerante", Price: 3.00, Quantity: 1},
		},
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Cart", func(t *testing.T) {
		orders := new(MockOrderRepository)
		carts := new(MockCartStore)
		svc := NewOrderService(orders, carts, nil, 5.00, zap.NewNop())

		user := testUser()
		carts.On("Get", ctx, user.ID.String()).Return(nil, nil).Once()

		_, err := svc.Checkout(ctx, user, CheckoutRequest{Address: "Rua X, 10"})

		assert.Error(t, err)
		assert.Equal(t, 400, apperrors.From(err).Code)
		orders.AssertNotCalled(t, "Create")
	})

	t.Run("Success Freezes Cart And Clears It", func(t *testing.T) {
		orders := new(MockOrderRepository)
		carts := new(MockCartStore)
		svc := NewOrderService(orders, carts, nil, 5.00, zap.NewNop())

		user := testUser()
		carts.On("Get", ctx, user.ID.String()).Return(twoLineCart(user.ID.String()), nil).Once()
		orders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		carts.On("Delete", ctx, user.ID.String()).Return(nil).Once()

		order, err := svc.Checkout(ctx, user, CheckoutRequest{Address: "Rua X, 10"})

		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, order.Status)
		assert.Equal(t, 13.00, order.Total)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Cerveja", order.Items[0].Name)
		assert.Equal(t, 5.00, order.Items[0].Price)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.Equal(t, models.PaymentCash, order.PaymentMethod, "payment method defaults to cash")
		assert.Equal(t, 5.00, order.DeliveryFee)
		carts.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("Persist Failure Leaves Cart Intact", func(t *testing.T) {
		orders := new(MockOrderRepository)
		carts := new(MockCartStore)
		svc := NewOrderService(orders, carts, nil, 5.00, zap.NewNop())

		user := testUser()
		carts.On("Get", ctx, user.ID.String()).Return(twoLineCart(user.ID.String()), nil).Once()
		orders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(errors.New("write concern error")).Once()

		_, err := svc.Checkout(ctx, user, CheckoutRequest{Address: "Rua X, 10"})

		assert.Error(t, err)
		assert.Equal(t, 500, apperrors.From(err).Code)
		carts.AssertNotCalled(t, "Delete", ctx, user.ID.String())
	})

	t.Run("Failed Clear Is Retried And Does Not Undo The Order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		carts := new(MockCartStore)
		svc := NewOrderService(orders, carts, nil, 5.00, zap.NewNop())

		user := testUser()
		carts.On("Get", ctx, user.ID.String()).Return(twoLineCart(user.ID.String()), nil).Once()
		orders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		carts.On("Delete", ctx, user.ID.String()).Return(errors.New("connection reset")).Twice()

		order, err := svc.Checkout(ctx, user, CheckoutRequest{Address: "Rua X, 10"})

		assert.NoError(t, err)
		assert.NotNil(t, order)
		carts.AssertExpectations(t)
	})

	t.Run("Invalid Payment Method", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockCartStore), nil, 5.00, zap.NewNop())

		_, err := svc.Checkout(ctx, testUser(), CheckoutRequest{Address: "Rua X, 10", PaymentMethod: "bitcoin"})

		assert.Equal(t, 400, apperrors.From(err).Code)
	})

	t.Run("Missing Address", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockCartStore), nil, 5.00, zap.NewNop())

		_, err := svc.Checkout(ctx, testUser(), CheckoutRequest{})

		assert.Equal(t, 400, apperrors.From(err).Code)
	})
}

func TestGetOrderOwnership(t *testing.T) {
	ctx := context.Background()
	owner := testUser()
	stored := &models.Order{ID: uuid.New(), UserID: owner.ID, Status: models.StatusPending}

	t.Run("Owner Can Read", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		order, err := svc.Get(ctx, stored.ID, owner)

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, order.ID)
	})

	t.Run("Stranger Is Forbidden", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		_, err := svc.Get(ctx, stored.ID, testUser())

		assert.Equal(t, 403, apperrors.From(err).Code)
	})

	t.Run("Admin Can Read Any", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		_, err := svc.Get(ctx, stored.ID, admin)

		assert.NoError(t, err)
	})

	t.Run("Missing Order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		orders.On("FindByID", ctx, stored.ID).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Get(ctx, stored.ID, owner)

		assert.Equal(t, 404, apperrors.From(err).Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Legal Transition", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		stored := &models.Order{ID: uuid.New(), Status: models.StatusPending}
		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()
		orders.On("UpdateStatus", ctx, stored.ID, models.StatusConfirmed).Return(nil).Once()

		order, err := svc.UpdateStatus(ctx, stored.ID, models.StatusConfirmed)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, order.Status)
		orders.AssertExpectations(t)
	})

	t.Run("Illegal Transition", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		stored := &models.Order{ID: uuid.New(), Status: models.StatusPending}
		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		_, err := svc.UpdateStatus(ctx, stored.ID, models.StatusDelivered)

		assert.Equal(t, 400, apperrors.From(err).Code)
		orders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Terminal State Rejects Everything", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		stored := &models.Order{ID: uuid.New(), Status: models.StatusDelivered}
		orders.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		_, err := svc.UpdateStatus(ctx, stored.ID, models.StatusCancelled)

		assert.Equal(t, 400, apperrors.From(err).Code)
	})
}

func TestUpdateOrderPatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Payment Method Rejected", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockCartStore), nil, 5.00, zap.NewNop())

		bad := "check"
		_, err := svc.Update(ctx, uuid.New(), models.OrderPatch{PaymentMethod: &bad})

		assert.Equal(t, 400, apperrors.From(err).Code)
	})

	t.Run("Patch Passes Through", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := NewOrderService(orders, new(MockCartStore), nil, 5.00, zap.NewNop())

		id := uuid.New()
		addr := "Rua Nova, 20"
		updated := &models.Order{ID: id, Address: addr}
		orders.On("Update", ctx, id, mock.AnythingOfType("models.OrderPatch")).Return(updated, nil).Once()

		order, err := svc.Update(ctx, id, models.OrderPatch{Address: &addr})

		assert.NoError(t, err)
		assert.Equal(t, addr, order.Address)
	})
}
