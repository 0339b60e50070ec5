package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/repositories/mocks"
	service "github.com/sellora/marketplace/internal/services"
	serviceMocks "github.com/sellora/marketplace/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderServiceTest() (service.OrderService, *mocks.OrderRepository, *mocks.UserRepository, *serviceMocks.NotificationService) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockNotification := new(serviceMocks.NotificationService)
	orderService := service.NewOrderService(mockOrderRepo, mockUserRepo, mockNotification)

	return orderService, mockOrderRepo, mockUserRepo, mockNotification
}

func TestGetOrder(t *testing.T) {
	orderService, mockOrderRepo, _, _ := setupOrderServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusPaid}

	t.Run("Success - Buyer reads own order", func(t *testing.T) {
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}

		got, err := orderService.GetOrder(ctx, claims, orderID)

		assert.NoError(t, err)
		assert.Equal(t, orderID, got.ID)
	})

	t.Run("Success - Admin reads any order", func(t *testing.T) {
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}

		got, err := orderService.GetOrder(ctx, claims, orderID)

		assert.NoError(t, err)
		assert.Equal(t, orderID, got.ID)
	})

	t.Run("Failure - Stranger is forbidden", func(t *testing.T) {
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: uuid.New(), Role: models.RoleBuyer}

		got, err := orderService.GetOrder(ctx, claims, orderID)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(nil, errors.New("sql: no rows in result set")).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}

		got, err := orderService.GetOrder(ctx, claims, orderID)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - Paid to processing", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusPaid}
		updated := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusProcessing}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusProcessing, "picking").Return(nil).Once()
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(updated, nil).Once()

		claims := &models.Claims{UserID: sellerID, Role: models.RoleSeller}
		req := &models.UpdateOrderStatusRequest{Status: models.OrderStatusProcessing, Note: "picking"}

		got, err := orderService.UpdateStatus(ctx, claims, orderID, req)

		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusProcessing, got.Status)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Delivered cannot go back to shipped", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusDelivered}
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: sellerID, Role: models.RoleSeller}
		req := &models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped}

		got, err := orderService.UpdateStatus(ctx, claims, orderID, req)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStatusTransition, appErr.Code)

		mockOrderRepo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Buyer cannot drive seller transitions", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusPaid}
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}
		req := &models.UpdateOrderStatusRequest{Status: models.OrderStatusProcessing}

		got, err := orderService.UpdateStatus(ctx, claims, orderID, req)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})

	t.Run("Shipped triggers a buyer notification", func(t *testing.T) {
		orderService, mockOrderRepo, mockUserRepo, mockNotification := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusProcessing}
		updated := &models.Order{ID: orderID, BuyerID: buyerID, SellerID: sellerID, Status: models.OrderStatusShipped}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusShipped, "").Return(nil).Once()
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(updated, nil).Once()
		mockUserRepo.On("GetUserByID", ctx, buyerID).Return(&models.User{ID: buyerID, Email: "buyer@example.com"}, nil).Once()
		mockNotification.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Maybe()

		claims := &models.Claims{UserID: sellerID, Role: models.RoleSeller}
		req := &models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped}

		got, err := orderService.UpdateStatus(ctx, claims, orderID, req)

		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, got.Status)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - Created order is cancellable", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, Status: models.OrderStatusCreated}
		cancelled := &models.Order{ID: orderID, BuyerID: buyerID, Status: models.OrderStatusCancelled}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusCancelled, "Cancelled by buyer").Return(nil).Once()
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(cancelled, nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}

		got, err := orderService.CancelOrder(ctx, claims, orderID)

		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, got.Status)
	})

	t.Run("Failure - Shipped order cannot be cancelled", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, Status: models.OrderStatusShipped}
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}

		got, err := orderService.CancelOrder(ctx, claims, orderID)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStatusTransition, appErr.Code)
	})
}

func TestUpdateShippingAddress(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	orderID := uuid.New()

	newAddress := models.ShippingAddress{Street: "42 Side Street", City: "Springfield", State: "IL", PostalCode: "12345", Country: "US"}

	t.Run("Success - Pre-shipment order", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, Status: models.OrderStatusPaid}
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockOrderRepo.On("UpdateShippingAddress", ctx, orderID, &newAddress).Return(nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}
		req := &models.UpdateShippingAddressRequest{ShippingAddress: newAddress}

		got, err := orderService.UpdateShippingAddress(ctx, claims, orderID, req)

		assert.NoError(t, err)
		assert.Equal(t, &newAddress, got.ShippingAddress)
	})

	t.Run("Failure - Shipped order is frozen", func(t *testing.T) {
		orderService, mockOrderRepo, _, _ := setupOrderServiceTest()

		order := &models.Order{ID: orderID, BuyerID: buyerID, Status: models.OrderStatusShipped}
		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		claims := &models.Claims{UserID: buyerID, Role: models.RoleBuyer}
		req := &models.UpdateShippingAddressRequest{ShippingAddress: newAddress}

		got, err := orderService.UpdateShippingAddress(ctx, claims, orderID, req)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)

		mockOrderRepo.AssertNotCalled(t, "UpdateShippingAddress", mock.Anything, mock.Anything, mock.Anything)
	})
}
