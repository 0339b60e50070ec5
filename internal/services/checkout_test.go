package service_test

import (
	"context"
	"database/sql"
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

type checkoutMocks struct {
	productRepo  *mocks.ProductRepository
	cartRepo     *mocks.CartRepository
	orderRepo    *mocks.OrderRepository
	addressRepo  *mocks.AddressRepository
	userRepo     *mocks.UserRepository
	txManager    *mocks.TxManager
	notification *serviceMocks.NotificationService
}

func setupCheckoutServiceTest() (service.CheckoutService, *checkoutMocks) {
	m := &checkoutMocks{
		productRepo:  new(mocks.ProductRepository),
		cartRepo:     new(mocks.CartRepository),
		orderRepo:    new(mocks.OrderRepository),
		addressRepo:  new(mocks.AddressRepository),
		userRepo:     new(mocks.UserRepository),
		txManager:    new(mocks.TxManager),
		notification: new(serviceMocks.NotificationService),
	}

	checkoutService := service.NewCheckoutService(m.productRepo, m.cartRepo, m.orderRepo, m.addressRepo, m.userRepo, m.txManager, m.notification)

	return checkoutService, m
}

// passthroughTx makes WithinTx run the callback against a nil transaction.
func passthroughTx(m *checkoutMocks) {
	m.txManager.On("WithinTx", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(tx *sql.Tx) error) error {
		return fn(nil)
	})
}

func TestCheckoutPreview(t *testing.T) {
	buyerID := uuid.New()
	sellerA := uuid.New()
	sellerB := uuid.New()
	ctx := context.Background()

	t.Run("Groups items by seller and rounds line totals", func(t *testing.T) {
		// Arrange
		checkoutService, m := setupCheckoutServiceTest()

		productA := &models.Product{ID: uuid.New(), SellerID: sellerA, Name: "Mug", Price: 19.99, StockQuantity: 10}
		productB := &models.Product{ID: uuid.New(), SellerID: sellerB, Name: "Poster", Price: 5.25, StockQuantity: 4}

		m.productRepo.On("GetProductByID", mock.Anything, productA.ID).Return(productA, nil).Once()
		m.productRepo.On("GetProductByID", mock.Anything, productB.ID).Return(productB, nil).Once()

		req := &models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items: []models.CheckoutItemInput{
				{ProductID: productA.ID, Quantity: 3},
				{ProductID: productB.ID, Quantity: 2},
			},
		}

		// Act
		preview, err := checkoutService.Preview(ctx, buyerID, req)

		// Assert
		assert.NoError(t, err)
		assert.True(t, preview.CanProceed)
		assert.Equal(t, 2, preview.PayableItemCount)
		assert.Len(t, preview.Groups, 2)
		assert.Equal(t, sellerA, preview.Groups[0].SellerID)
		assert.Equal(t, 59.97, preview.Groups[0].SubtotalAmount) // 3 * 19.99
		assert.Equal(t, sellerB, preview.Groups[1].SellerID)
		assert.Equal(t, 10.50, preview.Groups[1].SubtotalAmount)
		assert.Equal(t, 5, preview.Totals.ItemCount)
		assert.Equal(t, 70.47, preview.Totals.TotalAmount)
		assert.Empty(t, preview.OutOfStockItems)

		m.productRepo.AssertExpectations(t)
	})

	t.Run("Quantity equal to stock is payable", func(t *testing.T) {
		// Arrange
		checkoutService, m := setupCheckoutServiceTest()

		product := &models.Product{ID: uuid.New(), SellerID: sellerA, Name: "Lamp", Price: 40, StockQuantity: 2}
		m.productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		req := &models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items:  []models.CheckoutItemInput{{ProductID: product.ID, Quantity: 2}},
		}

		// Act
		preview, err := checkoutService.Preview(ctx, buyerID, req)

		// Assert
		assert.NoError(t, err)
		assert.True(t, preview.CanProceed)
		assert.Empty(t, preview.OutOfStockItems)
	})

	t.Run("Own product is reported unavailable", func(t *testing.T) {
		// Arrange
		checkoutService, m := setupCheckoutServiceTest()

		product := &models.Product{ID: uuid.New(), SellerID: buyerID, Name: "Own Thing", Price: 10, StockQuantity: 5}
		m.productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		req := &models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items:  []models.CheckoutItemInput{{ProductID: product.ID, Quantity: 1}},
		}

		// Act
		preview, err := checkoutService.Preview(ctx, buyerID, req)

		// Assert
		assert.NoError(t, err)
		assert.False(t, preview.CanProceed)
		assert.Len(t, preview.OutOfStockItems, 1)
		assert.Equal(t, models.ReasonOwnProduct, preview.OutOfStockItems[0].Reason)
	})

	t.Run("Missing cart items keep their reason", func(t *testing.T) {
		// Arrange
		checkoutService, m := setupCheckoutServiceTest()

		cart := &models.Cart{ID: uuid.New(), UserID: buyerID}
		missingID := uuid.New()

		m.cartRepo.On("GetOrCreateCart", mock.Anything, buyerID).Return(cart, nil).Once()
		m.cartRepo.On("GetItemsByIDs", mock.Anything, cart.ID, []uuid.UUID{missingID}).Return([]models.CartItem{}, nil).Once()

		req := &models.CheckoutRequest{
			Source:      models.CheckoutSourceCart,
			CartItemIDs: []uuid.UUID{missingID},
		}

		// Act
		preview, err := checkoutService.Preview(ctx, buyerID, req)

		// Assert
		assert.NoError(t, err)
		assert.False(t, preview.CanProceed)
		assert.Len(t, preview.OutOfStockItems, 1)
		assert.Equal(t, models.ReasonCartItemNotFound, preview.OutOfStockItems[0].Reason)
		assert.Equal(t, missingID, *preview.OutOfStockItems[0].CartItemID)
	})
}

func TestCheckoutConfirm_Success(t *testing.T) {
	// Arrange
	checkoutService, m := setupCheckoutServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()
	sellerA := uuid.New()
	sellerB := uuid.New()

	productA := &models.Product{ID: uuid.New(), SellerID: sellerA, Name: "Mug", Price: 19.99, StockQuantity: 10}
	productB := &models.Product{ID: uuid.New(), SellerID: sellerB, Name: "Poster", Price: 100, StockQuantity: 1}

	itemA := models.CartItem{ID: uuid.New(), ProductID: productA.ID, SellerID: sellerA, ProductName: "Mug", Quantity: 3, UnitPrice: 19.99}
	itemB := models.CartItem{ID: uuid.New(), ProductID: productB.ID, SellerID: sellerB, ProductName: "Poster", Quantity: 1, UnitPrice: 100}

	cart := &models.Cart{ID: uuid.New(), UserID: buyerID, Items: []models.CartItem{itemA, itemB}}

	m.cartRepo.On("GetOrCreateCart", mock.Anything, buyerID).Return(cart, nil)
	m.productRepo.On("GetProductByID", mock.Anything, productA.ID).Return(productA, nil).Once()
	m.productRepo.On("GetProductByID", mock.Anything, productB.ID).Return(productB, nil).Once()
	m.addressRepo.On("ListAddressesByUser", mock.Anything, buyerID).Return([]models.Address{}, nil).Once()

	passthroughTx(m)

	m.productRepo.On("DecrementStock", mock.Anything, mock.Anything, productA.ID, 3).Return(true, nil).Once()
	m.productRepo.On("DecrementStock", mock.Anything, mock.Anything, productB.ID, 1).Return(true, nil).Once()

	var created []*models.Order
	m.orderRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		created = append(created, args.Get(2).(*models.Order))
	}).Twice()

	m.cartRepo.On("DeleteItems", mock.Anything, mock.Anything, []uuid.UUID{itemA.ID, itemB.ID}).Return(nil).Once()
	m.cartRepo.On("RecomputeAggregates", mock.Anything, cart.ID).Return(0, 0.0, nil).Once()

	m.userRepo.On("GetUserByID", mock.Anything, buyerID).Return(&models.User{ID: buyerID, Email: "buyer@example.com"}, nil).Once()
	m.notification.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Maybe()

	req := &models.ConfirmCheckoutRequest{
		CheckoutRequest:   models.CheckoutRequest{Source: models.CheckoutSourceCart},
		PaymentSimulation: service.PaymentSimulationSuccess,
	}

	// Act
	outcome, err := checkoutService.Confirm(ctx, buyerID, req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "paid", outcome.PaymentStatus)
	assert.Equal(t, "/orders", outcome.RedirectTo)
	assert.Len(t, outcome.Orders, 2)

	assert.Len(t, created, 2)
	assert.Equal(t, sellerA, created[0].SellerID)
	assert.Equal(t, 59.97, created[0].TotalAmount)
	assert.Equal(t, 3, created[0].ItemCount)
	assert.Equal(t, models.OrderStatusPaid, created[0].Status)
	assert.Equal(t, sellerB, created[1].SellerID)
	assert.Equal(t, 100.0, created[1].TotalAmount)

	// history seeded as created -> paid
	assert.Equal(t, models.OrderStatusCreated, created[0].StatusHistory[0].Status)
	assert.Equal(t, models.OrderStatusPaid, created[0].StatusHistory[1].Status)

	m.cartRepo.AssertExpectations(t)
	m.productRepo.AssertExpectations(t)
	m.orderRepo.AssertExpectations(t)
}

func TestCheckoutConfirm_PaymentFailure(t *testing.T) {
	// Arrange
	checkoutService, m := setupCheckoutServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()

	product := &models.Product{ID: uuid.New(), SellerID: sellerID, Name: "Mug", Price: 25, StockQuantity: 10}

	m.productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
	m.addressRepo.On("ListAddressesByUser", mock.Anything, buyerID).Return([]models.Address{}, nil).Once()

	passthroughTx(m)

	var created *models.Order
	m.orderRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(2).(*models.Order)
	}).Once()

	req := &models.ConfirmCheckoutRequest{
		CheckoutRequest: models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items:  []models.CheckoutItemInput{{ProductID: product.ID, Quantity: 2}},
		},
		PaymentSimulation: service.PaymentSimulationFailure,
	}

	// Act
	outcome, err := checkoutService.Confirm(ctx, buyerID, req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "failed", outcome.PaymentStatus)
	assert.Empty(t, outcome.RedirectTo)
	assert.Len(t, outcome.Orders, 1)
	assert.Equal(t, models.OrderStatusFailed, created.Status)

	// a failed payment never touches stock
	m.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.orderRepo.AssertExpectations(t)
}

func TestCheckoutConfirm_StockConflict(t *testing.T) {
	// Arrange
	checkoutService, m := setupCheckoutServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	productID := uuid.New()

	// collection sees enough stock, the guarded decrement no longer does
	m.productRepo.On("GetProductByID", mock.Anything, productID).Return(&models.Product{ID: productID, SellerID: sellerID, Name: "Mug", Price: 10, StockQuantity: 2}, nil).Once()
	m.addressRepo.On("ListAddressesByUser", mock.Anything, buyerID).Return([]models.Address{}, nil).Once()

	passthroughTx(m)

	m.productRepo.On("DecrementStock", mock.Anything, mock.Anything, productID, 2).Return(false, nil).Once()

	// post-rollback re-read for the current availability
	m.productRepo.On("GetProductByID", mock.Anything, productID).Return(&models.Product{ID: productID, SellerID: sellerID, Name: "Mug", Price: 10, StockQuantity: 1}, nil).Once()

	req := &models.ConfirmCheckoutRequest{
		CheckoutRequest: models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items:  []models.CheckoutItemInput{{ProductID: productID, Quantity: 2}},
		},
		PaymentSimulation: service.PaymentSimulationSuccess,
	}

	// Act
	outcome, err := checkoutService.Confirm(ctx, buyerID, req)

	// Assert
	assert.Error(t, err)
	appErr, ok := appErrors.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeStockConflict, appErr.Code)

	assert.NotNil(t, outcome)
	assert.Equal(t, "conflict", outcome.PaymentStatus)
	assert.Len(t, outcome.OutOfStockItems, 1)
	assert.Equal(t, models.ReasonInsufficientStock, outcome.OutOfStockItems[0].Reason)
	assert.Equal(t, 2, outcome.OutOfStockItems[0].RequestedQty)
	assert.Equal(t, 1, outcome.OutOfStockItems[0].AvailableStock)

	m.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	m.productRepo.AssertExpectations(t)
}

func TestCheckoutConfirm_VariantStock(t *testing.T) {
	// Arrange
	checkoutService, m := setupCheckoutServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()

	product := &models.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        "Shirt",
		HasVariants: true,
		Variants: []models.VariantCombination{
			{VariantKey: "color=red;size=m", Price: 15.50, StockQuantity: 5},
		},
	}

	m.productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
	m.addressRepo.On("ListAddressesByUser", mock.Anything, buyerID).Return([]models.Address{}, nil).Once()

	passthroughTx(m)

	m.productRepo.On("DecrementVariantStock", mock.Anything, mock.Anything, product.ID, "color=red;size=m", 2).Return(true, nil).Once()
	m.productRepo.On("RecomputeAggregateStock", mock.Anything, mock.Anything, product.ID).Return(nil).Once()

	var created *models.Order
	m.orderRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(2).(*models.Order)
	}).Once()

	m.userRepo.On("GetUserByID", mock.Anything, buyerID).Return(&models.User{ID: buyerID, Email: "buyer@example.com"}, nil).Once()
	m.notification.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Maybe()

	req := &models.ConfirmCheckoutRequest{
		CheckoutRequest: models.CheckoutRequest{
			Source: models.CheckoutSourceBuyNow,
			Items: []models.CheckoutItemInput{
				{ProductID: product.ID, Quantity: 2, Options: map[string]string{"Size": "M", "Color": "Red"}},
			},
		},
		PaymentSimulation: service.PaymentSimulationSuccess,
	}

	// Act
	outcome, err := checkoutService.Confirm(ctx, buyerID, req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "paid", outcome.PaymentStatus)
	assert.Equal(t, 31.0, created.TotalAmount) // 2 * 15.50, variant price
	assert.Equal(t, "color=red;size=m", created.Items[0].VariantKey)

	m.productRepo.AssertExpectations(t)
}

func TestCheckoutConfirm_NoPayableItems(t *testing.T) {
	// Arrange
	checkoutService, m := setupCheckoutServiceTest()
	ctx := context.Background()
	buyerID := uuid.New()

	cart := &models.Cart{ID: uuid.New(), UserID: buyerID}
	consumedID := uuid.New()

	m.cartRepo.On("GetOrCreateCart", mock.Anything, buyerID).Return(cart, nil).Once()
	m.cartRepo.On("GetItemsByIDs", mock.Anything, cart.ID, []uuid.UUID{consumedID}).Return([]models.CartItem{}, nil).Once()

	req := &models.ConfirmCheckoutRequest{
		CheckoutRequest: models.CheckoutRequest{
			Source:      models.CheckoutSourceCart,
			CartItemIDs: []uuid.UUID{consumedID},
		},
		PaymentSimulation: service.PaymentSimulationSuccess,
	}

	// Act
	outcome, err := checkoutService.Confirm(ctx, buyerID, req)

	// Assert
	assert.Nil(t, outcome)
	appErr, ok := appErrors.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	assert.Contains(t, appErr.Error(), "No payable items")

	m.txManager.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}
