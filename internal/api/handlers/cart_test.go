package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sellora/marketplace/internal/api/handlers"
	appErrors "github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/services/mocks"
	"github.com/sellora/marketplace/internal/testutils"
	"github.com/sellora/marketplace/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	userID := uuid.New()

	t.Run("Success - Cart Returned", func(t *testing.T) {
		// Arrange
		expectedCart := &models.Cart{
			ID:         uuid.New(),
			UserID:     userID,
			Status:     "active",
			TotalItems: 2,
			TotalPrice: 39.98,
		}

		mockCartService.On("GetCart", mock.Anything, userID).Return(expectedCart, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/cart", nil, userID, models.RoleBuyer, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.GetCart()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respCart models.Cart
		err = json.Unmarshal(dataBytes, &respCart)
		assert.NoError(t, err)
		assert.Equal(t, expectedCart.ID, respCart.ID)
		assert.Equal(t, 39.98, respCart.TotalPrice)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.GetCart()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockCartService.AssertNotCalled(t, "GetCart")
	})
}

func TestAddCartItem(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		addReq := models.AddItemRequest{ProductID: uuid.New(), Quantity: 2}
		expectedCart := &models.Cart{ID: uuid.New(), UserID: userID, TotalItems: 2, TotalPrice: 39.98}

		mockCartService.On("AddItem", mock.Anything, userID, mock.AnythingOfType("*models.AddItemRequest")).Return(expectedCart, nil).Once()

		bodyBytes, _ := json.Marshal(addReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, models.RoleBuyer, nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.AddItem()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		addReq := models.AddItemRequest{ProductID: uuid.New(), Quantity: 500}

		mockCartService.On("AddItem", mock.Anything, userID, mock.AnythingOfType("*models.AddItemRequest")).
			Return(nil, appErrors.BadRequestError("Insufficient stock")).Once()

		bodyBytes, _ := json.Marshal(addReq)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, models.RoleBuyer, nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.AddItem()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("Failure - Missing Quantity", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		bodyBytes, _ := json.Marshal(map[string]any{"product_id": uuid.New()})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", bytes.NewReader(bodyBytes), userID, models.RoleBuyer, nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.AddItem()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "AddItem")
	})
}

func TestUpdateCartItemQuantity(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	t.Run("Success - Quantity Updated", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		expectedCart := &models.Cart{ID: uuid.New(), UserID: userID, TotalItems: 3, TotalPrice: 59.97}

		mockCartService.On("UpdateQuantity", mock.Anything, userID, itemID, mock.AnythingOfType("*models.UpdateQuantityRequest")).Return(expectedCart, nil).Once()

		bodyBytes, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		pathParams := map[string]string{"id": itemID.String()}
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/cart/items/"+itemID.String(), bytes.NewReader(bodyBytes), userID, models.RoleBuyer, pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Item ID", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		bodyBytes, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		pathParams := map[string]string{"id": "not-a-uuid"}
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/cart/items/not-a-uuid", bytes.NewReader(bodyBytes), userID, models.RoleBuyer, pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "UpdateQuantity")
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		mockCartService.On("UpdateQuantity", mock.Anything, userID, itemID, mock.AnythingOfType("*models.UpdateQuantityRequest")).
			Return(nil, appErrors.NotFoundError("Cart item not found")).Once()

		bodyBytes, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 3})
		pathParams := map[string]string{"id": itemID.String()}
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/cart/items/"+itemID.String(), bytes.NewReader(bodyBytes), userID, models.RoleBuyer, pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.UpdateQuantity()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRemoveCartItem(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	t.Run("Success - Item Removed", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		expectedCart := &models.Cart{ID: uuid.New(), UserID: userID}

		mockCartService.On("RemoveItem", mock.Anything, userID, itemID).Return(expectedCart, nil).Once()

		pathParams := map[string]string{"id": itemID.String()}
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart/items/"+itemID.String(), nil, userID, models.RoleBuyer, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler := cartHandler.RemoveItem()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}
