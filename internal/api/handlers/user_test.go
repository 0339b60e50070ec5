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

func TestRegisterUser(t *testing.T) {

	t.Run("Success - User Registered", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		registerReq := models.RegisterRequest{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "P@ssword123!",
		}
		expectedUser := &models.User{
			ID:    uuid.New(),
			Name:  registerReq.Name,
			Email: registerReq.Email,
			Role:  models.RoleBuyer,
		}

		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).Return(expectedUser, nil).Once()

		bodyBytes, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email Returns 409", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		registerReq := models.RegisterRequest{Name: "Dup", Email: "dup@example.com", Password: "P@ssword123!"}

		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		bodyBytes, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, resp.Error.Code)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		bodyBytes, _ := json.Marshal(models.RegisterRequest{Name: "Bad", Email: "not-an-email", Password: "P@ssword123!"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/register", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Register()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register")
	})
}

func TestLoginUser(t *testing.T) {
	loginReq := models.LoginRequest{Email: "test@example.com", Password: "P@ssword123!"}

	t.Run("Success - Token Returned", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		loginResp := &models.LoginResponse{Success: true, Token: "signed.jwt.token", ExpiresIn: 3600}

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).Return(loginResp, nil).Once()

		bodyBytes, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password Returns 401", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		loginResp := &models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 2}

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).Return(loginResp, nil).Once()

		bodyBytes, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp models.LoginResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.RemainingTries)
	})

	t.Run("Failure - Rate Limited Returns 429", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		loginResp := &models.LoginResponse{Success: false, Message: "Too many login attempts", RetryAfter: 900}

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).Return(loginResp, nil).Once()

		bodyBytes, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/users/login", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		var resp models.LoginResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, 900, resp.RetryAfter)
	})
}

func TestProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Profile Returned", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		expectedUser := &models.User{ID: userID, Name: "Test User", Email: "test@example.com", Role: models.RoleBuyer}

		mockUserService.On("GetUserByID", mock.Anything, userID).Return(expectedUser, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/users/profile", nil, userID, models.RoleBuyer, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Profile()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/users/profile", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler := userHandler.Profile()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertNotCalled(t, "GetUserByID")
	})
}
