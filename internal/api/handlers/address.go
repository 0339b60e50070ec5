package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sellora/marketplace/internal/api/middleware"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	service "github.com/sellora/marketplace/internal/services"
	"github.com/sellora/marketplace/internal/utils"
	"github.com/sellora/marketplace/internal/utils/response"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// CreateAddress godoc
//	@Summary		Create a shipping address
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.CreateAddressRequest	true	"Address Details"
//	@Success		201		{object}	models.Address				"Successfully created address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address created", slog.String("addressId", address.ID.String()))
		response.Success(w, http.StatusCreated, address)
	}
}

// ListAddresses godoc
//	@Summary		List own addresses
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{array}		models.Address			"Addresses"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// GetAddress godoc
//	@Summary		Get an address by ID
//	@Tags			Addresses
//	@Produce		json
//	@Param			id	path		string					true	"Address ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Address			"Address"
//	@Failure		403	{object}	response.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [get]
func (h *AddressHandler) GetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		address, err := h.addressService.GetAddress(r.Context(), claims.UserID, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// UpdateAddress godoc
//	@Summary		Update an address
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Address ID (UUID)"	Format(uuid)
//	@Param			address	body		models.UpdateAddressRequest	true	"Fields to update"
//	@Success		200		{object}	models.Address				"Updated address"
//	@Failure		403		{object}	response.ErrorResponse		"Forbidden"
//	@Failure		404		{object}	response.ErrorResponse		"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [patch]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update address input")
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//	@Summary		Delete an address
//	@Tags			Addresses
//	@Param			id	path	string	true	"Address ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		403	{object}	response.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
