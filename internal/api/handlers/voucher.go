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

type VoucherHandler struct {
	voucherService service.VoucherService
	validator      *validator.Validate
}

func NewVoucherHandler(voucherService service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService, validator: validator.New()}
}

// CreateVoucher godoc
//	@Summary		Submit a voucher request (seller)
//	@Description	Creates a pending voucher that takes effect once an admin approves it.
//	@Tags			Vouchers
//	@Accept			json
//	@Produce		json
//	@Param			voucher	body		models.CreateVoucherRequest	true	"Voucher Details"
//	@Success		201		{object}	models.Voucher				"Pending voucher"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Duplicate code"
//	@Security		BearerAuth
//	@Router			/vouchers [post]
func (h *VoucherHandler) CreateVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateVoucherRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create voucher input")
			return
		}

		voucher, err := h.voucherService.CreateVoucher(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create voucher", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Voucher requested", slog.String("voucherId", voucher.ID.String()))
		response.Success(w, http.StatusCreated, voucher)
	}
}

// ListVouchers godoc
//	@Summary		List own vouchers (seller)
//	@Tags			Vouchers
//	@Produce		json
//	@Param			page		query		int												false	"Page number (default: 1)"
//	@Param			pageSize	query		int												false	"Number of items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Voucher}	"Vouchers"
//	@Security		BearerAuth
//	@Router			/vouchers [get]
func (h *VoucherHandler) ListVouchers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, pageSize := utils.Pagination(r)

		vouchers, total, err := h.voucherService.ListSellerVouchers(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     vouchers,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// ListPendingVouchers godoc
//	@Summary		List pending voucher requests (admin)
//	@Tags			Vouchers
//	@Produce		json
//	@Param			page		query		int												false	"Page number (default: 1)"
//	@Param			pageSize	query		int												false	"Number of items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Voucher}	"Pending vouchers"
//	@Security		BearerAuth
//	@Router			/admin/vouchers/pending [get]
func (h *VoucherHandler) ListPendingVouchers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := utils.Pagination(r)

		vouchers, total, err := h.voucherService.ListPendingVouchers(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     vouchers,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// ReviewVoucher godoc
//	@Summary		Approve or reject a voucher request (admin)
//	@Tags			Vouchers
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Voucher ID (UUID)"	Format(uuid)
//	@Param			decision	body		models.ReviewVoucherRequest	true	"Approve or reject"
//	@Success		200			{object}	models.Voucher				"Reviewed voucher"
//	@Failure		404			{object}	response.ErrorResponse		"Voucher not found"
//	@Failure		409			{object}	response.ErrorResponse		"Voucher already reviewed"
//	@Security		BearerAuth
//	@Router			/admin/vouchers/{id} [patch]
func (h *VoucherHandler) ReviewVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ReviewVoucherRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review voucher input")
			return
		}

		voucher, err := h.voucherService.ReviewVoucher(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to review voucher", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Voucher reviewed", slog.String("voucherId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, voucher)
	}
}

// ValidateVoucher godoc
//	@Summary		Validate a voucher code
//	@Description	Checks a code against a seller subtotal and returns the discount amount or a typed rejection reason. Does not consume a use.
//	@Tags			Vouchers
//	@Accept			json
//	@Produce		json
//	@Param			voucher	body		models.ValidateVoucherRequest	true	"Code, seller and subtotal"
//	@Success		200		{object}	models.VoucherValidation		"Validation result"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Security		BearerAuth
//	@Router			/vouchers/validate [post]
func (h *VoucherHandler) ValidateVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ValidateVoucherRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid validate voucher input")
			return
		}

		result, err := h.voucherService.ValidateVoucher(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// RedeemVoucher godoc
//	@Summary		Redeem a voucher code
//	@Description	Validates and consumes one use. Concurrent redemptions cannot exceed the usage limit.
//	@Tags			Vouchers
//	@Accept			json
//	@Produce		json
//	@Param			voucher	body		models.ValidateVoucherRequest	true	"Code, seller and subtotal"
//	@Success		200		{object}	models.VoucherValidation		"Redemption result"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Security		BearerAuth
//	@Router			/vouchers/redeem [post]
func (h *VoucherHandler) RedeemVoucher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ValidateVoucherRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid redeem voucher input")
			return
		}

		result, err := h.voucherService.RedeemVoucher(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to redeem voucher", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
