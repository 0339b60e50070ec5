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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Preview godoc
//	@Summary		Preview a checkout
//	@Description	Resolves the requested items into per-seller groups with line and group totals, without touching stock. Unavailable items are reported individually with a reason.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Checkout source and items"
//	@Success		200			{object}	models.CheckoutPreview	"Groups, totals and unavailable items"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/checkout/preview [post]
func (h *CheckoutHandler) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout preview attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout preview input")
			return
		}

		preview, err := h.checkoutService.Preview(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Checkout preview failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout previewed",
			slog.Int("payableItems", preview.PayableItemCount),
			slog.Int("unavailableItems", len(preview.OutOfStockItems)))
		response.Success(w, http.StatusOK, preview)
	}
}

// Confirm godoc
//	@Summary		Confirm a checkout
//	@Description	Creates one order per seller from the payable items. A successful payment simulation deducts stock atomically; a concurrent stock change rolls everything back and returns 409 with the conflicting items.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.ConfirmCheckoutRequest	true	"Checkout confirmation"
//	@Success		200			{object}	models.CheckoutOutcome			"Payment status and created orders"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error or no payable items"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		409			{object}	response.ErrorResponse			"Stock conflict; no orders were created"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/checkout/confirm [post]
func (h *CheckoutHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout confirm attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.ConfirmCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout confirm input")
			return
		}

		h.confirm(w, r, logger, claims, &req)
	}
}

func (h *CheckoutHandler) confirm(w http.ResponseWriter, r *http.Request, logger *slog.Logger, claims *models.Claims, req *models.ConfirmCheckoutRequest) {

	outcome, err := h.checkoutService.Confirm(r.Context(), claims.UserID, req)
	if err != nil {

		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeStockConflict && outcome != nil {
			logger.Warn("Checkout stock conflict", slog.Int("conflictItems", len(outcome.OutOfStockItems)))
			response.ErrorWithData(w, err, outcome.OutOfStockItems)
			return
		}

		logger.Error("Checkout confirm failed", slog.Any("error", err))
		response.Error(w, err)
		return
	}

	logger.Info("Checkout confirmed",
		slog.String("paymentStatus", outcome.PaymentStatus),
		slog.Int("orders", len(outcome.Orders)))
	response.Success(w, http.StatusOK, outcome)
}

// CreateOrder godoc
//	@Summary		Create an order directly (legacy)
//	@Description	Legacy order creation. Delegates to checkout confirm with source=buy_now and a successful payment simulation.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.LegacyCreateOrderRequest	true	"Items to order"
//	@Success		200		{object}	models.CheckoutOutcome			"Payment status and created orders"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error or no payable items"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse			"Stock conflict"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *CheckoutHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.LegacyCreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		confirmReq := &models.ConfirmCheckoutRequest{
			CheckoutRequest: models.CheckoutRequest{
				Source: models.CheckoutSourceBuyNow,
				Items:  req.Items,
			},
			PaymentSimulation: service.PaymentSimulationSuccess,
			ShippingAddressID: req.ShippingAddressID,
		}

		h.confirm(w, r, logger, claims, confirmReq)
	}
}
