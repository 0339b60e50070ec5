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

type PromotionHandler struct {
	promotionService service.PromotionService
	validator        *validator.Validate
}

func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService, validator: validator.New()}
}

// CreatePromotion godoc
//	@Summary		Request a promotion (seller)
//	@Description	Proposes a discounted price for one of the seller's products over a date range; takes effect once approved.
//	@Tags			Promotions
//	@Accept			json
//	@Produce		json
//	@Param			promotion	body		models.CreatePromotionRequest	true	"Promotion Details"
//	@Success		201			{object}	models.PromotionRequest			"Pending promotion request"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		403			{object}	response.ErrorResponse			"Not the product's seller"
//	@Security		BearerAuth
//	@Router			/promotions [post]
func (h *PromotionHandler) CreatePromotion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreatePromotionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create promotion input")
			return
		}

		promo, err := h.promotionService.CreatePromotion(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create promotion request", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Promotion requested", slog.String("promotionId", promo.ID.String()))
		response.Success(w, http.StatusCreated, promo)
	}
}

// ListPromotions godoc
//	@Summary		List own promotion requests (seller)
//	@Tags			Promotions
//	@Produce		json
//	@Param			page		query		int															false	"Page number (default: 1)"
//	@Param			pageSize	query		int															false	"Number of items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.PromotionRequest}	"Promotion requests"
//	@Security		BearerAuth
//	@Router			/promotions [get]
func (h *PromotionHandler) ListPromotions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, pageSize := utils.Pagination(r)

		promos, total, err := h.promotionService.ListSellerPromotions(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     promos,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// ListPendingPromotions godoc
//	@Summary		List pending promotion requests (admin)
//	@Tags			Promotions
//	@Produce		json
//	@Param			page		query		int															false	"Page number (default: 1)"
//	@Param			pageSize	query		int															false	"Number of items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.PromotionRequest}	"Pending promotion requests"
//	@Security		BearerAuth
//	@Router			/admin/promotions/pending [get]
func (h *PromotionHandler) ListPendingPromotions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := utils.Pagination(r)

		promos, total, err := h.promotionService.ListPendingPromotions(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     promos,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// ReviewPromotion godoc
//	@Summary		Approve or reject a promotion request (admin)
//	@Tags			Promotions
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Promotion ID (UUID)"	Format(uuid)
//	@Param			decision	body		models.ReviewPromotionRequest	true	"Approve or reject"
//	@Success		200			{object}	models.PromotionRequest			"Reviewed promotion request"
//	@Failure		404			{object}	response.ErrorResponse			"Promotion request not found"
//	@Failure		409			{object}	response.ErrorResponse			"Already reviewed"
//	@Security		BearerAuth
//	@Router			/admin/promotions/{id} [patch]
func (h *PromotionHandler) ReviewPromotion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ReviewPromotionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review promotion input")
			return
		}

		promo, err := h.promotionService.ReviewPromotion(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to review promotion", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Promotion reviewed", slog.String("promotionId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, promo)
	}
}
