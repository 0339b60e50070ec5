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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// CreateReview godoc
//	@Summary		Review a purchased product
//	@Description	One review per buyer per delivered order item. Comments are sanitized.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.CreateReviewRequest	true	"Review Details"
//	@Success		201		{object}	models.Review				"Created review"
//	@Failure		400		{object}	response.ErrorResponse		"Order not delivered or product not in order"
//	@Failure		403		{object}	response.ErrorResponse		"Not the order's buyer"
//	@Failure		409		{object}	response.ErrorResponse		"Already reviewed"
//	@Security		BearerAuth
//	@Router			/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create review input")
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review created", slog.String("reviewId", review.ID.String()))
		response.Success(w, http.StatusCreated, review)
	}
}

// ReplyToReview godoc
//	@Summary		Reply to a review (seller)
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Review ID (UUID)"	Format(uuid)
//	@Param			reply	body		models.ReplyReviewRequest	true	"Reply text"
//	@Success		200		{object}	models.Review				"Review with seller reply"
//	@Failure		403		{object}	response.ErrorResponse		"Not the product's seller"
//	@Failure		404		{object}	response.ErrorResponse		"Review not found"
//	@Security		BearerAuth
//	@Router			/reviews/{id}/reply [post]
func (h *ReviewHandler) ReplyToReview() http.HandlerFunc {
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

		var req models.ReplyReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review reply input")
			return
		}

		review, err := h.reviewService.ReplyToReview(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to reply to review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, review)
	}
}
