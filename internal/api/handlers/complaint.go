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

type ComplaintHandler struct {
	complaintService service.ComplaintService
	validator        *validator.Validate
}

func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, validator: validator.New()}
}

// CreateComplaint godoc
//	@Summary		File a complaint (buyer)
//	@Description	Files a complaint against one of the buyer's own orders. The accused seller is derived from the order.
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			complaint	body		models.CreateComplaintRequest	true	"Complaint Details"
//	@Success		201			{object}	models.Complaint				"Created complaint"
//	@Failure		403			{object}	response.ErrorResponse			"Not the order's buyer"
//	@Failure		404			{object}	response.ErrorResponse			"Order not found"
//	@Security		BearerAuth
//	@Router			/complaints [post]
func (h *ComplaintHandler) CreateComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateComplaintRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create complaint input")
			return
		}

		complaint, err := h.complaintService.CreateComplaint(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create complaint", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Complaint filed", slog.String("complaintId", complaint.ID.String()))
		response.Success(w, http.StatusCreated, complaint)
	}
}

// GetComplaint godoc
//	@Summary		Get a complaint by ID
//	@Tags			Complaints
//	@Produce		json
//	@Param			id	path		string					true	"Complaint ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Complaint		"Complaint"
//	@Failure		403	{object}	response.ErrorResponse	"Not a party to this complaint"
//	@Failure		404	{object}	response.ErrorResponse	"Complaint not found"
//	@Security		BearerAuth
//	@Router			/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint() http.HandlerFunc {
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

		complaint, err := h.complaintService.GetComplaint(r.Context(), claims, id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, complaint)
	}
}

// ListComplaints godoc
//	@Summary		List own complaints
//	@Description	Buyers see complaints they filed; sellers see complaints filed against them.
//	@Tags			Complaints
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"
//	@Param			pageSize	query		int													false	"Number of items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Complaint}	"Complaints"
//	@Security		BearerAuth
//	@Router			/complaints [get]
func (h *ComplaintHandler) ListComplaints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, pageSize := utils.Pagination(r)

		var complaints []models.Complaint
		var total int
		var err error

		if claims.Role == models.RoleSeller {
			complaints, total, err = h.complaintService.ListSellerComplaints(r.Context(), claims.UserID, page, pageSize)
		} else {
			complaints, total, err = h.complaintService.ListBuyerComplaints(r.Context(), claims.UserID, page, pageSize)
		}

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     complaints,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// RespondToComplaint godoc
//	@Summary		Respond to a complaint (seller)
//	@Description	Records the seller's response and moves the complaint under review.
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Complaint ID (UUID)"	Format(uuid)
//	@Param			resp		body		models.RespondComplaintRequest	true	"Response text"
//	@Success		200			{object}	models.Complaint				"Updated complaint"
//	@Failure		403			{object}	response.ErrorResponse			"Not the accused seller"
//	@Failure		409			{object}	response.ErrorResponse			"Complaint not open"
//	@Security		BearerAuth
//	@Router			/complaints/{id}/respond [post]
func (h *ComplaintHandler) RespondToComplaint() http.HandlerFunc {
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

		var req models.RespondComplaintRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid complaint response input")
			return
		}

		complaint, err := h.complaintService.RespondToComplaint(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to respond to complaint", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, complaint)
	}
}

// ResolveComplaint godoc
//	@Summary		Resolve a complaint (admin)
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Complaint ID (UUID)"	Format(uuid)
//	@Param			decision	body		models.ResolveComplaintRequest	true	"Resolution"
//	@Success		200			{object}	models.Complaint				"Resolved complaint"
//	@Failure		404			{object}	response.ErrorResponse			"Complaint not found"
//	@Failure		409			{object}	response.ErrorResponse			"Illegal status transition"
//	@Security		BearerAuth
//	@Router			/admin/complaints/{id} [patch]
func (h *ComplaintHandler) ResolveComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ResolveComplaintRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid resolve complaint input")
			return
		}

		complaint, err := h.complaintService.ResolveComplaint(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to resolve complaint", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Complaint resolved", slog.String("complaintId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, complaint)
	}
}
