package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sellora/marketplace/internal/api/middleware"
	"github.com/sellora/marketplace/internal/models"
	service "github.com/sellora/marketplace/internal/services"
	"github.com/sellora/marketplace/internal/utils"
	"github.com/sellora/marketplace/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// CreateCategory godoc
//	@Summary		Create a category (admin)
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category Details"
//	@Success		201			{object}	models.Category					"Created category"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		403			{object}	response.ErrorResponse			"Admin only"
//	@Security		BearerAuth
//	@Router			/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.String("categoryId", category.ID.String()))
		response.Success(w, http.StatusCreated, category)
	}
}

// ListCategories godoc
//	@Summary		List categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}	models.Category	"Categories"
//	@Router			/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// GetCategory godoc
//	@Summary		Get a category by ID
//	@Tags			Categories
//	@Produce		json
//	@Param			id	path		string					true	"Category ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Category			"Category"
//	@Failure		404	{object}	response.ErrorResponse	"Category not found"
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// UpdateCategory godoc
//	@Summary		Update a category (admin)
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Category ID (UUID)"	Format(uuid)
//	@Param			category	body		models.UpdateCategoryRequest	true	"Fields to update"
//	@Success		200			{object}	models.Category					"Updated category"
//	@Failure		404			{object}	response.ErrorResponse			"Category not found"
//	@Security		BearerAuth
//	@Router			/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update category input")
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//	@Summary		Delete a category (admin)
//	@Tags			Categories
//	@Param			id	path	string	true	"Category ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Category not found"
//	@Security		BearerAuth
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
