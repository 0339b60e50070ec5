package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/cache"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type PromotionService interface {
	CreatePromotion(ctx context.Context, sellerID uuid.UUID, req *models.CreatePromotionRequest) (*models.PromotionRequest, error)
	ReviewPromotion(ctx context.Context, id uuid.UUID, req *models.ReviewPromotionRequest) (*models.PromotionRequest, error)
	ListSellerPromotions(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.PromotionRequest, int, error)
	ListPendingPromotions(ctx context.Context, page, size int) ([]models.PromotionRequest, int, error)
}

type promotionService struct {
	repo        repository.PromotionRepository
	productRepo repository.ProductRepository
	cache       cache.Cache
}

func NewPromotionService(repo repository.PromotionRepository, productRepo repository.ProductRepository, productCache cache.Cache) PromotionService {
	return &promotionService{repo: repo, productRepo: productRepo, cache: productCache}
}

func (s *promotionService) CreatePromotion(ctx context.Context, sellerID uuid.UUID, req *models.CreatePromotionRequest) (*models.PromotionRequest, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.SellerID != sellerID {
		return nil, errors.ForbiddenError("You can only promote your own products")
	}

	if !product.HasVariants && req.PromoPrice >= product.Price {
		return nil, errors.ValidationError("Promotional price must be below the regular price")
	}

	promo := &models.PromotionRequest{
		SellerID:   sellerID,
		ProductID:  req.ProductID,
		PromoPrice: req.PromoPrice,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Status:     models.PromotionStatusPending,
	}

	if err := s.repo.CreatePromotion(ctx, promo); err != nil {
		return nil, errors.DatabaseError("Failed to create promotion request").WithError(err)
	}

	return promo, nil
}

// ReviewPromotion is the admin approve/reject step. Approval invalidates the
// product cache so the promotional price shows up immediately.
func (s *promotionService) ReviewPromotion(ctx context.Context, id uuid.UUID, req *models.ReviewPromotionRequest) (*models.PromotionRequest, error) {

	promo, err := s.repo.GetPromotionByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Promotion request not found").WithError(err)
	}

	if !promo.Status.CanTransitionTo(req.Status) {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot change promotion status from %s to %s", promo.Status, req.Status))
	}

	if err := s.repo.UpdatePromotionStatus(ctx, id, req.Status); err != nil {
		return nil, errors.DatabaseError("Failed to update promotion status").WithError(err)
	}

	promo.Status = req.Status

	if req.Status == models.PromotionStatusApproved {
		if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, promo.ProductID.String())); err != nil {
			slog.Warn("Product cache invalidation failed", slog.String("productId", promo.ProductID.String()), slog.Any("error", err))
		}
	}

	return promo, nil
}

func (s *promotionService) ListSellerPromotions(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.PromotionRequest, int, error) {

	promos, total, err := s.repo.ListPromotionsBySeller(ctx, sellerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list promotion requests").WithError(err)
	}

	return promos, total, nil
}

func (s *promotionService) ListPendingPromotions(ctx context.Context, page, size int) ([]models.PromotionRequest, int, error) {

	promos, total, err := s.repo.ListPendingPromotions(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list promotion requests").WithError(err)
	}

	return promos, total, nil
}
