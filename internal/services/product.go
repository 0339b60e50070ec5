package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/cache"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, sellerID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error)
}

type productService struct {
	repo          repository.ProductRepository
	promotionRepo repository.PromotionRepository
	cache         cache.Cache
}

func NewProductService(repo repository.ProductRepository, promotionRepo repository.PromotionRepository, productCache cache.Cache) ProductService {
	return &productService{repo: repo, promotionRepo: promotionRepo, cache: productCache}
}

func (s *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		SellerID:    sellerID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Status:      "active",
	}

	if len(req.Variants) > 0 {

		product.HasVariants = true

		seen := make(map[string]bool)

		for _, input := range req.Variants {

			key := models.VariantKey(input.Options)
			if key == "" {
				return nil, errors.ValidationError("Variant options must not be empty")
			}

			if seen[key] {
				return nil, errors.ValidationError("Duplicate variant combination: " + key)
			}

			seen[key] = true

			product.Variants = append(product.Variants, models.VariantCombination{
				VariantKey:    key,
				Options:       input.Options,
				Price:         input.Price,
				StockQuantity: input.StockQuantity,
				SKU:           input.SKU,
			})

			// aggregate stock mirrors the variant sum
			product.StockQuantity += input.StockQuantity
		}

	} else {

		if req.Price <= 0 {
			return nil, errors.ValidationError("Price is required for a product without variants")
		}

		product.Price = req.Price
		product.StockQuantity = req.StockQuantity
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, id.String())

	product := &models.Product{}

	found, err := s.cache.Get(ctx, cacheKey, product)
	if err != nil {
		slog.Warn("Product cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
	}

	if !found {

		product, err = s.repo.GetProductByID(ctx, id)
		if err != nil {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		if err := s.cache.Set(ctx, cacheKey, product, 0); err != nil {
			slog.Warn("Product cache write failed", slog.String("key", cacheKey), slog.Any("error", err))
		}
	}

	s.applyPromotion(ctx, product)

	return product, nil
}

// applyPromotion overlays an approved, currently running promotion price.
// Applied after the cache so a promotion going live never waits for expiry.
func (s *productService) applyPromotion(ctx context.Context, product *models.Product) {

	promo, err := s.promotionRepo.GetActivePromotion(ctx, product.ID, time.Now())
	if err != nil || promo == nil {
		return
	}

	product.PromoPrice = &promo.PromoPrice
}

func (s *productService) UpdateProduct(ctx context.Context, sellerID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.SellerID != sellerID {
		return nil, errors.ForbiddenError("You don't have permission to modify this product")
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if product.HasVariants {
			return nil, errors.ValidationError("Price of a variant product is set per variant")
		}
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		if product.HasVariants {
			return nil, errors.ValidationError("Stock of a variant product is set per variant")
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id.String())); err != nil {
		slog.Warn("Product cache invalidation failed", slog.String("productId", id.String()), slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	products, total, err := s.repo.ListProducts(ctx, filter, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list products").WithError(err)
	}

	for _, product := range products {
		s.applyPromotion(ctx, product)
	}

	return products, total, nil
}
