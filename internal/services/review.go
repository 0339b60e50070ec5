package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type ReviewService interface {
	CreateReview(ctx context.Context, buyerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ReplyToReview(ctx context.Context, sellerID, reviewID uuid.UUID, req *models.ReplyReviewRequest) (*models.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, page, size int) (*models.ProductReviewSummary, error)
}

type reviewService struct {
	repo        repository.ReviewRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	sanitizer   *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		repo:        repo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// CreateReview accepts one review per buyer per delivered order item.
func (s *reviewService) CreateReview(ctx context.Context, buyerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.BuyerID != buyerID {
		return nil, errors.ForbiddenError("You can only review your own orders")
	}

	if order.Status != models.OrderStatusDelivered {
		return nil, errors.BadRequestError("Only delivered orders can be reviewed")
	}

	var inOrder bool

	for _, item := range order.Items {
		if item.ProductID == req.ProductID {
			inOrder = true
			break
		}
	}

	if !inOrder {
		return nil, errors.BadRequestError("Product is not part of this order")
	}

	exists, err := s.repo.ReviewExists(ctx, buyerID, req.OrderID, req.ProductID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to check existing reviews").WithError(err)
	}

	if exists {
		return nil, errors.DuplicateEntryError("You have already reviewed this product for this order")
	}

	review := &models.Review{
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		BuyerID:   buyerID,
		Rating:    req.Rating,
		Comment:   s.sanitizer.Sanitize(req.Comment),
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) ReplyToReview(ctx context.Context, sellerID, reviewID uuid.UUID, req *models.ReplyReviewRequest) (*models.Review, error) {

	review, err := s.repo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, errors.NotFoundError("Review not found").WithError(err)
	}

	product, err := s.productRepo.GetProductByID(ctx, review.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.SellerID != sellerID {
		return nil, errors.ForbiddenError("You can only reply to reviews of your own products")
	}

	reply := s.sanitizer.Sanitize(req.Reply)

	if err := s.repo.UpdateSellerReply(ctx, reviewID, reply); err != nil {
		return nil, errors.DatabaseError("Failed to save reply").WithError(err)
	}

	review.SellerReply = reply

	return review, nil
}

func (s *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, page, size int) (*models.ProductReviewSummary, error) {

	reviews, total, average, err := s.repo.ListReviewsByProduct(ctx, productID, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list reviews").WithError(err)
	}

	return &models.ProductReviewSummary{
		Reviews:       reviews,
		AverageRating: average,
		Total:         total,
		Page:          page,
		PageSize:      size,
	}, nil
}
