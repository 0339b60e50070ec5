package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ReviewExists(ctx context.Context, buyerID, orderID, productID uuid.UUID) (bool, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID, page, size int) ([]models.Review, int, float64, error)
	UpdateSellerReply(ctx context.Context, id uuid.UUID, reply string) error
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (product_id, order_id, buyer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, review.ProductID, review.OrderID, review.BuyerID, review.Rating, review.Comment).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review := &models.Review{ID: id}

	query := `
		SELECT product_id, order_id, buyer_id, rating, comment, seller_reply, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&review.ProductID, &review.OrderID, &review.BuyerID, &review.Rating, &review.Comment, &review.SellerReply, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) ReviewExists(ctx context.Context, buyerID, orderID, productID uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE buyer_id = $1 AND order_id = $2 AND product_id = $3)`

	err := r.DB.QueryRowContext(dbCtx, query, buyerID, orderID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("querying database: %w", err)
	}

	return exists, nil
}

func (r *reviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID, page, size int) ([]models.Review, int, float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	var average sql.NullFloat64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*), AVG(rating) FROM reviews WHERE product_id = $1`, productID).Scan(&total, &average)
	if err != nil {
		return nil, 0, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT id, order_id, buyer_id, rating, comment, seller_reply, created_at, updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID, size, offset)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	defer rows.Close()

	var reviews []models.Review

	for rows.Next() {

		review := models.Review{ProductID: productID}

		err := rows.Scan(&review.ID, &review.OrderID, &review.BuyerID, &review.Rating, &review.Comment, &review.SellerReply, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to scan review: %w", err)
		}

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	return reviews, total, average.Float64, nil
}

func (r *reviewRepository) UpdateSellerReply(ctx context.Context, id uuid.UUID, reply string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE reviews SET seller_reply = $1, updated_at = NOW() WHERE id = $2`, reply, id)
	if err != nil {
		return fmt.Errorf("failed to update seller reply: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
