package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type PromotionRepository interface {
	CreatePromotion(ctx context.Context, promo *models.PromotionRequest) error
	GetPromotionByID(ctx context.Context, id uuid.UUID) (*models.PromotionRequest, error)
	ListPromotionsBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.PromotionRequest, int, error)
	ListPendingPromotions(ctx context.Context, page, size int) ([]models.PromotionRequest, int, error)
	UpdatePromotionStatus(ctx context.Context, id uuid.UUID, status models.PromotionStatus) error
	GetActivePromotion(ctx context.Context, productID uuid.UUID, at time.Time) (*models.PromotionRequest, error)
}

type promotionRepository struct {
	DB *sql.DB
}

func NewPromotionRepo(db *sql.DB) PromotionRepository {
	return &promotionRepository{DB: db}
}

const promotionColumns = `id, seller_id, product_id, promo_price, starts_at, ends_at, status, created_at, updated_at`

func (r *promotionRepository) CreatePromotion(ctx context.Context, promo *models.PromotionRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO promotion_requests (seller_id, product_id, promo_price, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, promo.SellerID, promo.ProductID, promo.PromoPrice, promo.StartsAt, promo.EndsAt, promo.Status).Scan(&promo.ID, &promo.CreatedAt, &promo.UpdatedAt)
}

func (r *promotionRepository) scanPromotion(row *sql.Row) (*models.PromotionRequest, error) {

	promo := &models.PromotionRequest{}

	err := row.Scan(&promo.ID, &promo.SellerID, &promo.ProductID, &promo.PromoPrice, &promo.StartsAt, &promo.EndsAt, &promo.Status, &promo.CreatedAt, &promo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return promo, nil
}

func (r *promotionRepository) GetPromotionByID(ctx context.Context, id uuid.UUID) (*models.PromotionRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.scanPromotion(r.DB.QueryRowContext(dbCtx, `SELECT `+promotionColumns+` FROM promotion_requests WHERE id = $1`, id))
}

// GetActivePromotion returns the approved promotion covering the given
// instant, if any.
func (r *promotionRepository) GetActivePromotion(ctx context.Context, productID uuid.UUID, at time.Time) (*models.PromotionRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + promotionColumns + `
		FROM promotion_requests
		WHERE product_id = $1 AND status = 'approved' AND starts_at <= $2 AND ends_at > $2
		ORDER BY starts_at DESC
		LIMIT 1
	`

	return r.scanPromotion(r.DB.QueryRowContext(dbCtx, query, productID, at))
}

func (r *promotionRepository) ListPromotionsBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.PromotionRequest, int, error) {
	return r.listPromotions(ctx, `seller_id = $1`, sellerID, page, size)
}

func (r *promotionRepository) ListPendingPromotions(ctx context.Context, page, size int) ([]models.PromotionRequest, int, error) {
	return r.listPromotions(ctx, `status = $1`, models.PromotionStatusPending, page, size)
}

func (r *promotionRepository) listPromotions(ctx context.Context, where string, arg any, page, size int) ([]models.PromotionRequest, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM promotion_requests WHERE `+where, arg).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + promotionColumns + ` FROM promotion_requests WHERE ` + where + ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, arg, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list promotion requests: %w", err)
	}

	defer rows.Close()

	var promos []models.PromotionRequest

	for rows.Next() {

		var promo models.PromotionRequest

		err := rows.Scan(&promo.ID, &promo.SellerID, &promo.ProductID, &promo.PromoPrice, &promo.StartsAt, &promo.EndsAt, &promo.Status, &promo.CreatedAt, &promo.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan promotion request: %w", err)
		}

		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return promos, total, nil
}

func (r *promotionRepository) UpdatePromotionStatus(ctx context.Context, id uuid.UUID, status models.PromotionStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE promotion_requests SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update promotion status: %w", err)
	}

	return checkAffected(result)
}
