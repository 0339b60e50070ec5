package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type VoucherRepository interface {
	CreateVoucher(ctx context.Context, voucher *models.Voucher) error
	GetVoucherByID(ctx context.Context, id uuid.UUID) (*models.Voucher, error)
	GetVoucherByCode(ctx context.Context, sellerID uuid.UUID, code string) (*models.Voucher, error)
	ListVouchersBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Voucher, int, error)
	ListPendingVouchers(ctx context.Context, page, size int) ([]models.Voucher, int, error)
	UpdateVoucherStatus(ctx context.Context, id uuid.UUID, status models.VoucherStatus) error
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
}

type voucherRepository struct {
	DB *sql.DB
}

func NewVoucherRepo(db *sql.DB) VoucherRepository {
	return &voucherRepository{DB: db}
}

const voucherColumns = `id, seller_id, code, discount_type, discount_value, min_spend, usage_limit, used_count, expires_at, status, created_at, updated_at`

func (r *voucherRepository) CreateVoucher(ctx context.Context, voucher *models.Voucher) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO vouchers (seller_id, code, discount_type, discount_value, min_spend, usage_limit, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, voucher.SellerID, voucher.Code, voucher.DiscountType, voucher.DiscountValue, voucher.MinSpend, voucher.UsageLimit, voucher.ExpiresAt, voucher.Status).Scan(&voucher.ID, &voucher.CreatedAt, &voucher.UpdatedAt)
}

func (r *voucherRepository) scanVoucher(row *sql.Row) (*models.Voucher, error) {

	voucher := &models.Voucher{}

	err := row.Scan(&voucher.ID, &voucher.SellerID, &voucher.Code, &voucher.DiscountType, &voucher.DiscountValue, &voucher.MinSpend, &voucher.UsageLimit, &voucher.UsedCount, &voucher.ExpiresAt, &voucher.Status, &voucher.CreatedAt, &voucher.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return voucher, nil
}

func (r *voucherRepository) GetVoucherByID(ctx context.Context, id uuid.UUID) (*models.Voucher, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.scanVoucher(r.DB.QueryRowContext(dbCtx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id))
}

func (r *voucherRepository) GetVoucherByCode(ctx context.Context, sellerID uuid.UUID, code string) (*models.Voucher, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.scanVoucher(r.DB.QueryRowContext(dbCtx, `SELECT `+voucherColumns+` FROM vouchers WHERE seller_id = $1 AND code = $2`, sellerID, code))
}

func (r *voucherRepository) ListVouchersBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Voucher, int, error) {
	return r.listVouchers(ctx, `seller_id = $1`, sellerID, page, size)
}

func (r *voucherRepository) ListPendingVouchers(ctx context.Context, page, size int) ([]models.Voucher, int, error) {
	return r.listVouchers(ctx, `status = $1`, models.VoucherStatusPending, page, size)
}

func (r *voucherRepository) listVouchers(ctx context.Context, where string, arg any, page, size int) ([]models.Voucher, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM vouchers WHERE `+where, arg).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE ` + where + ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, arg, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vouchers: %w", err)
	}

	defer rows.Close()

	var vouchers []models.Voucher

	for rows.Next() {

		var voucher models.Voucher

		err := rows.Scan(&voucher.ID, &voucher.SellerID, &voucher.Code, &voucher.DiscountType, &voucher.DiscountValue, &voucher.MinSpend, &voucher.UsageLimit, &voucher.UsedCount, &voucher.ExpiresAt, &voucher.Status, &voucher.CreatedAt, &voucher.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan voucher: %w", err)
		}

		vouchers = append(vouchers, voucher)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return vouchers, total, nil
}

func (r *voucherRepository) UpdateVoucherStatus(ctx context.Context, id uuid.UUID, status models.VoucherStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE vouchers SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update voucher status: %w", err)
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

// IncrementUsage consumes one redemption, guarded against the usage limit the
// same way stock decrements are guarded.
func (r *voucherRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE vouchers SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1 AND used_count < usage_limit
	`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to increment voucher usage: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
