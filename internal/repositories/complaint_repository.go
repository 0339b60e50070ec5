package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListComplaintsByBuyer(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Complaint, int, error)
	ListComplaintsBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Complaint, int, error)
	UpdateSellerResponse(ctx context.Context, id uuid.UUID, response string, status models.ComplaintStatus) error
	UpdateResolution(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, resolution string) error
}

type complaintRepository struct {
	DB *sql.DB
}

func NewComplaintRepo(db *sql.DB) ComplaintRepository {
	return &complaintRepository{DB: db}
}

const complaintColumns = `id, order_id, buyer_id, seller_id, subject, description, seller_response, resolution, status, created_at, updated_at`

func (r *complaintRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO complaints (order_id, buyer_id, seller_id, subject, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, complaint.OrderID, complaint.BuyerID, complaint.SellerID, complaint.Subject, complaint.Description, complaint.Status).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	complaint := &models.Complaint{}

	err := r.DB.QueryRowContext(dbCtx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id).Scan(&complaint.ID, &complaint.OrderID, &complaint.BuyerID, &complaint.SellerID, &complaint.Subject, &complaint.Description, &complaint.SellerResponse, &complaint.Resolution, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return complaint, nil
}

func (r *complaintRepository) ListComplaintsByBuyer(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Complaint, int, error) {
	return r.listComplaints(ctx, "buyer_id", buyerID, page, size)
}

func (r *complaintRepository) ListComplaintsBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Complaint, int, error) {
	return r.listComplaints(ctx, "seller_id", sellerID, page, size)
}

func (r *complaintRepository) listComplaints(ctx context.Context, column string, ownerID uuid.UUID, page, size int) ([]models.Complaint, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, fmt.Sprintf(`SELECT COUNT(*) FROM complaints WHERE %s = $1`, column), ownerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT `+complaintColumns+` FROM complaints WHERE %s = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, column)

	rows, err := r.DB.QueryContext(dbCtx, query, ownerID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	defer rows.Close()

	var complaints []models.Complaint

	for rows.Next() {

		var complaint models.Complaint

		err := rows.Scan(&complaint.ID, &complaint.OrderID, &complaint.BuyerID, &complaint.SellerID, &complaint.Subject, &complaint.Description, &complaint.SellerResponse, &complaint.Resolution, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan complaint: %w", err)
		}

		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return complaints, total, nil
}

func (r *complaintRepository) UpdateSellerResponse(ctx context.Context, id uuid.UUID, response string, status models.ComplaintStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE complaints SET seller_response = $1, status = $2, updated_at = NOW() WHERE id = $3`, response, status, id)
	if err != nil {
		return fmt.Errorf("failed to update seller response: %w", err)
	}

	return checkAffected(result)
}

func (r *complaintRepository) UpdateResolution(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, resolution string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE complaints SET status = $1, resolution = $2, updated_at = NOW() WHERE id = $3`, status, resolution, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint resolution: %w", err)
	}

	return checkAffected(result)
}

func checkAffected(result sql.Result) error {

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
