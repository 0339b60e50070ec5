package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, label, street, city, state, postal_code, country, phone, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, address.UserID, address.Label, address.Street, address.City, address.State, address.PostalCode, address.Country, address.Phone, address.IsDefault).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	address := &models.Address{ID: id}

	query := `
		SELECT user_id, label, street, city, state, postal_code, country, phone, is_default, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&address.UserID, &address.Label, &address.Street, &address.City, &address.State, &address.PostalCode, &address.Country, &address.Phone, &address.IsDefault, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return address, nil
}

func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, label, street, city, state, postal_code, country, phone, is_default, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	defer rows.Close()

	var addresses []models.Address

	for rows.Next() {

		address := models.Address{UserID: userID}

		err := rows.Scan(&address.ID, &address.Label, &address.Street, &address.City, &address.State, &address.PostalCode, &address.Country, &address.Phone, &address.IsDefault, &address.CreatedAt, &address.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}

		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET label = $1, street = $2, city = $3, state = $4, postal_code = $5, country = $6, phone = $7, is_default = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, address.Label, address.Street, address.City, address.State, address.PostalCode, address.Country, address.Phone, address.IsDefault, address.ID).Scan(&address.UpdatedAt)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
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

func (r *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default = TRUE`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}

	return nil
}
