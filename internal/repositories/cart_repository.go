package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type CartRepository interface {
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.CartItem, error)
	GetItemsByIDs(ctx context.Context, cartID uuid.UUID, itemIDs []uuid.UUID) ([]models.CartItem, error)
	UpsertItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int, lineTotal float64) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	DeleteItems(ctx context.Context, tx *sql.Tx, itemIDs []uuid.UUID) error
	RecomputeAggregates(ctx context.Context, cartID uuid.UUID) (totalItems int, totalPrice float64, err error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) querier(tx *sql.Tx) DBTX {
	if tx != nil {
		return tx
	}

	return r.DB
}

// GetOrCreateCart loads the user's active cart with its items, creating the
// cart row on first use.
func (r *cartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{UserID: userID}

	query := `
		INSERT INTO carts (user_id, status)
		VALUES ($1, 'active')
		ON CONFLICT (user_id) DO UPDATE SET updated_at = carts.updated_at
		RETURNING id, status, total_items, total_price, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&cart.ID, &cart.Status, &cart.TotalItems, &cart.TotalPrice, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	items, err := r.listItems(dbCtx, cart.ID)
	if err != nil {
		return nil, err
	}

	cart.Items = items

	return cart, nil
}

func (r *cartRepository) listItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {

	query := `
		SELECT id, product_id, seller_id, product_name, variant_key, quantity, unit_price, line_total, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {

		item := models.CartItem{CartID: cartID}

		err := rows.Scan(&item.ID, &item.ProductID, &item.SellerID, &item.ProductName, &item.VariantKey, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{ID: itemID}

	query := `
		SELECT cart_id, product_id, seller_id, product_name, variant_key, quantity, unit_price, line_total, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, itemID).Scan(&item.CartID, &item.ProductID, &item.SellerID, &item.ProductName, &item.VariantKey, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// GetItemsByIDs returns only the requested items that belong to the given
// cart; ids from another user's cart are silently absent from the result.
func (r *cartRepository) GetItemsByIDs(ctx context.Context, cartID uuid.UUID, itemIDs []uuid.UUID) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, seller_id, product_name, variant_key, quantity, unit_price, line_total, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1 AND id = ANY($2)
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID, pq.Array(itemIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {

		item := models.CartItem{CartID: cartID}

		err := rows.Scan(&item.ID, &item.ProductID, &item.SellerID, &item.ProductName, &item.VariantKey, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpsertItem adds a line or, when the same product/variant is already in the
// cart, accumulates its quantity.
func (r *cartRepository) UpsertItem(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (cart_id, product_id, seller_id, product_name, variant_key, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cart_id, product_id, variant_key) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
			unit_price = EXCLUDED.unit_price,
			line_total = (cart_items.quantity + EXCLUDED.quantity) * EXCLUDED.unit_price,
			updated_at = NOW()
		RETURNING id, quantity, line_total, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, item.CartID, item.ProductID, item.SellerID, item.ProductName, item.VariantKey, item.Quantity, item.UnitPrice, item.LineTotal).Scan(&item.ID, &item.Quantity, &item.LineTotal, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int, lineTotal float64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET quantity = $1, line_total = $2, updated_at = NOW() WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, lineTotal, itemID)
	if err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
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

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
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

// DeleteItems removes the consumed lines at checkout, inside the confirm
// transaction.
func (r *cartRepository) DeleteItems(ctx context.Context, tx *sql.Tx, itemIDs []uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.querier(tx).ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = ANY($1)`, pq.Array(itemIDs))
	if err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}

	return nil
}

// RecomputeAggregates rebuilds the cart's derived totals from its remaining
// items; cart mutations and checkout both funnel through it.
func (r *cartRepository) RecomputeAggregates(ctx context.Context, cartID uuid.UUID) (int, float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts
		SET total_items = sub.total_items, total_price = sub.total_price, updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(quantity), 0) AS total_items, COALESCE(SUM(line_total), 0) AS total_price
			FROM cart_items
			WHERE cart_id = $1
		) AS sub
		WHERE carts.id = $1
		RETURNING carts.total_items, carts.total_price
	`

	var totalItems int
	var totalPrice float64

	err := r.DB.QueryRowContext(dbCtx, query, cartID).Scan(&totalItems, &totalPrice)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to recompute cart aggregates: %w", err)
	}

	return totalItems, totalPrice, nil
}
