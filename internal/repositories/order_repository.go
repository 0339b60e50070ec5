package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, tx *sql.Tx, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Order, int, error)
	ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, note string) error
	UpdateShippingAddress(ctx context.Context, id uuid.UUID, address *models.ShippingAddress) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) querier(tx *sql.Tx) DBTX {
	if tx != nil {
		return tx
	}

	return r.DB
}

// CreateOrder persists one per-seller order with its item snapshots and the
// seeded status history. Runs inside the confirm transaction when one is
// passed.
func (r *orderRepository) CreateOrder(ctx context.Context, tx *sql.Tx, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	q := r.querier(tx)

	shippingAddress, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	query := `
		INSERT INTO orders (id, buyer_id, seller_id, status, item_count, subtotal_amount, total_amount, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	_, err = q.ExecContext(dbCtx, query, order.ID, order.BuyerID, order.SellerID, order.Status, order.ItemCount, order.SubtotalAmount, order.TotalAmount, shippingAddress)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {

		query := `
			INSERT INTO order_items (id, order_id, product_id, product_name, variant_key, quantity, unit_price, line_total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		`

		_, err := q.ExecContext(dbCtx, query, item.ID, order.ID, item.ProductID, item.ProductName, item.VariantKey, item.Quantity, item.UnitPrice, item.LineTotal)
		if err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	for _, change := range order.StatusHistory {

		query := `
			INSERT INTO order_status_history (order_id, status, note, created_at)
			VALUES ($1, $2, $3, NOW())
		`

		_, err := q.ExecContext(dbCtx, query, order.ID, change.Status, change.Note)
		if err != nil {
			return fmt.Errorf("failed to insert order status history: %w", err)
		}
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: id}

	query := `
		SELECT buyer_id, seller_id, status, item_count, subtotal_amount, total_amount, shipping_address, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var jsonData []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.BuyerID, &order.SellerID, &order.Status, &order.ItemCount, &order.SubtotalAmount, &order.TotalAmount, &jsonData, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if len(jsonData) > 0 {
		if err := json.Unmarshal(jsonData, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
		}
	}

	items, err := r.listItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	history, err := r.listStatusHistory(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.StatusHistory = history

	return order, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {

	query := `
		SELECT id, product_id, product_name, variant_key, quantity, unit_price, line_total, created_at
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {

		item := models.OrderItem{OrderID: orderID}

		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.VariantKey, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) listStatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.StatusChange, error) {

	query := `
		SELECT status, note, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order status history: %w", err)
	}

	defer rows.Close()

	var history []models.StatusChange

	for rows.Next() {

		change := models.StatusChange{OrderID: orderID}

		err := rows.Scan(&change.Status, &change.Note, &change.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order status history: %w", err)
		}

		history = append(history, change)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

func (r *orderRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	return r.listOrders(ctx, "buyer_id", buyerID, page, size)
}

func (r *orderRepository) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	return r.listOrders(ctx, "seller_id", sellerID, page, size)
}

func (r *orderRepository) listOrders(ctx context.Context, column string, ownerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s = $1`, column)

	err := r.DB.QueryRowContext(dbCtx, countQuery, ownerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := fmt.Sprintf(`
		SELECT id, buyer_id, seller_id, status, item_count, subtotal_amount, total_amount, shipping_address, created_at, updated_at
		FROM orders
		WHERE %s = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, column)

	rows, err := r.DB.QueryContext(dbCtx, query, ownerID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		var order models.Order
		var jsonData []byte

		err := rows.Scan(&order.ID, &order.BuyerID, &order.SellerID, &order.Status, &order.ItemCount, &order.SubtotalAmount, &order.TotalAmount, &jsonData, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		if len(jsonData) > 0 {
			if err := json.Unmarshal(jsonData, &order.ShippingAddress); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal shipping address: %w", err)
			}
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {

		items, err := r.listItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}

		orders[i].Items = items
	}

	return orders, total, nil
}

// UpdateOrderStatus writes the new status and appends the history entry in
// one transaction.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, note string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(dbCtx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	_, err = tx.ExecContext(dbCtx, `INSERT INTO order_status_history (order_id, status, note, created_at) VALUES ($1, $2, $3, NOW())`, id, status, note)
	if err != nil {
		return fmt.Errorf("failed to insert order status history: %w", err)
	}

	return tx.Commit()
}

func (r *orderRepository) UpdateShippingAddress(ctx context.Context, id uuid.UUID, address *models.ShippingAddress) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	jsonData, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET shipping_address = $1, updated_at = NOW() WHERE id = $2`, jsonData, id)
	if err != nil {
		return fmt.Errorf("failed to update shipping address: %w", err)
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
