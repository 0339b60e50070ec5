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

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error)
	DecrementStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID, qty int) (bool, error)
	DecrementVariantStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID, variantKey string, qty int) (bool, error)
	RecomputeAggregateStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) querier(tx *sql.Tx) DBTX {
	if tx != nil {
		return tx
	}

	return r.DB
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO products (seller_id, category_id, name, description, price, stock_quantity, sku, status, has_variants)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, product.SellerID, product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity, product.SKU, product.Status, product.HasVariants).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	for i := range product.Variants {

		variant := &product.Variants[i]
		variant.ProductID = product.ID

		optionsJSON, err := json.Marshal(variant.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal variant options: %w", err)
		}

		query := `INSERT INTO product_variants (product_id, variant_key, options, price, stock_quantity, sku)
				  VALUES ($1, $2, $3, $4, $5, $6)
				  RETURNING id, created_at, updated_at
		`

		err = tx.QueryRowContext(dbCtx, query, variant.ProductID, variant.VariantKey, optionsJSON, variant.Price, variant.StockQuantity, variant.SKU).Scan(&variant.ID, &variant.CreatedAt, &variant.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert product variant: %w", err)
		}
	}

	return tx.Commit()
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
        SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price,
               p.stock_quantity, p.sku, p.status, p.has_variants, p.created_at, p.updated_at,
               c.id, c.name, c.description
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id
        WHERE p.id = $1`

	var category models.Category

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.SellerID, &product.CategoryID, &product.Name, &product.Description, &product.Price, &product.StockQuantity, &product.SKU, &product.Status, &product.HasVariants, &product.CreatedAt, &product.UpdatedAt, &category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	product.Category = &category

	if product.HasVariants {
		variants, err := r.listVariants(dbCtx, id)
		if err != nil {
			return nil, err
		}

		product.Variants = variants
	}

	return product, nil
}

func (r *productRepository) listVariants(ctx context.Context, productID uuid.UUID) ([]models.VariantCombination, error) {

	query := `
		SELECT id, variant_key, options, price, stock_quantity, sku, created_at, updated_at
		FROM product_variants
		WHERE product_id = $1
		ORDER BY variant_key
	`

	rows, err := r.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product variants: %w", err)
	}

	defer rows.Close()

	var variants []models.VariantCombination

	for rows.Next() {

		variant := models.VariantCombination{ProductID: productID}

		var optionsJSON []byte

		err := rows.Scan(&variant.ID, &variant.VariantKey, &optionsJSON, &variant.Price, &variant.StockQuantity, &variant.SKU, &variant.CreatedAt, &variant.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product variant: %w", err)
		}

		if err := json.Unmarshal(optionsJSON, &variant.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variant options: %w", err)
		}

		variants = append(variants, variant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return variants, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET category_id = $1, name = $2, description = $3, price = $4, stock_quantity = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity, product.Status, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := ` WHERE 1=1`
	args := []any{}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		where += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}

	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		where += fmt.Sprintf(" AND p.seller_id = $%d", len(args))
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products p` + where

	err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	args = append(args, size, offset)
	query := fmt.Sprintf(`
		SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price,
		p.stock_quantity, p.sku, p.status, p.has_variants, p.created_at, p.updated_at,
		c.id, c.name, c.description
		FROM products p
		LEFT JOIN categories c on p.category_id = c.id`+where+`
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}
		category := &models.Category{}

		err := rows.Scan(&product.ID, &product.SellerID, &product.CategoryID, &product.Name, &product.Description, &product.Price, &product.StockQuantity, &product.SKU, &product.Status, &product.HasVariants, &product.CreatedAt, &product.UpdatedAt, &category.ID, &category.Name, &category.Description)
		if err != nil {
			return nil, 0, err
		}

		product.Category = category
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// DecrementStock applies the guarded flat-stock decrement. It reports false,
// without error, when the product no longer has enough stock — the caller
// treats that as a checkout conflict.
func (r *productRepository) DecrementStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID, qty int) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND has_variants = FALSE AND stock_quantity >= $1
	`

	result, err := r.querier(tx).ExecContext(dbCtx, query, qty, productID)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *productRepository) DecrementVariantStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID, variantKey string, qty int) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE product_variants SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE product_id = $2 AND variant_key = $3 AND stock_quantity >= $1
	`

	result, err := r.querier(tx).ExecContext(dbCtx, query, qty, productID, variantKey)
	if err != nil {
		return false, fmt.Errorf("failed to decrement variant stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

// RecomputeAggregateStock refreshes a variant product's aggregate stock from
// its combinations after a variant decrement.
func (r *productRepository) RecomputeAggregateStock(ctx context.Context, tx *sql.Tx, productID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET stock_quantity = (SELECT COALESCE(SUM(stock_quantity), 0) FROM product_variants WHERE product_id = $1), updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier(tx).ExecContext(dbCtx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to recompute aggregate stock: %w", err)
	}

	return nil
}
