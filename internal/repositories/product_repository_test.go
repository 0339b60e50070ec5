package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("CreateProduct", func(t *testing.T) {
		sellerID := uuid.New()
		categoryID := uuid.New()

		insertProductSQL := regexp.QuoteMeta(`INSERT INTO products (seller_id, category_id, name, description, price, stock_quantity, sku, status, has_variants)`)
		insertVariantSQL := regexp.QuoteMeta(`INSERT INTO product_variants (product_id, variant_key, options, price, stock_quantity, sku)`)

		t.Run("Success_FlatProduct", func(t *testing.T) {
			// Arrange
			product := &models.Product{
				SellerID:      sellerID,
				CategoryID:    categoryID,
				Name:          "Test Product",
				Description:   "Test Description",
				Price:         99.99,
				StockQuantity: 100,
				SKU:           "TESTSKU123",
				Status:        "active",
			}
			now := time.Now()
			newID := uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(insertProductSQL).
				WithArgs(product.SellerID, product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity, product.SKU, product.Status, false).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))
			mock.ExpectCommit()

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err, "CreateProduct should not return an error on success")
			assert.Equal(t, newID, product.ID, "Product ID should be updated")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_WithVariants", func(t *testing.T) {
			// Arrange
			product := &models.Product{
				SellerID:    sellerID,
				CategoryID:  categoryID,
				Name:        "Variant Product",
				Price:       20.00,
				SKU:         "VARSKU",
				Status:      "active",
				HasVariants: true,
				Variants: []models.VariantCombination{
					{VariantKey: "size=m", Options: map[string]string{"size": "m"}, Price: 22.00, StockQuantity: 5, SKU: "VARSKU-M"},
				},
			}
			now := time.Now()
			productID := uuid.New()
			variantID := uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(insertProductSQL).
				WithArgs(product.SellerID, product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity, product.SKU, product.Status, true).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(productID, now, now))
			mock.ExpectQuery(insertVariantSQL).
				WithArgs(productID, "size=m", []byte(`{"size":"m"}`), 22.00, 5, "VARSKU-M").
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(variantID, now, now))
			mock.ExpectCommit()

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err, "CreateProduct should not return an error on success")
			assert.Equal(t, variantID, product.Variants[0].ID, "Variant ID should be updated")
			assert.Equal(t, productID, product.Variants[0].ProductID, "Variant should be linked to the product")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			product := &models.Product{SellerID: sellerID, CategoryID: categoryID, Name: "Error Product", Status: "active"}
			dbError := errors.New("database insertion error")

			mock.ExpectBegin()
			mock.ExpectQuery(insertProductSQL).
				WithArgs(product.SellerID, product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity, product.SKU, product.Status, false).
				WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err, "CreateProduct should return an error on database failure")
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		productID := uuid.New()
		sellerID := uuid.New()
		categoryID := uuid.New()
		now := time.Now()

		selectSQL := regexp.QuoteMeta(`
        SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price,
               p.stock_quantity, p.sku, p.status, p.has_variants, p.created_at, p.updated_at,
               c.id, c.name, c.description
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id
        WHERE p.id = $1`)

		productCols := []string{
			"p.id", "p.seller_id", "p.category_id", "p.name", "p.description", "p.price",
			"p.stock_quantity", "p.sku", "p.status", "p.has_variants", "p.created_at", "p.updated_at",
			"c.id", "c.name", "c.description",
		}

		t.Run("Success_FlatProduct", func(t *testing.T) {
			// Arrange
			rows := sqlmock.NewRows(productCols).AddRow(
				productID, sellerID, categoryID, "Found Product", "Found Description", 50.00,
				20, "FOUNDSKU", "active", false, now, now,
				categoryID, "Found Category", "Category Description",
			)

			mock.ExpectQuery(selectSQL).WithArgs(productID).WillReturnRows(rows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.NoError(t, err, "GetProductByID should not return an error when product is found")
			assert.Equal(t, productID, product.ID)
			assert.Equal(t, sellerID, product.SellerID)
			assert.False(t, product.HasVariants)
			assert.Empty(t, product.Variants)
			require.NotNil(t, product.Category)
			assert.Equal(t, "Found Category", product.Category.Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_WithVariants", func(t *testing.T) {
			// Arrange
			variantID := uuid.New()

			rows := sqlmock.NewRows(productCols).AddRow(
				productID, sellerID, categoryID, "Variant Product", "", 20.00,
				5, "VARSKU", "active", true, now, now,
				categoryID, "Found Category", "",
			)
			variantRows := sqlmock.NewRows([]string{"id", "variant_key", "options", "price", "stock_quantity", "sku", "created_at", "updated_at"}).
				AddRow(variantID, "size=m", []byte(`{"size":"m"}`), 22.00, 5, "VARSKU-M", now, now)

			mock.ExpectQuery(selectSQL).WithArgs(productID).WillReturnRows(rows)
			mock.ExpectQuery(regexp.QuoteMeta(`FROM product_variants`)).WithArgs(productID).WillReturnRows(variantRows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.NoError(t, err)
			require.Len(t, product.Variants, 1)
			assert.Equal(t, "size=m", product.Variants[0].VariantKey)
			assert.Equal(t, map[string]string{"size": "m"}, product.Variants[0].Options)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(selectSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, productID)

			// Assert
			require.Error(t, err, "GetProductByID should return an error when product is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			assert.Nil(t, product, "Returned product should be nil on error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DecrementStock", func(t *testing.T) {
		productID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`
			UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			WHERE id = $2 AND has_variants = FALSE AND stock_quantity >= $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(3, productID).WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			ok, err := repo.DecrementStock(ctx, nil, productID, 3)

			// Assert
			require.NoError(t, err)
			assert.True(t, ok, "Decrement should report success when the guard matches a row")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("InsufficientStock", func(t *testing.T) {
			// Arrange
			// The guard matches no row when stock is too low: zero rows affected, no error.
			mock.ExpectExec(expectedSQL).WithArgs(500, productID).WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			ok, err := repo.DecrementStock(ctx, nil, productID, 500)

			// Assert
			require.NoError(t, err, "An unsatisfied guard is not an error")
			assert.False(t, ok, "Decrement should report failure when no row matched")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("database update error")
			mock.ExpectExec(expectedSQL).WithArgs(1, productID).WillReturnError(dbError)

			// Act
			ok, err := repo.DecrementStock(ctx, nil, productID, 1)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.False(t, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DecrementVariantStock", func(t *testing.T) {
		productID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`
			UPDATE product_variants SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			WHERE product_id = $2 AND variant_key = $3 AND stock_quantity >= $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(2, productID, "size=m").WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			ok, err := repo.DecrementVariantStock(ctx, nil, productID, "size=m", 2)

			// Assert
			require.NoError(t, err)
			assert.True(t, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("InsufficientStock", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(99, productID, "size=m").WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			ok, err := repo.DecrementVariantStock(ctx, nil, productID, "size=m", 99)

			// Assert
			require.NoError(t, err)
			assert.False(t, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("RecomputeAggregateStock", func(t *testing.T) {
		productID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`SET stock_quantity = (SELECT COALESCE(SUM(stock_quantity), 0) FROM product_variants WHERE product_id = $1)`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(productID).WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.RecomputeAggregateStock(ctx, nil, productID)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("database update error")
			mock.ExpectExec(expectedSQL).WithArgs(productID).WillReturnError(dbError)

			// Act
			err := repo.RecomputeAggregateStock(ctx, nil, productID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
