package repository_test

import (
	"database/sql"
	"encoding/json"
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

func TestNewOrderRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepository(db)
	assert.NotNil(t, repo, "NewOrderRepository should return a non-nil repository")
}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepository(db)
	ctx := t.Context()

	shippingAddress := &models.ShippingAddress{
		Street:     "1 Main Street",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "12345",
		Country:    "US",
	}
	addressJSON, err := json.Marshal(shippingAddress)
	require.NoError(t, err)

	itemCols := []string{"id", "product_id", "product_name", "variant_key", "quantity", "unit_price", "line_total", "created_at"}
	historyCols := []string{"status", "note", "created_at"}

	t.Run("CreateOrder", func(t *testing.T) {
		insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders (id, buyer_id, seller_id, status, item_count, subtotal_amount, total_amount, shipping_address, created_at, updated_at)`)
		insertItemSQL := regexp.QuoteMeta(`INSERT INTO order_items (id, order_id, product_id, product_name, variant_key, quantity, unit_price, line_total, created_at)`)
		insertHistorySQL := regexp.QuoteMeta(`INSERT INTO order_status_history (order_id, status, note, created_at)`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			item := models.OrderItem{
				ID:          uuid.New(),
				ProductID:   uuid.New(),
				ProductName: "Test Product",
				VariantKey:  "",
				Quantity:    3,
				UnitPrice:   19.99,
				LineTotal:   59.97,
			}
			order := &models.Order{
				ID:              uuid.New(),
				BuyerID:         uuid.New(),
				SellerID:        uuid.New(),
				Status:          models.OrderStatusPaid,
				ItemCount:       3,
				SubtotalAmount:  59.97,
				TotalAmount:     59.97,
				ShippingAddress: shippingAddress,
				Items:           []models.OrderItem{item},
				StatusHistory: []models.StatusChange{
					{Status: models.OrderStatusCreated, Note: "Order created"},
					{Status: models.OrderStatusPaid, Note: "Payment captured"},
				},
			}

			mock.ExpectExec(insertOrderSQL).
				WithArgs(order.ID, order.BuyerID, order.SellerID, order.Status, order.ItemCount, order.SubtotalAmount, order.TotalAmount, addressJSON).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(insertItemSQL).
				WithArgs(item.ID, order.ID, item.ProductID, item.ProductName, item.VariantKey, item.Quantity, item.UnitPrice, item.LineTotal).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(insertHistorySQL).
				WithArgs(order.ID, models.OrderStatusCreated, "Order created").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(insertHistorySQL).
				WithArgs(order.ID, models.OrderStatusPaid, "Payment captured").
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.CreateOrder(ctx, nil, order)

			// Assert
			require.NoError(t, err, "CreateOrder should not return an error on success")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			order := &models.Order{
				ID:              uuid.New(),
				BuyerID:         uuid.New(),
				SellerID:        uuid.New(),
				Status:          models.OrderStatusCreated,
				ShippingAddress: shippingAddress,
			}
			dbError := errors.New("database insertion error")

			mock.ExpectExec(insertOrderSQL).
				WithArgs(order.ID, order.BuyerID, order.SellerID, order.Status, order.ItemCount, order.SubtotalAmount, order.TotalAmount, addressJSON).
				WillReturnError(dbError)

			// Act
			err := repo.CreateOrder(ctx, nil, order)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		orderID := uuid.New()
		buyerID := uuid.New()
		sellerID := uuid.New()
		now := time.Now()

		selectSQL := regexp.QuoteMeta(`FROM orders
			WHERE id = $1`)
		itemsSQL := regexp.QuoteMeta(`FROM order_items
			WHERE order_id = $1`)
		historySQL := regexp.QuoteMeta(`FROM order_status_history
			WHERE order_id = $1`)

		orderCols := []string{"buyer_id", "seller_id", "status", "item_count", "subtotal_amount", "total_amount", "shipping_address", "created_at", "updated_at"}

		t.Run("Success", func(t *testing.T) {
			// Arrange
			itemID := uuid.New()
			productID := uuid.New()

			mock.ExpectQuery(selectSQL).WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows(orderCols).
					AddRow(buyerID, sellerID, "paid", 3, 59.97, 59.97, addressJSON, now, now))
			mock.ExpectQuery(itemsSQL).WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows(itemCols).
					AddRow(itemID, productID, "Test Product", "", 3, 19.99, 59.97, now))
			mock.ExpectQuery(historySQL).WithArgs(orderID).
				WillReturnRows(sqlmock.NewRows(historyCols).
					AddRow("created", "Order created", now).
					AddRow("paid", "Payment captured", now))

			// Act
			order, err := repo.GetOrderByID(ctx, orderID)

			// Assert
			require.NoError(t, err, "GetOrderByID should not return an error when order is found")
			assert.Equal(t, orderID, order.ID)
			assert.Equal(t, models.OrderStatusPaid, order.Status)
			require.NotNil(t, order.ShippingAddress)
			assert.Equal(t, "Springfield", order.ShippingAddress.City)
			require.Len(t, order.Items, 1)
			assert.Equal(t, orderID, order.Items[0].OrderID)
			require.Len(t, order.StatusHistory, 2)
			assert.Equal(t, models.OrderStatusCreated, order.StatusHistory[0].Status)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(selectSQL).WithArgs(orderID).WillReturnError(sql.ErrNoRows)

			// Act
			order, err := repo.GetOrderByID(ctx, orderID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.Nil(t, order)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateOrderStatus", func(t *testing.T) {
		orderID := uuid.New()

		updateSQL := regexp.QuoteMeta(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`)
		historySQL := regexp.QuoteMeta(`INSERT INTO order_status_history (order_id, status, note, created_at)`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec(updateSQL).WithArgs(models.OrderStatusShipped, orderID).WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(historySQL).WithArgs(orderID, models.OrderStatusShipped, "On its way").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			// Act
			err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped, "On its way")

			// Assert
			require.NoError(t, err, "UpdateOrderStatus should not return an error on success")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectBegin()
			mock.ExpectExec(updateSQL).WithArgs(models.OrderStatusShipped, orderID).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			// Act
			err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped, "")

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("HistoryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("database insertion error")

			mock.ExpectBegin()
			mock.ExpectExec(updateSQL).WithArgs(models.OrderStatusShipped, orderID).WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(historySQL).WithArgs(orderID, models.OrderStatusShipped, "").WillReturnError(dbError)
			mock.ExpectRollback()

			// Act
			err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped, "")

			// Assert
			require.Error(t, err, "The status update rolls back when the history insert fails")
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateShippingAddress", func(t *testing.T) {
		orderID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`UPDATE orders SET shipping_address = $1, updated_at = NOW() WHERE id = $2`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(addressJSON, orderID).WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateShippingAddress(ctx, orderID, shippingAddress)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).WithArgs(addressJSON, orderID).WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateShippingAddress(ctx, orderID, shippingAddress)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
