package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/metrics"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
	"github.com/sellora/marketplace/internal/utils"
)

const (
	PaymentSimulationSuccess = "success"
	PaymentSimulationFailure = "failure"
)

type CheckoutService interface {
	Preview(ctx context.Context, buyerID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutPreview, error)
	Confirm(ctx context.Context, buyerID uuid.UUID, req *models.ConfirmCheckoutRequest) (*models.CheckoutOutcome, error)
}

type checkoutService struct {
	productRepo  repository.ProductRepository
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	addressRepo  repository.AddressRepository
	userRepo     repository.UserRepository
	txManager    repository.TxManager
	notification NotificationService
}

func NewCheckoutService(
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
	notification NotificationService,
) CheckoutService {
	return &checkoutService{
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		addressRepo:  addressRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notification: notification,
	}
}

// collected is the result of the read-only collection phase.
type collected struct {
	payables    []models.PayableItem
	unavailable []models.UnavailableItem
	cartItemIDs []uuid.UUID
}

// Preview runs collection and grouping without touching stock.
func (s *checkoutService) Preview(ctx context.Context, buyerID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutPreview, error) {

	col, err := s.collectItems(ctx, buyerID, req)
	if err != nil {
		return nil, err
	}

	groups, totals := groupBySeller(col.payables)

	return &models.CheckoutPreview{
		Groups:           groups,
		Totals:           totals,
		PayableItemCount: len(col.payables),
		OutOfStockItems:  col.unavailable,
		CanProceed:       len(col.payables) > 0,
	}, nil
}

// Confirm turns the payable items into per-seller orders. With a successful
// payment simulation, the stock deduction and order creation run inside one
// transaction; any stock conflict rolls everything back. A failed simulation
// records the orders as failed without touching stock.
func (s *checkoutService) Confirm(ctx context.Context, buyerID uuid.UUID, req *models.ConfirmCheckoutRequest) (*models.CheckoutOutcome, error) {

	col, err := s.collectItems(ctx, buyerID, &req.CheckoutRequest)
	if err != nil {
		return nil, err
	}

	if len(col.payables) == 0 {
		return nil, errors.BadRequestError("No payable items to check out")
	}

	shippingAddress, err := s.resolveShippingAddress(ctx, buyerID, req.ShippingAddressID)
	if err != nil {
		return nil, err
	}

	groups, _ := groupBySeller(col.payables)

	finalStatus := models.OrderStatusPaid
	if req.PaymentSimulation == PaymentSimulationFailure {
		finalStatus = models.OrderStatusFailed
	}

	orders := materializeOrders(buyerID, groups, finalStatus, shippingAddress)

	if req.PaymentSimulation == PaymentSimulationFailure {

		err := s.txManager.WithinTx(ctx, func(tx *sql.Tx) error {
			for i := range orders {
				if err := s.orderRepo.CreateOrder(ctx, tx, &orders[i]); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return nil, errors.DatabaseError("Failed to record orders").WithError(err)
		}

		metrics.ObserveCheckoutConfirm("failed", len(orders))

		return &models.CheckoutOutcome{
			PaymentStatus:   "failed",
			Orders:          orders,
			OutOfStockItems: col.unavailable,
		}, nil
	}

	var conflict *models.UnavailableItem

	err = s.txManager.WithinTx(ctx, func(tx *sql.Tx) error {

		variantProducts := make(map[uuid.UUID]bool)

		for _, item := range col.payables {

			var ok bool
			var err error

			if item.VariantKey != "" {
				ok, err = s.productRepo.DecrementVariantStock(ctx, tx, item.ProductID, item.VariantKey, item.Quantity)
				variantProducts[item.ProductID] = true
			} else {
				ok, err = s.productRepo.DecrementStock(ctx, tx, item.ProductID, item.Quantity)
			}

			if err != nil {
				return err
			}

			if !ok {
				conflict = &models.UnavailableItem{
					CartItemID:   item.CartItemID,
					ProductID:    item.ProductID,
					VariantKey:   item.VariantKey,
					Reason:       models.ReasonInsufficientStock,
					RequestedQty: item.Quantity,
				}

				return errStockConflict
			}
		}

		for productID := range variantProducts {
			if err := s.productRepo.RecomputeAggregateStock(ctx, tx, productID); err != nil {
				return err
			}
		}

		for i := range orders {
			if err := s.orderRepo.CreateOrder(ctx, tx, &orders[i]); err != nil {
				return err
			}
		}

		if len(col.cartItemIDs) > 0 {
			if err := s.cartRepo.DeleteItems(ctx, tx, col.cartItemIDs); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {

		if conflict != nil {

			s.fillAvailableStock(ctx, conflict)
			metrics.ObserveCheckoutConfirm("conflict", 0)

			outcome := &models.CheckoutOutcome{
				PaymentStatus:   "conflict",
				OutOfStockItems: append(col.unavailable, *conflict),
			}

			return outcome, errors.StockConflictError("Stock changed while checking out")
		}

		return nil, errors.DatabaseError("Failed to complete checkout").WithError(err)
	}

	if req.Source == models.CheckoutSourceCart && len(col.cartItemIDs) > 0 {

		cart, err := s.cartRepo.GetOrCreateCart(ctx, buyerID)
		if err == nil {
			if _, _, err := s.cartRepo.RecomputeAggregates(ctx, cart.ID); err != nil {
				slog.Warn("Failed to recompute cart totals after checkout", slog.Any("error", err))
			}
		}
	}

	metrics.ObserveCheckoutConfirm("paid", len(orders))

	s.notifyBuyer(ctx, buyerID, orders)

	return &models.CheckoutOutcome{
		PaymentStatus:   "paid",
		Orders:          orders,
		OutOfStockItems: col.unavailable,
		RedirectTo:      "/orders",
	}, nil
}

// errStockConflict aborts the confirm transaction on a failed guarded
// decrement; the caller translates it into a conflict response.
var errStockConflict = fmt.Errorf("stock conflict")

// collectItems resolves the requested lines into payable and unavailable
// items. Per-item checks run in a fixed order and the first failing check
// decides the reported reason.
func (s *checkoutService) collectItems(ctx context.Context, buyerID uuid.UUID, req *models.CheckoutRequest) (*collected, error) {

	switch req.Source {
	case models.CheckoutSourceCart:
		return s.collectFromCart(ctx, buyerID, req.CartItemIDs)
	case models.CheckoutSourceBuyNow:
		return s.collectFromInputs(ctx, buyerID, req.Items)
	}

	return nil, errors.BadRequestError("Unknown checkout source")
}

func (s *checkoutService) collectFromCart(ctx context.Context, buyerID uuid.UUID, itemIDs []uuid.UUID) (*collected, error) {

	cart, err := s.cartRepo.GetOrCreateCart(ctx, buyerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	items := cart.Items

	col := &collected{}

	if len(itemIDs) > 0 {

		items, err = s.cartRepo.GetItemsByIDs(ctx, cart.ID, itemIDs)
		if err != nil {
			return nil, errors.DatabaseError("Failed to load cart items").WithError(err)
		}

		// requested ids missing from the user's cart
		present := make(map[uuid.UUID]bool, len(items))
		for _, item := range items {
			present[item.ID] = true
		}

		for _, id := range itemIDs {
			if !present[id] {
				itemID := id
				col.unavailable = append(col.unavailable, models.UnavailableItem{
					CartItemID: &itemID,
					Reason:     models.ReasonCartItemNotFound,
				})
			}
		}
	}

	for i := range items {

		item := items[i]

		payable, bad := s.checkItem(ctx, buyerID, &item.ID, item.ProductID, item.VariantKey, item.Quantity, &item.UnitPrice)

		if bad != nil {
			col.unavailable = append(col.unavailable, *bad)
			continue
		}

		col.payables = append(col.payables, *payable)
		col.cartItemIDs = append(col.cartItemIDs, item.ID)
	}

	return col, nil
}

func (s *checkoutService) collectFromInputs(ctx context.Context, buyerID uuid.UUID, inputs []models.CheckoutItemInput) (*collected, error) {

	if len(inputs) == 0 {
		return nil, errors.BadRequestError("No items to check out")
	}

	col := &collected{}

	for _, input := range inputs {

		variantKey := models.VariantKey(input.Options)

		payable, bad := s.checkItem(ctx, buyerID, nil, input.ProductID, variantKey, input.Quantity, nil)

		if bad != nil {
			col.unavailable = append(col.unavailable, *bad)
			continue
		}

		col.payables = append(col.payables, *payable)
	}

	return col, nil
}

// checkItem runs the per-item validation chain: existence, self-purchase,
// variant resolution, stock. A nil priceOverride prices the line from the
// catalog; cart lines pass their snapshot price.
func (s *checkoutService) checkItem(ctx context.Context, buyerID uuid.UUID, cartItemID *uuid.UUID, productID uuid.UUID, variantKey string, quantity int, priceOverride *float64) (*models.PayableItem, *models.UnavailableItem) {

	bad := &models.UnavailableItem{
		CartItemID:   cartItemID,
		ProductID:    productID,
		VariantKey:   variantKey,
		RequestedQty: quantity,
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		bad.Reason = models.ReasonProductNotFound
		return nil, bad
	}

	if product.SellerID == buyerID {
		bad.Reason = models.ReasonOwnProduct
		return nil, bad
	}

	unitPrice := product.Price
	availableStock := product.StockQuantity

	if product.HasVariants {

		variant := product.FindVariant(variantKey)
		if variant == nil {
			bad.Reason = models.ReasonVariantNotFound
			return nil, bad
		}

		unitPrice = variant.Price
		availableStock = variant.StockQuantity

	} else {
		// options on a flat product resolve to the product itself
		variantKey = ""
		bad.VariantKey = ""
	}

	if priceOverride != nil {
		unitPrice = *priceOverride
	}

	bad.AvailableStock = availableStock

	if availableStock == 0 {
		bad.Reason = models.ReasonOutOfStock
		return nil, bad
	}

	if quantity > availableStock {
		bad.Reason = models.ReasonInsufficientStock
		return nil, bad
	}

	return &models.PayableItem{
		CartItemID:  cartItemID,
		ProductID:   product.ID,
		SellerID:    product.SellerID,
		ProductName: product.Name,
		VariantKey:  variantKey,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   utils.Round2(unitPrice * float64(quantity)),
	}, nil
}

// groupBySeller buckets payable lines per seller, preserving first-seen
// seller order, and derives the group and overall totals.
func groupBySeller(payables []models.PayableItem) ([]models.SellerGroup, models.CheckoutTotals) {

	var groups []models.SellerGroup

	index := make(map[uuid.UUID]int)

	for _, item := range payables {

		pos, ok := index[item.SellerID]
		if !ok {
			pos = len(groups)
			index[item.SellerID] = pos
			groups = append(groups, models.SellerGroup{SellerID: item.SellerID})
		}

		groups[pos].Items = append(groups[pos].Items, item)
		groups[pos].ItemCount += item.Quantity
	}

	totals := models.CheckoutTotals{}

	for i := range groups {

		var subtotal float64

		for _, item := range groups[i].Items {
			subtotal += item.LineTotal
		}

		groups[i].SubtotalAmount = utils.Round2(subtotal)

		totals.ItemCount += groups[i].ItemCount
		totals.SubtotalAmount += groups[i].SubtotalAmount
	}

	totals.SubtotalAmount = utils.Round2(totals.SubtotalAmount)
	totals.TotalAmount = totals.SubtotalAmount

	return groups, totals
}

// materializeOrders builds one order per seller group, seeding the status
// history with created followed by the final status.
func materializeOrders(buyerID uuid.UUID, groups []models.SellerGroup, finalStatus models.OrderStatus, shippingAddress *models.ShippingAddress) []models.Order {

	orders := make([]models.Order, 0, len(groups))

	for _, group := range groups {

		order := models.Order{
			ID:              uuid.New(),
			BuyerID:         buyerID,
			SellerID:        group.SellerID,
			Status:          finalStatus,
			ItemCount:       group.ItemCount,
			SubtotalAmount:  group.SubtotalAmount,
			TotalAmount:     group.SubtotalAmount,
			ShippingAddress: shippingAddress,
			StatusHistory: []models.StatusChange{
				{Status: models.OrderStatusCreated, Note: "Order created at checkout"},
				{Status: finalStatus, Note: "Payment " + string(finalStatus)},
			},
		}

		for _, item := range group.Items {
			order.Items = append(order.Items, models.OrderItem{
				ID:          uuid.New(),
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				VariantKey:  item.VariantKey,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   item.LineTotal,
			})
		}

		orders = append(orders, order)
	}

	return orders
}

func (s *checkoutService) resolveShippingAddress(ctx context.Context, buyerID uuid.UUID, addressID *uuid.UUID) (*models.ShippingAddress, error) {

	if addressID == nil {

		// fall back to the buyer's default address, when one exists
		addresses, err := s.addressRepo.ListAddressesByUser(ctx, buyerID)
		if err != nil {
			return nil, nil
		}

		for _, address := range addresses {
			if address.IsDefault {
				return address.Snapshot(), nil
			}
		}

		return nil, nil
	}

	address, err := s.addressRepo.GetAddressByID(ctx, *addressID)
	if err != nil {
		return nil, errors.NotFoundError("Shipping address not found").WithError(err)
	}

	if address.UserID != buyerID {
		return nil, errors.ForbiddenError("You don't have permission to use this address")
	}

	return address.Snapshot(), nil
}

// fillAvailableStock re-reads the current stock for a conflicting item after
// the transaction rolled back.
func (s *checkoutService) fillAvailableStock(ctx context.Context, item *models.UnavailableItem) {

	product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return
	}

	item.AvailableStock = product.StockQuantity

	if item.VariantKey != "" {
		if variant := product.FindVariant(item.VariantKey); variant != nil {
			item.AvailableStock = variant.StockQuantity
		}
	}
}

// notifyBuyer emails a per-seller order summary. Failures are logged and
// never surface to the request.
func (s *checkoutService) notifyBuyer(ctx context.Context, buyerID uuid.UUID, orders []models.Order) {

	user, err := s.userRepo.GetUserByID(ctx, buyerID)
	if err != nil {
		slog.Warn("Failed to load buyer for order confirmation email", slog.Any("error", err))
		return
	}

	var lines []string
	for _, order := range orders {
		lines = append(lines, fmt.Sprintf("Order %s: %d item(s), total %.2f", order.ID, order.ItemCount, order.TotalAmount))
	}

	go func() {
		err := s.notification.SendEmail(context.WithoutCancel(ctx), &models.EmailNotificationRequest{
			To:      user.Email,
			Subject: fmt.Sprintf("Your order confirmation (%d orders)", len(orders)),
			Content: "Thank you for your purchase!\n\n" + strings.Join(lines, "\n"),
		})
		if err != nil {
			slog.Warn("Failed to send order confirmation email", slog.Any("error", err))
		}
	}()
}
