package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type OrderService interface {
	GetOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Order, int, error)
	ListSellerOrders(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, claims *models.Claims, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	UpdateShippingAddress(ctx context.Context, claims *models.Claims, id uuid.UUID, req *models.UpdateShippingAddressRequest) (*models.Order, error)
	CancelOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error)
}

type orderService struct {
	repo         repository.OrderRepository
	userRepo     repository.UserRepository
	notification NotificationService
}

func NewOrderService(repo repository.OrderRepository, userRepo repository.UserRepository, notification NotificationService) OrderService {
	return &orderService{repo: repo, userRepo: userRepo, notification: notification}
}

// GetOrder returns the order to its buyer, its seller, or an admin.
func (s *orderService) GetOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.BuyerID != claims.UserID && order.SellerID != claims.UserID && claims.Role != models.RoleAdmin {
		return nil, errors.ForbiddenError("You don't have permission to access this order")
	}

	return order, nil
}

func (s *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	orders, total, err := s.repo.ListOrdersByBuyer(ctx, buyerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	orders, total, err := s.repo.ListOrdersBySeller(ctx, sellerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateStatus applies a seller-driven transition, validated against the
// transition table.
func (s *orderService) UpdateStatus(ctx context.Context, claims *models.Claims, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.SellerID != claims.UserID && claims.Role != models.RoleAdmin {
		return nil, errors.ForbiddenError("Only the seller can update this order")
	}

	if !order.Status.CanTransitionTo(req.Status) {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot change order status from %s to %s", order.Status, req.Status))
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, req.Status, req.Note); err != nil {
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	if req.Status == models.OrderStatusShipped || req.Status == models.OrderStatusDelivered {
		s.notifyStatusChange(ctx, order, req.Status)
	}

	return s.repo.GetOrderByID(ctx, id)
}

// UpdateShippingAddress lets the buyer change the destination while the
// order is still pre-shipment.
func (s *orderService) UpdateShippingAddress(ctx context.Context, claims *models.Claims, id uuid.UUID, req *models.UpdateShippingAddressRequest) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.BuyerID != claims.UserID {
		return nil, errors.ForbiddenError("Only the buyer can update the shipping address")
	}

	if !order.Status.IsPreShipment() {
		return nil, errors.ConflictError("Shipping address can no longer be changed")
	}

	if err := s.repo.UpdateShippingAddress(ctx, id, &req.ShippingAddress); err != nil {
		return nil, errors.DatabaseError("Failed to update shipping address").WithError(err)
	}

	order.ShippingAddress = &req.ShippingAddress

	return order, nil
}

// CancelOrder lets the buyer cancel before the seller starts processing.
func (s *orderService) CancelOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.BuyerID != claims.UserID {
		return nil, errors.ForbiddenError("Only the buyer can cancel this order")
	}

	if order.Status != models.OrderStatusCreated && order.Status != models.OrderStatusPaid {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot cancel an order in status %s", order.Status))
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, models.OrderStatusCancelled, "Cancelled by buyer"); err != nil {
		return nil, errors.DatabaseError("Failed to cancel order").WithError(err)
	}

	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) notifyStatusChange(ctx context.Context, order *models.Order, status models.OrderStatus) {

	buyer, err := s.userRepo.GetUserByID(ctx, order.BuyerID)
	if err != nil {
		slog.Warn("Failed to load buyer for order status email", slog.Any("error", err))
		return
	}

	go func() {
		err := s.notification.SendEmail(context.WithoutCancel(ctx), &models.EmailNotificationRequest{
			To:      buyer.Email,
			Subject: fmt.Sprintf("Your order is %s", status),
			Content: fmt.Sprintf("Order %s is now %s.", order.ID, status),
		})
		if err != nil {
			slog.Warn("Failed to send order status email", slog.Any("error", err))
		}
	}()
}
