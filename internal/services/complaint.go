package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
)

type ComplaintService interface {
	CreateComplaint(ctx context.Context, buyerID uuid.UUID, req *models.CreateComplaintRequest) (*models.Complaint, error)
	GetComplaint(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Complaint, error)
	ListBuyerComplaints(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Complaint, int, error)
	ListSellerComplaints(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Complaint, int, error)
	RespondToComplaint(ctx context.Context, sellerID, id uuid.UUID, req *models.RespondComplaintRequest) (*models.Complaint, error)
	ResolveComplaint(ctx context.Context, id uuid.UUID, req *models.ResolveComplaintRequest) (*models.Complaint, error)
}

type complaintService struct {
	repo      repository.ComplaintRepository
	orderRepo repository.OrderRepository
	sanitizer *bluemonday.Policy
}

func NewComplaintService(repo repository.ComplaintRepository, orderRepo repository.OrderRepository) ComplaintService {
	return &complaintService{repo: repo, orderRepo: orderRepo, sanitizer: bluemonday.StrictPolicy()}
}

// CreateComplaint files a complaint against the buyer's own order; the
// accused seller is derived from the order, never from the request.
func (s *complaintService) CreateComplaint(ctx context.Context, buyerID uuid.UUID, req *models.CreateComplaintRequest) (*models.Complaint, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.BuyerID != buyerID {
		return nil, errors.ForbiddenError("You can only file complaints about your own orders")
	}

	complaint := &models.Complaint{
		OrderID:     order.ID,
		BuyerID:     buyerID,
		SellerID:    order.SellerID,
		Subject:     s.sanitizer.Sanitize(req.Subject),
		Description: s.sanitizer.Sanitize(req.Description),
		Status:      models.ComplaintStatusOpen,
	}

	if err := s.repo.CreateComplaint(ctx, complaint); err != nil {
		return nil, errors.DatabaseError("Failed to create complaint").WithError(err)
	}

	return complaint, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Complaint, error) {

	complaint, err := s.repo.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Complaint not found").WithError(err)
	}

	if complaint.BuyerID != claims.UserID && complaint.SellerID != claims.UserID && claims.Role != models.RoleAdmin {
		return nil, errors.ForbiddenError("You don't have permission to access this complaint")
	}

	return complaint, nil
}

func (s *complaintService) ListBuyerComplaints(ctx context.Context, buyerID uuid.UUID, page, size int) ([]models.Complaint, int, error) {

	complaints, total, err := s.repo.ListComplaintsByBuyer(ctx, buyerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list complaints").WithError(err)
	}

	return complaints, total, nil
}

func (s *complaintService) ListSellerComplaints(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Complaint, int, error) {

	complaints, total, err := s.repo.ListComplaintsBySeller(ctx, sellerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list complaints").WithError(err)
	}

	return complaints, total, nil
}

// RespondToComplaint records the seller's response and moves the complaint
// under review.
func (s *complaintService) RespondToComplaint(ctx context.Context, sellerID, id uuid.UUID, req *models.RespondComplaintRequest) (*models.Complaint, error) {

	complaint, err := s.repo.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Complaint not found").WithError(err)
	}

	if complaint.SellerID != sellerID {
		return nil, errors.ForbiddenError("You can only respond to complaints against you")
	}

	if !complaint.Status.CanTransitionTo(models.ComplaintStatusUnderReview) {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot respond to a complaint in status %s", complaint.Status))
	}

	response := s.sanitizer.Sanitize(req.Response)

	if err := s.repo.UpdateSellerResponse(ctx, id, response, models.ComplaintStatusUnderReview); err != nil {
		return nil, errors.DatabaseError("Failed to save response").WithError(err)
	}

	complaint.SellerResponse = response
	complaint.Status = models.ComplaintStatusUnderReview

	return complaint, nil
}

// ResolveComplaint is the admin's final decision.
func (s *complaintService) ResolveComplaint(ctx context.Context, id uuid.UUID, req *models.ResolveComplaintRequest) (*models.Complaint, error) {

	complaint, err := s.repo.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Complaint not found").WithError(err)
	}

	if !complaint.Status.CanTransitionTo(req.Status) {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot change complaint status from %s to %s", complaint.Status, req.Status))
	}

	resolution := s.sanitizer.Sanitize(req.Resolution)

	if err := s.repo.UpdateResolution(ctx, id, req.Status, resolution); err != nil {
		return nil, errors.DatabaseError("Failed to resolve complaint").WithError(err)
	}

	complaint.Resolution = resolution
	complaint.Status = req.Status

	return complaint, nil
}
