package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
	"github.com/sellora/marketplace/internal/utils"
)

type VoucherService interface {
	CreateVoucher(ctx context.Context, sellerID uuid.UUID, req *models.CreateVoucherRequest) (*models.Voucher, error)
	ReviewVoucher(ctx context.Context, id uuid.UUID, req *models.ReviewVoucherRequest) (*models.Voucher, error)
	ListSellerVouchers(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Voucher, int, error)
	ListPendingVouchers(ctx context.Context, page, size int) ([]models.Voucher, int, error)
	ValidateVoucher(ctx context.Context, req *models.ValidateVoucherRequest) (*models.VoucherValidation, error)
	RedeemVoucher(ctx context.Context, req *models.ValidateVoucherRequest) (*models.VoucherValidation, error)
}

type voucherService struct {
	repo repository.VoucherRepository
}

func NewVoucherService(repo repository.VoucherRepository) VoucherService {
	return &voucherService{repo: repo}
}

func (s *voucherService) CreateVoucher(ctx context.Context, sellerID uuid.UUID, req *models.CreateVoucherRequest) (*models.Voucher, error) {

	if req.DiscountType == models.DiscountTypePercent && req.DiscountValue > 100 {
		return nil, errors.ValidationError("Percentage discount cannot exceed 100")
	}

	if existing, _ := s.repo.GetVoucherByCode(ctx, sellerID, req.Code); existing != nil {
		return nil, errors.DuplicateEntryError("You already have a voucher with this code")
	}

	voucher := &models.Voucher{
		SellerID:      sellerID,
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinSpend:      req.MinSpend,
		UsageLimit:    req.UsageLimit,
		ExpiresAt:     req.ExpiresAt,
		Status:        models.VoucherStatusPending,
	}

	if err := s.repo.CreateVoucher(ctx, voucher); err != nil {
		return nil, errors.DatabaseError("Failed to create voucher").WithError(err)
	}

	return voucher, nil
}

// ReviewVoucher is the admin approve/reject step.
func (s *voucherService) ReviewVoucher(ctx context.Context, id uuid.UUID, req *models.ReviewVoucherRequest) (*models.Voucher, error) {

	voucher, err := s.repo.GetVoucherByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Voucher not found").WithError(err)
	}

	if !voucher.Status.CanTransitionTo(req.Status) {
		return nil, errors.StatusTransitionError(fmt.Sprintf("Cannot change voucher status from %s to %s", voucher.Status, req.Status))
	}

	if err := s.repo.UpdateVoucherStatus(ctx, id, req.Status); err != nil {
		return nil, errors.DatabaseError("Failed to update voucher status").WithError(err)
	}

	voucher.Status = req.Status

	return voucher, nil
}

func (s *voucherService) ListSellerVouchers(ctx context.Context, sellerID uuid.UUID, page, size int) ([]models.Voucher, int, error) {

	vouchers, total, err := s.repo.ListVouchersBySeller(ctx, sellerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list vouchers").WithError(err)
	}

	return vouchers, total, nil
}

func (s *voucherService) ListPendingVouchers(ctx context.Context, page, size int) ([]models.Voucher, int, error) {

	vouchers, total, err := s.repo.ListPendingVouchers(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list vouchers").WithError(err)
	}

	return vouchers, total, nil
}

// ValidateVoucher checks a code against a seller subtotal without consuming
// a use. Rejections are typed, not errors.
func (s *voucherService) ValidateVoucher(ctx context.Context, req *models.ValidateVoucherRequest) (*models.VoucherValidation, error) {

	voucher, err := s.repo.GetVoucherByCode(ctx, req.SellerID, req.Code)
	if err != nil {
		return &models.VoucherValidation{Valid: false, Reason: models.VoucherReasonNotFound}, nil
	}

	if reason := s.rejectReason(voucher, req.Subtotal); reason != "" {
		return &models.VoucherValidation{Valid: false, Reason: reason}, nil
	}

	return &models.VoucherValidation{
		Valid:          true,
		DiscountAmount: discountAmount(voucher, req.Subtotal),
	}, nil
}

// RedeemVoucher validates and consumes one use. The guarded usage increment
// keeps concurrent redemptions from exceeding the limit.
func (s *voucherService) RedeemVoucher(ctx context.Context, req *models.ValidateVoucherRequest) (*models.VoucherValidation, error) {

	voucher, err := s.repo.GetVoucherByCode(ctx, req.SellerID, req.Code)
	if err != nil {
		return &models.VoucherValidation{Valid: false, Reason: models.VoucherReasonNotFound}, nil
	}

	if reason := s.rejectReason(voucher, req.Subtotal); reason != "" {
		return &models.VoucherValidation{Valid: false, Reason: reason}, nil
	}

	ok, err := s.repo.IncrementUsage(ctx, voucher.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to redeem voucher").WithError(err)
	}

	if !ok {
		return &models.VoucherValidation{Valid: false, Reason: models.VoucherReasonExhausted}, nil
	}

	return &models.VoucherValidation{
		Valid:          true,
		DiscountAmount: discountAmount(voucher, req.Subtotal),
	}, nil
}

func (s *voucherService) rejectReason(voucher *models.Voucher, subtotal float64) string {

	switch {
	case voucher.Status != models.VoucherStatusApproved:
		return models.VoucherReasonNotApproved
	case time.Now().After(voucher.ExpiresAt):
		return models.VoucherReasonExpired
	case voucher.UsedCount >= voucher.UsageLimit:
		return models.VoucherReasonExhausted
	case subtotal < voucher.MinSpend:
		return models.VoucherReasonMinSpend
	}

	return ""
}

func discountAmount(voucher *models.Voucher, subtotal float64) float64 {

	if voucher.DiscountType == models.DiscountTypePercent {
		return utils.Round2(subtotal * voucher.DiscountValue / 100)
	}

	return utils.Round2(min(voucher.DiscountValue, subtotal))
}
