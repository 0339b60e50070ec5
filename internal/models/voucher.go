package models

import (
	"time"

	"github.com/google/uuid"
)

type VoucherStatus string

const (
	VoucherStatusPending  VoucherStatus = "pending"
	VoucherStatusApproved VoucherStatus = "approved"
	VoucherStatusRejected VoucherStatus = "rejected"
)

var voucherTransitions = map[VoucherStatus][]VoucherStatus{
	VoucherStatusPending: {VoucherStatusApproved, VoucherStatusRejected},
}

func (s VoucherStatus) CanTransitionTo(next VoucherStatus) bool {
	for _, allowed := range voucherTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// Voucher doubles as the seller's request and, once approved, the live
// voucher. Sellers submit it as a request; admins move it through the status
// table.
type Voucher struct {
	ID            uuid.UUID     `json:"id"`
	SellerID      uuid.UUID     `json:"seller_id"`
	Code          string        `json:"code"`
	DiscountType  DiscountType  `json:"discount_type"`
	DiscountValue float64       `json:"discount_value"`
	MinSpend      float64       `json:"min_spend"`
	UsageLimit    int           `json:"usage_limit"`
	UsedCount     int           `json:"used_count"`
	ExpiresAt     time.Time     `json:"expires_at"`
	Status        VoucherStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateVoucherRequest struct {
	Code          string       `json:"code" validate:"required,min=3,max=30,alphanum"`
	DiscountType  DiscountType `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue float64      `json:"discount_value" validate:"required,gt=0"`
	MinSpend      float64      `json:"min_spend" validate:"gte=0"`
	UsageLimit    int          `json:"usage_limit" validate:"required,min=1"`
	ExpiresAt     time.Time    `json:"expires_at" validate:"required"`
}

type ReviewVoucherRequest struct {
	Status VoucherStatus `json:"status" validate:"required,oneof=approved rejected"`
}

type ValidateVoucherRequest struct {
	Code     string    `json:"code" validate:"required"`
	SellerID uuid.UUID `json:"seller_id" validate:"required"`
	Subtotal float64   `json:"subtotal" validate:"required,gt=0"`
}

// Voucher rejection reasons.
const (
	VoucherReasonNotFound    = "not_found"
	VoucherReasonNotApproved = "not_approved"
	VoucherReasonExpired     = "expired"
	VoucherReasonExhausted   = "exhausted"
	VoucherReasonMinSpend    = "min_spend_not_met"
)

type VoucherValidation struct {
	Valid          bool    `json:"valid"`
	Reason         string  `json:"reason,omitempty"`
	DiscountAmount float64 `json:"discount_amount"`
}
