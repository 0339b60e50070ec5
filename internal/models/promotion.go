package models

import (
	"time"

	"github.com/google/uuid"
)

type PromotionStatus string

const (
	PromotionStatusPending  PromotionStatus = "pending"
	PromotionStatusApproved PromotionStatus = "approved"
	PromotionStatusRejected PromotionStatus = "rejected"
)

var promotionTransitions = map[PromotionStatus][]PromotionStatus{
	PromotionStatusPending: {PromotionStatusApproved, PromotionStatusRejected},
}

func (s PromotionStatus) CanTransitionTo(next PromotionStatus) bool {
	for _, allowed := range promotionTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PromotionRequest is a seller's proposal to sell a product at a reduced
// price for a date range; it takes effect only once an admin approves it.
type PromotionRequest struct {
	ID         uuid.UUID       `json:"id"`
	SellerID   uuid.UUID       `json:"seller_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	PromoPrice float64         `json:"promo_price"`
	StartsAt   time.Time       `json:"starts_at"`
	EndsAt     time.Time       `json:"ends_at"`
	Status     PromotionStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CreatePromotionRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	PromoPrice float64   `json:"promo_price" validate:"required,gt=0"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	EndsAt     time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

type ReviewPromotionRequest struct {
	Status PromotionStatus `json:"status" validate:"required,oneof=approved rejected"`
}
