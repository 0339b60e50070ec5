package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusOpen        ComplaintStatus = "open"
	ComplaintStatusUnderReview ComplaintStatus = "under_review"
	ComplaintStatusResolved    ComplaintStatus = "resolved"
	ComplaintStatusRejected    ComplaintStatus = "rejected"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusOpen:        {ComplaintStatusUnderReview, ComplaintStatusRejected},
	ComplaintStatusUnderReview: {ComplaintStatusResolved, ComplaintStatusRejected},
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Complaint struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"order_id"`
	BuyerID        uuid.UUID       `json:"buyer_id"`
	SellerID       uuid.UUID       `json:"seller_id"`
	Subject        string          `json:"subject"`
	Description    string          `json:"description"`
	SellerResponse string          `json:"seller_response,omitempty"`
	Resolution     string          `json:"resolution,omitempty"`
	Status         ComplaintStatus `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateComplaintRequest struct {
	OrderID     uuid.UUID `json:"order_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required,min=5,max=200"`
	Description string    `json:"description" validate:"required,min=10,max=5000"`
}

type RespondComplaintRequest struct {
	Response string `json:"response" validate:"required,max=5000"`
}

type ResolveComplaintRequest struct {
	Status     ComplaintStatus `json:"status" validate:"required,oneof=resolved rejected"`
	Resolution string          `json:"resolution" validate:"required,max=5000"`
}
