package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusReturned   OrderStatus = "returned"
)

// orderTransitions is the authoritative transition table. A status absent
// from the map is terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:    {OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusReturned},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Shipped and later states freeze the shipping address.
func (s OrderStatus) IsPreShipment() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusProcessing:
		return true
	}

	return false
}

type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	VariantKey  string    `json:"variant_key,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusChange is one entry of an order's status history log.
type StatusChange struct {
	OrderID   uuid.UUID   `json:"-"`
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type Order struct {
	ID              uuid.UUID        `json:"id"`
	BuyerID         uuid.UUID        `json:"buyer_id"`
	SellerID        uuid.UUID        `json:"seller_id"`
	Status          OrderStatus      `json:"status"`
	ItemCount       int              `json:"item_count"`
	SubtotalAmount  float64          `json:"subtotal_amount"`
	TotalAmount     float64          `json:"total_amount"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	Items           []OrderItem      `json:"items"`
	StatusHistory   []StatusChange   `json:"status_history,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=created paid processing shipped delivered cancelled failed returned"`
	Note   string      `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdateShippingAddressRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
}
