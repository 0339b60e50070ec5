package models

import "github.com/google/uuid"

type CheckoutSource string

const (
	CheckoutSourceCart   CheckoutSource = "cart"
	CheckoutSourceBuyNow CheckoutSource = "buy_now"
)

// Unavailability reasons, reported item by item.
const (
	ReasonProductNotFound   = "product_not_found"
	ReasonCartItemNotFound  = "cart_item_not_found"
	ReasonOwnProduct        = "own_product"
	ReasonVariantNotFound   = "variant_not_found"
	ReasonOutOfStock        = "out_of_stock"
	ReasonInsufficientStock = "insufficient_stock"
)

type CheckoutItemInput struct {
	ProductID uuid.UUID         `json:"product_id" validate:"required"`
	Quantity  int               `json:"quantity" validate:"required,min=1"`
	Options   map[string]string `json:"options,omitempty"`
}

type CheckoutRequest struct {
	Source      CheckoutSource      `json:"source" validate:"required,oneof=cart buy_now"`
	CartItemIDs []uuid.UUID         `json:"cart_item_ids,omitempty"`
	Items       []CheckoutItemInput `json:"items,omitempty" validate:"omitempty,dive"`
}

type ConfirmCheckoutRequest struct {
	CheckoutRequest
	PaymentSimulation string     `json:"payment_simulation" validate:"required,oneof=success failure"`
	ShippingAddressID *uuid.UUID `json:"shipping_address_id,omitempty"`
}

// PayableItem is a line that passed existence, ownership and stock checks.
type PayableItem struct {
	CartItemID  *uuid.UUID `json:"cart_item_id,omitempty"`
	ProductID   uuid.UUID  `json:"product_id"`
	SellerID    uuid.UUID  `json:"seller_id"`
	ProductName string     `json:"product_name"`
	VariantKey  string     `json:"variant_key,omitempty"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	LineTotal   float64    `json:"line_total"`
}

type UnavailableItem struct {
	CartItemID     *uuid.UUID `json:"cart_item_id,omitempty"`
	ProductID      uuid.UUID  `json:"product_id"`
	VariantKey     string     `json:"variant_key,omitempty"`
	Reason         string     `json:"reason"`
	RequestedQty   int        `json:"requested_qty"`
	AvailableStock int        `json:"available_stock"`
}

// SellerGroup aggregates the payable lines of one seller; each group becomes
// exactly one order on confirm.
type SellerGroup struct {
	SellerID       uuid.UUID     `json:"seller_id"`
	Items          []PayableItem `json:"items"`
	ItemCount      int           `json:"item_count"`
	SubtotalAmount float64       `json:"subtotal_amount"`
}

type CheckoutTotals struct {
	ItemCount      int     `json:"item_count"`
	SubtotalAmount float64 `json:"subtotal_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

type CheckoutPreview struct {
	Groups           []SellerGroup     `json:"groups"`
	Totals           CheckoutTotals    `json:"totals"`
	PayableItemCount int               `json:"payable_item_count"`
	OutOfStockItems  []UnavailableItem `json:"out_of_stock_items"`
	CanProceed       bool              `json:"can_proceed"`
}

type CheckoutOutcome struct {
	PaymentStatus   string            `json:"payment_status"`
	Orders          []Order           `json:"orders"`
	OutOfStockItems []UnavailableItem `json:"out_of_stock_items"`
	RedirectTo      string            `json:"redirect_to,omitempty"`
}

// LegacyCreateOrderRequest is the body of the legacy POST /orders endpoint,
// which delegates to confirm with source=buy_now and a successful simulation.
type LegacyCreateOrderRequest struct {
	Items             []CheckoutItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddressID *uuid.UUID          `json:"shipping_address_id,omitempty"`
}
