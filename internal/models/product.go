package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VariantCombination is one concrete combination of product option values
// (e.g. size=m, color=red) with its own price, stock and SKU.
type VariantCombination struct {
	ID            uuid.UUID         `json:"id"`
	ProductID     uuid.UUID         `json:"product_id"`
	VariantKey    string            `json:"variant_key"`
	Options       map[string]string `json:"options"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	SKU           string            `json:"sku"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type Product struct {
	ID            uuid.UUID            `json:"id"`
	SellerID      uuid.UUID            `json:"seller_id"`
	CategoryID    uuid.UUID            `json:"category_id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	StockQuantity int                  `json:"stock_quantity"`
	SKU           string               `json:"sku"`
	Status        string               `json:"status"`
	HasVariants   bool                 `json:"has_variants"`
	Variants      []VariantCombination `json:"variants,omitempty"`
	Category      *Category            `json:"category,omitempty"`
	PromoPrice    *float64             `json:"promo_price,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type VariantInput struct {
	Options       map[string]string `json:"options" validate:"required,min=1"`
	Price         float64           `json:"price" validate:"required,gt=0"`
	StockQuantity int               `json:"stock_quantity" validate:"gte=0"`
	SKU           string            `json:"sku" validate:"omitempty,min=3,max=50"`
}

type CreateProductRequest struct {
	CategoryID    uuid.UUID      `json:"category_id" validate:"required"`
	Name          string         `json:"name" validate:"required,min=3,max=200"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price" validate:"omitempty,gt=0"`
	StockQuantity int            `json:"stock_quantity" validate:"gte=0"`
	SKU           string         `json:"sku" validate:"required,min=3,max=50"`
	Variants      []VariantInput `json:"variants,omitempty" validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description   *string    `json:"description,omitempty"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity *int       `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
}

type ProductFilter struct {
	Keyword    string
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
}

// VariantKey derives the canonical key for an option selection: option names
// sorted, joined as name=value pairs. An empty selection yields "".
func VariantKey(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}

	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, strings.ToLower(strings.TrimSpace(name))+"="+strings.ToLower(strings.TrimSpace(options[name])))
	}

	return strings.Join(pairs, ";")
}

// FindVariant resolves a variant key against the product's combinations.
func (p *Product) FindVariant(key string) *VariantCombination {
	for i := range p.Variants {
		if p.Variants[i].VariantKey == key {
			return &p.Variants[i]
		}
	}

	return nil
}
