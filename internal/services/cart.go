package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	repository "github.com/sellora/marketplace/internal/repositories"
	"github.com/sellora/marketplace/internal/utils"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

// AddItem validates the product (and variant, when options are given) against
// current stock, snapshots the unit price and accumulates the line into the
// cart.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.SellerID == userID {
		return nil, errors.BadRequestError("You cannot add your own product to the cart")
	}

	variantKey := models.VariantKey(req.Options)

	unitPrice := product.Price
	availableStock := product.StockQuantity

	if product.HasVariants {

		if variantKey == "" {
			return nil, errors.BadRequestError("This product requires a variant selection")
		}

		variant := product.FindVariant(variantKey)
		if variant == nil {
			return nil, errors.NotFoundError("Variant not found: " + variantKey)
		}

		unitPrice = variant.Price
		availableStock = variant.StockQuantity

	} else if variantKey != "" {
		// options sent for a flat product fall back to the product itself
		variantKey = ""
	}

	if availableStock < req.Quantity {
		return nil, errors.BadRequestError("Insufficient stock for this product")
	}

	item := &models.CartItem{
		CartID:      cart.ID,
		ProductID:   product.ID,
		SellerID:    product.SellerID,
		ProductName: product.Name,
		VariantKey:  variantKey,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		LineTotal:   utils.Round2(unitPrice * float64(req.Quantity)),
	}

	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return nil, errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return s.refresh(ctx, userID, cart.ID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil || item.CartID != cart.ID {
		return nil, errors.NotFoundError("Cart item not found")
	}

	product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	availableStock := product.StockQuantity

	if item.VariantKey != "" {

		variant := product.FindVariant(item.VariantKey)
		if variant == nil {
			return nil, errors.NotFoundError("Variant not found: " + item.VariantKey)
		}

		availableStock = variant.StockQuantity
	}

	if availableStock < req.Quantity {
		return nil, errors.BadRequestError("Insufficient stock for this product")
	}

	lineTotal := utils.Round2(item.UnitPrice * float64(req.Quantity))

	if err := s.repo.UpdateItemQuantity(ctx, itemID, req.Quantity, lineTotal); err != nil {
		return nil, errors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return s.refresh(ctx, userID, cart.ID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil || item.CartID != cart.ID {
		return nil, errors.NotFoundError("Cart item not found")
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return nil, errors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return s.refresh(ctx, userID, cart.ID)
}

// refresh recomputes the derived totals and reloads the cart.
func (s *cartService) refresh(ctx context.Context, userID, cartID uuid.UUID) (*models.Cart, error) {

	if _, _, err := s.repo.RecomputeAggregates(ctx, cartID); err != nil {
		return nil, errors.DatabaseError("Failed to recompute cart totals").WithError(err)
	}

	cart, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}
