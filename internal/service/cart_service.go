package service

import (
	"fmt"

	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"
)

// CartService manages per-user shopping carts.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*models.Cart, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	return s.cartRepo.GetOrCreateByUser(userID)
}

// AddItem puts quantity units of a product into the cart, merging with
// an existing line for the same product. The stock check here is
// advisory; checkout re-verifies against live stock inside its
// transaction.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if userID == 0 || productID == 0 {
		return nil, ErrNotFound
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}

	requested := quantity
	if item != nil {
		requested += item.Quantity
	}
	if requested > product.Stock {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
	}

	if item == nil {
		item = &models.CartItem{CartID: cart.ID, ProductID: productID}
	}
	item.Quantity = requested
	if err := s.cartRepo.UpsertItem(item); err != nil {
		return nil, err
	}

	item.Product = product
	return item, nil
}

// RemoveItem drops a product line from the cart. Removing a product
// that is not in the cart succeeds without effect.
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrNotFound
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartRepo.DeleteItem(cart.ID, productID)
}
