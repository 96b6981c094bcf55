package service

import (
	"fmt"

	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService turns a cart into an order.
type CheckoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Checkout converts the user's cart into an order in one transaction:
// prices and stock are re-read inside the transaction, each line's
// stock is decremented with a floor guard, the order and its lines are
// written, and the cart is emptied. Any failure rolls the whole thing
// back, so stock never goes negative and no partial order is left
// behind.
func (s *CheckoutService) Checkout(userID uint) (uint, error) {
	if userID == 0 {
		return 0, ErrNotFound
	}

	var orderID uint
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cart, err := cartRepo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, cartLineName(item))
			}

			affected, err := productRepo.DecrementStock(product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order := &models.Order{
			UserID:     userID,
			TotalPrice: models.NewMoneyFromDecimal(total),
		}
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func cartLineName(item models.CartItem) string {
	if item.Product != nil && item.Product.Name != "" {
		return item.Product.Name
	}
	return fmt.Sprintf("product %d", item.ProductID)
}
