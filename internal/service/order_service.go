package service

import (
	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"
)

// OrderService reads the order archive.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{Page: page, PageSize: pageSize})
}

// ListForUser returns the user's own orders, newest first.
func (s *OrderService) ListForUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrNotFound
	}
	return s.orderRepo.List(repository.OrderListFilter{Page: page, PageSize: pageSize, UserID: userID})
}
