package services

import (
	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

// OrderService feeds the orders page: the historical sales fixture plus any
// orders produced by cart checkouts during this process.
type OrderService interface {
	ListOrders() []models.OrderRecord
}

type orderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) ListOrders() []models.OrderRecord {
	return s.orderRepo.GetOrders()
}
