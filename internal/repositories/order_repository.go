package repositories

import (
	"sync"

	"resto_pos_backend/internal/fixtures"
	"resto_pos_backend/internal/models"
)

// OrderRepository exposes the historical sales fixture plus any orders
// created at runtime through cart checkout. Appended orders live only in
// process memory; there is no persistence behind them.
type OrderRepository interface {
	GetOrders() []models.OrderRecord
	AppendOrder(order models.OrderRecord)
}

type orderRepository struct {
	store *fixtures.Store

	mu       sync.RWMutex
	appended []models.OrderRecord
}

// NewOrderRepository creates an OrderRepository backed by the fixture store.
func NewOrderRepository(store *fixtures.Store) OrderRepository {
	return &orderRepository{store: store}
}

// GetOrders returns fixture orders followed by checked-out orders, as a
// fresh slice the caller may hold without locking.
func (r *orderRepository) GetOrders() []models.OrderRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.OrderRecord, 0, len(r.store.SalesHistory)+len(r.appended))
	orders = append(orders, r.store.SalesHistory...)
	orders = append(orders, r.appended...)
	return orders
}

func (r *orderRepository) AppendOrder(order models.OrderRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appended = append(r.appended, order)
}
