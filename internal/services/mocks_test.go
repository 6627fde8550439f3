package services

import (
	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

// --------------------------------------------------
// Mock Repositories
// --------------------------------------------------

type mockMenuRepo struct {
	categories []models.MenuCategory
	items      []models.MenuItem
}

func (m *mockMenuRepo) GetCategories() []models.MenuCategory { return m.categories }
func (m *mockMenuRepo) GetMenuItems() []models.MenuItem      { return m.items }

func (m *mockMenuRepo) GetMenuItemByID(id string) (*models.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type mockOrderRepo struct {
	orders []models.OrderRecord
}

func (m *mockOrderRepo) GetOrders() []models.OrderRecord {
	return append([]models.OrderRecord{}, m.orders...)
}

func (m *mockOrderRepo) AppendOrder(order models.OrderRecord) {
	m.orders = append(m.orders, order)
}

type mockReservationRepo struct {
	config       models.RestaurantConfig
	reservations []models.Reservation
}

func (m *mockReservationRepo) GetRestaurantConfig() models.RestaurantConfig { return m.config }
func (m *mockReservationRepo) GetReservations() []models.Reservation        { return m.reservations }

// testMenu is a small catalog shared across service tests.
func testMenu() *mockMenuRepo {
	return &mockMenuRepo{
		categories: []models.MenuCategory{
			{ID: "cat-pizza", Name: "Pizza", Icon: "Pizza", Color: "#fecaca"},
			{ID: "cat-pasta", Name: "Pasta", Icon: "Utensils", Color: "#fbcfe8"},
			{ID: "cat-drinks", Name: "Drinks", Icon: "CupSoda", Color: "#bae6fd"},
		},
		items: []models.MenuItem{
			{ID: "itm-1", Name: "Margherita", Price: 10.0, CategoryID: "cat-pizza", OrdersTo: "Kitchen"},
			{ID: "itm-2", Name: "Pepperoni", Price: 12.0, CategoryID: "cat-pizza", OrdersTo: "Kitchen"},
			{ID: "itm-3", Name: "Carbonara", Price: 5.0, CategoryID: "cat-pasta", OrdersTo: "Kitchen"},
			{ID: "itm-4", Name: "Lemonade", Price: 4.0, CategoryID: "cat-drinks", OrdersTo: "Bar"},
		},
	}
}
