package repositories

import (
	"resto_pos_backend/internal/fixtures"
	"resto_pos_backend/internal/models"
)

// MenuRepository defines read access to the menu catalog.
type MenuRepository interface {
	GetCategories() []models.MenuCategory
	GetMenuItems() []models.MenuItem
	GetMenuItemByID(id string) (*models.MenuItem, error)
}

type menuRepository struct {
	store *fixtures.Store
}

// NewMenuRepository creates a MenuRepository backed by the fixture store.
func NewMenuRepository(store *fixtures.Store) MenuRepository {
	return &menuRepository{store: store}
}

func (r *menuRepository) GetCategories() []models.MenuCategory {
	return r.store.Menu.Categories
}

func (r *menuRepository) GetMenuItems() []models.MenuItem {
	return r.store.Menu.MenuItems
}

func (r *menuRepository) GetMenuItemByID(id string) (*models.MenuItem, error) {
	for i := range r.store.Menu.MenuItems {
		if r.store.Menu.MenuItems[i].ID == id {
			item := r.store.Menu.MenuItems[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}
