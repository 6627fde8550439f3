package models

// MenuCategory represents one tile in the category slider.
type MenuCategory struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// MenuItem represents a sellable dish or drink on the menu.
// OrdersTo is the kitchen station label the item is routed to.
type MenuItem struct {
	ID         string  `json:"id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
	OrdersTo   string  `json:"orders_to"`
}

// MenuData is the shape of the menu fixture file.
type MenuData struct {
	Categories []MenuCategory `json:"categories"`
	MenuItems  []MenuItem     `json:"menu_items"`
}

// CategorySummary is a category annotated with its item count for display.
type CategorySummary struct {
	MenuCategory
	ItemCount int `json:"item_count"`
}
