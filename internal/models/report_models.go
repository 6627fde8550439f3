package models

// SalesStats are the headline dashboard metrics for one year of orders.
type SalesStats struct {
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
	TipTotal   float64 `json:"tip_total"`
	DishCount  int     `json:"dish_count"`
}

// ProductSales is one row of the top-products ranking.
type ProductSales struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// PeriodBucket is one labeled counting slot of the orders chart
// (a weekday or a month).
type PeriodBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SalesSummary is the dashboard view model for one selected year.
type SalesSummary struct {
	Year        int            `json:"year"`
	Stats       SalesStats     `json:"stats"`
	TopProducts []ProductSales `json:"top_products"`
}

// OrdersChart is the chart view model for one (year, mode) selection.
type OrdersChart struct {
	Year    int            `json:"year"`
	Mode    string         `json:"mode"`
	Buckets []PeriodBucket `json:"buckets"`
}
