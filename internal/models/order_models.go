package models

import "time"

// OrderLineItem is one sold line within an order.
// Qt is the quantity sold; Price is the unit price at the time of sale.
type OrderLineItem struct {
	Name  string  `json:"name"`
	Qt    int     `json:"qt"`
	Price float64 `json:"price"`
}

// OrderPayment carries the payment details recorded with an order.
type OrderPayment struct {
	Method    string  `json:"method,omitempty"`
	TipAmount float64 `json:"tip_amount"`
}

// OrderRecord is a historical order from the sales fixture (or one produced
// by a cart checkout). Records are read-only: aggregation reads them,
// nothing mutates them after creation.
type OrderRecord struct {
	OrderID   string          `json:"order_id"`
	Table     string          `json:"table"`
	Items     []OrderLineItem `json:"items"`
	Payment   OrderPayment    `json:"payment"`
	Timestamp time.Time       `json:"timestamp"`
}

// Subtotal returns the sum of price x quantity over the order's lines.
func (o OrderRecord) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Qt)
	}
	return sum
}
