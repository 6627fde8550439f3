package handlers

import (
	"net/http"
	"strings"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// orderLineView is one sold line with its extended price.
type orderLineView struct {
	Name      string  `json:"name"`
	Qt        int     `json:"qt"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

// orderCardView is one card on the orders page.
type orderCardView struct {
	OrderID   string          `json:"order_id"`
	Number    string          `json:"number"`
	Table     string          `json:"table"`
	Items     []orderLineView `json:"items"`
	Subtotal  float64         `json:"subtotal"`
	Timestamp time.Time       `json:"timestamp"`
}

func toOrderCardView(o models.OrderRecord) orderCardView {
	card := orderCardView{
		OrderID:   o.OrderID,
		Number:    displayNumber(o.OrderID),
		Table:     o.Table,
		Items:     []orderLineView{},
		Subtotal:  utils.RoundMoney(o.Subtotal()),
		Timestamp: o.Timestamp,
	}
	for _, it := range o.Items {
		card.Items = append(card.Items, orderLineView{
			Name:      it.Name,
			Qt:        it.Qt,
			Price:     it.Price,
			LineTotal: utils.RoundMoney(it.Price * float64(it.Qt)),
		})
	}
	return card
}

// displayNumber is the short order number shown on a card: the part of the
// order id after its first dash.
func displayNumber(orderID string) string {
	if _, number, ok := strings.Cut(orderID, "-"); ok {
		return number
	}
	return orderID
}

// GetOrders handles fetching all order cards.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	cards := []orderCardView{}
	for _, o := range h.orderService.ListOrders() {
		cards = append(cards, toOrderCardView(o))
	}
	c.JSON(http.StatusOK, cards)
}
