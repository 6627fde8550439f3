package services

import (
	"errors"
	"sync"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"

	"github.com/google/uuid"
)

// Custom Errors
var (
	ErrCartSessionNotFound = errors.New("cart session not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrEmptyCart           = errors.New("cart has no items")
)

// DefaultTaxRate is applied when no TAX_RATE is configured.
const DefaultTaxRate = 0.10

// CartLine is one selected menu item with its requested quantity.
type CartLine struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// DerivedCart is the cart view model: selected lines plus monetary totals.
// Totals are unrounded; rounding happens at the presentation boundary only.
type DerivedCart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

// CheckoutRequest is used to turn a cart session into an order record.
type CheckoutRequest struct {
	Table         string  `json:"table" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	TipAmount     float64 `json:"tip_amount"`
}

// ApplyDelta returns a copy of quantities with itemID adjusted by delta.
// The result is clamped at zero: over-decrementing reaches exactly 0 and
// never goes negative. The input map is not modified.
func ApplyDelta(quantities map[string]int, itemID string, delta int) map[string]int {
	next := make(map[string]int, len(quantities)+1)
	for id, qty := range quantities {
		next[id] = qty
	}
	qty := next[itemID] + delta
	if qty < 0 {
		qty = 0
	}
	next[itemID] = qty
	return next
}

// DeriveCart computes the cart view model from the catalog and a quantity
// map. Lines keep catalog order and use the canonical catalog price, never a
// price captured at add-time. Zero-quantity entries are filtered out. The
// function is pure: identical inputs yield identical output.
func DeriveCart(items []models.MenuItem, quantities map[string]int, taxRate float64) DerivedCart {
	cart := DerivedCart{Lines: []CartLine{}}
	for _, item := range items {
		qty := quantities[item.ID]
		if qty <= 0 {
			continue
		}
		cart.Lines = append(cart.Lines, CartLine{Item: item, Quantity: qty})
		cart.Subtotal += item.Price * float64(qty)
	}
	cart.Tax = cart.Subtotal * taxRate
	cart.Total = cart.Subtotal + cart.Tax
	return cart
}

// CartService manages order-builder sessions. Each session owns an
// independent item->quantity map; deriving totals never mutates it.
type CartService interface {
	CreateSession() string
	GetCart(sessionID string) (*DerivedCart, error)
	SetQuantity(sessionID, itemID string, delta int) (*DerivedCart, error)
	Checkout(sessionID string, req CheckoutRequest) (*models.OrderRecord, error)
}

type cartService struct {
	menuRepo  repositories.MenuRepository
	orderRepo repositories.OrderRepository
	taxRate   float64

	mu       sync.RWMutex
	sessions map[string]map[string]int
}

// NewCartService creates a new CartService with the given tax rate.
func NewCartService(menuRepo repositories.MenuRepository, orderRepo repositories.OrderRepository, taxRate float64) CartService {
	return &cartService{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		taxRate:   taxRate,
		sessions:  make(map[string]map[string]int),
	}
}

func (s *cartService) CreateSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = make(map[string]int)
	s.mu.Unlock()
	return id
}

func (s *cartService) GetCart(sessionID string) (*DerivedCart, error) {
	s.mu.RLock()
	quantities, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrCartSessionNotFound
	}

	cart := DeriveCart(s.menuRepo.GetMenuItems(), quantities, s.taxRate)
	return &cart, nil
}

// SetQuantity is the only mutation entry point for a session. The item must
// exist in the catalog; any delta is accepted and the stored quantity is
// clamped at zero.
func (s *cartService) SetQuantity(sessionID, itemID string, delta int) (*DerivedCart, error) {
	if _, err := s.menuRepo.GetMenuItemByID(itemID); err != nil {
		return nil, ErrMenuItemNotFound
	}

	s.mu.Lock()
	quantities, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCartSessionNotFound
	}
	quantities = ApplyDelta(quantities, itemID, delta)
	s.sessions[sessionID] = quantities
	s.mu.Unlock()

	cart := DeriveCart(s.menuRepo.GetMenuItems(), quantities, s.taxRate)
	return &cart, nil
}

// Checkout snapshots the session's derived cart into an order record,
// appends it to the in-memory order log and empties the session. The record
// is not persisted anywhere; no payment is processed.
func (s *cartService) Checkout(sessionID string, req CheckoutRequest) (*models.OrderRecord, error) {
	s.mu.Lock()
	quantities, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCartSessionNotFound
	}
	cart := DeriveCart(s.menuRepo.GetMenuItems(), quantities, s.taxRate)
	if len(cart.Lines) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	s.sessions[sessionID] = make(map[string]int)
	s.mu.Unlock()

	order := models.OrderRecord{
		OrderID:   "ORD-" + uuid.NewString(),
		Table:     req.Table,
		Payment:   models.OrderPayment{Method: req.PaymentMethod, TipAmount: req.TipAmount},
		Timestamp: time.Now(),
	}
	for _, line := range cart.Lines {
		order.Items = append(order.Items, models.OrderLineItem{
			Name:  line.Item.Name,
			Qt:    line.Quantity,
			Price: line.Item.Price,
		})
	}

	s.orderRepo.AppendOrder(order)
	return &order, nil
}
