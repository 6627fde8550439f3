package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler holds the cart service.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// cartLineView is one cart line as rendered, with its extended price.
type cartLineView struct {
	Item      models.MenuItem `json:"item"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

// cartView is the derived cart with totals rounded for display.
type cartView struct {
	Lines    []cartLineView `json:"lines"`
	Subtotal float64        `json:"subtotal"`
	Tax      float64        `json:"tax"`
	Total    float64        `json:"total"`
}

func toCartView(cart *services.DerivedCart) cartView {
	view := cartView{
		Lines:    []cartLineView{},
		Subtotal: utils.RoundMoney(cart.Subtotal),
		Tax:      utils.RoundMoney(cart.Tax),
		Total:    utils.RoundMoney(cart.Total),
	}
	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, cartLineView{
			Item:      line.Item,
			Quantity:  line.Quantity,
			LineTotal: utils.RoundMoney(line.Item.Price * float64(line.Quantity)),
		})
	}
	return view
}

// CreateSession handles opening a new order-builder session.
func (h *CartHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"session_id": h.cartService.CreateSession()})
}

// GetCart handles fetching the derived cart for one session.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cart session not found.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// UpdateItemRequest adjusts one item's quantity by a signed delta.
type UpdateItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Delta  int    `json:"delta"`
}

// UpdateItem handles the quantity command for one cart item.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateItem: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	cart, err := h.cartService.SetQuantity(c.Param("id"), req.ItemID, req.Delta)
	if err != nil {
		utils.LogError(err, "UpdateItem: Error from cartService.SetQuantity")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else if errors.Is(err, services.ErrCartSessionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cart session not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update cart.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// Checkout handles turning a session's cart into an order record.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Checkout: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	order, err := h.cartService.Checkout(c.Param("id"), req)
	if err != nil {
		utils.LogError(err, "Checkout: Error from cartService.Checkout")
		if errors.Is(err, services.ErrCartSessionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cart session not found.", err.Error()))
		} else if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Cart has no items to check out.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check out.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, toOrderCardView(*order))
}
