package handlers

import (
	"net/http"

	"resto_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the catalog service.
type MenuHandler struct {
	catalogService services.CatalogService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(cs services.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: cs}
}

// GetCategories handles fetching all menu categories with their item counts.
func (h *MenuHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetCategorySummaries())
}

// GetItems handles fetching the items of one category, optionally narrowed
// by a case-insensitive name search. Without a category_id the first fixture
// category is used, matching the menu page's initial selection.
func (h *MenuHandler) GetItems(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		categoryID = h.catalogService.DefaultCategoryID()
	}
	c.JSON(http.StatusOK, h.catalogService.GetItems(categoryID, c.Query("q")))
}
