package services

import (
	"strings"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

// BuildCategoryMap indexes categories by id. Fixture ids are assumed unique;
// on a duplicate id the last entry wins.
func BuildCategoryMap(categories []models.MenuCategory) map[string]models.MenuCategory {
	m := make(map[string]models.MenuCategory, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat
	}
	return m
}

// BuildItemCountMap counts menu items per category id. Categories with no
// items are absent from the map; callers must default to 0.
func BuildItemCountMap(items []models.MenuItem) map[string]int {
	m := make(map[string]int)
	for _, item := range items {
		m[item.CategoryID]++
	}
	return m
}

// FilterItems returns the items of one category whose name contains query
// case-insensitively. An empty query matches everything. Fixture order is
// preserved; no ranking is applied.
func FilterItems(items []models.MenuItem, categoryID, query string) []models.MenuItem {
	query = strings.ToLower(query)
	filtered := []models.MenuItem{}
	for _, item := range items {
		if item.CategoryID != categoryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// CatalogService exposes the menu catalog to the menu page.
type CatalogService interface {
	GetCategorySummaries() []models.CategorySummary
	GetItems(categoryID, query string) []models.MenuItem
	DefaultCategoryID() string
}

type catalogService struct {
	menuRepo repositories.MenuRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(menuRepo repositories.MenuRepository) CatalogService {
	return &catalogService{menuRepo: menuRepo}
}

// GetCategorySummaries returns every category annotated with its item count,
// in fixture order.
func (s *catalogService) GetCategorySummaries() []models.CategorySummary {
	categories := s.menuRepo.GetCategories()
	counts := BuildItemCountMap(s.menuRepo.GetMenuItems())

	summaries := []models.CategorySummary{}
	for _, cat := range categories {
		summaries = append(summaries, models.CategorySummary{
			MenuCategory: cat,
			ItemCount:    counts[cat.ID],
		})
	}
	return summaries
}

func (s *catalogService) GetItems(categoryID, query string) []models.MenuItem {
	return FilterItems(s.menuRepo.GetMenuItems(), categoryID, query)
}

// DefaultCategoryID returns the first fixture category, mirroring the menu
// page's initial selection. Empty string when the catalog is empty.
func (s *catalogService) DefaultCategoryID() string {
	categories := s.menuRepo.GetCategories()
	if len(categories) == 0 {
		return ""
	}
	return categories[0].ID
}
