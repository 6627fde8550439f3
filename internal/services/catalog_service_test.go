package services

import (
	"testing"

	"resto_pos_backend/internal/models"
)

func TestBuildCategoryMapLastWriteWins(t *testing.T) {
	m := BuildCategoryMap([]models.MenuCategory{
		{ID: "cat-1", Name: "First"},
		{ID: "cat-2", Name: "Other"},
		{ID: "cat-1", Name: "Second"},
	})

	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["cat-1"].Name != "Second" {
		t.Fatalf("expected duplicate id to keep last entry, got %q", m["cat-1"].Name)
	}
}

func TestBuildItemCountMap(t *testing.T) {
	counts := BuildItemCountMap(testMenu().items)

	if counts["cat-pizza"] != 2 {
		t.Fatalf("expected 2 pizza items, got %d", counts["cat-pizza"])
	}
	if counts["cat-pasta"] != 1 {
		t.Fatalf("expected 1 pasta item, got %d", counts["cat-pasta"])
	}
	// Categories without items are simply absent; lookups default to zero.
	if counts["cat-empty"] != 0 {
		t.Fatalf("expected 0 for unknown category, got %d", counts["cat-empty"])
	}
}

func TestFilterItemsByCategoryAndQuery(t *testing.T) {
	items := testMenu().items

	all := FilterItems(items, "cat-pizza", "")
	if len(all) != 2 {
		t.Fatalf("empty query should match all category items, got %d", len(all))
	}
	if all[0].ID != "itm-1" || all[1].ID != "itm-2" {
		t.Fatalf("fixture order must be preserved, got %v", all)
	}

	matched := FilterItems(items, "cat-pizza", "PEPPER")
	if len(matched) != 1 || matched[0].Name != "Pepperoni" {
		t.Fatalf("expected case-insensitive substring match on Pepperoni, got %v", matched)
	}

	none := FilterItems(items, "cat-pizza", "carbonara")
	if len(none) != 0 {
		t.Fatalf("query must not cross category boundaries, got %v", none)
	}
}

func TestCatalogServiceSummaries(t *testing.T) {
	service := NewCatalogService(testMenu())

	summaries := service.GetCategorySummaries()
	if len(summaries) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(summaries))
	}
	if summaries[0].ID != "cat-pizza" || summaries[0].ItemCount != 2 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[2].ItemCount != 1 {
		t.Fatalf("expected drinks to count 1 item, got %d", summaries[2].ItemCount)
	}

	if got := service.DefaultCategoryID(); got != "cat-pizza" {
		t.Fatalf("expected first category as default, got %q", got)
	}
}

func TestCatalogServiceEmptyCatalog(t *testing.T) {
	service := NewCatalogService(&mockMenuRepo{})

	if got := service.DefaultCategoryID(); got != "" {
		t.Fatalf("expected empty default category, got %q", got)
	}
	if items := service.GetItems("cat-any", "x"); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
}
