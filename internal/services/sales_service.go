package services

import (
	"errors"
	"sort"
	"sync"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
)

// ViewMode selects the bucketing of the orders chart.
type ViewMode string

const (
	ViewModeWeekly  ViewMode = "Weekly"
	ViewModeMonthly ViewMode = "Monthly"
)

// ErrInvalidViewMode is returned for view modes other than Weekly/Monthly.
var ErrInvalidViewMode = errors.New("invalid view mode")

// IsValidViewMode checks if the provided mode string is a valid ViewMode.
func IsValidViewMode(mode string) bool {
	switch ViewMode(mode) {
	case ViewModeWeekly, ViewModeMonthly:
		return true
	default:
		return false
	}
}

// DefaultTopProducts is how many ranked products the dashboard shows.
const DefaultTopProducts = 4

var (
	weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// FilterByYear returns the orders whose timestamp falls in the given
// calendar year, read in the timestamp's own zone.
func FilterByYear(orders []models.OrderRecord, year int) []models.OrderRecord {
	filtered := []models.OrderRecord{}
	for _, o := range orders {
		if o.Timestamp.Year() == year {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// ComputeStats sums the headline metrics over a set of orders. Every field
// is zero on an empty input.
func ComputeStats(orders []models.OrderRecord) models.SalesStats {
	var stats models.SalesStats
	stats.OrderCount = len(orders)
	for _, o := range orders {
		stats.TipTotal += o.Payment.TipAmount
		for _, it := range o.Items {
			stats.Revenue += it.Price * float64(it.Qt)
			stats.DishCount += it.Qt
		}
	}
	return stats
}

// TopProducts ranks products by units sold across all orders, descending.
// Ties keep first-encountered order, so the ranking is deterministic for a
// fixed order sequence.
func TopProducts(orders []models.OrderRecord, n int) []models.ProductSales {
	index := map[string]int{}
	ranked := []models.ProductSales{}
	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := index[it.Name]
			if !ok {
				i = len(ranked)
				index[it.Name] = i
				ranked = append(ranked, models.ProductSales{Name: it.Name})
			}
			ranked[i].UnitsSold += it.Qt
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].UnitsSold > ranked[b].UnitsSold
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// BucketByPeriod counts orders per calendar slot: 7 Sunday-first weekday
// slots for Weekly, 12 January-first month slots for Monthly. Each order
// lands in exactly one bucket regardless of its line count.
func BucketByPeriod(orders []models.OrderRecord, mode ViewMode) []int {
	var counts []int
	if mode == ViewModeWeekly {
		counts = make([]int, 7)
		for _, o := range orders {
			counts[int(o.Timestamp.Weekday())]++
		}
		return counts
	}
	counts = make([]int, 12)
	for _, o := range orders {
		counts[int(o.Timestamp.Month())-1]++
	}
	return counts
}

// Years lists the distinct calendar years present across orders, ascending.
func Years(orders []models.OrderRecord) []int {
	seen := map[int]bool{}
	years := []int{}
	for _, o := range orders {
		y := o.Timestamp.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// SalesService builds the dashboard view models. Derived state is cached
// per input tuple; the order count is part of each key, so a checkout that
// appends an order naturally invalidates stale entries.
type SalesService interface {
	GetYears() []int
	LatestYear() int
	GetSummary(year int) *models.SalesSummary
	GetOrdersChart(year int, mode ViewMode) *models.OrdersChart
}

type summaryKey struct {
	year       int
	orderCount int
}

type chartKey struct {
	year       int
	mode       ViewMode
	orderCount int
}

type salesService struct {
	orderRepo repositories.OrderRepository

	mu        sync.RWMutex
	summaries map[summaryKey]*models.SalesSummary
	charts    map[chartKey]*models.OrdersChart
}

// NewSalesService creates a new SalesService.
func NewSalesService(orderRepo repositories.OrderRepository) SalesService {
	return &salesService{
		orderRepo: orderRepo,
		summaries: make(map[summaryKey]*models.SalesSummary),
		charts:    make(map[chartKey]*models.OrdersChart),
	}
}

func (s *salesService) GetYears() []int {
	return Years(s.orderRepo.GetOrders())
}

// LatestYear is the dashboard's initial year selection. Zero when the order
// history is empty.
func (s *salesService) LatestYear() int {
	years := s.GetYears()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

func (s *salesService) GetSummary(year int) *models.SalesSummary {
	orders := s.orderRepo.GetOrders()
	key := summaryKey{year: year, orderCount: len(orders)}

	s.mu.RLock()
	cached, ok := s.summaries[key]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	filtered := FilterByYear(orders, year)
	summary := &models.SalesSummary{
		Year:        year,
		Stats:       ComputeStats(filtered),
		TopProducts: TopProducts(filtered, DefaultTopProducts),
	}

	s.mu.Lock()
	s.summaries[key] = summary
	s.mu.Unlock()
	return summary
}

func (s *salesService) GetOrdersChart(year int, mode ViewMode) *models.OrdersChart {
	orders := s.orderRepo.GetOrders()
	key := chartKey{year: year, mode: mode, orderCount: len(orders)}

	s.mu.RLock()
	cached, ok := s.charts[key]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	counts := BucketByPeriod(FilterByYear(orders, year), mode)
	labels := weekdayLabels
	if mode == ViewModeMonthly {
		labels = monthLabels
	}
	chart := &models.OrdersChart{Year: year, Mode: string(mode), Buckets: []models.PeriodBucket{}}
	for i, label := range labels {
		chart.Buckets = append(chart.Buckets, models.PeriodBucket{Label: label, Count: counts[i]})
	}

	s.mu.Lock()
	s.charts[key] = chart
	s.mu.Unlock()
	return chart
}
