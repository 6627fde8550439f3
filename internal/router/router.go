package router

import (
	"resto_pos_backend/internal/fixtures"
	"resto_pos_backend/internal/handlers"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store *fixtures.Store) {
	// Initialize Repositories
	menuRepo := repositories.NewMenuRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	reservationRepo := repositories.NewReservationRepository(store)

	// Display configuration: tax rate and timeline column width come from
	// the environment with the fixture app's defaults.
	taxRate := utils.GetenvFloat("TAX_RATE", services.DefaultTaxRate)
	columnWidth := utils.GetenvInt("HOUR_COLUMN_WIDTH", services.DefaultHourColumnWidth)

	// Initialize Services
	catalogService := services.NewCatalogService(menuRepo)
	cartService := services.NewCartService(menuRepo, orderRepo, taxRate)
	orderService := services.NewOrderService(orderRepo)
	reservationService := services.NewReservationService(reservationRepo, columnWidth)
	salesService := services.NewSalesService(orderRepo)

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	reportHandler := handlers.NewReportHandler(salesService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupMenuRoutes(apiV1, menuHandler)
		SetupCartRoutes(apiV1, cartHandler)
		SetupOrderRoutes(apiV1, orderHandler)
		SetupReservationRoutes(apiV1, reservationHandler)
		SetupReportRoutes(apiV1, reportHandler)
	}
}
