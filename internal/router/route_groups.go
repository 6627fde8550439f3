package router

import (
	"resto_pos_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMenuRoutes sets up the menu catalog routes.
func SetupMenuRoutes(apiGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := apiGroup.Group("/menu")
	{
		menuRoutes.GET("/categories", menuHandler.GetCategories)
		menuRoutes.GET("/items", menuHandler.GetItems)
	}
}

// SetupCartRoutes sets up the order-builder session routes.
func SetupCartRoutes(apiGroup *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cartRoutes := apiGroup.Group("/cart/sessions")
	{
		cartRoutes.POST("", cartHandler.CreateSession)
		cartRoutes.GET("/:id", cartHandler.GetCart)
		cartRoutes.PATCH("/:id/items", cartHandler.UpdateItem)
		cartRoutes.POST("/:id/checkout", cartHandler.Checkout)
	}
}

// SetupOrderRoutes sets up the orders page routes.
func SetupOrderRoutes(apiGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := apiGroup.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.GetOrders)
	}
}

// SetupReservationRoutes sets up the reservation timeline routes.
func SetupReservationRoutes(apiGroup *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservationRoutes := apiGroup.Group("/reservations")
	{
		reservationRoutes.GET("/meta", reservationHandler.GetMeta)
		reservationRoutes.GET("/schedule", reservationHandler.GetSchedule)
	}
}

// SetupReportRoutes sets up the dashboard report routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	{
		reportRoutes.GET("/summary", reportHandler.GetSalesSummary)
		reportRoutes.GET("/orders-chart", reportHandler.GetOrdersChart)
	}
}
