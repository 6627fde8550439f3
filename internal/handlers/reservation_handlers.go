package handlers

import (
	"net/http"

	"resto_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReservationHandler holds the reservation service.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(rs services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: rs}
}

// GetMeta handles fetching the timeline page chrome: floors, available
// dates, operating hours and grid dimensions.
func (h *ReservationHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, h.reservationService.GetMeta())
}

// GetSchedule handles fetching the positioned timeline for one (date,
// floor). Missing parameters fall back to the earliest reserved date and the
// first floor; unknown values simply yield empty rows.
func (h *ReservationHandler) GetSchedule(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.reservationService.DefaultDate()
	}
	floor := c.Query("floor")
	if floor == "" {
		floor = h.reservationService.DefaultFloor()
	}
	c.JSON(http.StatusOK, h.reservationService.GetSchedule(date, floor))
}
