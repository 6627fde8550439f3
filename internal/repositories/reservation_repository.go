package repositories

import (
	"resto_pos_backend/internal/fixtures"
	"resto_pos_backend/internal/models"
)

// ReservationRepository defines read access to the reservation roster and
// the restaurant layout configuration.
type ReservationRepository interface {
	GetRestaurantConfig() models.RestaurantConfig
	GetReservations() []models.Reservation
}

type reservationRepository struct {
	store *fixtures.Store
}

// NewReservationRepository creates a ReservationRepository backed by the fixture store.
func NewReservationRepository(store *fixtures.Store) ReservationRepository {
	return &reservationRepository{store: store}
}

func (r *reservationRepository) GetRestaurantConfig() models.RestaurantConfig {
	return r.store.Reservations.RestaurantConfig
}

func (r *reservationRepository) GetReservations() []models.Reservation {
	return r.store.Reservations.Reservations
}
