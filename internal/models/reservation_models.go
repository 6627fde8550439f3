package models

// ReservationStatus defines the type for reservation statuses
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusArrived   ReservationStatus = "ARRIVED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

// IsValidReservationStatus checks if the provided status string is a valid ReservationStatus.
func IsValidReservationStatus(status string) bool {
	switch ReservationStatus(status) {
	case ReservationStatusPending,
		ReservationStatusArrived,
		ReservationStatusCompleted:
		return true
	default:
		return false
	}
}

// ReservationCustomer identifies the guest a reservation was made for.
type ReservationCustomer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
}

// ReservationAssignment places a reservation on the floor plan: which table,
// on which date, over which time span. StartTime and EndTime use "HH:MM".
type ReservationAssignment struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Floor     string `json:"floor"`
	TableID   string `json:"tableId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	PartySize int    `json:"partySize"`
}

// Reservation is one booked time span for a table, immutable per fixture load.
type Reservation struct {
	UID        string                `json:"uid"`
	Customer   ReservationCustomer   `json:"customer"`
	Status     ReservationStatus     `json:"status"`
	Assignment ReservationAssignment `json:"assignment"`
}

// RestaurantTable is a physical table on one of the floors.
type RestaurantTable struct {
	ID    string `json:"id"`
	Floor string `json:"floor"`
	Seats int    `json:"seats,omitempty"`
}

// RestaurantLayout lists the floors and the tables placed on them.
type RestaurantLayout struct {
	Floors []string          `json:"floors"`
	Tables []RestaurantTable `json:"tables"`
}

// OperatingHours bounds the timeline grid. Open and Close are 0-23 hour
// integers; Close numerically below Open means the business day crosses
// midnight (e.g. open 18, close 2).
type OperatingHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// RestaurantConfig is the restaurant-level portion of the reservations fixture.
type RestaurantConfig struct {
	BrandName      string           `json:"brandName"`
	Layout         RestaurantLayout `json:"layout"`
	OperatingHours OperatingHours   `json:"operatingHours"`
}

// ReservationData is the shape of the reservations fixture file.
type ReservationData struct {
	RestaurantConfig RestaurantConfig `json:"restaurantConfig"`
	Reservations     []Reservation    `json:"reservations"`
}
