package services

import (
	"errors"
	"testing"

	"resto_pos_backend/internal/models"
)

func TestTimeToFraction(t *testing.T) {
	got, err := TimeToFraction("09:30", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}

	// Hours before opening belong to the next calendar day.
	got, err = TimeToFraction("01:00", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5.0 {
		t.Fatalf("expected 5.0 for 01:00 with open=20, got %v", got)
	}

	// Exactly the opening hour is column zero, not a wrap.
	got, err = TimeToFraction("20:00", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 at the opening boundary, got %v", got)
	}
}

func TestTimeToFractionMalformed(t *testing.T) {
	for _, bad := range []string{"", "12", "ab:cd", "25:00", "12:75", "12:-5"} {
		if _, err := TimeToFraction(bad, 8); !errors.Is(err, ErrMalformedTime) {
			t.Fatalf("expected ErrMalformedTime for %q, got %v", bad, err)
		}
	}
}

func TestLayoutBlock(t *testing.T) {
	block, err := LayoutBlock("09:00", "11:30", 8, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.Left != 120 || block.Width != 300 {
		t.Fatalf("expected left=120 width=300, got %+v", block)
	}
}

func TestLayoutBlockCrossingMidnight(t *testing.T) {
	// Open 20, close 4: a 23:00-01:00 reservation runs from hour 3 to hour 5
	// of the business day.
	block, err := LayoutBlock("23:00", "01:00", 20, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.Left != 3*120 || block.Width != 2*120 {
		t.Fatalf("expected left=360 width=240, got %+v", block)
	}
}

func TestLayoutBlockDegenerateSpan(t *testing.T) {
	if _, err := LayoutBlock("14:00", "14:00", 8, 120); !errors.Is(err, ErrDegenerateSpan) {
		t.Fatalf("expected ErrDegenerateSpan for zero span, got %v", err)
	}
	if _, err := LayoutBlock("15:00", "14:00", 8, 120); !errors.Is(err, ErrDegenerateSpan) {
		t.Fatalf("expected ErrDegenerateSpan for reversed span, got %v", err)
	}
}

func TestTotalHours(t *testing.T) {
	if got := TotalHours(8, 22); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	if got := TotalHours(20, 4); got != 8 {
		t.Fatalf("expected 8 for a day crossing midnight, got %d", got)
	}
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels(22, 4)
	want := []string{"22:00", "23:00", "00:00", "01:00", "02:00"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

func testReservation(uid, date, floor, tableID, start, end string) models.Reservation {
	return models.Reservation{
		UID:      uid,
		Customer: models.ReservationCustomer{FullName: "Guest " + uid},
		Status:   models.ReservationStatusPending,
		Assignment: models.ReservationAssignment{
			Date: date, Floor: floor, TableID: tableID,
			StartTime: start, EndTime: end, PartySize: 2,
		},
	}
}

func TestGroupByTable(t *testing.T) {
	grouped := GroupByTable([]models.Reservation{
		testReservation("r1", "2026-02-21", "MAIN", "T1", "11:00", "12:00"),
		testReservation("r2", "2026-02-21", "MAIN", "T1", "18:00", "20:00"),
		testReservation("r3", "2026-02-21", "TERRACE", "T1", "18:00", "20:00"),
	})

	if len(grouped[GroupKey("2026-02-21", "MAIN", "T1")]) != 2 {
		t.Fatalf("expected 2 reservations for MAIN/T1")
	}
	if len(grouped[GroupKey("2026-02-21", "TERRACE", "T1")]) != 1 {
		t.Fatalf("same table id on another floor must group separately")
	}
	// Absent keys yield the empty sequence, no special-casing for callers.
	if got := grouped[GroupKey("2026-02-22", "MAIN", "T1")]; len(got) != 0 {
		t.Fatalf("expected empty sequence for absent key, got %v", got)
	}
}

func testReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{
		config: models.RestaurantConfig{
			BrandName: "Testaurant",
			Layout: models.RestaurantLayout{
				Floors: []string{"MAIN", "TERRACE"},
				Tables: []models.RestaurantTable{
					{ID: "T1", Floor: "MAIN"},
					{ID: "T2", Floor: "MAIN"},
					{ID: "T3", Floor: "TERRACE"},
				},
			},
			OperatingHours: models.OperatingHours{Open: 10, Close: 22},
		},
		reservations: []models.Reservation{
			testReservation("r1", "2026-02-21", "MAIN", "T1", "11:00", "12:30"),
			testReservation("r2", "2026-02-22", "MAIN", "T2", "18:00", "20:00"),
			testReservation("bad", "2026-02-21", "MAIN", "T2", "nonsense", "20:00"),
		},
	}
}

func TestReservationServiceSchedule(t *testing.T) {
	service := NewReservationService(testReservationRepo(), 120)

	schedule := service.GetSchedule("2026-02-21", "MAIN")
	if len(schedule.Rows) != 2 {
		t.Fatalf("expected a row per floor table, got %d", len(schedule.Rows))
	}

	if len(schedule.Rows[0].Blocks) != 1 {
		t.Fatalf("expected 1 block on T1, got %d", len(schedule.Rows[0].Blocks))
	}
	block := schedule.Rows[0].Blocks[0]
	if block.Left != 120 || block.Width != 180 {
		t.Fatalf("expected left=120 width=180 for 11:00-12:30 open=10, got %+v", block)
	}

	// The malformed reservation was dropped at construction; T2 stays empty.
	if len(schedule.Rows[1].Blocks) != 0 {
		t.Fatalf("expected no blocks on T2, got %d", len(schedule.Rows[1].Blocks))
	}

	if schedule.TotalHours != 12 || len(schedule.HourLabels) != 13 {
		t.Fatalf("unexpected grid dimensions: %+v", schedule)
	}
}

func TestReservationServiceDefaultsAndMeta(t *testing.T) {
	service := NewReservationService(testReservationRepo(), 120)

	if got := service.DefaultDate(); got != "2026-02-21" {
		t.Fatalf("expected earliest date as default, got %q", got)
	}
	if got := service.DefaultFloor(); got != "MAIN" {
		t.Fatalf("expected first floor as default, got %q", got)
	}

	meta := service.GetMeta()
	if meta.BrandName != "Testaurant" || len(meta.Dates) != 2 || meta.TotalHours != 12 {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	// Unknown selections resolve to empty rows, never an error.
	schedule := service.GetSchedule("1999-01-01", "CELLAR")
	if len(schedule.Rows) != 0 {
		t.Fatalf("expected no rows for unknown floor, got %d", len(schedule.Rows))
	}
}
