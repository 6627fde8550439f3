package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/pkg/utils"
)

// Custom Errors
var (
	ErrMalformedTime  = errors.New("malformed time string, expected HH:MM")
	ErrDegenerateSpan = errors.New("reservation end does not follow its start")
)

// DefaultHourColumnWidth is the pixel width of one hour column when no
// HOUR_COLUMN_WIDTH is configured.
const DefaultHourColumnWidth = 120

// groupKeySeparator joins the (date, floor, tableId) composite key.
// Invariant: '|' appears in none of the three fields. Dates are YYYY-MM-DD
// and floors/table ids are fixture-controlled labels.
const groupKeySeparator = "|"

// GroupKey builds the composite lookup key for one timeline row.
func GroupKey(date, floor, tableID string) string {
	return date + groupKeySeparator + floor + groupKeySeparator + tableID
}

// GroupByTable indexes reservations by (date, floor, tableId) so each
// rendered row is a single map lookup. Looking up an absent key yields an
// empty sequence; callers never see nil-vs-missing distinctions.
func GroupByTable(reservations []models.Reservation) map[string][]models.Reservation {
	grouped := make(map[string][]models.Reservation)
	for _, res := range reservations {
		key := GroupKey(res.Assignment.Date, res.Assignment.Floor, res.Assignment.TableID)
		grouped[key] = append(grouped[key], res)
	}
	return grouped
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(timeStr string) (int, error) {
	hh, mm, ok := strings.Cut(timeStr, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, timeStr)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, timeStr)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, timeStr)
	}
	return hour*60 + minute, nil
}

// TimeToFraction converts a wall-clock time into hours measured from the
// opening hour. Hours before opening belong to the next calendar day (a
// business day crossing midnight, e.g. open 20: "01:30" means 25.5 - 20).
// The arithmetic is done on whole minutes so boundary times are exact.
func TimeToFraction(timeStr string, open int) (float64, error) {
	minutes, err := parseClock(timeStr)
	if err != nil {
		return 0, err
	}
	if minutes/60 < open {
		minutes += 24 * 60
	}
	return float64(minutes-open*60) / 60, nil
}

// Block is the horizontal placement of one reservation on the hour grid.
type Block struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// LayoutBlock positions a reservation's time span on a grid whose column 0
// begins at the opening hour, with columnWidth pixels per hour. A span whose
// adjusted end does not exceed its start is rejected rather than repaired;
// upstream data must already be consistent.
func LayoutBlock(startTime, endTime string, open, columnWidth int) (Block, error) {
	start, err := TimeToFraction(startTime, open)
	if err != nil {
		return Block{}, err
	}
	end, err := TimeToFraction(endTime, open)
	if err != nil {
		return Block{}, err
	}
	if end <= start {
		return Block{}, fmt.Errorf("%w: %s-%s", ErrDegenerateSpan, startTime, endTime)
	}
	w := float64(columnWidth)
	return Block{Left: start * w, Width: (end - start) * w}, nil
}

// TotalHours is the number of hour columns between opening and closing,
// wrapping past midnight when close is numerically below open.
func TotalHours(open, close int) int {
	if close < open {
		return close + 24 - open
	}
	return close - open
}

// HourLabels renders the "HH:00" column headers, one per grid boundary.
func HourLabels(open, totalHours int) []string {
	labels := make([]string, 0, totalHours+1)
	for i := 0; i <= totalHours; i++ {
		labels = append(labels, fmt.Sprintf("%02d:00", (open+i)%24))
	}
	return labels
}

// ReservationBlock is one positioned reservation on a timeline row.
type ReservationBlock struct {
	UID          string                   `json:"uid"`
	CustomerName string                   `json:"customer_name"`
	Status       models.ReservationStatus `json:"status"`
	PartySize    int                      `json:"party_size"`
	StartTime    string                   `json:"start_time"`
	EndTime      string                   `json:"end_time"`
	Block
}

// ScheduleRow is one table's row on the timeline.
type ScheduleRow struct {
	TableID string             `json:"table_id"`
	Blocks  []ReservationBlock `json:"blocks"`
}

// Schedule is the timeline view model for one (date, floor) selection.
type Schedule struct {
	Date        string        `json:"date"`
	Floor       string        `json:"floor"`
	ColumnWidth int           `json:"column_width"`
	TotalHours  int           `json:"total_hours"`
	HourLabels  []string      `json:"hour_labels"`
	Rows        []ScheduleRow `json:"rows"`
}

// ReservationMeta feeds the timeline page chrome: floor tabs, the date
// picker and the grid dimensions.
type ReservationMeta struct {
	BrandName      string                `json:"brand_name"`
	Floors         []string              `json:"floors"`
	Dates          []string              `json:"dates"`
	OperatingHours models.OperatingHours `json:"operating_hours"`
	ColumnWidth    int                   `json:"column_width"`
	TotalHours     int                   `json:"total_hours"`
}

// ReservationService builds timeline view models. Reservations with
// malformed or degenerate time spans are rejected once at construction, with
// a warning per dropped record; the layout engine itself never repairs data.
type ReservationService interface {
	GetMeta() *ReservationMeta
	GetSchedule(date, floor string) *Schedule
	DefaultDate() string
	DefaultFloor() string
}

type reservationService struct {
	config      models.RestaurantConfig
	grouped     map[string][]models.Reservation
	dates       []string
	columnWidth int
}

// NewReservationService validates and indexes the reservation roster.
func NewReservationService(resRepo repositories.ReservationRepository, columnWidth int) ReservationService {
	config := resRepo.GetRestaurantConfig()
	open := config.OperatingHours.Open

	valid := []models.Reservation{}
	for _, res := range resRepo.GetReservations() {
		if _, err := LayoutBlock(res.Assignment.StartTime, res.Assignment.EndTime, open, columnWidth); err != nil {
			utils.LogError(err, "NewReservationService: dropping reservation "+res.UID)
			continue
		}
		if !models.IsValidReservationStatus(string(res.Status)) {
			// Unknown statuses render with the default style, so the
			// record is kept.
			utils.LogInfo("NewReservationService: unknown reservation status", map[string]interface{}{
				"uid": res.UID, "status": string(res.Status),
			})
		}
		valid = append(valid, res)
	}

	seen := map[string]bool{}
	dates := []string{}
	for _, res := range valid {
		if !seen[res.Assignment.Date] {
			seen[res.Assignment.Date] = true
			dates = append(dates, res.Assignment.Date)
		}
	}
	sort.Strings(dates)

	return &reservationService{
		config:      config,
		grouped:     GroupByTable(valid),
		dates:       dates,
		columnWidth: columnWidth,
	}
}

func (s *reservationService) totalHours() int {
	return TotalHours(s.config.OperatingHours.Open, s.config.OperatingHours.Close)
}

func (s *reservationService) GetMeta() *ReservationMeta {
	return &ReservationMeta{
		BrandName:      s.config.BrandName,
		Floors:         s.config.Layout.Floors,
		Dates:          s.dates,
		OperatingHours: s.config.OperatingHours,
		ColumnWidth:    s.columnWidth,
		TotalHours:     s.totalHours(),
	}
}

// GetSchedule lays out every table of the floor for the given date. Tables
// without reservations produce rows with an empty block list; blocks are
// positioned purely by time, so overlapping bookings on one table overlap
// visually (no lane-packing).
func (s *reservationService) GetSchedule(date, floor string) *Schedule {
	open := s.config.OperatingHours.Open
	totalHours := s.totalHours()

	schedule := &Schedule{
		Date:        date,
		Floor:       floor,
		ColumnWidth: s.columnWidth,
		TotalHours:  totalHours,
		HourLabels:  HourLabels(open, totalHours),
		Rows:        []ScheduleRow{},
	}

	for _, table := range s.config.Layout.Tables {
		if table.Floor != floor {
			continue
		}
		row := ScheduleRow{TableID: table.ID, Blocks: []ReservationBlock{}}
		for _, res := range s.grouped[GroupKey(date, floor, table.ID)] {
			block, err := LayoutBlock(res.Assignment.StartTime, res.Assignment.EndTime, open, s.columnWidth)
			if err != nil {
				// Unreachable for records that passed construction.
				continue
			}
			row.Blocks = append(row.Blocks, ReservationBlock{
				UID:          res.UID,
				CustomerName: res.Customer.FullName,
				Status:       res.Status,
				PartySize:    res.Assignment.PartySize,
				StartTime:    res.Assignment.StartTime,
				EndTime:      res.Assignment.EndTime,
				Block:        block,
			})
		}
		schedule.Rows = append(schedule.Rows, row)
	}
	return schedule
}

// DefaultDate is the earliest date carrying reservations, mirroring the
// timeline page's initial selection.
func (s *reservationService) DefaultDate() string {
	if len(s.dates) == 0 {
		return ""
	}
	return s.dates[0]
}

// DefaultFloor is the first configured floor.
func (s *reservationService) DefaultFloor() string {
	if len(s.config.Layout.Floors) == 0 {
		return ""
	}
	return s.config.Layout.Floors[0]
}
