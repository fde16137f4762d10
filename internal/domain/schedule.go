package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Salon represents a salon owned by a single user
type Salon struct {
	ID      int64
	Name    string
	Slug    string
	Address *string
	Phone   *string
	OwnerID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable service offered by a salon. The duration is
// the unit the slot generator steps appointments by and is immutable once
// appointments reference the service.
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessHours is the weekly open/close window of a salon for one weekday.
// At most one row exists per (salon, day of week).
type BusinessHours struct {
	ID        int64
	SalonID   int64
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	OpenTime  types.TimeOfDay
	CloseTime types.TimeOfDay
	IsClosed  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holiday is a date-specific override that closes a salon entirely,
// regardless of its business hours. At most one row per (salon, date).
type Holiday struct {
	ID          int64
	SalonID     int64
	Date        time.Time
	Description *string

	CreatedAt time.Time
}

// DaySchedule is the calendar snapshot for one salon and date: the window
// the slot generator scans, or closed.
type DaySchedule struct {
	Open      bool
	OpenTime  types.TimeOfDay
	CloseTime types.TimeOfDay
}

// Closed is the snapshot for a day without bookable time.
var Closed = DaySchedule{}
