package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked time slot for a salon service.
// The interval [StartTime, EndTime) is half-open: an appointment ending at
// 10:30 does not conflict with one starting at 10:30.
type Appointment struct {
	ID         int64
	SalonID    int64
	CustomerID int64
	StylistID  *int64 // nil means the appointment occupies the whole salon
	ServiceID  int64
	Date       time.Time // date only, salon-local civil time
	StartTime  types.TimeOfDay
	EndTime    types.TimeOfDay
	Status     AppointmentStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the appointment still occupies its interval.
// Only cancellation frees the slot; completed appointments keep it.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment may transition to cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return CanTransition(a.Status, StatusCancelled)
}

// SharesStylistScope reports whether this appointment contends for the same
// resource as an appointment with the given stylist. A nil stylist on either
// side means the whole salon is occupied, so the scopes always intersect.
func (a *Appointment) SharesStylistScope(stylistID *int64) bool {
	if a.StylistID == nil || stylistID == nil {
		return true
	}
	return *a.StylistID == *stylistID
}

// AppointmentScope identifies the exclusivity domain under which overlap
// checks run: a salon, a date and optionally a single stylist.
type AppointmentScope struct {
	SalonID   int64
	Date      time.Time
	StylistID *int64
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	SalonID    *int64
	CustomerID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *AppointmentStatus
}

// ParseAppointmentStatus validates a status string coming from a client.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}
