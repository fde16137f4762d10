package domain

// SlotScanGranularityMinutes is the fixed step at which candidate start
// times are scanned, independent of service duration.
const SlotScanGranularityMinutes = 15

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultInitialStatus is the status a booking gets when the configuration
// does not override it. The original flow confirms directly, skipping a
// separate confirmation step.
const DefaultInitialStatus = StatusConfirmed

// ActiveStatuses статусы, при которых бронь продолжает занимать свой
// интервал. Используется при проверках пересечений.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
