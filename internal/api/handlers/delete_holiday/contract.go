package delete_holiday

import "context"

type ScheduleService interface {
	RemoveHoliday(ctx context.Context, salonID, holidayID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
