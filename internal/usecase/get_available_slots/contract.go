package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// FindActiveByScope получает не отменённые записи салона на дату
	FindActiveByScope(ctx context.Context, scope domain.AppointmentScope) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	GetBusinessHoursForDay(ctx context.Context, salonID int64, dayOfWeek int) (*domain.BusinessHours, error)
	FindHoliday(ctx context.Context, salonID int64, date time.Time) (*domain.Holiday, error)
}

// SalonRepository интерфейс справочника салонов и услуг
type SalonRepository interface {
	GetSalonByID(ctx context.Context, id int64) (*domain.Salon, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
