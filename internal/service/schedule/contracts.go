package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	GetBusinessHours(ctx context.Context, salonID int64) ([]*domain.BusinessHours, error)
	UpsertBusinessHours(ctx context.Context, bh *domain.BusinessHours) (*domain.BusinessHours, error)
	GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error)
	ListHolidays(ctx context.Context, salonID int64) ([]*domain.Holiday, error)
	CreateHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, id int64) error
}

// SalonRepository интерфейс справочника салонов для проверки прав владельца
type SalonRepository interface {
	GetSalonByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
