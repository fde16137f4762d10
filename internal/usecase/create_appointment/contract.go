package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create создает новую запись
	Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error)
	// FindActiveByScope получает не отменённые записи салона на дату.
	// Внутри транзакции выборка выполняется с FOR UPDATE.
	FindActiveByScope(ctx context.Context, scope domain.AppointmentScope) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	GetBusinessHoursForDay(ctx context.Context, salonID int64, dayOfWeek int) (*domain.BusinessHours, error)
	FindHoliday(ctx context.Context, salonID int64, date time.Time) (*domain.Holiday, error)
}

// SalonRepository интерфейс справочника салонов и услуг
type SalonRepository interface {
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// TransactionManager интерфейс менеджера транзакций.
// Бронирование фиксируется только в сериализуемой транзакции.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ScopeLocker опциональная внешняя блокировка scope бронирования.
// Снижает конкуренцию перед транзакцией, на корректность не влияет.
type ScopeLocker interface {
	WithScopeLock(ctx context.Context, scope domain.AppointmentScope, fn func(ctx context.Context) error) error
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
