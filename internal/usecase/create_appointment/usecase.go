package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSalon "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonService/internal/locker"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// UseCase атомарное создание записи в салон
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	salonRepo       SalonRepository
	txManager       TransactionManager
	scopeLocker     ScopeLocker // nil, если внешняя блокировка выключена
	timeProvider    TimeProvider
	initialStatus   domain.AppointmentStatus
	attemptTimeout  time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр UseCase. scopeLocker может быть nil:
// тогда конкуренция разрешается только повторами сериализуемой транзакции.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	scopeLocker ScopeLocker,
	timeProvider TimeProvider,
	initialStatus domain.AppointmentStatus,
	attemptTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		salonRepo:       salonRepo,
		txManager:       txManager,
		scopeLocker:     scopeLocker,
		timeProvider:    timeProvider,
		initialStatus:   initialStatus,
		attemptTimeout:  attemptTimeout,
		logger:          logger,
	}
}

// Execute создает запись, если интервал [start, start+duration) помещается
// в рабочие часы и не пересекается с активными записями того же scope.
// Проверка конфликта и вставка выполняются в одной сериализуемой
// транзакции, повторное чтение внутри неё идёт с FOR UPDATE.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*domain.Appointment, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: invalid request: salon_id=%d, customer_id=%d: %v", req.SalonID, req.CustomerID, err)
		return nil, err
	}

	svc, err := uc.salonRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, storageSalon.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service not found: salon_id=%d, service_id=%d", req.SalonID, req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service: salon_id=%d, service_id=%d: %v", req.SalonID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	if svc.DurationMinutes <= 0 {
		uc.logger.Error("CreateAppointment: service has non-positive duration: service_id=%d, duration=%d", svc.ID, svc.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	endTime := req.StartTime.AddMinutes(svc.DurationMinutes)

	day, err := uc.loadDaySchedule(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load day schedule: salon_id=%d, date=%s: %v", req.SalonID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load day schedule: %v", ErrInternal, err)
	}
	if !day.Open {
		uc.logger.Warn("CreateAppointment: salon closed: salon_id=%d, date=%s", req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}
	if req.StartTime.Before(day.OpenTime) || endTime.After(day.CloseTime) {
		uc.logger.Warn("CreateAppointment: outside business hours: salon_id=%d, interval=[%s, %s), window=[%s, %s)",
			req.SalonID, req.StartTime, endTime, day.OpenTime, day.CloseTime)
		return nil, ErrOutsideBusinessHours
	}

	scope := domain.AppointmentScope{
		SalonID:   req.SalonID,
		Date:      req.Date,
		StylistID: req.StylistID,
	}

	attemptCtx, cancel := context.WithTimeout(ctx, uc.attemptTimeout)
	defer cancel()

	var created *domain.Appointment
	book := func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			active, err := uc.appointmentRepo.FindActiveByScope(txCtx, scope)
			if err != nil {
				return fmt.Errorf("find active appointments: %w", err)
			}

			for _, ap := range active {
				if ap.SharesStylistScope(req.StylistID) && ap.OverlapsInterval(req.StartTime, endTime) {
					return ErrSlotTaken
				}
			}

			created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
				SalonID:      req.SalonID,
				CustomerID:   req.CustomerID,
				StylistID:    req.StylistID,
				ServiceID:    svc.ID,
				Date:         req.Date,
				StartTime:    req.StartTime,
				EndTime:      endTime,
				Status:       uc.initialStatus,
				ServiceName:  svc.Name,
				ServicePrice: svc.Price,
			})
			if err != nil {
				return fmt.Errorf("create appointment: %w", err)
			}
			return nil
		})
	}

	if uc.scopeLocker != nil {
		err = uc.scopeLocker.WithScopeLock(attemptCtx, scope, book)
	} else {
		err = book(attemptCtx)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateAppointment: slot taken: salon_id=%d, date=%s, start=%s", req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		case errors.Is(err, locker.ErrScopeLocked),
			errors.Is(err, txmanager.ErrSerializationFailure),
			errors.Is(err, context.DeadlineExceeded):
			uc.logger.Warn("CreateAppointment: attempt could not complete: salon_id=%d, date=%s, start=%s: %v", req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			uc.logger.Error("CreateAppointment: booking failed: salon_id=%d, customer_id=%d: %v", req.SalonID, req.CustomerID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: appointment created: id=%d, salon_id=%d, customer_id=%d, date=%s, interval=[%s, %s)",
		created.ID, created.SalonID, created.CustomerID, created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return created, nil
}
