package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSalon "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase получение доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	salonRepo       SalonRepository
	timeProvider    TimeProvider
	hidePastSlots   bool
	logger          Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	salonRepo SalonRepository,
	timeProvider TimeProvider,
	hidePastSlots bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		salonRepo:       salonRepo,
		timeProvider:    timeProvider,
		hidePastSlots:   hidePastSlots,
		logger:          logger,
	}
}

// Execute вычисляет список доступных стартов для (салон, услуга, дата).
// Ответ является консультативным снимком: между чтением и созданием записи
// слот может быть занят, авторитетная проверка выполняется в транзакции брони.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid request: salon_id=%d, service_id=%d: %v", req.SalonID, req.ServiceID, err)
		return nil, err
	}

	svc, err := uc.salonRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, storageSalon.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service not found: salon_id=%d, service_id=%d", req.SalonID, req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service: salon_id=%d, service_id=%d: %v", req.SalonID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	if svc.DurationMinutes <= 0 {
		uc.logger.Error("GetAvailableSlots: service has non-positive duration: service_id=%d, duration=%d", svc.ID, svc.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	day, err := uc.loadDaySchedule(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load day schedule: salon_id=%d, date=%s: %v", req.SalonID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load day schedule: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:            req.Date,
		SalonID:         req.SalonID,
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		Slots:           nil,
	}

	if !day.Open {
		resp.Slots = make([]types.TimeOfDay, 0)
		return resp, nil
	}

	// Занятость считается по всему салону: запись без мастера блокирует
	// салон целиком, поэтому для выдачи слотов мастер не фильтруется.
	active, err := uc.appointmentRepo.FindActiveByScope(ctx, domain.AppointmentScope{
		SalonID: req.SalonID,
		Date:    req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments: salon_id=%d, date=%s: %v", req.SalonID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: find active appointments: %v", ErrInternal, err)
	}

	slots := generateSlots(day, svc.DurationMinutes, active)
	if uc.hidePastSlots {
		slots = filterPastSlots(slots, req.Date, uc.timeProvider.Now())
	}

	resp.Slots = slots
	uc.logger.Info("GetAvailableSlots: computed %d slots: salon_id=%d, service_id=%d, date=%s", len(slots), req.SalonID, svc.ID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
