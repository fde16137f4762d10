package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Service сервис для управления расписанием салона
type Service struct {
	scheduleRepo ScheduleRepository
	salonRepo    SalonRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	salonRepo SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		salonRepo:    salonRepo,
		logger:       logger,
	}
}

// GetBusinessHours получает недельное расписание салона
// Публичный метод - доступен всем
func (s *Service) GetBusinessHours(ctx context.Context, salonID int64) (*models.BusinessHoursListResponse, error) {
	s.logger.Info("GetBusinessHours: fetching business hours for salon=%d", salonID)

	if _, err := s.salonRepo.GetSalonByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetBusinessHours: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetBusinessHours: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	hours, err := s.scheduleRepo.GetBusinessHours(ctx, salonID)
	if err != nil {
		s.logger.Error("GetBusinessHours: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessHours: successfully fetched %d rows for salon=%d", len(hours), salonID)
	return models.FromDomainBusinessHoursList(hours), nil
}

// SetBusinessHours применяет недельное расписание построчно.
// Каждая строка upsert-ится независимо, ответ содержит результат по
// каждому дню. Атомарности на весь запрос нет: частичный успех возможен.
// Доступно только владельцу салона.
func (s *Service) SetBusinessHours(ctx context.Context, req *models.SetBusinessHoursRequest) (*models.SetBusinessHoursResponse, error) {
	s.logger.Info("SetBusinessHours: applying %d rows for salon=%d by user=%d", len(req.Hours), req.SalonID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	if len(req.Hours) == 0 {
		return nil, fmt.Errorf("%w: hours must not be empty", ErrInvalidInput)
	}

	results := make([]models.UpsertResult, 0, len(req.Hours))
	for _, entry := range req.Hours {
		result := models.UpsertResult{DayOfWeek: entry.DayOfWeek}

		if err := s.applyEntry(ctx, req.SalonID, entry); err != nil {
			s.logger.Warn("SetBusinessHours: row day_of_week=%d failed for salon=%d: %v", entry.DayOfWeek, req.SalonID, err)
			msg := err.Error()
			result.Error = &msg
		} else {
			result.OK = true
		}

		results = append(results, result)
	}

	s.logger.Info("SetBusinessHours: applied %d rows for salon=%d", len(results), req.SalonID)
	return &models.SetBusinessHoursResponse{Results: results}, nil
}

// ListHolidays получает список выходных дней салона
// Публичный метод - доступен всем
func (s *Service) ListHolidays(ctx context.Context, salonID int64) (*models.HolidayListResponse, error) {
	s.logger.Info("ListHolidays: fetching holidays for salon=%d", salonID)

	if _, err := s.salonRepo.GetSalonByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("ListHolidays: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListHolidays: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	holidays, err := s.scheduleRepo.ListHolidays(ctx, salonID)
	if err != nil {
		s.logger.Error("ListHolidays: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListHolidays: successfully fetched %d holidays for salon=%d", len(holidays), salonID)
	return models.FromDomainHolidayList(holidays), nil
}

// AddHoliday добавляет выходной день
// Доступно только владельцу салона
func (s *Service) AddHoliday(ctx context.Context, req *models.AddHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("AddHoliday: adding holiday date=%s for salon=%d by user=%d", req.Date, req.SalonID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddHoliday: invalid date=%s for salon=%d", req.Date, req.SalonID)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	holiday, err := s.scheduleRepo.CreateHoliday(ctx, &domain.Holiday{
		SalonID:     req.SalonID,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayExists) {
			s.logger.Warn("AddHoliday: holiday already exists: salon=%d, date=%s", req.SalonID, req.Date)
			return nil, ErrHolidayExists
		}
		s.logger.Error("AddHoliday: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: AddHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddHoliday: successfully added holiday id=%d for salon=%d", holiday.ID, req.SalonID)
	return models.FromDomainHoliday(holiday), nil
}

// RemoveHoliday удаляет выходной день
// Доступно только владельцу салона
func (s *Service) RemoveHoliday(ctx context.Context, salonID, holidayID, userID int64) error {
	s.logger.Info("RemoveHoliday: removing holiday id=%d for salon=%d by user=%d", holidayID, salonID, userID)

	if err := s.checkOwnerAccess(ctx, salonID, userID); err != nil {
		return err
	}

	holiday, err := s.scheduleRepo.GetHolidayByID(ctx, holidayID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			s.logger.Warn("RemoveHoliday: holiday id=%d not found", holidayID)
			return ErrHolidayNotFound
		}
		s.logger.Error("RemoveHoliday: repository error for holiday id=%d: %v", holidayID, err)
		return fmt.Errorf("%w: RemoveHoliday - repository error: %v", ErrInternal, err)
	}

	// Выходной чужого салона недоступен даже владельцу
	if holiday.SalonID != salonID {
		s.logger.Warn("RemoveHoliday: holiday id=%d belongs to salon=%d, not salon=%d", holidayID, holiday.SalonID, salonID)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.DeleteHoliday(ctx, holidayID); err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			s.logger.Warn("RemoveHoliday: holiday id=%d not found during deletion", holidayID)
			return ErrHolidayNotFound
		}
		s.logger.Error("RemoveHoliday: repository error for holiday id=%d: %v", holidayID, err)
		return fmt.Errorf("%w: RemoveHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveHoliday: successfully removed holiday id=%d for salon=%d", holidayID, salonID)
	return nil
}

// Вспомогательные методы

// applyEntry валидирует и upsert-ит одну строку расписания
func (s *Service) applyEntry(ctx context.Context, salonID int64, entry models.BusinessHoursEntry) error {
	if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	bh, err := entry.ToDomain(salonID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !bh.IsClosed && !bh.OpenTime.Before(bh.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if _, err := s.scheduleRepo.UpsertBusinessHours(ctx, bh); err != nil {
		return fmt.Errorf("%w: upsert failed: %v", ErrInternal, err)
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем салона
func (s *Service) checkOwnerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.salonRepo.GetSalonByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("checkOwnerAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get salon: %v", ErrInternal, err)
	}

	if salon.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of salon=%d", userID, salonID)
		return ErrAccessDenied
	}

	return nil
}
