package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSchedule "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// loadDaySchedule собирает календарный снимок для салона и даты.
// Выходной день или отсутствие записи рабочих часов на этот день недели
// трактуются как закрытый день.
func (uc *UseCase) loadDaySchedule(ctx context.Context, salonID int64, date time.Time) (domain.DaySchedule, error) {
	_, err := uc.scheduleRepo.FindHoliday(ctx, salonID, date)
	if err == nil {
		return domain.Closed, nil
	}
	if !errors.Is(err, storageSchedule.ErrHolidayNotFound) {
		return domain.Closed, fmt.Errorf("find holiday: %w", err)
	}

	bh, err := uc.scheduleRepo.GetBusinessHoursForDay(ctx, salonID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, storageSchedule.ErrBusinessHoursNotFound) {
			return domain.Closed, nil
		}
		return domain.Closed, fmt.Errorf("get business hours: %w", err)
	}

	if bh.IsClosed {
		return domain.Closed, nil
	}

	return domain.DaySchedule{
		Open:      true,
		OpenTime:  bh.OpenTime,
		CloseTime: bh.CloseTime,
	}, nil
}
