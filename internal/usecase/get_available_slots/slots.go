package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateSlots строит список доступных стартов для одного дня.
// Кандидаты идут от openTime с фиксированным шагом сканирования
// (domain.SlotScanGranularityMinutes), независимо от длительности услуги.
// Кандидат допустим, если услуга целиком помещается до закрытия
// (start + duration <= closeTime) и интервал [start, start+duration)
// не пересекается ни с одной активной записью.
//
// Пример: часы 09:00-12:00, услуга 30 минут, запись 10:00-10:30 →
// 09:00 09:15 09:30 09:45(нет: 09:45+30 пересекает) 10:00(нет) 10:15(нет)
// 10:30 10:45 11:00 11:15 11:30(11:30+30 = 12:00, входит).
func generateSlots(
	day domain.DaySchedule,
	durationMinutes int,
	appointments []*domain.Appointment,
) []types.TimeOfDay {
	slots := make([]types.TimeOfDay, 0)

	if !day.Open {
		return slots
	}

	for start := day.OpenTime; ; start = start.AddMinutes(domain.SlotScanGranularityMinutes) {
		end := start.AddMinutes(durationMinutes)
		if end.After(day.CloseTime) {
			break
		}

		if !conflictsWithAny(start, end, appointments) {
			slots = append(slots, start)
		}
	}

	return slots
}

// conflictsWithAny проверяет кандидата против всех активных записей дня.
// Тот же предикат domain.Overlaps выполняется при коммите брони.
func conflictsWithAny(start, end types.TimeOfDay, appointments []*domain.Appointment) bool {
	for _, ap := range appointments {
		if ap.OverlapsInterval(start, end) {
			return true
		}
	}
	return false
}

// filterPastSlots убирает слоты текущего дня, начало которых уже прошло.
// Применяется только при включённой опции booking.hide_past_slots;
// по умолчанию прошедшие слоты остаются в выдаче.
func filterPastSlots(slots []types.TimeOfDay, date time.Time, now time.Time) []types.TimeOfDay {
	if !isSameDay(date, now) {
		return slots
	}

	cutoff := types.FromClock(now)
	filtered := make([]types.TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if !s.Before(cutoff) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
