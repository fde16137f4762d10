package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// BusinessHoursEntry одна строка недельного расписания
type BusinessHoursEntry struct {
	DayOfWeek int    `json:"dayOfWeek"`           // 0 = воскресенье ... 6 = суббота
	OpenTime  string `json:"openTime,omitempty"`  // "09:00"
	CloseTime string `json:"closeTime,omitempty"` // "18:00"
	IsClosed  bool   `json:"isClosed,omitempty"`
}

// SetBusinessHoursRequest запрос на массовое обновление рабочих часов.
// Строки применяются независимо: ошибка одной не откатывает остальные.
type SetBusinessHoursRequest struct {
	SalonID int64                `json:"salonId"`
	UserID  int64                `json:"userId"`
	Hours   []BusinessHoursEntry `json:"hours"`
}

// AddHolidayRequest запрос на добавление выходного дня
type AddHolidayRequest struct {
	SalonID     int64   `json:"salonId"`
	UserID      int64   `json:"userId"`
	Date        string  `json:"date"` // "2025-10-15"
	Description *string `json:"description,omitempty"`
}

// ToDomain конвертирует строку расписания в domain модель
func (e *BusinessHoursEntry) ToDomain(salonID int64) (*domain.BusinessHours, error) {
	bh := &domain.BusinessHours{
		SalonID:   salonID,
		DayOfWeek: e.DayOfWeek,
		IsClosed:  e.IsClosed,
	}

	if e.IsClosed {
		return bh, nil
	}

	open, err := types.ParseTimeOfDay(e.OpenTime)
	if err != nil {
		return nil, err
	}
	closeT, err := types.ParseTimeOfDay(e.CloseTime)
	if err != nil {
		return nil, err
	}

	bh.OpenTime = open
	bh.CloseTime = closeT
	return bh, nil
}

// Response модели

// BusinessHoursResponse ответ с одной строкой рабочих часов
type BusinessHoursResponse struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salonId"`
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}

// BusinessHoursListResponse ответ с недельным расписанием
type BusinessHoursListResponse struct {
	Hours []BusinessHoursResponse `json:"hours"`
}

// UpsertResult результат применения одной строки расписания
type UpsertResult struct {
	DayOfWeek int     `json:"dayOfWeek"`
	OK        bool    `json:"ok"`
	Error     *string `json:"error,omitempty"`
}

// SetBusinessHoursResponse по-строчный отчёт о массовом обновлении
type SetBusinessHoursResponse struct {
	Results []UpsertResult `json:"results"`
}

// HolidayResponse ответ с данными выходного дня
type HolidayResponse struct {
	ID          int64   `json:"id"`
	SalonID     int64   `json:"salonId"`
	Date        string  `json:"date"` // "2025-10-15"
	Description *string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// HolidayListResponse ответ со списком выходных
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// Методы конвертации

// FromDomainBusinessHours конвертирует domain модель в DTO
func FromDomainBusinessHours(bh *domain.BusinessHours) *BusinessHoursResponse {
	if bh == nil {
		return nil
	}

	resp := &BusinessHoursResponse{
		ID:        bh.ID,
		SalonID:   bh.SalonID,
		DayOfWeek: bh.DayOfWeek,
		IsClosed:  bh.IsClosed,
	}

	if !bh.IsClosed {
		resp.OpenTime = bh.OpenTime.String()
		resp.CloseTime = bh.CloseTime.String()
	}

	return resp
}

// FromDomainBusinessHoursList конвертирует список domain моделей в DTO
func FromDomainBusinessHoursList(list []*domain.BusinessHours) *BusinessHoursListResponse {
	hours := make([]BusinessHoursResponse, 0, len(list))
	for _, bh := range list {
		hours = append(hours, *FromDomainBusinessHours(bh))
	}
	return &BusinessHoursListResponse{Hours: hours}
}

// FromDomainHoliday конвертирует domain модель в DTO
func FromDomainHoliday(h *domain.Holiday) *HolidayResponse {
	if h == nil {
		return nil
	}

	return &HolidayResponse{
		ID:          h.ID,
		SalonID:     h.SalonID,
		Date:        h.Date.Format(domain.DateFormat),
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}
}

// FromDomainHolidayList конвертирует список domain моделей в DTO
func FromDomainHolidayList(list []*domain.Holiday) *HolidayListResponse {
	holidays := make([]HolidayResponse, 0, len(list))
	for _, h := range list {
		holidays = append(holidays, *FromDomainHoliday(h))
	}
	return &HolidayListResponse{Holidays: holidays}
}
