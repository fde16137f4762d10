package schedule

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда для дня недели нет записи
	ErrBusinessHoursNotFound = errors.New("schedule.repository: business hours not found")

	// ErrHolidayNotFound возвращается, когда выходной не найден
	ErrHolidayNotFound = errors.New("schedule.repository: holiday not found")

	// ErrHolidayExists возвращается при добавлении дубликата даты выходного
	ErrHolidayExists = errors.New("schedule.repository: holiday already exists for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
