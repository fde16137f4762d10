package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	// или принадлежит другому салону
	ErrServiceNotFound = errors.New("create_appointment: service not found for this salon")

	// ErrSalonClosed возвращается, когда салон закрыт в запрошенную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда интервал записи
	// не помещается в рабочие часы салона
	ErrOutsideBusinessHours = errors.New("create_appointment: appointment does not fit business hours")

	// ErrSlotTaken возвращается, когда интервал пересекается
	// с существующей активной записью
	ErrSlotTaken = errors.New("create_appointment: time slot is already taken")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("create_appointment: service duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrUnavailable возвращается, когда попытка бронирования не уложилась
	// в отведённое время или исчерпала повторы из-за конкуренции
	ErrUnavailable = errors.New("create_appointment: booking attempt could not complete, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
