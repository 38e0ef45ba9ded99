package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или находится не в том состоянии, которое требует операция
	ErrBookingNotFound = errors.New("booking not found")

	// ErrConflict возвращается, когда даты пересекаются с активным бронированием объекта
	ErrConflict = errors.New("booking dates conflict with an active booking")

	// ErrInvalidDateRange возвращается, когда дата начала не раньше даты окончания
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
