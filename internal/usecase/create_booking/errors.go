package create_booking

import "errors"

var (
	// ErrInvalidProperty возвращается, когда объект не существует или выключен
	ErrInvalidProperty = errors.New("create_booking: property does not exist or is disabled")

	// ErrInvalidDateRange возвращается, когда дата начала не раньше даты окончания
	ErrInvalidDateRange = errors.New("create_booking: start date must be before end date")

	// ErrConflict возвращается, когда даты пересекаются с активным бронированием объекта
	ErrConflict = errors.New("create_booking: dates conflict with an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
