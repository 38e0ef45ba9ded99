package get_property_availability

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("get_property_availability: property not found")

	// ErrInvalidDateRange возвращается, когда дата начала окна не раньше даты окончания
	ErrInvalidDateRange = errors.New("get_property_availability: start date must be before end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_property_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_property_availability: internal error")
)
