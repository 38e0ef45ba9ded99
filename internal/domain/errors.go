package domain

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда дата начала не строго раньше даты окончания
	ErrInvalidDateRange = errors.New("domain: start date must be before end date")

	// ErrInvalidGuestDetails возвращается при некорректном составе гостей
	ErrInvalidGuestDetails = errors.New("domain: invalid guest details")

	// ErrPropertyNotFound возвращается справочником объектов, когда объект не существует
	ErrPropertyNotFound = errors.New("domain: property not found")

	// ErrPropertyDisabled возвращается справочником объектов, когда объект выключен
	ErrPropertyDisabled = errors.New("domain: property is disabled")
)
