package availability

import "errors"

var (
	// ErrConflict возвращается, когда диапазон пересекается с активным бронированием объекта
	ErrConflict = errors.New("availability: date range overlaps an active booking")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
