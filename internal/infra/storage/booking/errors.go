package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (или не находится в состоянии, требуемом операцией)
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда БД отклонила запись ограничением исключения
	// (пересечение с активным бронированием того же объекта)
	ErrOverlap = errors.New("booking.repository: overlapping active booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrInvalidState возвращается при попытке установить недопустимое состояние
	ErrInvalidState = errors.New("booking.repository: invalid booking state")
)
