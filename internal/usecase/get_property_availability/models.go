package get_property_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// Request запрос доступности объекта в окне [StartDate, EndDate)
type Request struct {
	PropertyID uuid.UUID
	StartDate  types.Date
	EndDate    types.Date
}

// Range интервал дат [Start, End)
type Range struct {
	Start types.Date
	End   types.Date
}

// Response доступность объекта в запрошенном окне
type Response struct {
	PropertyID   uuid.UUID
	StartDate    types.Date
	EndDate      types.Date
	Enabled      bool    // Выключенный объект не принимает новые бронирования
	Available    bool    // Окно целиком свободно и объект включен
	BookedRanges []Range // Активные бронирования, пересекающие окно, по дате начала
	FreeRanges   []Range // Свободные промежутки внутри окна
}
