package domain

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Business validation constants
const (
	MinAdults                 = 1
	MaxGuestsPerCategory      = 50
	MaxFullNameLength         = 255
	MaxSpecialRequestsLength  = 1000
	MaxPropertyNameLength     = 255
	MaxPropertyDescriptionLen = 4000
	MaxAvailabilityWindowDays = 366
)
