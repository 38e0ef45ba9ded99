package get_property_availability

import (
	getAvailability "github.com/m04kA/PropertyBookingService/internal/usecase/get_property_availability"
)

// RangeResponse интервал дат [startDate, endDate)
type RangeResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID   string          `json:"propertyId"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Enabled      bool            `json:"enabled"`
	Available    bool            `json:"available"`
	BookedRanges []RangeResponse `json:"bookedRanges"`
	FreeRanges   []RangeResponse `json:"freeRanges"`
}

func toRanges(in []getAvailability.Range) []RangeResponse {
	out := make([]RangeResponse, 0, len(in))
	for _, r := range in {
		out = append(out, RangeResponse{StartDate: r.Start.String(), EndDate: r.End.String()})
	}
	return out
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		PropertyID:   resp.PropertyID.String(),
		StartDate:    resp.StartDate.String(),
		EndDate:      resp.EndDate.String(),
		Enabled:      resp.Enabled,
		Available:    resp.Available,
		BookedRanges: toRanges(resp.BookedRanges),
		FreeRanges:   toRanges(resp.FreeRanges),
	}
}
