package create_property

import (
	"github.com/m04kA/PropertyBookingService/internal/service/properties/models"
)

// LocationPrefix префикс заголовка Location для созданного объекта
const LocationPrefix = "/api/v1/properties/"

// CreatePropertyRequest HTTP request model
type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=4000"`
	Address     string `json:"address" validate:"max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePropertyRequest) ToServiceRequest() *models.CreatePropertyRequest {
	return &models.CreatePropertyRequest{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
	}
}
