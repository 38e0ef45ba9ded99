package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// Request модели

// CreatePropertyRequest запрос на создание объекта
type CreatePropertyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// ListPropertiesRequest запрос страницы объектов, нумерация страниц с нуля
type ListPropertiesRequest struct {
	Page int
	Size int
}

// Response модели

// PropertyResponse представление объекта
type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PropertyListResponse страница объектов
type PropertyListResponse struct {
	Items      []*PropertyResponse `json:"items"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalItems int64               `json:"totalItems"`
	TotalPages int                 `json:"totalPages"`
}

// FromDomainProperty конвертирует доменный объект в ответ
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Enabled:     p.Enabled,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainPage конвертирует страницу объектов в ответ
func FromDomainPage(page *domain.PropertyPage) *PropertyListResponse {
	items := make([]*PropertyResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, FromDomainProperty(p))
	}

	return &PropertyListResponse{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages(),
	}
}
