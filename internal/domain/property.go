package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property бронируемый объект
type Property struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string
	Enabled     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyPage страница списка объектов
type PropertyPage struct {
	Items      []*Property
	Page       int
	Size       int
	TotalItems int64
}

// TotalPages returns the number of pages for the current page size
func (p *PropertyPage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}
