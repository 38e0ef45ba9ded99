package propertyservice

import "github.com/google/uuid"

// Property модель объекта из справочника объектов
type Property struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Enabled bool      `json:"enabled"`
}
