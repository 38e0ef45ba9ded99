package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	propertyRepo "github.com/m04kA/PropertyBookingService/internal/infra/storage/property"
	"github.com/m04kA/PropertyBookingService/internal/service/properties/models"
)

// Service локальный справочник объектов размещения
type Service struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create создает включенный объект
func (s *Service) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Create: creating property name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxPropertyNameLength {
		s.logger.Warn("Create: invalid property name length=%d", len(name))
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxPropertyNameLength)
	}
	if len(req.Description) > domain.MaxPropertyDescriptionLen {
		s.logger.Warn("Create: description is too long, length=%d", len(req.Description))
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	property, err := s.propertyRepo.Create(ctx, &domain.Property{
		Name:        name,
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		Enabled:     true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: property id=%s created", property.ID)
	return models.FromDomainProperty(property), nil
}

// GetByID получает объект по ID, включая выключенные
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyResponse, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Info("GetByID: property id=%s not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetByID: repository error for property id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProperty(property), nil
}

// List получает страницу включенных объектов с общим количеством
func (s *Service) List(ctx context.Context, req models.ListPropertiesRequest) (*models.PropertyListResponse, error) {
	if req.Page < 0 {
		s.logger.Warn("List: negative page=%d", req.Page)
		return nil, fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if req.Size < 1 || req.Size > domain.MaxPageSize {
		s.logger.Warn("List: invalid page size=%d", req.Size)
		return nil, fmt.Errorf("%w: size must be 1..%d", ErrInvalidInput, domain.MaxPageSize)
	}

	items, err := s.propertyRepo.ListEnabled(ctx, req.Size, req.Page*req.Size)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.propertyRepo.CountEnabled(ctx)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d enabled properties, page=%d", len(items), total, req.Page)
	return models.FromDomainPage(&domain.PropertyPage{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
	}), nil
}

// Disable выключает объект, существующие бронирования не затрагиваются
func (s *Service) Disable(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Disable: disabling property id=%s", id)

	if err := s.propertyRepo.Disable(ctx, id); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Disable: property id=%s not found", id)
			return ErrPropertyNotFound
		}
		s.logger.Error("Disable: repository error for property id=%s: %v", id, err)
		return fmt.Errorf("%w: Disable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Disable: property id=%s disabled", id)
	return nil
}

// Validate проверяет, что объект существует и принимает бронирования
// Возвращает domain.ErrPropertyNotFound или domain.ErrPropertyDisabled
func (s *Service) Validate(ctx context.Context, id uuid.UUID) error {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Validate: property id=%s not found", id)
			return domain.ErrPropertyNotFound
		}
		s.logger.Error("Validate: repository error for property id=%s: %v", id, err)
		return fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	if !property.Enabled {
		s.logger.Warn("Validate: property id=%s is disabled", id)
		return domain.ErrPropertyDisabled
	}

	return nil
}
