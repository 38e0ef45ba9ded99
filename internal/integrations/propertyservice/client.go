package propertyservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// Client клиент удаленного справочника объектов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника объектов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает объект по ID
// Возвращает domain.ErrPropertyNotFound при ответе 404
func (c *Client) GetProperty(ctx context.Context, propertyID uuid.UUID) (*Property, error) {
	url := fmt.Sprintf("%s/internal/properties/%s", c.baseURL, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrPropertyNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var property Property
	if err := json.NewDecoder(resp.Body).Decode(&property); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &property, nil
}

// Validate проверяет, что объект существует и принимает бронирования
// Возвращает domain.ErrPropertyNotFound или domain.ErrPropertyDisabled
func (c *Client) Validate(ctx context.Context, propertyID uuid.UUID) error {
	property, err := c.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.log.Warn("Validate: property not found, property_id=%s", propertyID)
			return err
		}

		c.log.Error("Validate: property directory unavailable, property_id=%s: %v", propertyID, err)
		return err
	}

	if !property.Enabled {
		c.log.Warn("Validate: property is disabled, property_id=%s", propertyID)
		return domain.ErrPropertyDisabled
	}

	return nil
}
