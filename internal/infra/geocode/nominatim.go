// Package geocode implements the reverse geocoder port against a
// Nominatim-compatible API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// Client resolves coordinates into place descriptions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a reverse geocoding client from configuration.
func NewClient(cfg *config.GeocodingConfig, logger *slog.Logger) (service.ReverseGeocoder, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("geocoding provider base URL must be configured")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type reverseResponse struct {
	Error       string `json:"error"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Address     struct {
		Road    string `json:"road"`
		Suburb  string `json:"suburb"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

// ReverseGeocode looks up the place at the given coordinate. The result is a
// transient POI: it opens the same detail flow as a stored POI but is never
// persisted.
func (c *Client) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.POI, error) {
	if !coord.IsValid() {
		return nil, errors.New("coordinate is outside valid bounds")
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%f", coord.Latitude))
	query.Set("lon", fmt.Sprintf("%f", coord.Longitude))

	requestURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build reverse geocoding request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("geocoding provider returned status %s", resp.Status)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode reverse geocoding response")
	}

	// Nominatim reports unknown locations as an error field with HTTP 200.
	if payload.Error != "" {
		return nil, nil
	}

	name := payload.Name
	if name == "" {
		name = firstSegment(payload.DisplayName)
	}
	if name == "" {
		return nil, nil
	}

	return &entity.POI{
		ID:          uuid.New(),
		Name:        name,
		Category:    payload.Type,
		Description: payload.DisplayName,
		Address:     payload.Address.Road,
		City:        firstNonEmpty(payload.Address.City, payload.Address.Town, payload.Address.Village),
		Location:    coord,
		IsActive:    true,
		IsTransient: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

func firstSegment(displayName string) string {
	if idx := strings.Index(displayName, ","); idx > 0 {
		return strings.TrimSpace(displayName[:idx])
	}

	return strings.TrimSpace(displayName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
