// Package directions implements the route provider port against an
// OSRM-compatible directions API.
package directions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultSpeedKmh       = 30.0
)

// Client calls the directions provider and normalizes its response.
// One HTTP request per invocation; no retry, no backoff.
type Client struct {
	baseURL         string
	apiKey          string
	defaultSpeedKmh float64
	httpClient      *http.Client
	logger          *slog.Logger
}

// NewClient creates a directions client from configuration. The per-request
// timeout is mandatory: a hung provider must never hang the caller.
func NewClient(cfg *config.RoutingConfig, logger *slog.Logger) (service.RouteProvider, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("routing provider base URL must be configured")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	speed := cfg.DefaultSpeedKmh
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:          cfg.APIKey,
		defaultSpeedKmh: speed,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger,
	}, nil
}

// osrmResponse mirrors the subset of the provider payload we consume.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
		Geometry geojson.Geometry `json:"geometry"`
		Legs     []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// FetchRoute computes a route between origin and destination.
func (c *Client) FetchRoute(ctx context.Context, origin, destination entity.Coordinate, mode entity.TransportMode) (*entity.RouteResult, error) {
	if !origin.IsValid() || !destination.IsValid() {
		return nil, errors.New("coordinate is outside valid bounds")
	}
	if !mode.IsValid() {
		return nil, errors.Errorf("unsupported transport mode: %s", mode)
	}

	requestURL := c.buildURL(origin, destination, mode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directions request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("directions provider returned status %s", resp.Status)
	}

	var payload osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions response")
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, service.ErrNoRoute
	}

	return c.normalize(&payload)
}

func (c *Client) buildURL(origin, destination entity.Coordinate, mode entity.TransportMode) string {
	coords := fmt.Sprintf("%f,%f;%f,%f",
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude,
	)

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")
	query.Set("alternatives", "false")
	if c.apiKey != "" {
		query.Set("access_token", c.apiKey)
	}

	return fmt.Sprintf("%s/route/v1/%s/%s?%s", c.baseURL, mode, coords, query.Encode())
}

func (c *Client) normalize(payload *osrmResponse) (*entity.RouteResult, error) {
	route := payload.Routes[0]

	line, ok := route.Geometry.Geometry().(orb.LineString)
	if !ok || len(line) < 2 {
		return nil, service.ErrNoRoute
	}

	duration := time.Duration(route.Duration * float64(time.Second))
	if duration <= 0 {
		// Provider omitted duration; estimate from the configured speed.
		metersPerSecond := c.defaultSpeedKmh / 3.6
		duration = time.Duration(route.Distance / metersPerSecond * float64(time.Second))
	}

	var steps []entity.RouteStep
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			steps = append(steps, entity.RouteStep{
				Instruction: formatInstruction(step.Maneuver.Type, step.Maneuver.Modifier, step.Name),
				Distance:    step.Distance,
			})
		}
	}

	averageSpeed := 0.0
	if duration > 0 {
		averageSpeed = route.Distance / duration.Seconds()
	}

	return &entity.RouteResult{
		Distance:     route.Distance,
		Duration:     duration,
		Geometry:     line,
		Steps:        steps,
		AverageSpeed: averageSpeed,
	}, nil
}

// formatInstruction renders a provider maneuver as human-readable text,
// e.g. "turn right onto Avenue Kennedy".
func formatInstruction(maneuverType, modifier, road string) string {
	var sb strings.Builder

	switch maneuverType {
	case "depart":
		sb.WriteString("head out")
	case "arrive":
		sb.WriteString("arrive at your destination")
	default:
		sb.WriteString(maneuverType)
		if modifier != "" {
			sb.WriteString(" ")
			sb.WriteString(modifier)
		}
	}

	if road != "" && maneuverType != "arrive" {
		sb.WriteString(" onto ")
		sb.WriteString(road)
	}

	return sb.String()
}
