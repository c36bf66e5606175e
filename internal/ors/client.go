// Package ors is a client for the OpenRouteService directions API.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"drp/internal/domain"
	"drp/internal/observability"
	"drp/pkg/e"
)

const (
	DefaultBaseURL = "https://api.openrouteservice.org"
	ProfileWalking = "foot-walking"
)

// Client implements the walking route provider used by the evacuation planners.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	profile    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenRouteService client. timeout bounds every request.
func NewClient(baseURL, apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: ProfileWalking,
		metrics: metrics,
		logger:  logger,
	}
}

// Route requests a walking route from start to end. When avoid is non-empty
// the route steers around every polygon. An empty feature collection is
// reported as e.ErrNoRoute.
func (c *Client) Route(ctx context.Context, start, end domain.Point, avoid []domain.Polygon) (*domain.Route, error) {
	kind := "direct"
	if len(avoid) > 0 {
		kind = "avoid"
	}
	began := time.Now()
	route, err := c.route(ctx, start, end, avoid)
	c.metrics.RouteDuration.WithLabelValues(kind).Observe(time.Since(began).Seconds())

	switch {
	case err == nil:
		c.metrics.RouteRequests.WithLabelValues(kind, "success").Inc()
	case errors.Is(err, e.ErrNoRoute):
		c.metrics.RouteRequests.WithLabelValues(kind, "empty").Inc()
	default:
		c.metrics.RouteRequests.WithLabelValues(kind, "error").Inc()
		c.logger.Warn("ors route failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}
	return route, err
}

func (c *Client) route(ctx context.Context, start, end domain.Point, avoid []domain.Polygon) (*domain.Route, error) {
	body, err := json.Marshal(newDirectionsRequest(start, end, avoid))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	u := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ors API error: status %d: %s", resp.StatusCode, b)
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(fc.Features) == 0 || len(fc.Features[0].Geometry.Coordinates) == 0 {
		return nil, e.ErrNoRoute
	}

	f := fc.Features[0]
	coords := make([]domain.LonLat, 0, len(f.Geometry.Coordinates))
	for _, c := range f.Geometry.Coordinates {
		// ORS may append elevation as a third value
		if len(c) < 2 {
			continue
		}
		coords = append(coords, domain.LonLat{c[0], c[1]})
	}

	return &domain.Route{
		Coordinates: coords,
		Metrics: domain.RouteMetrics{
			Distance: f.Properties.Summary.Distance,
			Duration: f.Properties.Summary.Duration,
		},
	}, nil
}
