// Package drpclient reads the incident and shelter sets a field device needs
// from the platform API.
package drpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"drp/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient expects baseURL to include the API prefix, e.g.
// http://localhost:8080/api/v1.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) ActiveIncidents(ctx context.Context) ([]domain.Incident, error) {
	var out struct {
		Incidents []domain.Incident `json:"incidents"`
	}
	if err := c.get(ctx, "/incidents/active", &out); err != nil {
		return nil, err
	}
	return out.Incidents, nil
}

func (c *Client) Shelters(ctx context.Context) ([]domain.Shelter, error) {
	var out struct {
		Shelters []domain.Shelter `json:"shelters"`
	}
	if err := c.get(ctx, "/shelters", &out); err != nil {
		return nil, err
	}
	return out.Shelters, nil
}

func (c *Client) get(ctx context.Context, path string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("drp API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	c.logger.Debug("fetched", slog.String("path", path))
	return nil
}
