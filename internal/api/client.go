// Package api wraps the read-only USSD metrics endpoints. Each fetch
// unwraps the {success, payload} envelope the backend responds with and
// converts wire rows into domain records; a non-success envelope yields
// empty data rather than an error.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

const requestTimeout = 30 * time.Second

// Client talks to the USSD analytics backend.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the given base URL. The API key is
// optional; when set it is sent as a bearer token.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// FetchVolume retrieves the interval series for a time range.
func (c *Client) FetchVolume(ctx context.Context, tr models.TimeRange) ([]models.IntervalRecord, error) {
	var payload []intervalDTO
	if err := c.get(ctx, "/api/v1/metrics/volume", tr, &payload); err != nil {
		return nil, err
	}
	records := make([]models.IntervalRecord, 0, len(payload))
	for _, d := range payload {
		records = append(records, d.toModel())
	}
	return records, nil
}

// FetchPeakHours retrieves the peak-hours heatmap cells for a time
// range. Cells with a day name outside the fixed seven are dropped.
func (c *Client) FetchPeakHours(ctx context.Context, tr models.TimeRange) ([]models.HeatmapCell, error) {
	var payload []heatCellDTO
	if err := c.get(ctx, "/api/v1/metrics/peak-hours", tr, &payload); err != nil {
		return nil, err
	}
	cells := make([]models.HeatmapCell, 0, len(payload))
	for _, d := range payload {
		if cell, ok := d.toModel(); ok {
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// FetchRevenue retrieves the per-category revenue series for a time range.
func (c *Client) FetchRevenue(ctx context.Context, tr models.TimeRange) ([]models.RevenueRecord, error) {
	var payload []revenueDTO
	if err := c.get(ctx, "/api/v1/metrics/revenue", tr, &payload); err != nil {
		return nil, err
	}
	records := make([]models.RevenueRecord, 0, len(payload))
	for _, d := range payload {
		records = append(records, d.toModel())
	}
	return records, nil
}

// FetchDemographics retrieves the province and network breakdowns for a
// time range.
func (c *Client) FetchDemographics(ctx context.Context, tr models.TimeRange) (*Demographics, error) {
	var payload demographicsDTO
	if err := c.get(ctx, "/api/v1/metrics/demographics", tr, &payload); err != nil {
		return nil, err
	}
	return payload.toModel(), nil
}

// get performs one envelope-unwrapping GET. A non-success envelope
// leaves out at its zero value without error.
func (c *Client) get(ctx context.Context, path string, tr models.TimeRange, out any) error {
	reqURL := fmt.Sprintf("%s%s?range=%s", c.baseURL, path, url.QueryEscape(tr.Param()))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("metrics request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read metrics response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: API key may be invalid")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metrics request failed (status %d): %s", resp.StatusCode, string(body))
	}

	env := envelope[json.RawMessage]{}
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to parse metrics response: %w", err)
	}
	if !env.Success {
		return nil
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("failed to parse metrics payload: %w", err)
	}
	return nil
}
