// Package client is a small consumer of the tracker API, used by the
// watch CLI and by anything else that wants the polling read path.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %s for %s", resp.Status, path)
	}

	return json.Unmarshal(body, dst)
}

// Drivers returns every registered driver with their last known location.
func (c *Client) Drivers(ctx context.Context) ([]models.DriverWithLocation, error) {
	var out struct {
		Count   int                         `json:"count"`
		Drivers []models.DriverWithLocation `json:"drivers"`
	}
	if err := c.get(ctx, "/api/drivers", &out); err != nil {
		return nil, err
	}
	return out.Drivers, nil
}

// DriverLocation returns one driver's last known location.
func (c *Client) DriverLocation(ctx context.Context, driverID string) (*models.DriverWithLocation, error) {
	var out struct {
		Driver *models.DriverWithLocation `json:"driver"`
	}
	if err := c.get(ctx, "/api/student/driver-location/"+driverID, &out); err != nil {
		return nil, err
	}
	return out.Driver, nil
}

// Shuttles returns the simulated shuttle positions.
func (c *Client) Shuttles(ctx context.Context) ([]models.Shuttle, error) {
	var out struct {
		Shuttles []models.Shuttle `json:"shuttles"`
	}
	if err := c.get(ctx, "/api/shuttles", &out); err != nil {
		return nil, err
	}
	return out.Shuttles, nil
}

// Routes returns the campus routes with their stops.
func (c *Client) Routes(ctx context.Context) ([]models.Route, error) {
	var out struct {
		Routes []models.Route `json:"routes"`
	}
	if err := c.get(ctx, "/api/routes", &out); err != nil {
		return nil, err
	}
	return out.Routes, nil
}
