// Generic CRUD transport for the catalog REST API
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/songbook/internal/shared"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Client wraps a [resty.Client] with the conventions the catalog API uses:
// JSON bodies, integer ids, and a flat error contract. A token-bucket rate
// limiter throttles all outgoing requests.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a catalog API client from configuration. Zero-valued
// fields fall back to the embedded defaults.
func NewClient(cfg shared.APIConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetRetryCount(cfg.Retries).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().SetContext(ctx).SetResult(out).Get(path)
	return c.check(resp, err, "GET", path)
}

// Post performs a POST request with a JSON body and decodes the created
// entity into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(out).Post(path)
	return c.check(resp, err, "POST", path)
}

// Patch performs a partial update with a JSON body and decodes the updated
// entity into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(out).Patch(path)
	return c.check(resp, err, "PATCH", path)
}

// Delete performs a DELETE request. The API returns an empty body.
func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().SetContext(ctx).Delete(path)
	return c.check(resp, err, "DELETE", path)
}

// check normalizes transport and status failures into the shared error
// taxonomy so callers can test with errors.Is.
func (c *Client) check(resp *resty.Response, err error, method, path string) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, shared.Classify(err))
	}

	if resp.IsError() {
		statusErr := &shared.StatusError{
			Code:    resp.StatusCode(),
			Message: strings.TrimSpace(resp.String()),
		}
		return fmt.Errorf("%s %s: %w", method, path, shared.Classify(statusErr))
	}

	return nil
}
