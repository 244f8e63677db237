// Package provider holds the shared HTTP plumbing for the outbound content
// and prayer-time APIs.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"muslimhub/config"
	"muslimhub/internal/errors"

	"golang.org/x/time/rate"
)

// Client is a rate-limited JSON HTTP client shared by all provider adapters.
// Every public API the app talks to is a free tier; the limiter keeps bursts
// of refresh traffic from tripping their quotas.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates the shared provider client from configuration.
func NewClient(cfg *config.ProvidersConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    limiter,
	}
}

// GetJSON performs a GET and unmarshals a 2xx response body into dest.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limiter wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return errors.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", url)
	}

	return nil
}
