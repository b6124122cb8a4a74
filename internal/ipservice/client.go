// Package ipservice is a thin client for the external IP-geolocation
// service consulted at login to resolve the player's country.
package ipservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fugaso-go/slot-core/internal/config"
)

// Client resolves an IP address to a country code. A client built from an
// empty URL is disabled and resolves everything to the empty country.
type Client struct {
	cfg    *config.IPServiceConfig
	client *http.Client
}

// New constructs a Client for cfg.
func New(cfg *config.IPServiceConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 2 * time.Second},
	}
}

type lookupResponse struct {
	Country string `json:"country"`
}

// Resolve returns the country code for ip, or "" when the service is
// disabled. Lookup failures are returned so the caller can decide whether
// country resolution is load-bearing for the request.
func (c *Client) Resolve(ctx context.Context, ip string) (string, error) {
	if c.cfg.URL == "" || ip == "" {
		return "", nil
	}

	u := fmt.Sprintf("%s?ip=%s&key=%s", c.cfg.URL, url.QueryEscape(ip), url.QueryEscape(c.cfg.Key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ip service: status %d", resp.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Country, nil
}
