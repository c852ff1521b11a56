// Package geo looks up the rough location of an IP address against an
// ipapi-style HTTP endpoint. The lookup is strictly best effort: it runs
// under a hard timeout and every failure mode (timeout, non-2xx, bad JSON)
// surfaces as an error the caller is expected to swallow.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Result struct {
	IP          string `json:"ip"`
	CountryName string `json:"country_name"`
	City        string `json:"city"`
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		timeout:    timeout,
	}
}

// Lookup resolves ip to a geo record. An empty ip asks the endpoint about
// the caller's own address.
func (c *Client) Lookup(ctx context.Context, ip string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.endpoint + "/json/"
	if ip != "" {
		url = fmt.Sprintf("%s/%s/json/", c.endpoint, ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geo lookup returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("geo lookup returned malformed body: %w", err)
	}

	return &result, nil
}
