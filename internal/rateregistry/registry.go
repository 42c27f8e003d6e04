// Package rateregistry resolves published legal rates (minimum wage,
// state support rate) from an external registry service. The registry is
// optional: without RATE_REGISTRY_URL the statutory defaults pass
// through untouched, and any fetch failure falls back to them as well.
package rateregistry

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"uhi-engine/internal/model"
)

// LegalRates is the registry's published document.
type LegalRates struct {
	MinWageAnnual       float64 `json:"min_wage_annual"`
	StateNonCapableRate float64 `json:"state_non_capable_rate"`
}

type Client struct {
	url  string
	http *http.Client

	once   sync.Once
	cached *LegalRates
}

// New builds a client for the given registry base URL. An empty URL
// yields a disabled client that always passes defaults through.
func New(url string) *Client {
	c := &Client{url: url}
	if url != "" {
		c.http = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return c
}

// NewFromEnv builds a client from RATE_REGISTRY_URL.
func NewFromEnv() *Client {
	return New(os.Getenv("RATE_REGISTRY_URL"))
}

// Apply overlays the registry's published rates onto the given
// assumptions. The fetch happens once per process and is cached;
// unpublished or unreachable rates leave the defaults in place.
func (c *Client) Apply(a model.Assumptions) model.Assumptions {
	if c.url == "" {
		return a
	}

	c.once.Do(func() {
		c.cached = c.fetch()
	})
	if c.cached == nil {
		return a
	}

	if c.cached.MinWageAnnual > 0 {
		a.MinWageAnnual = c.cached.MinWageAnnual
	}
	if c.cached.StateNonCapableRate > 0 {
		a.StateNonCapableRate = c.cached.StateNonCapableRate
	}
	return a
}

func (c *Client) fetch() *LegalRates {
	resp, err := c.http.Get(c.url + "/legal-rates")
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var rates LegalRates
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil
	}
	return &rates
}
