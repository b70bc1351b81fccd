// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities: ESearch resolves a query to
// PMIDs and EFetch returns the full records, which are reduced to report rows
// for papers with commercially affiliated authors.
package pubmed

import (
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/get-papers/pkg/types"
)

const (
	// SearchURL is the ESearch endpoint.
	SearchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"

	// FetchURL is the EFetch endpoint.
	FetchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultLimit is the number of identifiers Resolve asks for by default.
	DefaultLimit = 100

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "get-papers/0.1"

	database = "pubmed"
)

// Client queries PubMed. A Client holds no per-call state; each Resolve or
// Extract makes exactly one request and never retries.
type Client struct {
	httpClient *http.Client
	searchURL  string
	fetchURL   string
	userAgent  string
	email      string
	tool       string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURLs overrides the ESearch and EFetch endpoints (for testing).
func WithBaseURLs(searchURL, fetchURL string) ClientOption {
	return func(c *Client) {
		if searchURL != "" {
			c.searchURL = searchURL
		}
		if fetchURL != "" {
			c.fetchURL = fetchURL
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithIdentity sets the email and tool parameters NCBI asks callers to send.
func WithIdentity(email, tool string) ClientOption {
	return func(c *Client) {
		c.email = email
		c.tool = tool
	}
}

// NewClient creates a PubMed client with default endpoints.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		searchURL:  SearchURL,
		fetchURL:   FetchURL,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from configuration.
func NewClientFromConfig(cfg types.PubMedConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClient(
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithBaseURLs(cfg.SearchURL, cfg.FetchURL),
		WithUserAgent(cfg.UserAgent),
		WithIdentity(cfg.Email, cfg.Tool),
	)
}

// params returns the parameters common to every request.
func (c *Client) params() url.Values {
	v := url.Values{"db": {database}}
	if c.tool != "" {
		v.Set("tool", c.tool)
	}
	if c.email != "" {
		v.Set("email", c.email)
	}
	return v
}
