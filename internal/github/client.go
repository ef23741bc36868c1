// Package github fetches code-search results and file contents from the GitHub API.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/taigrr/rikimaru/internal/config"
)

// DefaultUserAgent identifies the client; the API rejects requests without one.
const DefaultUserAgent = "request"

// Client issues the three GETs of a search: results, file metadata, raw content.
// Every method returns whatever body it received; transport failures are
// logged and yield an empty body.
type Client struct {
	httpClient *http.Client
	creds      config.Credentials
	userAgent  string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the operational logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client that authenticates with creds.
func New(creds config.Credentials, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		creds:      creds,
		userAgent:  DefaultUserAgent,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchResults runs the code search at url.
func (c *Client) FetchResults(ctx context.Context, url string) string {
	return c.get(ctx, "search", url, true)
}

// FetchMetadata reads the contents API entry at apiURL.
func (c *Client) FetchMetadata(ctx context.Context, apiURL string) string {
	return c.get(ctx, "metadata", apiURL, true)
}

// FetchRaw downloads the raw file at downloadURL without credentials.
func (c *Client) FetchRaw(ctx context.Context, downloadURL string) string {
	return c.get(ctx, "raw", downloadURL, false)
}

func (c *Client) get(ctx context.Context, op, url string, auth bool) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logTransport(&TransportError{Op: op, URL: url, Err: err})
		return ""
	}
	req.Header.Set("User-Agent", c.userAgent)
	if auth && (c.creds.Username != "" || c.creds.Token != "") {
		req.SetBasicAuth(c.creds.Username, c.creds.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logTransport(&TransportError{Op: op, URL: url, Err: err})
		return ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logTransport(&TransportError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().
			Str("op", op).
			Str("url", url).
			Int("status", resp.StatusCode).
			Msg("unexpected upstream status")
	}

	c.log.Debug().
		Str("op", op).
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("fetched")

	return string(body)
}

func (c *Client) logTransport(err *TransportError) {
	c.log.Error().Err(err).Str("op", err.Op).Str("url", err.URL).Msg("transport error")
}

// TransportError is a network or HTTP failure. It is logged, never returned
// into the pipeline.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
