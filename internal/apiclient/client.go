package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/logger"

	"github.com/sirupsen/logrus"
)

const userAgent = "Go-Writing-Services/1.0"

// Poster sends a JSON body to an API path and decodes the JSON reply into out.
type Poster interface {
	Post(ctx context.Context, path string, body, out interface{}) error
}

// Client is the single pre-configured client for the writing API. The base
// URL and api key are fixed at construction.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a client for baseURL. Requests carry apiKey in the api-key
// header. The client sets no timeout of its own; callers bound each call
// through the context.
func New(baseURL, apiKey string) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 16 << 10,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// NewWithHTTPClient is New with a caller supplied http.Client.
func NewWithHTTPClient(baseURL, apiKey string, hc *http.Client) *Client {
	c := New(baseURL, apiKey)
	if hc != nil {
		c.client = hc
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post sends one request. It never retries. Any transport failure or non-2xx
// status is a network error, a missed deadline is a timeout error and an
// undecodable reply is a processing error. Error bodies are not parsed.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternalError("failed to encode request", err)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternalError("failed to build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("api-key", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return apperrors.NewTimeoutError("request to writing API timed out", err)
		}
		return apperrors.NewNetworkError("request to writing API failed", err)
	}
	defer resp.Body.Close()

	logger.WithFields(logrus.Fields{
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("writing API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return apperrors.NewNetworkError(
			fmt.Sprintf("writing API returned status %d", resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewTimeoutError("reading writing API response timed out", err)
		}
		return apperrors.NewProcessingError("failed to decode writing API response", err)
	}
	return nil
}
