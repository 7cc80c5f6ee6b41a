package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/messages"
	"skinmapping/pkg/metrics"
	"time"
)

// Fetcher gets data from the game data API.
// A false return means no data, the failure is already logged.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (any, bool)
	FetchText(ctx context.Context, url string) (string, bool)
}

// Client is the net/http implementation of the Fetcher.
type Client struct {
	http    *http.Client
	headers http.Header
	log     *logger.Logger
	metrics *metrics.RunMetrics
}

// ClientDeps is the dependency list for the request client.
type ClientDeps struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *logger.Logger
	Metrics   *metrics.RunMetrics

	// Optional, built from the timeout when nil.
	HTTPClient *http.Client
}

// NewClient creates the client, the timeout applies to every request.
func NewClient(deps *ClientDeps) *Client {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: deps.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}

	return &Client{
		http: httpClient,
		headers: http.Header{
			"User-Agent":      {deps.UserAgent},
			"Accept":          {"*/*"},
			"Accept-Encoding": {acceptEncoding},
		},
		log:     deps.Logger,
		metrics: deps.Metrics,
	}
}

// FetchJSON returns the decoded object or array.
func (c *Client) FetchJSON(ctx context.Context, url string) (any, bool) {
	start := time.Now()

	body, err := c.get(ctx, url)
	if err == nil {
		var data any
		if jsonErr := json.Unmarshal(body, &data); jsonErr != nil {
			err = &FetchError{Type: ErrorTypeDecode, URL: url, Err: fmt.Errorf("%s: %w", messages.FailedToParseMsg, jsonErr)}
		} else {
			switch data.(type) {
			case map[string]any, []any:
				c.metrics.ObserveRequest("json", "ok", time.Since(start))
				return data, true
			default:
				err = &FetchError{Type: ErrorTypeDecode, URL: url, Err: fmt.Errorf(messages.UnexpectedShapeMsg, data)}
			}
		}
	}

	c.fail(url, "json", err, time.Since(start))
	return nil, false
}

// FetchText returns the raw body, used for the directory listings.
func (c *Client) FetchText(ctx context.Context, url string) (string, bool) {
	start := time.Now()

	body, err := c.get(ctx, url)
	if err != nil {
		c.fail(url, "text", err, time.Since(start))
		return "", false
	}

	c.metrics.ObserveRequest("text", "ok", time.Since(start))
	return string(body), true
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Type: ErrorTypeUnknown, URL: url, Err: fmt.Errorf("error creating request: %w", err)}
	}
	req.Header = c.headers.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, categorize(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Type: ErrorTypeStatus, URL: url, StatusCode: resp.StatusCode}
	}

	reader, err := getDecompressedBody(resp)
	if err != nil {
		return nil, &FetchError{Type: ErrorTypeDecode, URL: url, Err: err}
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, categorize(url, fmt.Errorf("failed to read response body: %w", err))
	}
	return body, nil
}

// Log the failure and count it.
func (c *Client) fail(url string, kind string, err error, elapsed time.Duration) {
	errType := ErrorTypeUnknown
	var fe *FetchError
	if errors.As(err, &fe) {
		errType = fe.Type
	}

	c.metrics.ObserveRequest(kind, string(errType), elapsed)
	if c.log != nil {
		c.log.Errorf(messages.FailedToFetchMsg, url, errType, err)
	}
}
