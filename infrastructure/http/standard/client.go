// ABOUTME: Standard HTTP client implementation with timeout and pluggable transport
// ABOUTME: Sends single-shot outbound requests for translation provider calls

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"profile-translate-api/core/interfaces"
)

const userAgent = "ProfileTranslateAPI/1.0"

// Option customizes a StandardHTTPClient
type Option func(*http.Client)

// WithTransport replaces the client's round tripper, e.g. with a logging one
func WithTransport(rt http.RoundTripper) Option {
	return func(c *http.Client) {
		c.Transport = rt
	}
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	client := &http.Client{
		Timeout: timeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return &StandardHTTPClient{
		client: client,
	}
}

// Post performs an HTTP POST request. Failed requests are not retried.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
