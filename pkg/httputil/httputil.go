package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tdex-network/monawallet/pkg/circuitbreaker"
	"go.uber.org/ratelimit"
)

const (
	// DefaultTimeout ...
	DefaultTimeout = 30 * time.Second
	// DefaultRateLimit is the default max number of requests per second.
	DefaultRateLimit = 10
)

var errServerError = errors.New("server error")

// Client is an http client bound to a single endpoint. Requests are rate
// limited and pass through a circuit breaker that opens when the endpoint
// keeps failing.
type Client struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewClient returns a Client for the given base url. Zero timeout or
// rateLimit fall back to the defaults.
func NewClient(baseURL string, timeout time.Duration, rateLimit int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: ratelimit.New(rateLimit),
		breaker: circuitbreaker.NewCircuitBreaker(baseURL),
	}
}

// BaseURL ...
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewHTTPRequest makes an http call to the given path, relative to the
// client's base url, and returns status code and body of the response.
func (c *Client) NewHTTPRequest(
	ctx context.Context, method, path, bodyString string,
	header map[string]string,
) (int, string, error) {
	switch method {
	case http.MethodGet, http.MethodPost:
	default:
		return 0, "", fmt.Errorf("verb not supported %s", method)
	}

	c.limiter.Take()

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, method, c.baseURL+path, bodyString, header)
	})
	if err != nil && !errors.Is(err, errServerError) {
		return 0, "", err
	}

	r := res.(*response)
	return r.status, r.body, nil
}

type response struct {
	status int
	body   string
}

func (c *Client) do(
	ctx context.Context, method, url, bodyString string,
	header map[string]string,
) (*response, error) {
	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(bodyString)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	res := &response{rs.StatusCode, strings.TrimSpace(string(bodyBytes))}
	if rs.StatusCode >= http.StatusInternalServerError {
		return res, errServerError
	}
	return res, nil
}
