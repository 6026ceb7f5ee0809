package recipeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	userAgent      = "Recipe-Browser/0.1 (https://github.com/Another0Noob/recipe-browser)"
)
const (
	DefaultRateLimit = 0 // requests per second, 0 = unlimited
)

// Client talks to the recipe service. Methods are safe for concurrent use once
// the client is configured.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new recipe service client.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		logger:     logger.Named("recipeapi"),
	}
	c.SetRateLimit(DefaultRateLimit)
	return c
}

// SetRateLimit paces outgoing requests to perSecond with an equal burst.
// perSecond <= 0 removes the limit.
func (c *Client) SetRateLimit(perSecond int) {
	if perSecond <= 0 {
		c.rateLimiter = rate.NewLimiter(rate.Inf, 0)
		return
	}
	c.rateLimiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), perSecond)
}

// SetTimeout bounds every request. Zero keeps the transport default.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

func (c *Client) BaseURL() string { return c.baseURL }

// doRequest performs an HTTP request to the recipe service (raw, no decoding).
func (c *Client) doRequest(ctx context.Context, method, endpoint, token string, body any) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// do executes the request and returns the body of a 2xx answer. Any other
// status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body any) ([]byte, error) {
	resp, err := c.doRequest(ctx, method, endpoint, token, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(b, &eb) == nil {
			apiErr.Message = eb.message()
		} else if s := strings.TrimSpace(string(b)); s != "" && len(s) < 512 {
			apiErr.Message = s
		}
		c.logger.Debug("API error response",
			zap.Int("status", resp.StatusCode),
			zap.String("endpoint", endpoint),
			zap.String("message", apiErr.Message),
		)
		return nil, apiErr
	}
	return b, nil
}

// doJSON executes the request and decodes a 2xx body into out.
func (c *Client) doJSON(ctx context.Context, method, endpoint, token string, body, out any) error {
	b, err := c.do(ctx, method, endpoint, token, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w (body: %s)", err, string(b))
	}
	return nil
}

func recipePath(id fmt.Stringer, action string) string {
	return "/recipes/" + url.PathEscape(id.String()) + "/" + action
}
