// Package predict implements the chatbox.Predictor interface over HTTP.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/longkey1/chatbox/internal/chatbox"
	"github.com/longkey1/chatbox/internal/version"
)

// maxErrorExcerpt bounds how much of an error body ends up in HTTPError.
const maxErrorExcerpt = 200

// Request represents the request body of the prediction endpoint
type Request struct {
	Text string `json:"text"`
}

// Response represents the response body of the prediction endpoint.
// Only Answer is shown to the user.
type Response struct {
	Answer    string          `json:"answer"`
	Intent    string          `json:"intent,omitempty"`
	Error     string          `json:"error,omitempty"`
	DebugInfo json.RawMessage `json:"debug_info,omitempty"`
}

// Client talks to a single prediction endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default cookie-carrying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for endpoint, a base URL or full /predict URL.
// The default HTTP client keeps cookies so the server's session survives
// across messages. It has no timeout.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	resolved, err := ResolveEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		endpoint:  resolved,
		userAgent: "chatbox/" + version.Short(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		c.httpClient = &http.Client{Jar: jar}
	}

	return c, nil
}

// Endpoint returns the resolved prediction URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict sends text to the endpoint. Every failure is reported in the
// returned Reply as *HTTPError or *NetworkError.
func (c *Client) Predict(ctx context.Context, text string) chatbox.Reply {
	answer, err := c.predict(ctx, text)
	return chatbox.Reply{Answer: answer, Err: err}
}

func (c *Client) predict(ctx context.Context, text string) (string, error) {
	jsonData, err := json.Marshal(Request{Text: text})
	if err != nil {
		return "", &NetworkError{Op: "request", Err: fmt.Errorf("error marshaling request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", &NetworkError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Op: "read", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var result *Response
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &NetworkError{Op: "decode", Err: err}
	}
	if result == nil {
		return "", &NetworkError{Op: "decode", Err: errors.New("response body is not a JSON object")}
	}

	c.logger.Debug("prediction response",
		"status", resp.StatusCode,
		"intent", result.Intent,
		"has_debug_info", len(result.DebugInfo) > 0)

	return result.Answer, nil
}

// errorMessage extracts a short description from an error response body.
func errorMessage(body []byte) string {
	var parsed Response
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	excerpt := strings.TrimSpace(string(body))
	if len(excerpt) > maxErrorExcerpt {
		excerpt = excerpt[:maxErrorExcerpt] + "..."
	}
	return excerpt
}
