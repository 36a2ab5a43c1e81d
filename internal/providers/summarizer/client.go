package summarizer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/tracing"
)

// DefaultEndpoint is the local research service.
const DefaultEndpoint = "http://localhost:8080/api/research/process"

// Operation names the processing the research service applies.
type Operation string

const (
	OperationSummarize Operation = "summarize"
	OperationSuggest   Operation = "suggest"
)

// Request is the JSON body posted to the research service.
type Request struct {
	Content    string    `json:"content"`
	Operations Operation `json:"operations"`
}

// APIError reports a non-success HTTP status from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API ERROR: %d", e.StatusCode)
}

// NetworkError reports a request that failed before a response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client posts content to the research service. Each call is a single
// attempt with no retry and no client-side timeout; only ctx can end it early.
type Client struct {
	resty    *resty.Client
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.resty = resty.NewWithClient(hc)
	}
}

// New creates a client for endpoint; "" selects DefaultEndpoint.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		resty:    resty.New(),
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resty.
		SetRetryCount(0).
		SetTimeout(0).
		SetHeader("User-Agent", "ResearchAssistant-Panel/1.0")
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RequestSummary asks the service to summarize content.
func (c *Client) RequestSummary(ctx context.Context, content string) (string, error) {
	return c.Process(ctx, content, OperationSummarize)
}

// Process posts {content, operations} and returns the raw response body.
func (c *Client) Process(ctx context.Context, content string, op Operation) (string, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(tracing.Headers(ctx)).
		SetBody(Request{Content: content, Operations: op}).
		Post(c.endpoint)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if !resp.IsSuccess() {
		return "", &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return resp.String(), nil
}
