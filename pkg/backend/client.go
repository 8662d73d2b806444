package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultStatusPath = "/api/form-status"
	defaultSubmitPath = "/api/submit-form"
	defaultTimeout    = 10 * time.Second
)

// ClientOption customises the HTTP client configuration.
type ClientOption func(*HTTPClient)

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds each request. Zero disables the per-request deadline.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.timeout = timeout
	}
}

// WithStatusPath overrides the form-status endpoint path.
func WithStatusPath(path string) ClientOption {
	return func(c *HTTPClient) {
		if strings.TrimSpace(path) != "" {
			c.statusPath = path
		}
	}
}

// WithSubmitPath overrides the submit endpoint path.
func WithSubmitPath(path string) ClientOption {
	return func(c *HTTPClient) {
		if strings.TrimSpace(path) != "" {
			c.submitPath = path
		}
	}
}

// HTTPClient talks JSON to the form service.
type HTTPClient struct {
	baseURL    string
	statusPath string
	submitPath string
	timeout    time.Duration
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a client rooted at baseURL.
func NewHTTPClient(baseURL string, options ...ClientOption) (*HTTPClient, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("backend: base url is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("backend: parse base url: %w", err)
	}

	c := &HTTPClient{
		baseURL:    trimmed,
		statusPath: defaultStatusPath,
		submitPath: defaultSubmitPath,
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// FormStatus implements Client.
func (c *HTTPClient) FormStatus(ctx context.Context, formType string) (StatusResult, error) {
	if formType == "" {
		return StatusResult{}, errors.New("backend: form type is required")
	}

	endpoint := c.baseURL + c.statusPath + "?form_type=" + url.QueryEscape(formType)
	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return StatusResult{}, err
	}

	var result StatusResult
	if err := json.Unmarshal(body, &result); err != nil {
		return StatusResult{}, fmt.Errorf("backend: decode status response: %w", err)
	}
	return result, nil
}

// Submit implements Client.
func (c *HTTPClient) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if req.FormType == "" {
		return SubmitResult{}, errors.New("backend: form type is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("backend: encode submit payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.baseURL+c.submitPath, payload)
	if err != nil {
		return SubmitResult{}, err
	}

	var result SubmitResult
	if err := json.Unmarshal(body, &result); err != nil {
		return SubmitResult{}, fmt.Errorf("backend: decode submit response: %w", err)
	}
	return result, nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("backend: context is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("backend: unexpected status " + resp.Status)
	}
	return data, nil
}
