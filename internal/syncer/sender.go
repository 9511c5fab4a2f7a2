// Package syncer forwards processed documents to an external HTTP endpoint.
// The dispatcher shapes the payload; the sender owns the transport.
package syncer

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

	"github.com/goliatone/go-weave/pkg/interfaces"
)

const defaultSendTimeout = 30 * time.Second

var (
	// ErrURLRequired reports a sender configured without an endpoint.
	ErrURLRequired = errors.New("weave syncer: endpoint URL is required")
	// ErrMethodUnsupported reports an HTTP method other than POST or PUT.
	ErrMethodUnsupported = errors.New("weave syncer: method must be POST or PUT")
)

// StatusError reports a non-success response from the endpoint.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("weave syncer: endpoint returned %s", e.Status)
	}
	return fmt.Sprintf("weave syncer: endpoint returned %s: %s", e.Status, strings.TrimSpace(e.Body))
}

// HTTPSenderConfig captures the endpoint settings owned by the boundary
// configuration.
type HTTPSenderConfig struct {
	URL     string
	Method  string
	Headers map[string]string
	Timeout time.Duration
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// HTTPSender delivers payloads with a single synchronous request per
// document. Responses 200 and 201 count as success.
type HTTPSender struct {
	url     string
	method  string
	headers map[string]string
	client  *http.Client
}

var _ interfaces.Sender = (*HTTPSender)(nil)

// NewHTTPSender validates the configuration and returns a sender.
func NewHTTPSender(cfg HTTPSenderConfig) (*HTTPSender, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrURLRequired
	}

	method := strings.ToUpper(strings.TrimSpace(cfg.Method))
	if method == "" {
		method = http.MethodPost
	}
	if method != http.MethodPost && method != http.MethodPut {
		return nil, fmt.Errorf("%w, got %q", ErrMethodUnsupported, cfg.Method)
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultSendTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	headers := make(map[string]string, len(cfg.Headers))
	for key, value := range cfg.Headers {
		headers[key] = value
	}

	return &HTTPSender{
		url:     cfg.URL,
		method:  method,
		headers: headers,
		client:  client,
	}, nil
}

// Send delivers one payload, returning a StatusError for non-2xx responses.
func (s *HTTPSender) Send(ctx context.Context, payload interfaces.SyncPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("weave syncer: encode payload %s: %w", payload.Slug, err)
	}

	req, err := http.NewRequestWithContext(ctx, s.method, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("weave syncer: build request %s: %w", payload.Slug, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range s.headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("weave syncer: send %s: %w", payload.Slug, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(snippet),
		}
	}
	return nil
}
